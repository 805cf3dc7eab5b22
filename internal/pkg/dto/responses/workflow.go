package responses

import "labportal-service/internal/app/models"

type CheckReadiness struct {
	Outcome    string             `json:"outcome"`
	Instrument *models.Instrument `json:"instrument,omitempty"`
}

type ReserveReagents struct {
	UsageRecordIDs []string `json:"usage_record_ids"`
}

type ExecutionStatus struct {
	OrderCode string              `json:"order_code"`
	Phase     string              `json:"phase"`
	Progress  int                 `json:"progress"`
	StepIndex int                 `json:"step_index"`
	Step      string              `json:"step"`
	Result    *models.ResultPanel `json:"result,omitempty"`
}

type SaveResult struct {
	Result *models.ResultPanel `json:"result"`
}
