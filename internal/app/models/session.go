package models

// WorkflowHandoff carries the order code and the selected instrument snapshot
// between the device-check, reagent-check and execution screens. It lives in
// Redis for the duration of the multi-screen workflow and is cleared when the
// order code changes or the session is torn down.
type WorkflowHandoff struct {
	OrderCode  string      `json:"order_code"`
	Instrument *Instrument `json:"instrument"`
}
