package responses

import "labportal-service/internal/app/models"

// GatewayError is the error body the lab gateway returns on a rejected call.
type GatewayError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type CreateReagentUsage struct {
	UsageRecords []models.UsageRecord `json:"usage_records"`
}
