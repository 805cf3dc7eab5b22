package models

import "labportal-service/internal/pkg/constvars"

// TestOrder is the backend-owned order record. The workflow only ever
// mutates its status through the lab gateway, never locally.
type TestOrder struct {
	OrderCode     string `json:"order_code"`
	PatientName   string `json:"patient_name"`
	PatientMRN    string `json:"patient_mrn"`
	PatientAge    int    `json:"patient_age"`
	PatientGender string `json:"patient_gender"`
	TestType      string `json:"test_type"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
}

func (o *TestOrder) IsProcessing() bool {
	return o.Status == constvars.OrderStatusProcessing
}
