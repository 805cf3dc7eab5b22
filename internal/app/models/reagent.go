package models

import "time"

// Reagent stock is server-owned shared state. Reads are best-effort and
// possibly stale; the gateway is the authority on deductions.
type Reagent struct {
	ID                string  `json:"id"`
	ReagentName       string  `json:"reagent_name"`
	QuantityAvailable float64 `json:"quantity_available"`
	Unit              string  `json:"unit"`
}

// ReagentRequirement is one (reagent name, required quantity) pair of a procedure.
type ReagentRequirement struct {
	ReagentName string  `json:"reagent_name"`
	Quantity    float64 `json:"quantity"`
}

// UsageRecord is the append-only record of a reagent deduction. Created once
// per successful reservation, immutable thereafter.
type UsageRecord struct {
	ID           string    `json:"id"`
	ReagentName  string    `json:"reagent_name"`
	QuantityUsed float64   `json:"quantity_used"`
	InstrumentID string    `json:"instrument_id"`
	OrderCode    string    `json:"order_code"`
	Timestamp    time.Time `json:"timestamp"`
}
