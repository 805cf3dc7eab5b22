package requests

// Payloads sent to the lab gateway. Shapes follow the backend contract, not
// this service's own API.

type ReagentUsageItem struct {
	ReagentName  string  `json:"reagent_name"`
	QuantityUsed float64 `json:"quantity_used"`
}

type CreateReagentUsage struct {
	Reagents     []ReagentUsageItem `json:"reagents"`
	InstrumentID string             `json:"instrument_id"`
	Procedure    string             `json:"procedure"`
	UsedFor      string             `json:"used_for"`
	Notes        string             `json:"notes"`
}

type PatchTestOrder struct {
	Status string `json:"status"`
}
