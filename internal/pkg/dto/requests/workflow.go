package requests

type CheckReadinessRequest struct {
	InstrumentID string `json:"instrument_id" validate:"required"`
}

type ReagentRequirement struct {
	ReagentName string  `json:"reagent_name" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
}

type ReserveReagentsRequest struct {
	Reagents []ReagentRequirement `json:"reagents" validate:"required,min=1,dive"`
	Notes    string               `json:"notes"`
}
