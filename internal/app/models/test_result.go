package models

import "labportal-service/internal/pkg/constvars"

// Measurement is one analyte of a result panel. Quantitative values are
// formatted with the analyte's precision; qualitative values are
// Negative/Positive.
type Measurement struct {
	Name           string `json:"name"`
	Value          string `json:"value"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"reference_range"`
	Flag           string `json:"flag"`
}

// ResultPanel is the synthesized panel for one test order, one-to-one with
// the order. The aggregate flag is abnormal if any measurement is abnormal.
type ResultPanel struct {
	OrderCode    string        `json:"order_code"`
	TestType     string        `json:"test_type"`
	InstrumentID string        `json:"instrument_id"`
	Measurements []Measurement `json:"measurements"`
	Flag         string        `json:"flag"`
	Status       string        `json:"status"`
}

func (p *ResultPanel) IsAbnormal() bool {
	return p.Flag == constvars.ResultFlagAbnormal
}
