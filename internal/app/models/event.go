package models

import "time"

// ResultCompletedEvent is published to the audit queue after a result is
// accepted by the lab gateway.
type ResultCompletedEvent struct {
	EventID      string    `json:"event_id"`
	OrderCode    string    `json:"order_code"`
	TestType     string    `json:"test_type"`
	InstrumentID string    `json:"instrument_id"`
	Flag         string    `json:"flag"`
	CompletedAt  time.Time `json:"completed_at"`
}
