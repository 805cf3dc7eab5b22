package models

import "labportal-service/internal/pkg/constvars"

// Instrument is read-only to the workflow. It is selected once per test
// session and the snapshot is cached for the session's duration.
type Instrument struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (i *Instrument) IsAvailable() bool {
	return i.Status == constvars.InstrumentStatusActive || i.Status == constvars.InstrumentStatusAvailable
}
