package workflow

import (
	"context"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type ReadinessOutcome string

const (
	OutcomeReady       ReadinessOutcome = "ready"
	OutcomeMaintenance ReadinessOutcome = "maintenance"
	OutcomeInUse       ReadinessOutcome = "in-use"
	OutcomeError       ReadinessOutcome = "error"
)

// ReadinessGate validates that a selected instrument may begin a procedure.
// It only ever reads; a communication failure reports OutcomeError and the
// caller may re-query. Absence of an answer is never treated as readiness.
type ReadinessGate struct {
	InstrumentClient contracts.InstrumentGatewayClient
	Log              *zap.Logger
}

func NewReadinessGate(instrumentClient contracts.InstrumentGatewayClient, log *zap.Logger) *ReadinessGate {
	return &ReadinessGate{
		InstrumentClient: instrumentClient,
		Log:              log,
	}
}

// Check returns the terminal outcome for the instrument. err is non-nil only
// for communication failures; a non-ready status is an outcome, not an error.
func (g *ReadinessGate) Check(ctx context.Context, instrumentID string) (ReadinessOutcome, *models.Instrument, error) {
	instrument, err := g.InstrumentClient.FindInstrumentByID(ctx, instrumentID)
	if err != nil {
		g.Log.Warn("instrument status query failed",
			zap.String(constvars.LoggingInstrumentKey, instrumentID),
			zap.Error(err),
		)
		return OutcomeError, nil, err
	}

	switch instrument.Status {
	case constvars.InstrumentStatusActive, constvars.InstrumentStatusAvailable:
		return OutcomeReady, instrument, nil
	case constvars.InstrumentStatusMaintenance:
		return OutcomeMaintenance, instrument, nil
	case constvars.InstrumentStatusInUse:
		return OutcomeInUse, instrument, nil
	default:
		g.Log.Warn("instrument reported unknown status",
			zap.String(constvars.LoggingInstrumentKey, instrumentID),
			zap.String("status", instrument.Status),
		)
		return OutcomeError, instrument, nil
	}
}
