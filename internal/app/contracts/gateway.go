package contracts

import (
	"context"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/dto/requests"
)

// The lab backend owns orders, instruments, reagents and results. These
// clients consume its REST API; nothing in this service persists those
// records itself.

type InstrumentGatewayClient interface {
	FindInstrumentByID(ctx context.Context, instrumentID string) (*models.Instrument, error)
}

type ReagentGatewayClient interface {
	FindReagentByName(ctx context.Context, reagentName string) (*models.Reagent, error)
	CreateReagentUsage(ctx context.Context, request *requests.CreateReagentUsage) ([]models.UsageRecord, error)
}

type TestOrderGatewayClient interface {
	FindTestOrderByCode(ctx context.Context, orderCode string) (*models.TestOrder, error)
	UpdateTestOrderStatus(ctx context.Context, orderCode, status string) (*models.TestOrder, error)
}

type TestResultGatewayClient interface {
	CreateTestResult(ctx context.Context, panel *models.ResultPanel) (*models.ResultPanel, error)
}
