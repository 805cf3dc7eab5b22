package workflow

import (
	"context"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

// ReservationCoordinator checks stock sufficiency and issues a single atomic
// deduction per order. Re-invoking after a prior success is an error, never a
// second deduction; the gateway remains the idempotency authority, this guard
// only stops the obvious local double-spend.
type ReservationCoordinator struct {
	ReagentClient contracts.ReagentGatewayClient
	Log           *zap.Logger

	mu       sync.Mutex
	reserved map[string][]string
}

func NewReservationCoordinator(reagentClient contracts.ReagentGatewayClient, log *zap.Logger) *ReservationCoordinator {
	return &ReservationCoordinator{
		ReagentClient: reagentClient,
		Log:           log,
		reserved:      make(map[string][]string),
	}
}

// Reserve verifies every requirement against current stock, then issues one
// deduction request scoped to the order and instrument. If any reagent is
// short the whole reservation is rejected before any deduction happens.
func (c *ReservationCoordinator) Reserve(ctx context.Context, orderCode, instrumentID, procedure string, items []models.ReagentRequirement, notes string) ([]string, error) {
	c.mu.Lock()
	if _, ok := c.reserved[orderCode]; ok {
		c.mu.Unlock()
		return nil, exceptions.ErrReagentAlreadyReserved(orderCode)
	}
	// in-flight marker, removed again if the attempt fails
	c.reserved[orderCode] = nil
	c.mu.Unlock()

	ids, err := c.reserve(ctx, orderCode, instrumentID, procedure, items, notes)
	c.mu.Lock()
	if err != nil {
		delete(c.reserved, orderCode)
	} else {
		c.reserved[orderCode] = ids
	}
	c.mu.Unlock()
	return ids, err
}

func (c *ReservationCoordinator) reserve(ctx context.Context, orderCode, instrumentID, procedure string, items []models.ReagentRequirement, notes string) ([]string, error) {
	usageItems := make([]requests.ReagentUsageItem, 0, len(items))
	for _, item := range items {
		reagent, err := c.ReagentClient.FindReagentByName(ctx, item.ReagentName)
		if err != nil {
			return nil, err
		}
		if reagent.QuantityAvailable <= 0 || reagent.QuantityAvailable < item.Quantity {
			return nil, exceptions.ErrReagentOutOfStock(item.ReagentName, reagent.QuantityAvailable, item.Quantity)
		}
		usageItems = append(usageItems, requests.ReagentUsageItem{
			ReagentName:  item.ReagentName,
			QuantityUsed: item.Quantity,
		})
	}

	usageRecords, err := c.ReagentClient.CreateReagentUsage(ctx, &requests.CreateReagentUsage{
		Reagents:     usageItems,
		InstrumentID: instrumentID,
		Procedure:    procedure,
		UsedFor:      orderCode,
		Notes:        notes,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(usageRecords))
	for _, record := range usageRecords {
		ids = append(ids, record.ID)
	}

	c.Log.Info("reagents reserved",
		zap.String(constvars.LoggingOrderCodeKey, orderCode),
		zap.String(constvars.LoggingInstrumentKey, instrumentID),
		zap.Int("reagent_count", len(usageItems)),
	)
	return ids, nil
}

// IsReserved reports whether a successful reservation exists for the order.
func (c *ReservationCoordinator) IsReserved(orderCode string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.reserved[orderCode]
	return ok && ids != nil
}
