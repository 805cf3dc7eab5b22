package workflow

import (
	"context"
	"errors"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReservationCoordinator(t *testing.T) {
	requirements := []models.ReagentRequirement{
		{ReagentName: "Glucose Reagent", Quantity: 5},
	}

	t.Run("Sufficient Stock Reserves Once", func(t *testing.T) {
		reagentClient := &mockReagentClient{stock: map[string]*models.Reagent{
			"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 20, Unit: "mL"},
		}}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		ids, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")

		assert.NoError(t, err, "20 available covers 5 required")
		assert.Equal(t, []string{"usage-1"}, ids, "one usage record per reagent")
		assert.Equal(t, 1, reagentClient.usageCalls, "exactly one deduction request")
		assert.True(t, coordinator.IsReserved("ORD-9"), "order should be marked reserved")
		assert.Equal(t, "ORD-9", reagentClient.lastUsage.UsedFor, "deduction is scoped to the order")
		assert.Equal(t, "EQ-5", reagentClient.lastUsage.InstrumentID, "deduction is scoped to the instrument")
	})

	t.Run("Out Of Stock Blocks Before Any Deduction", func(t *testing.T) {
		reagentClient := &mockReagentClient{stock: map[string]*models.Reagent{
			"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 2, Unit: "mL"},
		}}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		ids, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")

		assert.Nil(t, ids, "no usage records on insufficient stock")
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "insufficient stock yields a typed error")
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "insufficient stock is a conflict")
		assert.Equal(t, 0, reagentClient.usageCalls, "no deduction may be attempted")
		assert.False(t, coordinator.IsReserved("ORD-9"), "a rejected order stays unreserved")
	})

	t.Run("Any Short Reagent Rejects The Whole Set", func(t *testing.T) {
		reagentClient := &mockReagentClient{stock: map[string]*models.Reagent{
			"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 20, Unit: "mL"},
			"Buffer Solution": {ID: "rg-2", ReagentName: "Buffer Solution", QuantityAvailable: 1, Unit: "mL"},
		}}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		_, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, []models.ReagentRequirement{
			{ReagentName: "Glucose Reagent", Quantity: 5},
			{ReagentName: "Buffer Solution", Quantity: 3},
		}, "")

		assert.Error(t, err, "one short reagent rejects the reservation")
		assert.Equal(t, 0, reagentClient.usageCalls, "feasibility must settle before any deduction")
	})

	t.Run("Second Reservation For Same Order Fails", func(t *testing.T) {
		reagentClient := &mockReagentClient{stock: map[string]*models.Reagent{
			"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 20, Unit: "mL"},
		}}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		_, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")
		assert.NoError(t, err, "first reservation should succeed")

		_, err = coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")
		assert.Error(t, err, "second reservation must be rejected")
		assert.Equal(t, 1, reagentClient.usageCalls, "the stock must never be deducted twice")
	})

	t.Run("Failed Attempt Can Be Retried", func(t *testing.T) {
		reagentClient := &mockReagentClient{
			stock: map[string]*models.Reagent{
				"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 20, Unit: "mL"},
			},
			createErr: errors.New("gateway unavailable"),
		}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		_, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")
		assert.Error(t, err, "gateway failure fails the reservation")
		assert.False(t, coordinator.IsReserved("ORD-9"), "a failed attempt leaves no reservation")

		reagentClient.createErr = nil
		ids, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")
		assert.NoError(t, err, "retry after a failed attempt should succeed")
		assert.Len(t, ids, 1, "retry yields the usage record")
	})

	t.Run("Gateway Stock Rejection Propagates", func(t *testing.T) {
		reagentClient := &mockReagentClient{
			stock: map[string]*models.Reagent{
				"Glucose Reagent": {ID: "rg-1", ReagentName: "Glucose Reagent", QuantityAvailable: 20, Unit: "mL"},
			},
			createErr: exceptions.ErrReagentStockRejected(errors.New("insufficient_stock")),
		}
		coordinator := NewReservationCoordinator(reagentClient, zap.NewNop())

		_, err := coordinator.Reserve(context.Background(), "ORD-9", "EQ-5", constvars.TestTypeBlood, requirements, "")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "gateway rejection yields a typed error")
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "the gateway stays the stock authority")
	})
}
