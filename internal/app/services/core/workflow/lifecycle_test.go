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

func pendingOrder() *models.TestOrder {
	return &models.TestOrder{
		OrderCode:   "ORD-9",
		PatientName: "Jane Roe",
		TestType:    constvars.TestTypeBlood,
		Status:      constvars.OrderStatusPending,
	}
}

func completedPanel() *models.ResultPanel {
	return &models.ResultPanel{
		OrderCode:    "ORD-9",
		TestType:     constvars.TestTypeBlood,
		InstrumentID: "EQ-5",
		Measurements: []models.Measurement{
			{Name: "Glucose", Value: "95", Unit: "mg/dL", ReferenceRange: "70 - 110", Flag: constvars.ResultFlagNormal},
		},
		Flag:   constvars.ResultFlagNormal,
		Status: constvars.ResultStatusCompleted,
	}
}

func TestLifecycleCoordinatorSaveResult(t *testing.T) {
	t.Run("Marks Processing Then Submits", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder()}
		resultClient := &mockResultClient{}
		publisher := &mockResultEventPublisher{}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, publisher, zap.NewNop())

		saved, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		assert.NoError(t, err, "happy path should save")
		assert.NotNil(t, saved, "the accepted panel comes back")
		assert.Equal(t, 1, orderClient.patchCalls, "the order is moved to processing first")
		assert.Equal(t, constvars.OrderStatusProcessing, orderClient.order.Status, "the status transition lands on the backend")
		assert.Equal(t, 1, resultClient.createCalls, "the result is submitted once")

		events := publisher.published()
		assert.Len(t, events, 1, "one audit event per accepted result")
		assert.Equal(t, "ORD-9", events[0].OrderCode, "the event carries the order code")
	})

	t.Run("Skips Status Update When Already Processing", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder()}
		resultClient := &mockResultClient{}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, nil, zap.NewNop())

		order := pendingOrder()
		order.Status = constvars.OrderStatusProcessing
		_, err := coordinator.SaveResult(context.Background(), order, completedPanel())

		assert.NoError(t, err)
		assert.Equal(t, 0, orderClient.patchCalls, "no patch when the order is already processing")
		assert.Equal(t, 1, resultClient.createCalls, "the submission still happens")
	})

	t.Run("Status Update Failure Does Not Block The Save", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder(), patchErr: errors.New("backend rejected the patch")}
		resultClient := &mockResultClient{}
		publisher := &mockResultEventPublisher{}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, publisher, zap.NewNop())

		saved, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		assert.NoError(t, err, "the status transition is best-effort")
		assert.NotNil(t, saved, "the result is still accepted")
		assert.Equal(t, 1, resultClient.createCalls, "the submission proceeds after the failed patch")
		assert.Len(t, publisher.published(), 1, "the audit event still goes out")
	})

	t.Run("Submission Failure Aborts", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder()}
		resultClient := &mockResultClient{createErr: exceptions.ErrResultDuplicate(errors.New("duplicate result"))}
		publisher := &mockResultEventPublisher{}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, publisher, zap.NewNop())

		saved, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		assert.Nil(t, saved, "nothing is saved on a rejected submission")
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "the gateway rejection surfaces as a typed error")
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "a duplicate result is a conflict")
		assert.Empty(t, publisher.published(), "no audit event for a rejected result")
	})

	t.Run("Order Not Processing Rejection Surfaces", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder(), patchErr: errors.New("patch lost")}
		resultClient := &mockResultClient{createErr: exceptions.ErrOrderNotProcessing(errors.New("order is pending"))}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, nil, zap.NewNop())

		_, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode, "the backend's state check wins")
	})

	t.Run("Publish Failure Never Fails The Save", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder()}
		resultClient := &mockResultClient{}
		publisher := &mockResultEventPublisher{err: errors.New("broker down")}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, publisher, zap.NewNop())

		saved, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		assert.NoError(t, err, "publishing is best-effort")
		assert.NotNil(t, saved, "the save stands even when the broker is down")
	})

	t.Run("Nil Publisher Is Tolerated", func(t *testing.T) {
		orderClient := &mockOrderClient{order: pendingOrder()}
		resultClient := &mockResultClient{}
		coordinator := NewLifecycleCoordinator(orderClient, resultClient, nil, zap.NewNop())

		saved, err := coordinator.SaveResult(context.Background(), pendingOrder(), completedPanel())

		assert.NoError(t, err)
		assert.NotNil(t, saved)
	})
}
