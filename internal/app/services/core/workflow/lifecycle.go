package workflow

import (
	"context"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// failurePolicy declares what a failed saga step does to the remaining steps.
type failurePolicy int

const (
	continueOnFailure failurePolicy = iota
	abortOnFailure
)

type sagaStep struct {
	name   string
	policy failurePolicy
	run    func(ctx context.Context) error
}

// LifecycleCoordinator sequences the remote order's status transition and the
// result submission as a two-step saga with an explicit per-step failure
// policy. The status update is soft: some backends treat "already processing"
// as success, so its failure is logged and the save still proceeds. The
// submission itself is hard: on failure nothing local changes, so the save
// alone can be retried.
type LifecycleCoordinator struct {
	OrderClient  contracts.TestOrderGatewayClient
	ResultClient contracts.TestResultGatewayClient
	Publisher    contracts.ResultEventPublisher
	Log          *zap.Logger
}

func NewLifecycleCoordinator(
	orderClient contracts.TestOrderGatewayClient,
	resultClient contracts.TestResultGatewayClient,
	publisher contracts.ResultEventPublisher,
	log *zap.Logger,
) *LifecycleCoordinator {
	return &LifecycleCoordinator{
		OrderClient:  orderClient,
		ResultClient: resultClient,
		Publisher:    publisher,
		Log:          log,
	}
}

func (c *LifecycleCoordinator) SaveResult(ctx context.Context, order *models.TestOrder, panel *models.ResultPanel) (*models.ResultPanel, error) {
	var saved *models.ResultPanel

	steps := []sagaStep{
		{
			name:   "mark-order-processing",
			policy: continueOnFailure,
			run: func(ctx context.Context) error {
				if order.IsProcessing() {
					return nil
				}
				updated, err := c.OrderClient.UpdateTestOrderStatus(ctx, order.OrderCode, constvars.OrderStatusProcessing)
				if err != nil {
					return err
				}
				order.Status = updated.Status
				return nil
			},
		},
		{
			name:   "submit-result",
			policy: abortOnFailure,
			run: func(ctx context.Context) error {
				result, err := c.ResultClient.CreateTestResult(ctx, panel)
				if err != nil {
					return err
				}
				saved = result
				return nil
			},
		},
	}

	for _, step := range steps {
		err := step.run(ctx)
		if err == nil {
			continue
		}
		if step.policy == abortOnFailure {
			return nil, err
		}
		c.Log.Warn("lifecycle step failed, continuing",
			zap.String("step", step.name),
			zap.String(constvars.LoggingOrderCodeKey, order.OrderCode),
			zap.Error(err),
		)
	}

	c.publishCompleted(ctx, saved)
	return saved, nil
}

func (c *LifecycleCoordinator) publishCompleted(ctx context.Context, panel *models.ResultPanel) {
	if c.Publisher == nil {
		return
	}
	event := &models.ResultCompletedEvent{
		EventID:      utils.GenerateEventID(),
		OrderCode:    panel.OrderCode,
		TestType:     panel.TestType,
		InstrumentID: panel.InstrumentID,
		Flag:         panel.Flag,
		CompletedAt:  time.Now(),
	}
	if err := c.Publisher.PublishResultCompleted(ctx, event); err != nil {
		c.Log.Warn("failed to publish result completed event",
			zap.String(constvars.LoggingOrderCodeKey, panel.OrderCode),
			zap.Error(err),
		)
	}
}
