package contracts

import (
	"context"
	"labportal-service/internal/app/models"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	SaveWorkflowHandoff(ctx context.Context, handoff *models.WorkflowHandoff, exp time.Duration) error
	GetWorkflowHandoff(ctx context.Context, orderCode string) (*models.WorkflowHandoff, error)
	DeleteWorkflowHandoff(ctx context.Context, orderCode string) error
}
