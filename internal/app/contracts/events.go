package contracts

import (
	"context"
	"labportal-service/internal/app/models"
)

// ResultEventPublisher feeds the hospital audit queue. Publishing is
// best-effort: a failed publish never fails the save that triggered it.
type ResultEventPublisher interface {
	PublishResultCompleted(ctx context.Context, event *models.ResultCompletedEvent) error
}
