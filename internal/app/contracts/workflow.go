package contracts

import (
	"context"
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/dto/responses"
)

type WorkflowUsecase interface {
	CheckReadiness(ctx context.Context, orderCode string, request *requests.CheckReadinessRequest) (*responses.CheckReadiness, error)
	ReserveReagents(ctx context.Context, orderCode string, request *requests.ReserveReagentsRequest) (*responses.ReserveReagents, error)
	StartExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error)
	GetExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error)
	SaveResult(ctx context.Context, orderCode string) (*responses.SaveResult, error)
	Teardown(ctx context.Context, orderCode string) error
}
