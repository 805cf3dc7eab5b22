package workflow

import (
	"context"
	"labportal-service/internal/app/config"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/dto/responses"
	"labportal-service/internal/pkg/exceptions"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type workflowUsecase struct {
	ReadinessGate   *ReadinessGate
	Reservations    *ReservationCoordinator
	Lifecycle       *LifecycleCoordinator
	OrderClient     contracts.TestOrderGatewayClient
	RedisRepository contracts.RedisRepository
	Sessions        *SessionManager
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	newRand         func() *rand.Rand
}

func NewWorkflowUsecase(
	readinessGate *ReadinessGate,
	reservations *ReservationCoordinator,
	lifecycle *LifecycleCoordinator,
	orderClient contracts.TestOrderGatewayClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.WorkflowUsecase {
	return &workflowUsecase{
		ReadinessGate:   readinessGate,
		Reservations:    reservations,
		Lifecycle:       lifecycle,
		OrderClient:     orderClient,
		RedisRepository: redisRepository,
		Sessions:        NewSessionManager(),
		InternalConfig:  internalConfig,
		Log:             log,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (uc *workflowUsecase) CheckReadiness(ctx context.Context, orderCode string, request *requests.CheckReadinessRequest) (*responses.CheckReadiness, error) {
	outcome, instrument, err := uc.ReadinessGate.Check(ctx, request.InstrumentID)
	if err != nil {
		return nil, exceptions.ErrInstrumentUnreachable(err)
	}

	response := &responses.CheckReadiness{
		Outcome:    string(outcome),
		Instrument: instrument,
	}
	if outcome != OutcomeReady {
		return response, nil
	}

	session := uc.Sessions.GetOrCreate(orderCode)
	session.SetInstrument(instrument)

	handoff := &models.WorkflowHandoff{OrderCode: orderCode, Instrument: instrument}
	ttl := time.Duration(uc.InternalConfig.Workflow.HandoffTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.SaveWorkflowHandoff(ctx, handoff, ttl); err != nil {
		uc.Log.Warn("failed to persist workflow handoff",
			zap.String(constvars.LoggingOrderCodeKey, orderCode),
			zap.Error(err),
		)
	}

	return response, nil
}

func (uc *workflowUsecase) ReserveReagents(ctx context.Context, orderCode string, request *requests.ReserveReagentsRequest) (*responses.ReserveReagents, error) {
	session, err := uc.resumeSession(ctx, orderCode)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderSnapshot(ctx, session)
	if err != nil {
		return nil, err
	}

	items := make([]models.ReagentRequirement, 0, len(request.Reagents))
	for _, reagent := range request.Reagents {
		items = append(items, models.ReagentRequirement{
			ReagentName: reagent.ReagentName,
			Quantity:    reagent.Quantity,
		})
	}

	ids, err := uc.Reservations.Reserve(ctx, orderCode, session.Instrument().ID, order.TestType, items, request.Notes)
	if err != nil {
		return nil, err
	}
	session.SetReserved(ids)

	return &responses.ReserveReagents{UsageRecordIDs: ids}, nil
}

// StartExecution begins the timed phase. The reservation must have settled
// before any simulated time runs against the reagents.
func (uc *workflowUsecase) StartExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error) {
	session, ok := uc.Sessions.Get(orderCode)
	if !ok {
		return nil, exceptions.ErrSessionNotFound(orderCode)
	}
	if !session.Reserved() || !uc.Reservations.IsReserved(orderCode) {
		return nil, exceptions.ErrReservationRequired(orderCode)
	}
	if session.Timer() != nil {
		return nil, exceptions.ErrTestAlreadyRunning(orderCode)
	}

	order, err := uc.orderSnapshot(ctx, session)
	if err != nil {
		return nil, err
	}

	instrumentID := session.Instrument().ID
	rng := uc.newRand()
	timer := NewPhaseTimer(
		time.Duration(uc.InternalConfig.Workflow.TotalDurationInMs)*time.Millisecond,
		time.Duration(uc.InternalConfig.Workflow.TickIntervalInMs)*time.Millisecond,
		DefaultSteps,
		func() {
			panel, synthErr := SynthesizePanel(order.TestType, orderCode, instrumentID, rng)
			if synthErr != nil {
				uc.Log.Error("result synthesis failed",
					zap.String(constvars.LoggingOrderCodeKey, orderCode),
					zap.Error(synthErr),
				)
				return
			}
			session.SetResult(panel)
			uc.Log.Info("test execution finished",
				zap.String(constvars.LoggingOrderCodeKey, orderCode),
				zap.String("flag", panel.Flag),
			)
		},
	)
	session.SetTimer(timer)
	if err := timer.Start(); err != nil {
		return nil, err
	}

	uc.Log.Info("test execution started",
		zap.String(constvars.LoggingOrderCodeKey, orderCode),
		zap.String(constvars.LoggingInstrumentKey, instrumentID),
		zap.Int("total_ticks", timer.TotalTicks()),
	)
	return uc.executionStatus(session), nil
}

func (uc *workflowUsecase) GetExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error) {
	session, ok := uc.Sessions.Get(orderCode)
	if !ok {
		return nil, exceptions.ErrSessionNotFound(orderCode)
	}
	return uc.executionStatus(session), nil
}

// SaveResult runs the lifecycle saga. A failed save never touches the phase
// state machine: the session stays done with the result visible, so the save
// alone can be retried.
func (uc *workflowUsecase) SaveResult(ctx context.Context, orderCode string) (*responses.SaveResult, error) {
	session, ok := uc.Sessions.Get(orderCode)
	if !ok {
		return nil, exceptions.ErrSessionNotFound(orderCode)
	}

	timer := session.Timer()
	result := session.Result()
	if timer == nil || result == nil {
		phase := PhaseIdle
		if timer != nil {
			phase = timer.Snapshot().Phase
		}
		return nil, exceptions.ErrTestNotFinished(string(phase))
	}

	order, err := uc.orderSnapshot(ctx, session)
	if err != nil {
		return nil, err
	}

	saved, err := uc.Lifecycle.SaveResult(ctx, order, result)
	if err != nil {
		return nil, err
	}
	session.SetResult(saved)

	return &responses.SaveResult{Result: saved}, nil
}

func (uc *workflowUsecase) Teardown(ctx context.Context, orderCode string) error {
	uc.Sessions.Delete(orderCode)

	if err := uc.RedisRepository.DeleteWorkflowHandoff(ctx, orderCode); err != nil {
		uc.Log.Warn("failed to clear workflow handoff",
			zap.String(constvars.LoggingOrderCodeKey, orderCode),
			zap.Error(err),
		)
	}
	return nil
}

// resumeSession returns the live session, restoring the instrument snapshot
// from the Redis handoff when the reagent-check screen is reached on a fresh
// process.
func (uc *workflowUsecase) resumeSession(ctx context.Context, orderCode string) (*ExecutionSession, error) {
	session, ok := uc.Sessions.Get(orderCode)
	if ok && session.Instrument() != nil {
		return session, nil
	}

	handoff, err := uc.RedisRepository.GetWorkflowHandoff(ctx, orderCode)
	if err != nil {
		return nil, err
	}
	if handoff == nil || handoff.Instrument == nil {
		return nil, exceptions.ErrSessionNotFound(orderCode)
	}

	session = uc.Sessions.GetOrCreate(orderCode)
	session.SetInstrument(handoff.Instrument)
	return session, nil
}

func (uc *workflowUsecase) orderSnapshot(ctx context.Context, session *ExecutionSession) (*models.TestOrder, error) {
	if order := session.Order(); order != nil {
		return order, nil
	}
	order, err := uc.OrderClient.FindTestOrderByCode(ctx, session.OrderCode())
	if err != nil {
		return nil, err
	}
	session.SetOrder(order)
	return order, nil
}

func (uc *workflowUsecase) executionStatus(session *ExecutionSession) *responses.ExecutionStatus {
	status := &responses.ExecutionStatus{
		OrderCode: session.OrderCode(),
		Phase:     string(PhaseIdle),
	}
	if timer := session.Timer(); timer != nil {
		snapshot := timer.Snapshot()
		status.Phase = string(snapshot.Phase)
		status.Progress = snapshot.Progress
		status.StepIndex = snapshot.StepIndex
		status.Step = snapshot.Step
		if snapshot.Phase == PhaseDone {
			status.Result = session.Result()
		}
	}
	return status
}
