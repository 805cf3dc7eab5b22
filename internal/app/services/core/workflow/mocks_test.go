package workflow

import (
	"context"
	"fmt"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/dto/requests"
	"sync"
	"time"
)

type mockInstrumentClient struct {
	instrument *models.Instrument
	err        error
}

func (m *mockInstrumentClient) FindInstrumentByID(ctx context.Context, instrumentID string) (*models.Instrument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.instrument, nil
}

type mockReagentClient struct {
	mu         sync.Mutex
	stock      map[string]*models.Reagent
	findErr    error
	createErr  error
	usageCalls int
	lastUsage  *requests.CreateReagentUsage
}

func (m *mockReagentClient) FindReagentByName(ctx context.Context, reagentName string) (*models.Reagent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	reagent, ok := m.stock[reagentName]
	if !ok {
		return &models.Reagent{ReagentName: reagentName, QuantityAvailable: 0}, nil
	}
	return reagent, nil
}

func (m *mockReagentClient) CreateReagentUsage(ctx context.Context, request *requests.CreateReagentUsage) ([]models.UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usageCalls++
	m.lastUsage = request
	if m.createErr != nil {
		return nil, m.createErr
	}
	records := make([]models.UsageRecord, 0, len(request.Reagents))
	for i, item := range request.Reagents {
		records = append(records, models.UsageRecord{
			ID:           fmt.Sprintf("usage-%d", i+1),
			ReagentName:  item.ReagentName,
			QuantityUsed: item.QuantityUsed,
			InstrumentID: request.InstrumentID,
			OrderCode:    request.UsedFor,
			Timestamp:    time.Now(),
		})
	}
	return records, nil
}

type mockOrderClient struct {
	mu         sync.Mutex
	order      *models.TestOrder
	findErr    error
	patchErr   error
	patchCalls int
}

func (m *mockOrderClient) FindTestOrderByCode(ctx context.Context, orderCode string) (*models.TestOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	order := *m.order
	return &order, nil
}

func (m *mockOrderClient) UpdateTestOrderStatus(ctx context.Context, orderCode, status string) (*models.TestOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patchCalls++
	if m.patchErr != nil {
		return nil, m.patchErr
	}
	m.order.Status = status
	order := *m.order
	return &order, nil
}

type mockResultClient struct {
	mu          sync.Mutex
	createErr   error
	createCalls int
	saved       *models.ResultPanel
}

func (m *mockResultClient) CreateTestResult(ctx context.Context, panel *models.ResultPanel) (*models.ResultPanel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.saved = panel
	return panel, nil
}

type mockRedisRepository struct {
	mu        sync.Mutex
	handoffs  map[string]*models.WorkflowHandoff
	saveErr   error
	getErr    error
	deleteErr error
}

func newMockRedisRepository() *mockRedisRepository {
	return &mockRedisRepository{handoffs: make(map[string]*models.WorkflowHandoff)}
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (m *mockRedisRepository) SaveWorkflowHandoff(ctx context.Context, handoff *models.WorkflowHandoff, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.handoffs[handoff.OrderCode] = handoff
	return nil
}

func (m *mockRedisRepository) GetWorkflowHandoff(ctx context.Context, orderCode string) (*models.WorkflowHandoff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.handoffs[orderCode], nil
}

func (m *mockRedisRepository) DeleteWorkflowHandoff(ctx context.Context, orderCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.handoffs, orderCode)
	return nil
}

type mockResultEventPublisher struct {
	mu     sync.Mutex
	events []*models.ResultCompletedEvent
	err    error
}

func (m *mockResultEventPublisher) PublishResultCompleted(ctx context.Context, event *models.ResultCompletedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockResultEventPublisher) published() []*models.ResultCompletedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}
