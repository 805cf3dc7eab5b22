package workflow

import (
	"labportal-service/internal/app/models"
	"sync"
)

// ExecutionSession is the ephemeral state of one test-execution screen:
// selected instrument, fetched order snapshot, reservation, timer and the
// synthesized result. It is never persisted; teardown destroys it.
type ExecutionSession struct {
	mu             sync.Mutex
	orderCode      string
	order          *models.TestOrder
	instrument     *models.Instrument
	usageRecordIDs []string
	reserved       bool
	timer          *PhaseTimer
	result         *models.ResultPanel
}

func (s *ExecutionSession) OrderCode() string {
	return s.orderCode
}

func (s *ExecutionSession) SetOrder(order *models.TestOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
}

func (s *ExecutionSession) Order() *models.TestOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

func (s *ExecutionSession) SetInstrument(instrument *models.Instrument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instrument = instrument
}

func (s *ExecutionSession) Instrument() *models.Instrument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instrument
}

func (s *ExecutionSession) SetReserved(usageRecordIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reserved = true
	s.usageRecordIDs = usageRecordIDs
}

func (s *ExecutionSession) Reserved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserved
}

func (s *ExecutionSession) SetTimer(timer *PhaseTimer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = timer
}

func (s *ExecutionSession) Timer() *PhaseTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer
}

func (s *ExecutionSession) SetResult(result *models.ResultPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
}

func (s *ExecutionSession) Result() *models.ResultPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// SessionManager holds the live execution sessions, keyed by order code.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*ExecutionSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*ExecutionSession),
	}
}

func (m *SessionManager) GetOrCreate(orderCode string) *ExecutionSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[orderCode]
	if !ok {
		session = &ExecutionSession{orderCode: orderCode}
		m.sessions[orderCode] = session
	}
	return session
}

func (m *SessionManager) Get(orderCode string) (*ExecutionSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[orderCode]
	return session, ok
}

// Delete removes the session after stopping its timer so no late tick can
// mutate a torn-down session.
func (m *SessionManager) Delete(orderCode string) {
	m.mu.Lock()
	session, ok := m.sessions[orderCode]
	delete(m.sessions, orderCode)
	m.mu.Unlock()

	if ok {
		if timer := session.Timer(); timer != nil {
			timer.Stop()
		}
	}
}
