package workflow

import (
	"context"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/exceptions"
	"math"
	"sync"
	"time"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseTesting Phase = "testing"
	PhaseDone    Phase = "done"
)

// DefaultSteps are the named analytic steps the timer maps elapsed time onto.
var DefaultSteps = []string{
	"Sample Preparation",
	"Reagent Application",
	"Reaction",
	"Analysis",
}

type ProgressSnapshot struct {
	Phase     Phase
	Progress  int
	StepIndex int
	Step      string
}

// PhaseTimer drives the idle -> testing -> done state machine on a fixed tick
// interval. There is no transition back to idle; a new session gets a new
// timer. Every mutation is guarded against disposal so late ticks can never
// touch a torn-down session.
type PhaseTimer struct {
	mu         sync.Mutex
	interval   time.Duration
	totalTicks int
	steps      []string
	tick       int
	phase      Phase
	disposed   bool
	onDone     func()
	cancel     context.CancelFunc
	finished   chan struct{}
}

// NewPhaseTimer builds an idle timer. onDone fires exactly once, on the final
// tick.
func NewPhaseTimer(totalDuration, tickInterval time.Duration, steps []string, onDone func()) *PhaseTimer {
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}
	totalTicks := int(totalDuration / tickInterval)
	if totalTicks < 1 {
		totalTicks = 1
	}
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	return &PhaseTimer{
		interval:   tickInterval,
		totalTicks: totalTicks,
		steps:      steps,
		phase:      PhaseIdle,
		onDone:     onDone,
		finished:   make(chan struct{}),
	}
}

func (t *PhaseTimer) Start() error {
	t.mu.Lock()
	if t.disposed || t.phase != PhaseIdle {
		t.mu.Unlock()
		return exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientTestAlreadyRunning, constvars.ErrDevTimerAlreadyStarted)
	}
	t.phase = PhaseTesting
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.mu.Unlock()

	go t.run(ctx)
	return nil
}

func (t *PhaseTimer) run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	defer close(t.finished)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			done, fire := t.advance()
			if fire != nil {
				fire()
			}
			if done {
				return
			}
		}
	}
}

// advance applies one tick. The disposal check here is the liveness guard:
// a canceled session must see zero further state updates.
func (t *PhaseTimer) advance() (bool, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed || t.phase != PhaseTesting {
		return true, nil
	}

	t.tick++
	if t.tick >= t.totalTicks {
		t.tick = t.totalTicks
		t.phase = PhaseDone
		fire := t.onDone
		t.onDone = nil
		return true, fire
	}
	return false, nil
}

// Stop cancels all pending ticks and waits for the tick loop to exit. Safe to
// call more than once and before Start.
func (t *PhaseTimer) Stop() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	cancel := t.cancel
	t.mu.Unlock()

	if cancel != nil {
		cancel()
		<-t.finished
	}
}

func (t *PhaseTimer) Snapshot() ProgressSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	stepIndex := t.tick * len(t.steps) / t.totalTicks
	if stepIndex >= len(t.steps) {
		stepIndex = len(t.steps) - 1
	}
	return ProgressSnapshot{
		Phase:     t.phase,
		Progress:  t.progressLocked(),
		StepIndex: stepIndex,
		Step:      t.steps[stepIndex],
	}
}

func (t *PhaseTimer) progressLocked() int {
	progress := int(math.Round(float64(t.tick) / float64(t.totalTicks) * 100))
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// TotalTicks reports how many ticks the configured duration maps to.
func (t *PhaseTimer) TotalTicks() int {
	return t.totalTicks
}
