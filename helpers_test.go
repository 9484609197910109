package tickfsm

import (
	"errors"
	"testing"
)

// recordingState counts hook invocations and exposes a settable completion
// flag. When completeAfter is positive the state instead reports completed
// once it has been updated that many times since it was last entered.
type recordingState struct {
	name          string
	completed     bool
	completeAfter int
	enters        int
	exits         int
	updates       int
	sinceEnter    int
}

func newRecordingState(name string) *recordingState {
	return &recordingState{name: name}
}

func (s *recordingState) Completed() bool {
	if s.completeAfter > 0 {
		return s.sinceEnter >= s.completeAfter
	}
	return s.completed
}

func (s *recordingState) Enter() {
	s.enters++
	s.sinceEnter = 0
}

func (s *recordingState) Exit() { s.exits++ }

func (s *recordingState) Update(delta float64) {
	s.updates++
	s.sinceEnter++
}

func (s *recordingState) String() string { return s.name }

// transitionRecord is one observed (from, to) notification.
type transitionRecord struct {
	from State
	to   State
}

// recordingObserver captures transition notifications in order.
type recordingObserver struct {
	records []transitionRecord
}

func (o *recordingObserver) OnTransition(from, to State) {
	o.records = append(o.records, transitionRecord{from: from, to: to})
}

func assertCurrent(t *testing.T, m *StateMachine, want State) {
	t.Helper()
	if got := m.CurrentState(); got != want {
		t.Fatalf("current state = %s, want %s", StateName(got), StateName(want))
	}
}

func assertTransitions(t *testing.T, o *recordingObserver, want []transitionRecord) {
	t.Helper()
	if len(o.records) != len(want) {
		t.Fatalf("observed %d transitions, want %d", len(o.records), len(want))
	}
	for i, rec := range o.records {
		if rec != want[i] {
			t.Errorf("transition %d = %s -> %s, want %s -> %s",
				i, StateName(rec.from), StateName(rec.to), StateName(want[i].from), StateName(want[i].to))
		}
	}
}

// assertConfigPanic runs fn and verifies it panics with a *ConfigError
// wrapping the given reason.
func assertConfigPanic(t *testing.T, reason error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", reason)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("panic error %v is not a *ConfigError", err)
		}
		if !errors.Is(err, reason) {
			t.Fatalf("panic error %v does not wrap %v", err, reason)
		}
	}()
	fn()
}
