package tickfsm

import (
	"fmt"

	"github.com/google/uuid"
)

// StateMachine orchestrates transition sets keyed by source state plus one
// wildcard set, and advances its current state once per Update call. It
// satisfies the State interface itself, so a machine can be registered as a
// single state inside an enclosing machine.
//
// A machine is single-threaded: all hooks, predicates, callbacks and
// observers run synchronously inside Update, and none of them may re-invoke
// Update on the same machine.
type StateMachine struct {
	name string
	id   string

	transitions map[State]*TransitionSet
	sources     []State // set creation order, for deterministic walks
	wildcard    *TransitionSet

	// implicitExit is synthesized when a completed state has no explicit
	// way out. Wildcard-scoped so callbacks resolve the real source.
	implicitExit *Transition

	current    State
	currentSet *TransitionSet
	visited    map[State]struct{}
	completed  bool

	observers observerList
}

// NewStateMachine creates a machine sitting at the Enter sentinel, with the
// implicit unconditioned Exit -> Enter transition already wired so a
// completed machine restarts from its initial state when ticked or
// re-entered again.
func NewStateMachine(name string) *StateMachine {
	m := &StateMachine{
		name:         name,
		id:           uuid.New().String(),
		transitions:  make(map[State]*TransitionSet),
		wildcard:     NewTransitionSet(),
		implicitExit: &Transition{source: Any, target: Exit},
		current:      Enter,
		visited:      make(map[State]struct{}),
	}
	m.AddTransition(Exit, Enter)
	return m
}

// Name returns the name the machine was created with.
func (m *StateMachine) Name() string { return m.name }

// ID returns the machine's unique instance identifier.
func (m *StateMachine) ID() string { return m.id }

// CurrentState returns the current state. Before the first tick this is the
// Enter sentinel; after completion it is the Exit sentinel.
func (m *StateMachine) CurrentState() State { return m.current }

// String renders the machine and its current state for diagnostics.
func (m *StateMachine) String() string {
	return fmt.Sprintf("%s[%s]", m.name, StateName(m.current))
}

// AddTransition registers a directed edge from source to target and returns
// it for optional configuration via When and OnTransition. The source may be
// a concrete state or the Any wildcard. Panics with a *ConfigError on a nil
// source, a nil target, or Any as target.
func (m *StateMachine) AddTransition(source, target State) *Transition {
	switch {
	case source == nil:
		configPanic("AddTransition", ErrNilSource)
	case target == nil:
		configPanic("AddTransition", ErrNilTarget)
	case target == Any:
		configPanic("AddTransition", ErrWildcardTarget)
	}

	t := &Transition{source: source, target: target}
	if source == Any {
		m.wildcard.Add(t)
		return t
	}

	set := m.transitions[source]
	if set == nil {
		set = NewTransitionSet()
		m.transitions[source] = set
		m.sources = append(m.sources, source)
		if source == m.current {
			m.currentSet = set
		}
	}
	set.Add(t)
	return t
}

// AddObserver appends a transition observer. Observers are notified in
// registration order.
func (m *StateMachine) AddObserver(o Observer) { m.observers.add(o) }

// RemoveObserver drops a previously added observer.
func (m *StateMachine) RemoveObserver(o Observer) { m.observers.remove(o) }

// EachTransition walks every registered transition: per-state sets in the
// order their sources were first registered, each in registration order,
// then the wildcard set. The walk is deterministic.
func (m *StateMachine) EachTransition(fn func(*Transition)) {
	for _, source := range m.sources {
		for _, t := range m.transitions[source].transitions {
			fn(t)
		}
	}
	for _, t := range m.wildcard.transitions {
		fn(t)
	}
}

// Update advances the machine one tick. The current state is updated exactly
// once, then transitions are resolved and executed repeatedly, chaining
// through instantly-available states, until no transition is available, the
// Exit sentinel is reached, or the chain would revisit a state already
// entered this tick.
//
// A panic raised by a user hook propagates to the caller; the machine's
// bookkeeping is committed before the new state's Enter runs, so a later
// tick continues from a well-defined state.
func (m *StateMachine) Update(delta float64) {
	defer clear(m.visited)

	m.current.Update(delta)
	for {
		t := m.resolveTransition()
		if t == nil {
			return
		}
		if _, seen := m.visited[t.target]; seen {
			// Cycle break: a loop of instant transitions runs at
			// most once per tick.
			return
		}
		if !m.executeTransition(t) {
			return
		}
		m.current.Update(delta)
		m.visited[m.current] = struct{}{}
	}
}

// resolveTransition picks the next transition for the current state: its own
// set first, then the wildcard set, and finally — when the state reports
// completed and its own set holds no explicit way to Exit — the implicit
// exit transition.
func (m *StateMachine) resolveTransition() *Transition {
	if t := m.currentSet.FindAvailable(m.current); t != nil {
		return t
	}
	if t := m.wildcard.FindAvailable(m.current); t != nil {
		return t
	}
	if m.current.Completed() && !m.currentSet.ContainsTransitionTo(Exit) {
		return m.implicitExit
	}
	return nil
}

// executeTransition fires t and reports whether the same-tick chain may
// continue. A transition targeting the current state is a no-op that halts
// the chain; reaching the Exit sentinel halts it too, so an enclosing
// machine observes completion on its own next tick instead of this machine
// silently restarting within the same step.
func (m *StateMachine) executeTransition(t *Transition) bool {
	if t.target == m.current {
		return false
	}

	previous := m.current
	previous.Exit()
	t.execute(previous)
	m.observers.notify(previous, t.target)

	// All bookkeeping commits before Enter, which may panic: the machine
	// must never be observed with a torn mix of old and new state.
	m.current = t.target
	m.currentSet = m.transitions[t.target]
	m.completed = t.target == Exit
	m.current.Enter()
	return !m.completed
}

// Completed reports whether the machine has reached the Exit sentinel and
// not yet been driven away from it.
func (m *StateMachine) Completed() bool { return m.completed }

// Enter makes the machine usable as a nested state: it clears the completed
// flag and forces a transition straight to the Enter sentinel, bypassing
// normal resolution. A previously-completed machine re-entered by its parent
// thereby resets to its initial registered state on its next tick.
func (m *StateMachine) Enter() {
	m.completed = false
	m.executeTransition(&Transition{source: Any, target: Enter})
}

// Exit forces a transition straight to the Exit sentinel, guaranteeing the
// current leaf state receives exactly one Exit before an enclosing machine
// moves on, even if this machine had not completed on its own. A no-op when
// already at the Exit sentinel.
func (m *StateMachine) Exit() {
	m.executeTransition(&Transition{source: Any, target: Exit})
}
