package tickfsm

import "fmt"

// State is the unit a state machine drives. The machine guarantees that
// Enter and Exit alternate strictly on any state it manages; a state never
// sees two consecutive Enter or Exit calls.
//
// States are referenced, never owned, by the machine. The transition
// registry and the per-tick guard set key on interface identity, so states
// must be pointer-shaped values.
type State interface {
	// Completed reports whether the state considers its work done. An
	// unconditioned transition out of the state becomes available once
	// this returns true.
	Completed() bool

	// Enter is called when the state becomes current.
	Enter()

	// Exit is called when the machine leaves the state.
	Exit()

	// Update advances the state by one tick of delta time.
	Update(delta float64)
}

// pseudoState is a shared marker state used only for control flow. It has
// no behavior: always completed, all hooks are no-ops.
type pseudoState struct {
	name string
}

// The three process-wide sentinel states. All comparisons against them
// throughout the engine are identity comparisons, never structural, so a
// user-defined state can never collide with them.
var (
	// Enter is the initial sentinel. Every machine starts there, and
	// returns there when re-entered by a parent machine. Register the
	// machine's first real state with AddTransition(Enter, first).
	Enter State = &pseudoState{name: "enter"}

	// Exit is the terminal sentinel. Reaching it marks the machine
	// completed and halts the same-tick chain.
	Exit State = &pseudoState{name: "exit"}

	// Any is the wildcard transition source scope, meaning "evaluate
	// regardless of the current state". It is never a current state and
	// cannot be a transition target.
	Any State = &pseudoState{name: "any"}
)

func (s *pseudoState) Completed() bool      { return true }
func (s *pseudoState) Enter()               {}
func (s *pseudoState) Exit()                {}
func (s *pseudoState) Update(delta float64) {}
func (s *pseudoState) String() string       { return s.name }

// StateName returns a human-readable identity for a state, for diagnostics.
// States implementing fmt.Stringer render themselves; anything else renders
// as its dynamic type.
func StateName(s State) string {
	if s == nil {
		return "<nil>"
	}
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s)
}
