package tickfsm

// TransitionSet is an append-only ordered group of transitions sharing one
// source scope. Registration order is preserved and breaks ties within a
// priority class. A nil set behaves as an empty one.
type TransitionSet struct {
	transitions []*Transition
}

// NewTransitionSet returns an empty set.
func NewTransitionSet() *TransitionSet {
	return &TransitionSet{}
}

// Add appends a transition. No de-duplication: a source may carry several
// transitions to the same target.
func (s *TransitionSet) Add(t *Transition) {
	s.transitions = append(s.transitions, t)
}

// Len returns the number of registered transitions.
func (s *TransitionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.transitions)
}

// ContainsTransitionTo reports whether any member targets the given state.
// Targets compare by identity.
func (s *TransitionSet) ContainsTransitionTo(state State) bool {
	if s == nil {
		return false
	}
	for _, t := range s.transitions {
		if t.target == state {
			return true
		}
	}
	return false
}

// FindAvailable returns the highest-priority transition currently available
// from source, or nil. The set is scanned twice: conditioned transitions
// first, unconditioned second, so a conditioned transition always wins over
// an unconditioned one regardless of registration order.
func (s *TransitionSet) FindAvailable(source State) *Transition {
	if s == nil {
		return nil
	}
	for _, t := range s.transitions {
		if t.Conditioned() && t.available(source) {
			return t
		}
	}
	for _, t := range s.transitions {
		if !t.Conditioned() && t.available(source) {
			return t
		}
	}
	return nil
}
