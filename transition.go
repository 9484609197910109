package tickfsm

// Predicate decides whether a transition is currently available. It receives
// the resolved source state: the transition's own source, or the machine's
// real current state when the transition was registered under the Any scope.
type Predicate func(source State) bool

// Callback runs when a transition fires, strictly after the source state has
// exited and strictly before the target enters. It receives the resolved
// source and the target.
type Callback func(from, to State)

// Transition is a directed, conditionally-available edge from a source scope
// to a target state. A transition with a predicate is "conditioned" and
// always outranks unconditioned transitions during resolution; a transition
// without one falls back to the source state's Completed flag.
//
// Source and target are immutable after registration. When and OnTransition
// may each be called at most once, at any time: configuring a transition
// after it has already been evaluated takes effect for later evaluations.
type Transition struct {
	source    State
	target    State
	predicate Predicate
	callback  Callback
}

// When sets the availability predicate, making the transition conditioned.
// Panics with a *ConfigError if the predicate is nil or already set.
func (t *Transition) When(pred Predicate) *Transition {
	if pred == nil {
		configPanic("When", ErrNilPredicate)
	}
	if t.predicate != nil {
		configPanic("When", ErrPredicateSet)
	}
	t.predicate = pred
	return t
}

// OnTransition sets the post-exit callback. Panics with a *ConfigError if
// the callback is nil or already set.
func (t *Transition) OnTransition(fn Callback) *Transition {
	if fn == nil {
		configPanic("OnTransition", ErrNilCallback)
	}
	if t.callback != nil {
		configPanic("OnTransition", ErrCallbackSet)
	}
	t.callback = fn
	return t
}

// Source returns the declared source scope: a concrete state, or Any.
func (t *Transition) Source() State { return t.source }

// Target returns the target state.
func (t *Transition) Target() State { return t.target }

// Conditioned reports whether an availability predicate has been set.
func (t *Transition) Conditioned() bool { return t.predicate != nil }

// resolveSource maps the declared scope to the effective source state. A
// wildcard-scoped transition observes the machine's real current state,
// never the Any marker itself.
func (t *Transition) resolveSource(current State) State {
	if t.source == Any {
		return current
	}
	return t.source
}

// available evaluates the predicate against the resolved source, or the
// source's Completed flag when no predicate was set.
func (t *Transition) available(current State) bool {
	source := t.resolveSource(current)
	if t.predicate != nil {
		return t.predicate(source)
	}
	return source.Completed()
}

// execute invokes the post-exit callback, if any, with the resolved source
// and the target.
func (t *Transition) execute(current State) {
	if t.callback != nil {
		t.callback(t.resolveSource(current), t.target)
	}
}
