package tickfsm

// DelayState is a countdown state: it completes once the configured delay
// has been consumed by ticks. Entering the state resets the countdown.
type DelayState struct {
	name      string
	delay     float64
	remaining float64
}

// NewDelayState creates a delay state that completes after delay time units
// worth of ticks.
func NewDelayState(name string, delay float64) *DelayState {
	return &DelayState{name: name, delay: delay, remaining: delay}
}

// Completed reports whether the countdown has run out.
func (s *DelayState) Completed() bool { return s.remaining <= 0 }

// Enter resets the countdown to the configured delay.
func (s *DelayState) Enter() { s.remaining = s.delay }

// Exit does nothing.
func (s *DelayState) Exit() {}

// Update consumes delta from the countdown. Once the countdown has run out
// further decrements are not applied.
func (s *DelayState) Update(delta float64) {
	if s.remaining > 0 {
		s.remaining -= delta
	}
}

// Remaining returns the time left on the countdown.
func (s *DelayState) Remaining() float64 { return s.remaining }

func (s *DelayState) String() string { return s.name }

// FuncState is a callback-driven state: each hook is an independently
// optional injected function. Without a completed function the state is
// immediately completed; absent hooks are no-ops.
type FuncState struct {
	name        string
	completedFn func() bool
	enterFn     func()
	exitFn      func()
	updateFn    func(delta float64)
}

// NewFuncState creates a callback-driven state with no hooks set.
func NewFuncState(name string) *FuncState {
	return &FuncState{name: name}
}

// WithCompleted sets the completion query.
func (s *FuncState) WithCompleted(fn func() bool) *FuncState {
	s.completedFn = fn
	return s
}

// WithEnter sets the enter hook.
func (s *FuncState) WithEnter(fn func()) *FuncState {
	s.enterFn = fn
	return s
}

// WithExit sets the exit hook.
func (s *FuncState) WithExit(fn func()) *FuncState {
	s.exitFn = fn
	return s
}

// WithUpdate sets the per-tick hook.
func (s *FuncState) WithUpdate(fn func(delta float64)) *FuncState {
	s.updateFn = fn
	return s
}

// Completed calls the completion query, or reports true when none was set.
func (s *FuncState) Completed() bool {
	if s.completedFn == nil {
		return true
	}
	return s.completedFn()
}

// Enter calls the enter hook, if any.
func (s *FuncState) Enter() {
	if s.enterFn != nil {
		s.enterFn()
	}
}

// Exit calls the exit hook, if any.
func (s *FuncState) Exit() {
	if s.exitFn != nil {
		s.exitFn()
	}
}

// Update calls the per-tick hook, if any.
func (s *FuncState) Update(delta float64) {
	if s.updateFn != nil {
		s.updateFn(delta)
	}
}

func (s *FuncState) String() string { return s.name }
