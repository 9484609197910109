package tickfsm

import "testing"

// newChildMachine builds a machine whose single leaf completes after the
// given number of internal ticks.
func newChildMachine(name string, ticks int) (*StateMachine, *recordingState) {
	child := NewStateMachine(name)
	leaf := newRecordingState(name + "-leaf")
	leaf.completeAfter = ticks
	child.AddTransition(Enter, leaf)
	return child, leaf
}

func TestStateMachine_SatisfiesState(t *testing.T) {
	var _ State = NewStateMachine("nestable")
}

func TestStateMachine_NestedCompletion(t *testing.T) {
	child, leaf := newChildMachine("child", 2)
	parent := NewStateMachine("parent")
	next := newRecordingState("next")
	observer := &recordingObserver{}
	parent.AddTransition(Enter, child)
	parent.AddTransition(child, next)
	parent.AddObserver(observer)

	// Tick 1: the parent enters the child, whose own chain enters the
	// leaf; the leaf needs a second tick to complete.
	parent.Update(1)
	if child.Completed() {
		t.Fatal("child must not be completed after one tick")
	}
	assertCurrent(t, parent, child)
	assertCurrent(t, child, leaf)
	if leaf.updates != 1 {
		t.Errorf("leaf.updates = %d, want 1", leaf.updates)
	}

	// Tick 2: the child's internal chain reaches its exit sentinel, and
	// the parent observes the completion and fires its own transition on
	// the same parent tick.
	parent.Update(1)
	assertCurrent(t, parent, next)
	if leaf.exits != 1 {
		t.Errorf("leaf.exits = %d, want exactly 1 before the parent moved on", leaf.exits)
	}
	assertTransitions(t, observer, []transitionRecord{
		{from: Enter, to: child},
		{from: child, to: next},
	})
}

func TestStateMachine_NestedReEnterRestarts(t *testing.T) {
	child, leaf := newChildMachine("child", 2)
	parent := NewStateMachine("parent")
	rest := NewDelayState("rest", 2)
	parent.AddTransition(Enter, child)
	parent.AddTransition(child, rest)
	parent.AddTransition(rest, child)

	parent.Update(1) // enter child; child enters its leaf
	assertCurrent(t, parent, child)

	parent.Update(1) // leaf completes, child completes; parent moves to rest
	assertCurrent(t, parent, rest)
	if !child.Completed() {
		t.Fatal("child should have completed within the second parent tick")
	}
	if leaf.enters != 1 || leaf.exits != 1 {
		t.Fatalf("leaf enters, exits = %d, %d, want 1, 1", leaf.enters, leaf.exits)
	}

	parent.Update(1) // rest completes; child re-entered and restarted
	assertCurrent(t, parent, child)
	if child.Completed() {
		t.Error("re-entered child must no longer report completed")
	}
	// The restarted child ran its chain from the enter sentinel again and
	// re-entered its leaf within the same parent tick.
	if leaf.enters != 2 {
		t.Errorf("leaf.enters = %d, want 2 after the child restarted", leaf.enters)
	}
}

func TestStateMachine_ForcedExitStopsRunningChild(t *testing.T) {
	child, leaf := newChildMachine("child", 100)
	parent := NewStateMachine("parent")
	abort := newRecordingState("abort")
	interrupted := false
	parent.AddTransition(Enter, child)
	parent.AddTransition(Any, abort).When(func(State) bool { return interrupted })

	parent.Update(1)
	assertCurrent(t, parent, child)

	interrupted = true
	parent.Update(1)

	// The parent tore the child down mid-run: the child's current leaf
	// received exactly one Exit, and the child now sits completed at its
	// exit sentinel.
	assertCurrent(t, parent, abort)
	if leaf.exits != 1 {
		t.Errorf("leaf.exits = %d, want 1", leaf.exits)
	}
	if !child.Completed() {
		t.Error("a torn-down child rests at its exit sentinel")
	}
}

func TestStateMachine_ForcedExitTwiceExitsLeafOnce(t *testing.T) {
	child, leaf := newChildMachine("child", 100)
	child.Enter()
	child.Update(1)
	assertCurrent(t, child, leaf)

	child.Exit()
	child.Exit()

	if leaf.exits != 1 {
		t.Errorf("leaf.exits = %d, want 1: Exit on an already exited machine is a no-op", leaf.exits)
	}
	if !child.Completed() {
		t.Error("exited machine must report completed")
	}
}

func TestStateMachine_DeeplyNestedChainsWithinOneTick(t *testing.T) {
	inner, innerLeaf := newChildMachine("inner", 2)
	middle := NewStateMachine("middle")
	middle.AddTransition(Enter, inner)
	outer := NewStateMachine("outer")
	outer.AddTransition(Enter, middle)
	done := newRecordingState("done")
	outer.AddTransition(middle, done)

	// One outer tick drives the middle machine's tick, which drives the
	// inner machine's full chain.
	outer.Update(1)
	assertCurrent(t, outer, middle)
	assertCurrent(t, middle, inner)
	if innerLeaf.updates != 1 {
		t.Errorf("innerLeaf.updates = %d, want 1", innerLeaf.updates)
	}

	// Second tick: inner completes, middle completes via its implicit
	// exit, and the outer machine leaves middle, all synchronously.
	outer.Update(1)
	assertCurrent(t, outer, done)
	if innerLeaf.exits != 1 {
		t.Errorf("innerLeaf.exits = %d, want 1", innerLeaf.exits)
	}
}
