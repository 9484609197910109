// Package tickfsm provides a tick-driven, hierarchically nestable finite
// state machine engine. A host calls Update once per time step; the machine
// updates its current state, then resolves and executes transitions, chaining
// through any number of instantly-available states within the same tick. A
// per-tick guard set stops a loop of instant transitions from running more
// than once per tick.
//
// A StateMachine itself satisfies the State interface, so an entire machine
// can be registered as a single state inside a parent machine, to any depth.
// The parent's tick drives the child's full same-tick chain synchronously.
//
// Execution is single-threaded and cooperative: every predicate, callback and
// state hook runs synchronously on the goroutine that called Update, and none
// of them may re-invoke Update on the same machine.
package tickfsm
