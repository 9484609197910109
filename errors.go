package tickfsm

import (
	"errors"
	"fmt"
)

// Configuration failure reasons, matchable with errors.Is through the
// ConfigError raised at the offending call site.
var (
	// ErrNilSource is reported when AddTransition receives a nil source state
	ErrNilSource = errors.New("nil source state")
	// ErrNilTarget is reported when AddTransition receives a nil target state
	ErrNilTarget = errors.New("nil target state")
	// ErrWildcardTarget is reported when Any is used as a transition target
	ErrWildcardTarget = errors.New("wildcard cannot be a transition target")
	// ErrNilPredicate is reported when When receives a nil predicate
	ErrNilPredicate = errors.New("nil predicate")
	// ErrNilCallback is reported when OnTransition receives a nil callback
	ErrNilCallback = errors.New("nil callback")
	// ErrPredicateSet is reported when When is called a second time
	ErrPredicateSet = errors.New("predicate already set")
	// ErrCallbackSet is reported when OnTransition is called a second time
	ErrCallbackSet = errors.New("transition callback already set")
)

// ConfigError reports a misconfigured registration or builder call. The
// engine raises it as a panic at the call site, never deferred to tick time:
// these are programmer errors, not runtime conditions.
type ConfigError struct {
	Op     string
	Reason error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tickfsm: %s: %v", e.Op, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}

func configPanic(op string, reason error) {
	panic(&ConfigError{Op: op, Reason: reason})
}
