package tickfsm

import "reflect"

// Observer is notified after every executed transition with the previous
// and the new current state. Observers run synchronously, in registration
// order, on the goroutine that ticked the machine; a panic inside an
// observer propagates to the tick caller.
type Observer interface {
	OnTransition(from, to State)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(from, to State)

// OnTransition calls f.
func (f ObserverFunc) OnTransition(from, to State) { f(from, to) }

// observerList is an ordered multicast of transition notifications.
type observerList struct {
	observers []Observer
}

func (l *observerList) add(o Observer) {
	l.observers = append(l.observers, o)
}

// remove drops the first observer equal to o. Equality is identity, so it
// works for pointer observers; entries with an uncomparable dynamic type,
// such as ObserverFunc, are skipped rather than compared and can therefore
// never be removed.
func (l *observerList) remove(o Observer) {
	for i, registered := range l.observers {
		if !reflect.TypeOf(registered).Comparable() {
			continue
		}
		if registered == o {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

func (l *observerList) notify(from, to State) {
	// Snapshot so observers that mutate the list mid-notification do not
	// disturb this fan-out.
	observers := make([]Observer, len(l.observers))
	copy(observers, l.observers)

	for _, o := range observers {
		o.OnTransition(from, to)
	}
}
