package ffi

import (
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// UserData is the opaque value handed to the foreign side as the void*
// user-data argument of a callback-driven object. It is a registry id, never
// a Go pointer, so foreign code may hold it for as long as it likes.
type UserData uintptr

// EventType identifies a registry lifecycle event.
type EventType uint8

const (
	EventBound    EventType = iota // a capability was registered
	EventReleased                  // a capability was dropped
)

// Event describes a registry lifecycle change.
type Event struct {
	Type     EventType
	UserData UserData
	Value    any
}

// Observer receives registry lifecycle events. Observers run synchronously
// under no registry lock, so they may Subscribe or Unsubscribe from
// OnUserDataEvent. Use pointer observers: Unsubscribe matches by ==.
type Observer interface {
	OnUserDataEvent(e Event)
}

var registry = struct {
	mu        sync.RWMutex
	values    map[UserData]any
	next      UserData
	obsMu     sync.RWMutex
	observers []Observer
}{
	values: make(map[UserData]any),
	next:   1,
}

// Bind registers capability and returns the user-data id that identifies it.
// The id is never zero. The capability stays reachable until Release.
//
// Safe for concurrent use.
func Bind(capability any) UserData {
	registry.mu.Lock()
	ud := registry.next
	registry.next++
	registry.values[ud] = capability
	registry.mu.Unlock()

	notify(Event{Type: EventBound, UserData: ud, Value: capability})
	return ud
}

// Lookup returns the capability bound to ud. The registry keeps ownership.
//
// Safe for concurrent use.
func Lookup(ud UserData) (any, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	v, ok := registry.values[ud]
	return v, ok
}

// Release drops the capability bound to ud. It must be called exactly once,
// after the foreign object that received ud has been destroyed. Releasing an
// unknown id is logged and otherwise ignored.
//
// Safe for concurrent use.
func Release(ud UserData) {
	registry.mu.Lock()
	v, ok := registry.values[ud]
	delete(registry.values, ud)
	registry.mu.Unlock()

	if !ok {
		Logger().Warn("release of unknown user data", zap.Uint64("user_data", uint64(ud)))
		return
	}
	notify(Event{Type: EventReleased, UserData: ud, Value: v})
}

// Bound returns the number of live capabilities. Useful for leak checks.
func Bound() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return len(registry.values)
}

// Subscribe adds an observer for bind/release events.
func Subscribe(o Observer) {
	registry.obsMu.Lock()
	defer registry.obsMu.Unlock()
	registry.observers = append(registry.observers, o)
}

// Unsubscribe removes an observer. Observers whose dynamic type is not
// comparable cannot be matched; they are logged and left subscribed.
func Unsubscribe(o Observer) {
	if o == nil {
		return
	}
	if !reflect.TypeOf(o).Comparable() {
		Logger().Warn("unsubscribe of non-comparable observer", zap.String("type", reflect.TypeOf(o).String()))
		return
	}
	registry.obsMu.Lock()
	defer registry.obsMu.Unlock()
	for i, obs := range registry.observers {
		if obs == o {
			registry.observers = append(registry.observers[:i], registry.observers[i+1:]...)
			return
		}
	}
}

func notify(e Event) {
	registry.obsMu.RLock()
	observers := slices.Clone(registry.observers)
	registry.obsMu.RUnlock()
	for _, o := range observers {
		o.OnUserDataEvent(e)
	}
}
