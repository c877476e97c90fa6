package ecs

import (
	"sync"

	"github.com/phanxgames/sfml/ffi"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UserDataEventType is the Donburi event type for registry lifecycle events.
var UserDataEventType = events.NewEventType[ffi.Event]()

type donburiObserver struct {
	mu    sync.Mutex
	world donburi.World
}

// NewDonburiObserver creates an ffi.Observer that publishes registry events
// to UserDataEventType. Events are queued until ProcessEvents runs. Publishing
// is serialized, since objects may be bound or released on any goroutine.
func NewDonburiObserver(world donburi.World) ffi.Observer {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) OnUserDataEvent(e ffi.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	UserDataEventType.Publish(o.world, e)
}
