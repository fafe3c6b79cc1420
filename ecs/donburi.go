package ecs

import (
	"github.com/phanxgames/reflex"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FiringEventType is the Donburi event type for reflex firings. Subscribe to
// this in your ECS systems to react to processed interaction events.
var FiringEventType = events.NewEventType[reflex.Firing]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a FiringStore backed by a Donburi world. Firings
// are published to FiringEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiStore(world donburi.World) reflex.FiringStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitFiring(f reflex.Firing) {
	FiringEventType.Publish(s.world, f)
}
