// Package ecs provides ECS adapters for tipview.
package ecs

import (
	"github.com/phanxgames/tipview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TipEventType is the Donburi event type for tip lifecycle events.
// Subscribe to this in your ECS systems to react to tips being shown,
// hidden, tapped or removed.
var TipEventType = events.NewEventType[tipview.TipEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tip events are published to TipEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tipview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTipEvent(event tipview.TipEvent) {
	TipEventType.Publish(s.world, event)
}
