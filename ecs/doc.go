// Package ecs provides ECS adapters for tipview's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges tip events (shown,
// hidden, tapped, removed) into a [Donburi] world as typed events.
// Subscribe to [TipEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	overlay.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
