// Package ecs provides ECS adapters for onscreen's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges onscreen pointer
// and stick events into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Entities registered with [DonburiStore.Track] additionally get their
// [StickInput] component updated whenever a stick bound to the same node
// forwards a value, so movement systems can read the stick without
// subscribing to events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	knob.EntityID = 1
//	store.Track(knob.EntityID, player)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
