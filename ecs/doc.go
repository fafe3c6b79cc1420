// Package ecs provides ECS adapters for reflex's firing notifications.
//
// The primary adapter is [NewDonburiStore], which bridges behavior firings
// (one record per processed interaction event) into a [Donburi] world as
// typed events. Subscribe to [FiringEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetFiringStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
