// Package ecs provides ECS adapters for sfml's callback registry.
//
// The primary adapter is [NewDonburiObserver], which bridges user-data
// lifecycle events (a Go value bound for foreign callbacks, or released after
// its foreign object was destroyed) into a [Donburi] world as typed events.
// Subscribe to [UserDataEventType] in your ECS systems to receive them.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	ffi.Subscribe(obs)
//	defer ffi.Unsubscribe(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
