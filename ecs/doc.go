// Package ecs provides ECS adapters for weave hosts.
//
// The primary adapter is [NewDonburiBridge], which republishes a host's
// pointer and resize events into a [Donburi] world as typed events.
// Subscribe to [HostEventType] in your ECS systems to receive them.
//
// Usage:
//
//	bridge := ecs.NewDonburiBridge(world, host)
//	defer bridge.Close()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
