package ecs

import (
	"github.com/phanxgames/weave"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HostEventKind identifies what a HostEvent carries.
type HostEventKind uint8

const (
	PointerMoved HostEventKind = iota // X, Y set
	Resized                           // Width, Height set
)

// HostEvent is a weave host event as seen by ECS systems. Positions are in
// surface coordinates.
type HostEvent struct {
	Kind          HostEventKind
	X, Y          float64
	Width, Height int
}

// HostEventType is the Donburi event type for weave host events.
var HostEventType = events.NewEventType[HostEvent]()

// DonburiBridge forwards host events into a Donburi world until closed.
type DonburiBridge struct {
	world   donburi.World
	handles []weave.CallbackHandle
}

// NewDonburiBridge subscribes to host's pointer and resize events and
// publishes each to HostEventType. Events are queued in the world and
// delivered by events.ProcessAllEvents or HostEventType.ProcessEvents.
func NewDonburiBridge(world donburi.World, host weave.Host) *DonburiBridge {
	b := &DonburiBridge{world: world}
	b.handles = append(b.handles,
		host.OnPointerMove(func(x, y float64) {
			HostEventType.Publish(b.world, HostEvent{Kind: PointerMoved, X: x, Y: y})
		}),
		host.OnResize(func(w, h int) {
			HostEventType.Publish(b.world, HostEvent{Kind: Resized, Width: w, Height: h})
		}),
	)
	return b
}

// Close unsubscribes from the host. Calling it more than once is safe.
func (b *DonburiBridge) Close() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}
