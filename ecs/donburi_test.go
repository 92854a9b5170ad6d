package ecs

import (
	"testing"

	"github.com/phanxgames/weave"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// stubHost exposes a Dispatcher as a weave.Host.
type stubHost struct {
	weave.Dispatcher
}

func (h *stubHost) AcquireSurface() (weave.Surface, error) { return nil, weave.ErrSurfaceUnavailable }
func (h *stubHost) Viewport() (int, int)                   { return 0, 0 }

func TestNewDonburiBridge(t *testing.T) {
	host := &stubHost{}
	b := NewDonburiBridge(donburi.NewWorld(), host)
	if b == nil {
		t.Fatal("NewDonburiBridge returned nil")
	}
	if host.ListenerCount(weave.EventPointerMove) != 1 || host.ListenerCount(weave.EventResize) != 1 {
		t.Error("bridge did not subscribe to pointer and resize events")
	}
}

func TestDonburiBridge_Forwards(t *testing.T) {
	world := donburi.NewWorld()
	host := &stubHost{}
	NewDonburiBridge(world, host)

	var received []HostEvent
	HostEventType.Subscribe(world, func(w donburi.World, e HostEvent) {
		received = append(received, e)
	})

	host.DispatchPointerMove(100, 200)
	host.DispatchResize(640, 480)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %v", received)
	}
	HostEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != PointerMoved || e.X != 100 || e.Y != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Kind != Resized || e.Width != 640 || e.Height != 480 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiBridge_Close(t *testing.T) {
	world := donburi.NewWorld()
	host := &stubHost{}
	b := NewDonburiBridge(world, host)

	count := 0
	HostEventType.Subscribe(world, func(w donburi.World, e HostEvent) { count++ })

	b.Close()
	b.Close()
	host.DispatchPointerMove(1, 1)
	events.ProcessAllEvents(world)

	if count != 0 {
		t.Errorf("events after Close = %d, want 0", count)
	}
	if host.ListenerCount(weave.EventPointerMove) != 0 || host.ListenerCount(weave.EventResize) != 0 {
		t.Error("listeners left after Close")
	}
}

func TestDonburiBridge_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	host := &stubHost{}
	NewDonburiBridge(world, host)

	var count1, count2 int
	HostEventType.Subscribe(world, func(w donburi.World, e HostEvent) { count1++ })
	HostEventType.Subscribe(world, func(w donburi.World, e HostEvent) { count2++ })

	host.DispatchResize(10, 10)
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
