package ecs

import (
	"github.com/phanxgames/onscreen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for onscreen interaction events.
// Subscribe to this in your ECS systems to receive pointer, drag, and stick events.
var InteractionEventType = events.NewEventType[onscreen.InteractionEvent]()

// StickInputData is the latest value a stick forwarded for an entity.
type StickInputData struct {
	Value  onscreen.Vec2
	Active bool
}

// StickInput holds the stick value of tracked entities.
var StickInput = donburi.NewComponentType[StickInputData]()

// DonburiStore is an onscreen.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world   donburi.World
	tracked map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, tracked: make(map[uint32]donburi.Entity)}
}

// Track links a node EntityID to a Donburi entity. Stick values for that node
// are written to the entity's StickInput component, which is added if missing.
func (s *DonburiStore) Track(id uint32, e donburi.Entity) {
	if !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(StickInput) {
		entry.AddComponent(StickInput)
	}
	s.tracked[id] = e
}

// Untrack removes the link created by Track.
func (s *DonburiStore) Untrack(id uint32) {
	delete(s.tracked, id)
}

// EmitEvent implements onscreen.EntityStore.
func (s *DonburiStore) EmitEvent(event onscreen.InteractionEvent) {
	if event.Type == onscreen.EventStickValue {
		s.applyStickValue(event)
	}
	InteractionEventType.Publish(s.world, event)
}

func (s *DonburiStore) applyStickValue(event onscreen.InteractionEvent) {
	e, ok := s.tracked[event.EntityID]
	if !ok {
		return
	}
	if !s.world.Valid(e) {
		delete(s.tracked, event.EntityID)
		return
	}
	in := StickInput.Get(s.world.Entry(e))
	in.Value = onscreen.Vec2{X: event.ValueX, Y: event.ValueY}
	in.Active = in.Value != (onscreen.Vec2{})
}
