package sse

import (
	"context"
	"log/slog"

	"github.com/hexlab-games/habitquest/internal/event"
)

// forwardedTypes are the bus event types mirrored to SSE clients. Game
// clients watch these to refresh their views without polling.
var forwardedTypes = []event.Type{
	event.CharacterCreated,
	event.CharacterUpdated,
	event.CharacterLeveledUp,
	event.CharacterDied,
	event.CharacterResurrected,
	event.QuestUpdated,
	event.QuestDeleted,
	event.InventoryUpdated,
	event.InventoryDeleted,
	event.MaintenanceCompleted,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all forwarded event types
func (s *Subscriber) Subscribe() {
	for _, t := range forwardedTypes {
		s.bus.Subscribe(t, s.forward)
	}

	types := make([]string, len(forwardedTypes))
	for i, t := range forwardedTypes {
		types[i] = string(t)
	}
	slog.Info(LogMsgSubscriberActive, "types", types)
}

// forward broadcasts a bus event to SSE clients as-is. Payloads are the
// typed event structs; the hub serializes them to JSON on write.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
