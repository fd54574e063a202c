package metrics

import (
	"context"

	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.QuestUpdated,
		event.ItemPurchased,
		event.ItemConsumed,
		event.CharacterLeveledUp,
		event.CharacterDied,
		event.MaintenanceCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.QuestUpdated:
		payload, ok := evt.Payload.(event.QuestPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		// Only terminal transitions count; resets and habit ticks pass through
		switch {
		case payload.Quest.Failed:
			QuestsFailed.WithLabelValues(string(payload.Quest.Type), string(payload.Quest.Difficulty)).Inc()
		case payload.Quest.Completed:
			QuestsCompleted.WithLabelValues(string(payload.Quest.Type), string(payload.Quest.Difficulty)).Inc()
		}

	case event.ItemPurchased:
		payload, ok := evt.Payload.(event.InventoryPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		ItemsBought.WithLabelValues(payload.Item.Name).Inc()

	case event.ItemConsumed:
		payload, ok := evt.Payload.(event.InventoryPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		ItemsUsed.WithLabelValues(payload.Item.Name).Inc()

	case event.CharacterLeveledUp:
		LevelUps.Inc()

	case event.CharacterDied:
		Deaths.Inc()

	case event.MaintenanceCompleted:
		payload, ok := evt.Payload.(event.MaintenancePayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		MaintenanceRuns.Inc()
		MaintenancePenalties.Add(float64(payload.PenaltiesApplied))
	}

	return nil
}
