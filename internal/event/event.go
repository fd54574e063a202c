package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	CharacterCreated     Type = "character.created"
	CharacterUpdated     Type = "character.updated"
	CharacterLeveledUp   Type = "character.leveled_up"
	CharacterDied        Type = "character.died"
	CharacterResurrected Type = "character.resurrected"

	QuestUpdated Type = "quest.updated"
	QuestDeleted Type = "quest.deleted"

	InventoryUpdated Type = "inventory.updated"
	InventoryDeleted Type = "inventory.deleted"
	ItemPurchased    Type = "inventory.purchased"
	ItemConsumed     Type = "inventory.consumed"

	MaintenanceCompleted Type = "maintenance.completed"
)

// Typed event payloads for type safety

// CharacterPayloadV1 carries the full character snapshot after a mutation
type CharacterPayloadV1 struct {
	Character domain.Character `json:"character"`
}

// LevelUpPayloadV1 is the typed payload for level-up events
type LevelUpPayloadV1 struct {
	CharacterID string `json:"character_id"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
}

// CharacterDiedPayloadV1 is the typed payload for death events
type CharacterDiedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	Nickname    string `json:"nickname"`
}

// QuestPayloadV1 carries the full quest snapshot after a mutation
type QuestPayloadV1 struct {
	Quest domain.Quest `json:"quest"`
}

// QuestDeletedPayloadV1 is the typed payload for quest deletion events
type QuestDeletedPayloadV1 struct {
	QuestID string `json:"quest_id"`
}

// InventoryPayloadV1 carries one inventory record after a mutation
type InventoryPayloadV1 struct {
	Item domain.InventoryItem `json:"item"`
}

// InventoryDeletedPayloadV1 is the typed payload for item deletion events
type InventoryDeletedPayloadV1 struct {
	ItemID string `json:"item_id"`
}

// MaintenancePayloadV1 is the typed payload for completed maintenance sweeps
type MaintenancePayloadV1 struct {
	CharacterID      string    `json:"character_id"`
	RunAt            time.Time `json:"run_at"`
	QuestsTouched    int       `json:"quests_touched"`
	PenaltiesApplied int       `json:"penalties_applied"`
}

// Type-safe event constructors

// NewCharacterEvent creates a character snapshot event of the given type
func NewCharacterEvent(t Type, c domain.Character) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: CharacterPayloadV1{Character: c},
	}
}

// NewLevelUpEvent creates a new level-up event
func NewLevelUpEvent(characterID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterLeveledUp,
		Payload: LevelUpPayloadV1{
			CharacterID: characterID,
			OldLevel:    oldLevel,
			NewLevel:    newLevel,
		},
	}
}

// NewCharacterDiedEvent creates a new death event
func NewCharacterDiedEvent(characterID, nickname string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterDied,
		Payload: CharacterDiedPayloadV1{
			CharacterID: characterID,
			Nickname:    nickname,
		},
	}
}

// NewQuestUpdatedEvent creates a quest snapshot event
func NewQuestUpdatedEvent(q domain.Quest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestUpdated,
		Payload: QuestPayloadV1{Quest: q},
	}
}

// NewQuestDeletedEvent creates a quest deletion event
func NewQuestDeletedEvent(questID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestDeleted,
		Payload: QuestDeletedPayloadV1{QuestID: questID},
	}
}

// NewInventoryUpdatedEvent creates an inventory snapshot event
func NewInventoryUpdatedEvent(item domain.InventoryItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryUpdated,
		Payload: InventoryPayloadV1{Item: item},
	}
}

// NewItemPurchasedEvent creates a shop purchase event. The snapshot is the
// inventory record after the purchase landed.
func NewItemPurchasedEvent(item domain.InventoryItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: InventoryPayloadV1{Item: item},
	}
}

// NewItemConsumedEvent creates a consumable use event
func NewItemConsumedEvent(item domain.InventoryItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemConsumed,
		Payload: InventoryPayloadV1{Item: item},
	}
}

// NewInventoryDeletedEvent creates an item deletion event
func NewInventoryDeletedEvent(itemID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryDeleted,
		Payload: InventoryDeletedPayloadV1{ItemID: itemID},
	}
}

// NewMaintenanceCompletedEvent creates a maintenance sweep event
func NewMaintenanceCompletedEvent(characterID string, runAt time.Time, questsTouched, penalties int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MaintenanceCompleted,
		Payload: MaintenancePayloadV1{
			CharacterID:      characterID,
			RunAt:            runAt,
			QuestsTouched:    questsTouched,
			PenaltiesApplied: penalties,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
