// Package game is the orchestrator behind the command surface: it loads the
// current snapshot from the store, delegates to the pure engines for the new
// snapshot, persists the result and publishes events for subscribers.
//
// All mutating commands serialize on one mutex. The store holds a single
// save slot, and the character's cumulative counters (exp, gold, HP) make
// concurrent read-modify-write cycles unsafe without it.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/logger"
	"github.com/hexlab-games/habitquest/internal/progression"
	"github.com/hexlab-games/habitquest/internal/repository"
	"github.com/hexlab-games/habitquest/internal/shop"
)

// QuestInput carries the caller-supplied fields for quest creation
type QuestInput struct {
	Title       string
	Description string
	Difficulty  domain.Difficulty
	Tags        []string
	Weekdays    []time.Weekday // daily quests only
	Deadline    *time.Time     // tasks only
}

// QuestResult is the outcome of a quest transition command. Applied is false
// when the transition was refused (already terminal, deadline elapsed) and
// the state is returned unchanged.
type QuestResult struct {
	Quest     domain.Quest     `json:"quest"`
	Character domain.Character `json:"character"`
	Applied   bool             `json:"applied"`
}

// ItemResult is the outcome of an equip/unequip/use command
type ItemResult struct {
	Character domain.Character `json:"character"`
	Applied   bool             `json:"applied"`
}

// MaintenanceResult is the outcome of the once-per-day sweep command
type MaintenanceResult struct {
	Ran              bool             `json:"ran"`
	QuestsTouched    int              `json:"quests_touched"`
	PenaltiesApplied int              `json:"penalties_applied"`
	Character        domain.Character `json:"character"`
}

// Service defines the interface for game operations
type Service interface {
	// Character
	CreateCharacter(ctx context.Context, nickname, class string) (domain.Character, error)
	GetCharacter(ctx context.Context) (*domain.Character, error)
	Classes() []domain.ClassInfo
	CheckCharacterDeath(ctx context.Context) (bool, error)
	ResurrectCharacter(ctx context.Context, newClass string) (domain.Character, error)

	// Quests
	AddHabit(ctx context.Context, in QuestInput) (domain.Quest, error)
	AddDaily(ctx context.Context, in QuestInput) (domain.Quest, error)
	AddTask(ctx context.Context, in QuestInput) (domain.Quest, error)
	ListQuests(ctx context.Context) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, questID string) (*QuestResult, error)
	FailQuest(ctx context.Context, questID string) (*QuestResult, error)
	IncrementHabit(ctx context.Context, questID string) (*QuestResult, error)
	DecrementHabit(ctx context.Context, questID string) (*QuestResult, error)
	DeleteQuest(ctx context.Context, questID string) error

	// Inventory and shop
	GetInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetEquippedItems(ctx context.Context) ([]domain.InventoryItem, error)
	EquipItem(ctx context.Context, itemID string) (*ItemResult, error)
	UnequipItem(ctx context.Context, itemID string) (*ItemResult, error)
	UseConsumable(ctx context.Context, itemID string) (*ItemResult, error)
	BuyItem(ctx context.Context, itemName string) (bool, error)
	ShopCatalog(ctx context.Context, category domain.ShopCategory) ([]domain.InventoryItem, error)

	// Maintenance
	PerformDailyMaintenanceIfNeeded(ctx context.Context) (*MaintenanceResult, error)
}

// service implements the Service interface
type service struct {
	store   repository.Store
	catalog *shop.Catalog
	bus     event.Bus

	// mu serializes every mutating command for the save slot
	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a new game service
func NewService(store repository.Store, catalog *shop.Catalog, bus event.Bus) Service {
	return &service{
		store:   store,
		catalog: catalog,
		bus:     bus,
		now:     time.Now,
	}
}

// publish sends an event without letting subscriber failures fail the command
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", e.Type, "error", err)
	}
}

// normalizeNickname trims and NFC-normalizes the nickname so visually equal
// names compare equal regardless of input method
func normalizeNickname(nickname string) (string, error) {
	nickname = norm.NFC.String(strings.TrimSpace(nickname))
	if nickname == "" {
		return "", fmt.Errorf("%w: empty nickname", domain.ErrInvalidInput)
	}
	return nickname, nil
}

// CreateCharacter builds the save slot's character from the class base stats
func (s *service) CreateCharacter(ctx context.Context, nickname, class string) (domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	nickname, err := normalizeNickname(nickname)
	if err != nil {
		return domain.Character{}, err
	}

	classInfo, ok := domain.ClassByName(class)
	if !ok {
		return domain.Character{}, fmt.Errorf("%w: %s", domain.ErrInvalidClass, class)
	}

	if _, err := s.store.GetCharacter(ctx); err == nil {
		return domain.Character{}, domain.ErrCharacterExists
	} else if !errors.Is(err, domain.ErrCharacterNotFound) {
		return domain.Character{}, fmt.Errorf("failed to check existing character: %w", err)
	}

	c := progression.NewCharacter(nickname, classInfo, s.now())
	if err := s.store.InsertCharacter(ctx, c); err != nil {
		return domain.Character{}, fmt.Errorf("failed to insert character: %w", err)
	}

	log.Info(LogMsgCharacterCreated, "character_id", c.ID, "class", c.Class)
	s.publish(ctx, event.NewCharacterEvent(event.CharacterCreated, c))
	return c, nil
}

// GetCharacter returns the active character
func (s *service) GetCharacter(ctx context.Context) (*domain.Character, error) {
	return s.store.GetCharacter(ctx)
}

// Classes returns the fixed class catalog
func (s *service) Classes() []domain.ClassInfo {
	return domain.Classes()
}

// CheckCharacterDeath reports whether the active character is out of HP
func (s *service) CheckCharacterDeath(ctx context.Context) (bool, error) {
	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return false, err
	}
	return c.IsDead(), nil
}

// ResurrectCharacter clears the inventory and rebuilds the character under
// the chosen class, preserving only the nickname. Quests survive.
func (s *service) ResurrectCharacter(ctx context.Context, newClass string) (domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	classInfo, ok := domain.ClassByName(newClass)
	if !ok {
		return domain.Character{}, fmt.Errorf("%w: %s", domain.ErrInvalidClass, newClass)
	}

	old, err := s.store.GetCharacter(ctx)
	if err != nil {
		return domain.Character{}, err
	}

	fresh := progression.NewCharacter(old.Nickname, classInfo, s.now())

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return domain.Character{}, err
	}
	defer tx.Rollback(ctx)

	if err := tx.DeleteAllItems(ctx, old.ID); err != nil {
		return domain.Character{}, err
	}
	if err := tx.DeleteCharacter(ctx, old.ID); err != nil {
		return domain.Character{}, err
	}
	if err := tx.InsertCharacter(ctx, fresh); err != nil {
		return domain.Character{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Character{}, fmt.Errorf("failed to commit resurrection: %w", err)
	}

	log.Info(LogMsgCharacterResurrected,
		"character_id", fresh.ID,
		"previous_id", old.ID,
		"class", fresh.Class)
	s.publish(ctx, event.NewCharacterEvent(event.CharacterResurrected, fresh))
	return fresh, nil
}

// publishDeathIfCrossed emits a death event when a penalty dropped the
// character to zero HP within this command
func (s *service) publishDeathIfCrossed(ctx context.Context, before, after domain.Character) {
	if !before.IsDead() && after.IsDead() {
		logger.FromContext(ctx).Info(LogMsgCharacterDied, "character_id", after.ID)
		s.publish(ctx, event.NewCharacterDiedEvent(after.ID, after.Nickname))
	}
}

// publishLevelUpIfCrossed emits a level-up event when a reward raised the
// character's level within this command
func (s *service) publishLevelUpIfCrossed(ctx context.Context, before, after domain.Character) {
	if after.Level > before.Level {
		s.publish(ctx, event.NewLevelUpEvent(after.ID, before.Level, after.Level))
	}
}

