package repository

import (
	"context"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Tx defines the interface for transactional operations. A single game
// command that touches the character together with quests or inventory runs
// its writes inside one Tx so readers never observe half of the update.
type Tx interface {
	UpdateCharacter(ctx context.Context, c domain.Character) error
	InsertCharacter(ctx context.Context, c domain.Character) error
	DeleteCharacter(ctx context.Context, characterID string) error

	InsertQuest(ctx context.Context, q domain.Quest) error
	UpdateQuest(ctx context.Context, q domain.Quest) error
	DeleteQuest(ctx context.Context, questID string) error

	InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error
	DeleteAllItems(ctx context.Context, characterID string) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store bundles the save slot's collections behind one handle and provides
// the read-modify-write transaction
type Store interface {
	Character
	Quest
	Inventory

	BeginTx(ctx context.Context) (Tx, error)
}
