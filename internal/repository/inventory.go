package repository

import (
	"context"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Inventory defines the interface for inventory persistence. Items are
// scoped to their owning character and vanish with it.
type Inventory interface {
	GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error)
	ListEquippedItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error)
	InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error
	DeleteAllItems(ctx context.Context, characterID string) error
}
