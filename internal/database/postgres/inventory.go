package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexlab-games/habitquest/internal/domain"
)

const itemColumns = `item_id, name, description, item_type, rarity,
	required_level, allowed_class, hp_bonus, mp_bonus, attack_bonus,
	defense_bonus, gold_value, equipped, consumable, stack_size`

// GetItem loads a single inventory item by id
func (s *Store) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1`
	item, err := scanItem(s.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItems returns the character's full inventory
func (s *Store) ListItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE character_id = $1 ORDER BY name, item_id`
	return listItems(ctx, s.db, query, characterID)
}

// ListEquippedItems returns only the items currently worn
func (s *Store) ListEquippedItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE character_id = $1 AND equipped ORDER BY item_type`
	return listItems(ctx, s.db, query, characterID)
}

// InsertItem writes a new inventory record for the character
func (s *Store) InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error {
	return insertItem(ctx, s.db, characterID, item)
}

// UpdateItem persists a new item snapshot
func (s *Store) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	return updateItem(ctx, s.db, item)
}

// DeleteItem removes a single inventory record
func (s *Store) DeleteItem(ctx context.Context, itemID string) error {
	return deleteItem(ctx, s.db, itemID)
}

// DeleteAllItems wipes the character's inventory
func (s *Store) DeleteAllItems(ctx context.Context, characterID string) error {
	return deleteAllItems(ctx, s.db, characterID)
}

func listItems(ctx context.Context, q querier, query string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func insertItem(ctx context.Context, q querier, characterID string, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (character_id, ` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := q.Exec(ctx, query,
		characterID, item.ID, item.Name, item.Description, item.Type, item.Rarity,
		item.RequiredLevel, item.AllowedClass, item.HPBonus, item.MPBonus,
		item.AttackBonus, item.DefenseBonus, item.GoldValue,
		item.Equipped, item.Consumable, item.StackSize,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func updateItem(ctx context.Context, q querier, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET equipped = $2, stack_size = $3
		WHERE item_id = $1
	`
	tag, err := q.Exec(ctx, query, item.ID, item.Equipped, item.StackSize)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func deleteItem(ctx context.Context, q querier, itemID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func deleteAllItems(ctx context.Context, q querier, characterID string) error {
	_, err := q.Exec(ctx, `DELETE FROM inventory_items WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Type, &item.Rarity,
		&item.RequiredLevel, &item.AllowedClass, &item.HPBonus, &item.MPBonus,
		&item.AttackBonus, &item.DefenseBonus, &item.GoldValue,
		&item.Equipped, &item.Consumable, &item.StackSize,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
