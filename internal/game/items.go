package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/inventory"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// GetInventory returns the active character's full inventory
func (s *service) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, c.ID)
}

// GetEquippedItems returns only the items currently worn
func (s *service) GetEquippedItems(ctx context.Context) ([]domain.InventoryItem, error) {
	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListEquippedItems(ctx, c.ID)
}

// EquipItem equips the item, swapping out whatever occupies the same slot.
// Consumables and items the character cannot use are a silent no-op.
func (s *service) EquipItem(ctx context.Context, itemID string) (*ItemResult, error) {
	return s.transitionEquipment(ctx, itemID, inventory.Equip)
}

// UnequipItem takes the item off and recomputes derived stats
func (s *service) UnequipItem(ctx context.Context, itemID string) (*ItemResult, error) {
	return s.transitionEquipment(ctx, itemID, inventory.Unequip)
}

func (s *service) transitionEquipment(
	ctx context.Context,
	itemID string,
	apply func(domain.InventoryItem, []domain.InventoryItem, domain.Character) inventory.Result,
) (*ItemResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	owned, err := s.store.ListItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	res := apply(*item, owned, *c)
	if !res.Applied {
		log.Debug(LogMsgItemTransitionNoOp, "item_id", itemID)
		return &ItemResult{Character: *c}, nil
	}
	res.Character.UpdatedAt = s.now()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateCharacter(ctx, res.Character); err != nil {
		return nil, err
	}
	for _, changed := range res.Changed {
		if err := tx.UpdateItem(ctx, changed); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit equipment change: %w", err)
	}

	s.publish(ctx, event.NewCharacterEvent(event.CharacterUpdated, res.Character))
	for _, changed := range res.Changed {
		s.publish(ctx, event.NewInventoryUpdatedEvent(changed))
	}

	return &ItemResult{Character: res.Character, Applied: true}, nil
}

// UseConsumable restores HP/MP from the item and shrinks its stack, deleting
// the record when the stack runs out. Non-consumables are a silent no-op.
func (s *service) UseConsumable(ctx context.Context, itemID string) (*ItemResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	res := inventory.UseConsumable(*item, *c)
	if !res.Applied {
		log.Debug(LogMsgItemTransitionNoOp, "item_id", itemID)
		return &ItemResult{Character: *c}, nil
	}
	res.Character.UpdatedAt = s.now()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateCharacter(ctx, res.Character); err != nil {
		return nil, err
	}
	if res.Item != nil {
		err = tx.UpdateItem(ctx, *res.Item)
	} else {
		err = tx.DeleteItem(ctx, itemID)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit consumable use: %w", err)
	}

	s.publish(ctx, event.NewCharacterEvent(event.CharacterUpdated, res.Character))
	if res.Item != nil {
		s.publish(ctx, event.NewInventoryUpdatedEvent(*res.Item))
	} else {
		s.publish(ctx, event.NewInventoryDeletedEvent(itemID))
	}
	s.publish(ctx, event.NewItemConsumedEvent(*item))

	return &ItemResult{Character: res.Character, Applied: true}, nil
}

// BuyItem purchases a catalog item by name. Insufficient gold returns false
// with no state change; an unknown name is an error.
func (s *service) BuyItem(ctx context.Context, itemName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	catalogItem, ok := s.catalog.ByName(itemName)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemName)
	}

	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return false, err
	}
	owned, err := s.store.ListItems(ctx, c.ID)
	if err != nil {
		return false, err
	}

	res := inventory.Buy(catalogItem, owned, *c)
	if !res.OK {
		log.Debug(LogMsgPurchaseRefused, "item", itemName, "gold", c.Gold, "cost", catalogItem.GoldValue)
		return false, nil
	}
	res.Character.UpdatedAt = s.now()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateCharacter(ctx, res.Character); err != nil {
		return false, err
	}
	if res.NewItem != nil {
		err = tx.InsertItem(ctx, c.ID, *res.NewItem)
	} else {
		err = tx.UpdateItem(ctx, *res.Updated)
	}
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit purchase: %w", err)
	}

	bought := res.Updated
	if res.NewItem != nil {
		bought = res.NewItem
	}
	s.publish(ctx, event.NewCharacterEvent(event.CharacterUpdated, res.Character))
	s.publish(ctx, event.NewInventoryUpdatedEvent(*bought))
	s.publish(ctx, event.NewItemPurchasedEvent(*bought))

	return true, nil
}

// ShopCatalog returns the static catalog filtered by category and narrowed
// to the active character's class when one exists
func (s *service) ShopCatalog(ctx context.Context, category domain.ShopCategory) ([]domain.InventoryItem, error) {
	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return s.catalog.Items(category), nil
		}
		return nil, err
	}
	return s.catalog.ItemsForClass(category, c.Class), nil
}
