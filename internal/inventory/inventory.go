// Package inventory implements equipment, consumable and purchase logic,
// including the derived-stat recomputation that keeps a character's maximums
// equal to class base plus equipped bonuses.
//
// Precondition failures (equipping a consumable, using an item the class
// cannot wield, buying beyond the gold balance) are silent no-ops: the result
// carries the unchanged character and Applied/OK false, per the engine's
// error policy. Callers inspect the result, they never get an error for a
// refused transition.
package inventory

import (
	"github.com/google/uuid"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// fallbackBase guards against a character carrying an unknown class tag
// (e.g. a save written by a newer build)
var fallbackBase = domain.BaseStats{HP: 100, MP: 50, Attack: 10, Defense: 10}

// Result is the outcome of an equip or unequip transition
type Result struct {
	Character domain.Character
	// Changed holds the items whose equipped flag flipped, ready to persist
	Changed []domain.InventoryItem
	Applied bool
}

// ConsumeResult is the outcome of using a consumable
type ConsumeResult struct {
	Character domain.Character
	// Item is the decremented stack, or nil when the stack is exhausted and
	// the record should be deleted
	Item    *domain.InventoryItem
	Applied bool
}

// PurchaseResult is the outcome of a shop purchase
type PurchaseResult struct {
	Character domain.Character
	// NewItem is a fresh inventory record to insert, if any
	NewItem *domain.InventoryItem
	// Updated is an existing stack that grew by one, if any
	Updated *domain.InventoryItem
	OK      bool
}

// Equip equips target, unequipping whatever currently occupies the same
// slot. owned is the character's full inventory including target.
func Equip(target domain.InventoryItem, owned []domain.InventoryItem, c domain.Character) Result {
	if target.Type == domain.ItemTypeConsumable || !target.CanBeUsedBy(c) {
		return Result{Character: c}
	}

	var changed []domain.InventoryItem
	for _, it := range owned {
		if it.Equipped && it.Type == target.Type && it.ID != target.ID {
			it.Equipped = false
			changed = append(changed, it)
		}
	}
	target.Equipped = true
	changed = append(changed, target)

	c = RecalculateStats(c, equippedAfter(owned, changed))
	return Result{Character: c, Changed: changed, Applied: true}
}

// Unequip clears the equipped flag and recomputes derived stats
func Unequip(target domain.InventoryItem, owned []domain.InventoryItem, c domain.Character) Result {
	target.Equipped = false
	changed := []domain.InventoryItem{target}

	c = RecalculateStats(c, equippedAfter(owned, changed))
	return Result{Character: c, Changed: changed, Applied: true}
}

// UseConsumable restores HP/MP capped at the maximums and shrinks the stack
func UseConsumable(item domain.InventoryItem, c domain.Character) ConsumeResult {
	if !item.Consumable {
		return ConsumeResult{Character: c}
	}

	if item.HPBonus > 0 {
		c.CurrentHP += item.HPBonus
		if c.CurrentHP > c.MaxHP {
			c.CurrentHP = c.MaxHP
		}
	}
	if item.MPBonus > 0 {
		c.CurrentMP += item.MPBonus
		if c.CurrentMP > c.MaxMP {
			c.CurrentMP = c.MaxMP
		}
	}

	item.StackSize--
	if item.StackSize <= 0 {
		return ConsumeResult{Character: c, Applied: true}
	}
	return ConsumeResult{Character: c, Item: &item, Applied: true}
}

// Buy purchases a catalog item. Consumables merge into an existing stack of
// the same name; non-consumables always become a fresh record, even when an
// identical one is already owned.
func Buy(catalogItem domain.InventoryItem, owned []domain.InventoryItem, c domain.Character) PurchaseResult {
	if c.Gold < catalogItem.GoldValue {
		return PurchaseResult{Character: c}
	}

	c.Gold -= catalogItem.GoldValue

	if catalogItem.Consumable {
		for _, it := range owned {
			if it.Name == catalogItem.Name && it.Type == domain.ItemTypeConsumable {
				it.StackSize++
				return PurchaseResult{Character: c, Updated: &it, OK: true}
			}
		}
	}

	fresh := catalogItem
	fresh.ID = uuid.NewString()
	fresh.Equipped = false
	fresh.StackSize = 1
	return PurchaseResult{Character: c, NewItem: &fresh, OK: true}
}

// RecalculateStats rebuilds the derived stats from the class base plus the
// bonuses of every equipped item. Current HP/MP are clamped against the new
// maximums, never healed.
func RecalculateStats(c domain.Character, equipped []domain.InventoryItem) domain.Character {
	base := fallbackBase
	if class, ok := domain.ClassByName(string(c.Class)); ok {
		base = class.Base
	}

	var hp, mp, atk, def int
	for _, it := range equipped {
		hp += it.HPBonus
		mp += it.MPBonus
		atk += it.AttackBonus
		def += it.DefenseBonus
	}

	c.MaxHP = base.HP + hp
	c.MaxMP = base.MP + mp
	c.Attack = base.Attack + atk
	c.Defense = base.Defense + def
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	if c.CurrentMP > c.MaxMP {
		c.CurrentMP = c.MaxMP
	}
	return c
}

// equippedAfter applies the pending flag changes to the owned snapshot and
// returns the resulting equipped set
func equippedAfter(owned, changed []domain.InventoryItem) []domain.InventoryItem {
	byID := make(map[string]domain.InventoryItem, len(changed))
	for _, it := range changed {
		byID[it.ID] = it
	}

	var equipped []domain.InventoryItem
	for _, it := range owned {
		if updated, ok := byID[it.ID]; ok {
			it = updated
		}
		if it.Equipped {
			equipped = append(equipped, it)
		}
	}
	return equipped
}
