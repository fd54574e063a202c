package domain

// ItemType identifies an equipment slot or the consumable bucket
type ItemType string

const (
	ItemTypeWeapon      ItemType = "WEAPON"
	ItemTypeHelmet      ItemType = "HELMET"
	ItemTypeBreastplate ItemType = "BREASTPLATE"
	ItemTypeGreaves     ItemType = "GREAVES"
	ItemTypeAccessory   ItemType = "ACCESSORY"
	ItemTypeConsumable  ItemType = "CONSUMABLE"
)

// Valid reports whether t is a known item type
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeHelmet, ItemTypeBreastplate,
		ItemTypeGreaves, ItemTypeAccessory, ItemTypeConsumable:
		return true
	}
	return false
}

// Rarity is the visual quality tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// rarityOrder drives catalog sorting, common first
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Order returns the sort rank of the rarity; unknown rarities sort last
func (r Rarity) Order() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return len(rarityOrder)
}

// AllowedClass restricts which character class can use an item
type AllowedClass string

const (
	AllowedClassWarrior AllowedClass = "WARRIOR"
	AllowedClassArcher  AllowedClass = "ARCHER"
	AllowedClassMage    AllowedClass = "MAGE"
	AllowedClassAny     AllowedClass = "ANY"
)

// InventoryItem is an owned (or, in the shop catalog, purchasable) item
type InventoryItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Type          ItemType     `json:"type"`
	Rarity        Rarity       `json:"rarity"`
	RequiredLevel int          `json:"required_level"`
	AllowedClass  AllowedClass `json:"allowed_class"`

	HPBonus      int `json:"hp_bonus"`
	MPBonus      int `json:"mp_bonus"`
	AttackBonus  int `json:"attack_bonus"`
	DefenseBonus int `json:"defense_bonus"`

	GoldValue  int  `json:"gold_value"`
	Equipped   bool `json:"equipped"`
	Consumable bool `json:"consumable"`
	StackSize  int  `json:"stack_size"`
}

// CanBeUsedBy reports whether the character meets the item's level and
// class requirements
func (i InventoryItem) CanBeUsedBy(c Character) bool {
	if c.Level < i.RequiredLevel {
		return false
	}
	return i.AllowedClass == AllowedClassAny || Class(i.AllowedClass) == c.Class
}

// ShopCategory groups catalog items for browsing
type ShopCategory string

const (
	ShopCategoryWeapons     ShopCategory = "WEAPONS"
	ShopCategoryArmor       ShopCategory = "ARMOR"
	ShopCategoryAccessories ShopCategory = "ACCESSORIES"
	ShopCategoryConsumables ShopCategory = "CONSUMABLES"
	ShopCategoryAll         ShopCategory = "ALL"
)

// Category maps an item type onto its shop browsing category
func (t ItemType) Category() ShopCategory {
	switch t {
	case ItemTypeWeapon:
		return ShopCategoryWeapons
	case ItemTypeHelmet, ItemTypeBreastplate, ItemTypeGreaves:
		return ShopCategoryArmor
	case ItemTypeAccessory:
		return ShopCategoryAccessories
	case ItemTypeConsumable:
		return ShopCategoryConsumables
	}
	return ShopCategoryAll
}
