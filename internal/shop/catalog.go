// Package shop loads the static item catalog and serves filtered views of
// it. The catalog is pure data: purchases copy an entry into the inventory,
// nothing in here is ever persisted.
package shop

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// Sentinel errors for catalog loading
var (
	ErrInvalidConfig = errors.New("invalid shop configuration")
)

// Config represents the JSON configuration for the shop catalog
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"required,min=1,dive"`
}

// Def represents a single catalog entry in the JSON
type Def struct {
	Name          string              `json:"name" validate:"required"`
	Description   string              `json:"description"`
	Type          domain.ItemType     `json:"type" validate:"required"`
	Rarity        domain.Rarity       `json:"rarity"`
	RequiredLevel int                 `json:"required_level" validate:"gte=1"`
	AllowedClass  domain.AllowedClass `json:"allowed_class" validate:"required"`
	Consumable    bool                `json:"consumable"`
	HPBonus       int                 `json:"hp_bonus"`
	MPBonus       int                 `json:"mp_bonus"`
	AttackBonus   int                 `json:"attack_bonus"`
	DefenseBonus  int                 `json:"defense_bonus"`
	GoldValue     int                 `json:"gold_value" validate:"gte=0"`
}

// Catalog is the loaded, validated shop inventory
type Catalog struct {
	items  []domain.InventoryItem
	byName map[string]domain.InventoryItem
}

// Load reads, validates and indexes a shop catalog JSON file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	catalog := NewCatalog(config.Items)
	logger.Info(LogMsgCatalogLoaded, "path", path, "items", len(catalog.items))
	return catalog, nil
}

// Validate checks the config for structural and semantic problems
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf(ErrMsgValidateFailed, err)
	}

	seen := make(map[string]bool, len(config.Items))
	for _, def := range config.Items {
		if seen[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, def.Name)
		}
		seen[def.Name] = true

		if !def.Type.Valid() {
			return fmt.Errorf(ErrFmtUnknownItemType, ErrInvalidConfig, def.Name, def.Type)
		}
		if def.Consumable != (def.Type == domain.ItemTypeConsumable) {
			return fmt.Errorf(ErrFmtConsumableType, ErrInvalidConfig, def.Name, def.Type)
		}
	}
	return nil
}

// NewCatalog builds a catalog from already-validated definitions
func NewCatalog(defs []Def) *Catalog {
	items := make([]domain.InventoryItem, 0, len(defs))
	byName := make(map[string]domain.InventoryItem, len(defs))

	for _, def := range defs {
		item := domain.InventoryItem{
			Name:          def.Name,
			Description:   def.Description,
			Type:          def.Type,
			Rarity:        def.Rarity,
			RequiredLevel: def.RequiredLevel,
			AllowedClass:  def.AllowedClass,
			Consumable:    def.Consumable,
			HPBonus:       def.HPBonus,
			MPBonus:       def.MPBonus,
			AttackBonus:   def.AttackBonus,
			DefenseBonus:  def.DefenseBonus,
			GoldValue:     def.GoldValue,
			StackSize:     1,
		}
		items = append(items, item)
		byName[item.Name] = item
	}

	// Browsing order: rarity ascending, then price
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rarity.Order() != items[j].Rarity.Order() {
			return items[i].Rarity.Order() < items[j].Rarity.Order()
		}
		return items[i].GoldValue < items[j].GoldValue
	})

	return &Catalog{items: items, byName: byName}
}

// ByName looks up a catalog entry by its exact name
func (c *Catalog) ByName(name string) (domain.InventoryItem, bool) {
	item, ok := c.byName[name]
	return item, ok
}

// Items returns the catalog filtered by shop category. ShopCategoryAll
// returns everything.
func (c *Catalog) Items(category domain.ShopCategory) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(c.items))
	for _, item := range c.items {
		if category == domain.ShopCategoryAll || item.Type.Category() == category {
			out = append(out, item)
		}
	}
	return out
}

// ItemsForClass returns the category-filtered catalog narrowed to entries
// the given class could ever use
func (c *Catalog) ItemsForClass(category domain.ShopCategory, class domain.Class) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(c.items))
	for _, item := range c.Items(category) {
		if item.AllowedClass == domain.AllowedClassAny || domain.Class(item.AllowedClass) == class {
			out = append(out, item)
		}
	}
	return out
}

// Len reports the catalog size
func (c *Catalog) Len() int {
	return len(c.items)
}
