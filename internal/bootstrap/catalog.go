package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/hexlab-games/habitquest/internal/config"
	"github.com/hexlab-games/habitquest/internal/shop"
	"github.com/hexlab-games/habitquest/internal/validation"
)

// LoadShopCatalog validates the shop item definitions against their JSON
// schema and loads them. The catalog is immutable after load.
func LoadShopCatalog() (*shop.Catalog, error) {
	schemaValidator := validation.NewSchemaValidator()
	if err := schemaValidator.ValidateFile(config.ConfigPathShopItems, config.ConfigPathShopItemsSchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	catalog, err := shop.Load(config.ConfigPathShopItems)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgShopCatalogLoaded, "items", catalog.Len(), "path", config.ConfigPathShopItems)
	return catalog, nil
}
