package config

const (
	// Configuration file paths
	ConfigPathShopItems       = "configs/shop_items.json"
	ConfigPathShopItemsSchema = "configs/schemas/shop_items.schema.json"
)
