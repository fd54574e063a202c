package shop

// Configuration file names
const (
	// ConfigFileName is the name of the shop catalog configuration file
	ConfigFileName = "shop_items.json"
)

// Error Messages
const (
	ErrMsgReadConfigFileFailed = "failed to read shop config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse shop config: %w"
	ErrMsgValidateFailed       = "shop config validation failed: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for error construction
const (
	ErrFmtDuplicateName   = "%w: duplicate item name '%s'"
	ErrFmtUnknownItemType = "%w: item '%s' has unknown type '%s'"
	ErrFmtConsumableType  = "%w: item '%s' marks consumable but has type '%s'"
)

// Log Messages
const (
	LogMsgCatalogLoaded = "Shop catalog loaded"
)
