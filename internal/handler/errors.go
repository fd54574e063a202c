package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Character operation error messages
	ErrMsgCreateCharacterFailed = "Failed to create character"
	ErrMsgGetCharacterFailed    = "Failed to get character"
	ErrMsgResurrectFailed       = "Failed to resurrect character"

	// Quest operation error messages
	ErrMsgCreateQuestFailed = "Failed to create quest"
	ErrMsgListQuestsFailed  = "Failed to list quests"
	ErrMsgQuestUpdateFailed = "Failed to update quest"
	ErrMsgDeleteQuestFailed = "Failed to delete quest"

	// Inventory operation error messages
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgEquipItemFailed    = "Failed to equip item"
	ErrMsgUnequipItemFailed  = "Failed to unequip item"
	ErrMsgUseItemFailed      = "Failed to use item"
	ErrMsgBuyItemFailed      = "Failed to buy item"
	ErrMsgGetCatalogFailed   = "Failed to get shop catalog"

	// Maintenance error messages
	ErrMsgMaintenanceFailed = "Failed to run daily maintenance"
)
