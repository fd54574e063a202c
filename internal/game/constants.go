package game

// Log Messages
const (
	LogMsgCharacterCreated     = "Character created"
	LogMsgCharacterResurrected = "Character resurrected"
	LogMsgCharacterDied        = "Character died"
	LogMsgQuestCreated         = "Quest created"
	LogMsgQuestDeleted         = "Quest deleted"
	LogMsgQuestNotTransitioned = "Quest transition refused, returning unchanged state"
	LogMsgItemTransitionNoOp   = "Item transition refused, returning unchanged state"
	LogMsgPurchaseRefused      = "Purchase refused, insufficient gold"
	LogMsgMaintenanceSkipped   = "Daily maintenance already ran today"
	LogMsgMaintenanceCompleted = "Daily maintenance completed"
	LogMsgEventPublishFailed   = "Failed to publish event"
)
