package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// BuyItemRequest represents the request to buy a catalog item
type BuyItemRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// BuyItemResponse reports the outcome of a purchase attempt
type BuyItemResponse struct {
	Bought bool `json:"bought"`
}

// ItemTransitionResponse reports the outcome of an equip/unequip/use command
type ItemTransitionResponse struct {
	Applied   bool             `json:"applied"`
	Character domain.Character `json:"character"`
}

// HandleGetInventory lists the character's inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetInventory(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get inventory", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetEquipped lists only the currently equipped items
// @Summary Get equipped items
// @Tags inventory
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/equipped [get]
func HandleGetEquipped(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetEquippedItems(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get equipped items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// itemTransitionHandler wraps the shared flow of the item state commands
func itemTransitionHandler(transition func(r *http.Request, itemID string) (*game.ItemResult, error), actionName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		itemID := chi.URLParam(r, "itemID")

		res, err := transition(r, itemID)
		if err != nil {
			log.Error("Item transition failed", "error", err, "action", actionName, "item_id", itemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if !res.Applied {
			log.Debug("Item transition refused", "action", actionName, "item_id", itemID)
		}

		respondJSON(w, http.StatusOK, ItemTransitionResponse{
			Applied:   res.Applied,
			Character: res.Character,
		})
	}
}

// HandleEquipItem equips an owned item, swapping out any same-slot equipment
// @Summary Equip item
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemTransitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{itemID}/equip [post]
func HandleEquipItem(svc game.Service) http.HandlerFunc {
	return itemTransitionHandler(func(r *http.Request, itemID string) (*game.ItemResult, error) {
		return svc.EquipItem(r.Context(), itemID)
	}, "Equip item")
}

// HandleUnequipItem removes an equipped item
// @Summary Unequip item
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemTransitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{itemID}/unequip [post]
func HandleUnequipItem(svc game.Service) http.HandlerFunc {
	return itemTransitionHandler(func(r *http.Request, itemID string) (*game.ItemResult, error) {
		return svc.UnequipItem(r.Context(), itemID)
	}, "Unequip item")
}

// HandleUseConsumable consumes one dose of a consumable item
// @Summary Use consumable
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemTransitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{itemID}/use [post]
func HandleUseConsumable(svc game.Service) http.HandlerFunc {
	return itemTransitionHandler(func(r *http.Request, itemID string) (*game.ItemResult, error) {
		return svc.UseConsumable(r.Context(), itemID)
	}, "Use consumable")
}

// HandleBuyItem buys a shop catalog item by name
// @Summary Buy item
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyItemRequest true "Item name"
// @Success 200 {object} BuyItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/buy [post]
func HandleBuyItem(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		bought, err := svc.BuyItem(r.Context(), req.ItemName)
		if err != nil {
			log.Error("Failed to buy item", "error", err, "item", req.ItemName)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if bought {
			log.Info("Item bought", "item", req.ItemName)
		}
		respondJSON(w, http.StatusOK, BuyItemResponse{Bought: bought})
	}
}

// HandleShopCatalog returns the shop catalog. The category query parameter
// defaults to ALL; with an active character the catalog narrows to items the
// character's class can use.
// @Summary Shop catalog
// @Tags shop
// @Produce json
// @Param category query string false "WEAPONS, ARMOR, ACCESSORIES, CONSUMABLES or ALL"
// @Success 200 {object} DataResponse
// @Router /shop [get]
func HandleShopCatalog(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := domain.ShopCategory(r.URL.Query().Get("category"))
		if category == "" {
			category = domain.ShopCategoryAll
		}

		items, err := svc.ShopCatalog(r.Context(), category)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get shop catalog", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetCatalogFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}
