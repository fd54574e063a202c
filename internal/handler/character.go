package handler

import (
	"net/http"

	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// CreateCharacterRequest represents the request to create the save slot's character
type CreateCharacterRequest struct {
	Nickname string `json:"nickname" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Class    string `json:"class" validate:"required,class"`
}

// ResurrectRequest represents the request to resurrect a dead character
type ResurrectRequest struct {
	Class string `json:"class" validate:"required,class"`
}

// DeathResponse reports whether the active character is dead
type DeathResponse struct {
	Dead bool `json:"dead"`
}

// HandleCreateCharacter creates the single character of the save slot
// @Summary Create character
// @Description Create the save slot's character. Fails if one already exists.
// @Tags character
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /character [post]
func HandleCreateCharacter(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		c, err := svc.CreateCharacter(r.Context(), req.Nickname, req.Class)
		if err != nil {
			log.Error("Failed to create character", "error", err, "class", req.Class)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Character created", "character_id", c.ID, "class", c.Class)
		respondJSON(w, http.StatusCreated, DataResponse{Data: c})
	}
}

// HandleGetCharacter returns the active character
// @Summary Get character
// @Tags character
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /character [get]
func HandleGetCharacter(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetCharacter(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: c})
	}
}

// HandleListClasses returns the fixed class catalog
// @Summary List classes
// @Tags character
// @Produce json
// @Success 200 {object} DataResponse
// @Router /character/classes [get]
func HandleListClasses(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.Classes()})
	}
}

// HandleCheckDeath reports whether the character's HP has reached zero
// @Summary Check death
// @Tags character
// @Produce json
// @Success 200 {object} DeathResponse
// @Failure 404 {object} ErrorResponse
// @Router /character/death [get]
func HandleCheckDeath(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dead, err := svc.CheckCharacterDeath(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DeathResponse{Dead: dead})
	}
}

// HandleResurrect replaces the dead character with a fresh level 1 character
// @Summary Resurrect character
// @Description Rebuild the character at level 1 in the chosen class. The
// nickname survives, the inventory does not.
// @Tags character
// @Accept json
// @Produce json
// @Param request body ResurrectRequest true "New class"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /character/resurrect [post]
func HandleResurrect(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResurrectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resurrect character"); err != nil {
			return
		}

		c, err := svc.ResurrectCharacter(r.Context(), req.Class)
		if err != nil {
			log.Error("Failed to resurrect character", "error", err, "class", req.Class)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Character resurrected", "character_id", c.ID, "class", c.Class)
		respondJSON(w, http.StatusOK, DataResponse{Data: c})
	}
}
