package handler

import (
	"net/http"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// MaintenanceResponse reports the outcome of the daily maintenance sweep
type MaintenanceResponse struct {
	Ran              bool             `json:"ran"`
	QuestsTouched    int              `json:"quests_touched"`
	PenaltiesApplied int              `json:"penalties_applied"`
	Character        domain.Character `json:"character"`
}

// HandleRunMaintenance triggers the once-per-day maintenance sweep. The call
// is idempotent within a calendar day; clients may fire it on every launch.
// @Summary Run daily maintenance
// @Tags maintenance
// @Produce json
// @Success 200 {object} MaintenanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /maintenance/run [post]
func HandleRunMaintenance(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		res, err := svc.PerformDailyMaintenanceIfNeeded(r.Context())
		if err != nil {
			log.Error("Failed to run daily maintenance", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if res.Ran {
			log.Info("Daily maintenance ran",
				"quests_touched", res.QuestsTouched,
				"penalties", res.PenaltiesApplied)
		}

		respondJSON(w, http.StatusOK, MaintenanceResponse{
			Ran:              res.Ran,
			QuestsTouched:    res.QuestsTouched,
			PenaltiesApplied: res.PenaltiesApplied,
			Character:        res.Character,
		})
	}
}
