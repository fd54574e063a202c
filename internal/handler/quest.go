package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// CreateQuestRequest represents the request to create a quest of any type
type CreateQuestRequest struct {
	Title       string   `json:"title" validate:"required,max=200,excludesall=\x00"`
	Description string   `json:"description" validate:"max=2000"`
	Type        string   `json:"type" validate:"required,oneof=HABIT DAILY TASK"`
	Difficulty  string   `json:"difficulty" validate:"required,difficulty"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=50"`

	// Weekdays applies to DAILY quests: 0 (Sunday) through 6 (Saturday)
	Weekdays []int `json:"weekdays" validate:"max=7,dive,weekday"`

	// Deadline applies to TASK quests
	Deadline *time.Time `json:"deadline"`
}

// QuestView is a quest enriched with display projections
type QuestView struct {
	domain.Quest

	// DaysLeft is set for tasks with a deadline and counts today; it
	// bottoms out at zero once the deadline has passed
	DaysLeft *int `json:"days_left,omitempty"`

	// DueToday is set for dailies: scheduled today and not yet completed
	DueToday *bool `json:"due_today,omitempty"`

	// DailyStatus is set for dailies: the display status for today
	DailyStatus *domain.DailyStatus `json:"daily_status,omitempty"`
}

// QuestTransitionResponse reports the outcome of a quest state transition
type QuestTransitionResponse struct {
	Applied   bool             `json:"applied"`
	Quest     domain.Quest     `json:"quest"`
	Character domain.Character `json:"character"`
}

func newQuestView(q domain.Quest, now time.Time) QuestView {
	view := QuestView{Quest: q}
	switch {
	case q.Type == domain.QuestTypeTask && q.Task != nil && q.Task.Deadline != nil:
		days := domain.DaysUntilDeadline(*q.Task.Deadline, now)
		view.DaysLeft = &days
	case q.Type == domain.QuestTypeDaily && q.Daily != nil:
		due := q.Daily.ActiveOn(now) && !q.Completed
		view.DueToday = &due
		status := q.StatusOn(now)
		view.DailyStatus = &status
	}
	return view
}

func toQuestInput(req CreateQuestRequest) game.QuestInput {
	weekdays := make([]time.Weekday, 0, len(req.Weekdays))
	for _, d := range req.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return game.QuestInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Tags:        req.Tags,
		Weekdays:    weekdays,
		Deadline:    req.Deadline,
	}
}

// HandleCreateQuest creates a habit, daily or task quest
// @Summary Create quest
// @Tags quests
// @Accept json
// @Produce json
// @Param request body CreateQuestRequest true "Quest details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /quests [post]
func HandleCreateQuest(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
			return
		}

		in := toQuestInput(req)

		var (
			q   domain.Quest
			err error
		)
		switch domain.QuestType(req.Type) {
		case domain.QuestTypeHabit:
			q, err = svc.AddHabit(r.Context(), in)
		case domain.QuestTypeDaily:
			q, err = svc.AddDaily(r.Context(), in)
		case domain.QuestTypeTask:
			q, err = svc.AddTask(r.Context(), in)
		default:
			err = domain.ErrInvalidQuestType
		}
		if err != nil {
			log.Error("Failed to create quest", "error", err, "type", req.Type)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Quest created", "quest_id", q.ID, "type", q.Type)
		respondJSON(w, http.StatusCreated, DataResponse{Data: newQuestView(q, time.Now())})
	}
}

// HandleListQuests lists every quest with display projections
// @Summary List quests
// @Tags quests
// @Produce json
// @Success 200 {object} DataResponse
// @Router /quests [get]
func HandleListQuests(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quests, err := svc.ListQuests(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list quests", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListQuestsFailed)
			return
		}

		now := time.Now()
		views := make([]QuestView, 0, len(quests))
		for _, q := range quests {
			views = append(views, newQuestView(q, now))
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// questTransitionHandler wraps the shared flow of the quest state commands
func questTransitionHandler(transition func(r *http.Request, questID string) (*game.QuestResult, error), actionName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		questID := chi.URLParam(r, "questID")

		res, err := transition(r, questID)
		if err != nil {
			log.Error("Quest transition failed", "error", err, "action", actionName, "quest_id", questID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if !res.Applied {
			log.Debug("Quest transition refused", "action", actionName, "quest_id", questID)
		}

		respondJSON(w, http.StatusOK, QuestTransitionResponse{
			Applied:   res.Applied,
			Quest:     res.Quest,
			Character: res.Character,
		})
	}
}

// HandleCompleteQuest marks a quest completed and awards its rewards
// @Summary Complete quest
// @Tags quests
// @Produce json
// @Success 200 {object} QuestTransitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /quests/{questID}/complete [post]
func HandleCompleteQuest(svc game.Service) http.HandlerFunc {
	return questTransitionHandler(func(r *http.Request, questID string) (*game.QuestResult, error) {
		return svc.CompleteQuest(r.Context(), questID)
	}, "Complete quest")
}

// HandleFailQuest marks a quest failed and applies its penalty
// @Summary Fail quest
// @Tags quests
// @Produce json
// @Success 200 {object} QuestTransitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /quests/{questID}/fail [post]
func HandleFailQuest(svc game.Service) http.HandlerFunc {
	return questTransitionHandler(func(r *http.Request, questID string) (*game.QuestResult, error) {
		return svc.FailQuest(r.Context(), questID)
	}, "Fail quest")
}

// HandleIncrementHabit counts a positive habit repetition
// @Summary Increment habit
// @Tags quests
// @Produce json
// @Success 200 {object} QuestTransitionResponse
// @Failure 400 {object} ErrorResponse
// @Router /quests/{questID}/increment [post]
func HandleIncrementHabit(svc game.Service) http.HandlerFunc {
	return questTransitionHandler(func(r *http.Request, questID string) (*game.QuestResult, error) {
		return svc.IncrementHabit(r.Context(), questID)
	}, "Increment habit")
}

// HandleDecrementHabit counts a negative habit repetition
// @Summary Decrement habit
// @Tags quests
// @Produce json
// @Success 200 {object} QuestTransitionResponse
// @Failure 400 {object} ErrorResponse
// @Router /quests/{questID}/decrement [post]
func HandleDecrementHabit(svc game.Service) http.HandlerFunc {
	return questTransitionHandler(func(r *http.Request, questID string) (*game.QuestResult, error) {
		return svc.DecrementHabit(r.Context(), questID)
	}, "Decrement habit")
}

// HandleDeleteQuest removes a quest without reward or penalty
// @Summary Delete quest
// @Tags quests
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /quests/{questID} [delete]
func HandleDeleteQuest(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		questID := chi.URLParam(r, "questID")

		if err := svc.DeleteQuest(r.Context(), questID); err != nil {
			log.Error("Failed to delete quest", "error", err, "quest_id", questID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Quest deleted", "quest_id", questID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Quest deleted"})
	}
}
