package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/game"
)

func createTestQuest(t *testing.T, svc game.Service, questType string) QuestView {
	t.Helper()
	req := CreateQuestRequest{
		Title:      "Test quest",
		Type:       questType,
		Difficulty: "MEDIUM",
	}
	if questType == "DAILY" {
		req.Weekdays = []int{1, 3, 5}
	}

	w := doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, req), HandleCreateQuest(svc))
	require.Equal(t, http.StatusCreated, w.Code)

	var view QuestView
	decodeData(t, w, &view)
	return view
}

func TestHandleCreateQuest(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)

	habit := createTestQuest(t, svc, "HABIT")
	assert.Equal(t, domain.QuestTypeHabit, habit.Type)
	assert.Equal(t, 25, habit.ExpReward)

	daily := createTestQuest(t, svc, "DAILY")
	assert.Equal(t, domain.QuestTypeDaily, daily.Type)
	require.NotNil(t, daily.Daily)
	assert.Len(t, daily.Daily.Weekdays, 3)
}

func TestHandleCreateQuestValidation(t *testing.T) {
	svc := newGameService(t)

	tests := []struct {
		name string
		req  CreateQuestRequest
	}{
		{"missing title", CreateQuestRequest{Type: "TASK", Difficulty: "EASY"}},
		{"bad type", CreateQuestRequest{Title: "x", Type: "CHORE", Difficulty: "EASY"}},
		{"bad difficulty", CreateQuestRequest{Title: "x", Type: "TASK", Difficulty: "NIGHTMARE"}},
		{"bad weekday", CreateQuestRequest{Title: "x", Type: "DAILY", Difficulty: "EASY", Weekdays: []int{9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, tt.req), HandleCreateQuest(svc))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleCreateDailyWithoutWeekdays(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)

	req := CreateQuestRequest{Title: "Workout", Type: "DAILY", Difficulty: "EASY"}
	w := doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, req), HandleCreateQuest(svc))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoWeekdaysError)
}

func TestHandleListQuestsProjections(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)

	deadline := time.Now().AddDate(0, 0, 3)
	req := CreateQuestRequest{Title: "Taxes", Type: "TASK", Difficulty: "HARD", Deadline: &deadline}
	w := doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, req), HandleCreateQuest(svc))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, http.MethodGet, "/quests", "/quests", nil, HandleListQuests(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var views []QuestView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].DaysLeft)
	assert.Equal(t, 4, *views[0].DaysLeft, "today counts as a remaining day")
}

func TestHandleListQuestsDailyStatus(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)

	offDay := (int(time.Now().Weekday()) + 1) % 7
	active := CreateQuestRequest{Title: "Morning run", Type: "DAILY", Difficulty: "EASY", Weekdays: []int{0, 1, 2, 3, 4, 5, 6}}
	inactive := CreateQuestRequest{Title: "Stretch", Type: "DAILY", Difficulty: "EASY", Weekdays: []int{offDay}}

	w := doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, active), HandleCreateQuest(svc))
	require.Equal(t, http.StatusCreated, w.Code)
	var activeView QuestView
	decodeData(t, w, &activeView)

	w = doRequest(t, http.MethodPost, "/quests", "/quests", jsonBody(t, inactive), HandleCreateQuest(svc))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, http.MethodGet, "/quests", "/quests", nil, HandleListQuests(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var views []QuestView
	decodeData(t, w, &views)
	require.Len(t, views, 2)

	byTitle := make(map[string]QuestView, len(views))
	for _, v := range views {
		byTitle[v.Title] = v
	}
	require.NotNil(t, byTitle["Morning run"].DailyStatus)
	assert.Equal(t, domain.DailyStatusPending, *byTitle["Morning run"].DailyStatus)
	require.NotNil(t, byTitle["Stretch"].DailyStatus)
	assert.Equal(t, domain.DailyStatusInactive, *byTitle["Stretch"].DailyStatus)

	w = doRequest(t, http.MethodPost, "/quests/{questID}/complete", "/quests/"+activeView.ID+"/complete", nil, HandleCompleteQuest(svc))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, http.MethodGet, "/quests", "/quests", nil, HandleListQuests(svc))
	require.Equal(t, http.StatusOK, w.Code)
	views = views[:0]
	decodeData(t, w, &views)
	for _, v := range views {
		if v.Title == "Morning run" {
			require.NotNil(t, v.DailyStatus)
			assert.Equal(t, domain.DailyStatusCompleted, *v.DailyStatus)
		}
	}
}

func TestHandleCompleteQuest(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)
	q := createTestQuest(t, svc, "TASK")

	w := doRequest(t, http.MethodPost, "/quests/{questID}/complete", "/quests/"+q.ID+"/complete", nil, HandleCompleteQuest(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuestTransitionResponse
	require.NoError(t, decodeJSON(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.True(t, resp.Quest.Completed)
	assert.Equal(t, 25, resp.Character.Exp)

	// A second completion is a refused no-op, not an error
	w = doRequest(t, http.MethodPost, "/quests/{questID}/complete", "/quests/"+q.ID+"/complete", nil, HandleCompleteQuest(svc))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, decodeJSON(w.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
}

func TestHandleFailQuest(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)
	q := createTestQuest(t, svc, "TASK")

	w := doRequest(t, http.MethodPost, "/quests/{questID}/fail", "/quests/"+q.ID+"/fail", nil, HandleFailQuest(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuestTransitionResponse
	require.NoError(t, decodeJSON(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.True(t, resp.Quest.Failed)
	assert.Equal(t, 135, resp.Character.CurrentHP)
}

func TestHandleHabitIncrement(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)
	q := createTestQuest(t, svc, "HABIT")

	w := doRequest(t, http.MethodPost, "/quests/{questID}/increment", "/quests/"+q.ID+"/increment", nil, HandleIncrementHabit(svc))
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuestTransitionResponse
	require.NoError(t, decodeJSON(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	require.NotNil(t, resp.Quest.Habit)
	assert.Equal(t, 1, resp.Quest.Habit.Counter)
}

func TestHandleHabitIncrementWrongType(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)
	q := createTestQuest(t, svc, "TASK")

	w := doRequest(t, http.MethodPost, "/quests/{questID}/increment", "/quests/"+q.ID+"/increment", nil, HandleIncrementHabit(svc))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgWrongQuestTypeError)
}

func TestHandleDeleteQuest(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)
	q := createTestQuest(t, svc, "TASK")

	w := doRequest(t, http.MethodDelete, "/quests/{questID}", "/quests/"+q.ID, nil, HandleDeleteQuest(svc))
	require.Equal(t, http.StatusOK, w.Code)

	quests, err := svc.ListQuests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quests)
}

func TestHandleDeleteQuestNotFound(t *testing.T) {
	svc := newGameService(t)
	createTestCharacter(t, svc)

	w := doRequest(t, http.MethodDelete, "/quests/{questID}", "/quests/nope", nil, HandleDeleteQuest(svc))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
