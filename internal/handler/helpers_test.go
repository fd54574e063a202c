package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/shop"
)

func newGameService(t *testing.T) game.Service {
	t.Helper()
	catalog := shop.NewCatalog([]shop.Def{
		{Name: "Wooden Sword", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCommon,
			RequiredLevel: 1, AllowedClass: domain.AllowedClassWarrior, AttackBonus: 2, GoldValue: 50},
		{Name: "Health Potion", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon,
			RequiredLevel: 1, AllowedClass: domain.AllowedClassAny, Consumable: true, HPBonus: 30, GoldValue: 20},
	})
	return game.NewService(game.NewFakeStore(), catalog, event.NewMemoryBus())
}

func createTestCharacter(t *testing.T, svc game.Service) domain.Character {
	t.Helper()
	c, err := svc.CreateCharacter(context.Background(), "Brand", "WARRIOR")
	require.NoError(t, err)
	return c
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(payload))
	return buf
}

// doRequest runs a handler through a chi router so URL parameters resolve
func doRequest(t *testing.T, method, pattern, target string, body *bytes.Buffer, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(data []byte, out interface{}) error {
	return json.Unmarshal(data, out)
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
