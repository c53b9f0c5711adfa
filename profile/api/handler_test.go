package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/questforge/profile-services/profile/service"
	"github.com/questforge/profile-services/shared/campaign"
	"github.com/questforge/profile-services/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubPlayerStore struct {
	players map[string]*models.Player
}

func (s *stubPlayerStore) GetPlayerByID(ctx context.Context, playerID string) (*models.Player, error) {
	p, ok := s.players[playerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (s *stubPlayerStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	s.players[player.PlayerID] = player
	return nil
}

func (s *stubPlayerStore) AssignCampaigns(ctx context.Context, playerID string, refs []models.CampaignRef) error {
	return nil
}

func newTestRouter(store service.PlayerStore, source campaign.Source) *mux.Router {
	handlers := NewProfileAPIHandlers(service.NewProfileService(store, source))
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	return router
}

// evergreenCampaign has no date bounds, so it is active at any wall-clock time.
func evergreenCampaign() campaign.Campaign {
	return campaign.Campaign{
		ID:      "c1",
		Name:    "spring promo",
		Enabled: true,
		Matchers: campaign.Matchers{
			Has: &campaign.HasClause{Items: []string{"Item 1"}},
		},
	}
}

func TestHealthcheckHandler(t *testing.T) {
	router := newTestRouter(&stubPlayerStore{players: map[string]*models.Player{}}, campaign.NewStaticSource())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf(`expected {"status":"ok"}, got %s`, rec.Body.String())
	}
}

func TestGetClientConfigHandlerPlayerNotFound(t *testing.T) {
	router := newTestRouter(&stubPlayerStore{players: map[string]*models.Player{}}, campaign.NewStaticSource())

	req := httptest.NewRequest(http.MethodGet, "/get_client_config/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Player not found" {
		t.Fatalf(`expected {"error":"Player not found"}, got %s`, rec.Body.String())
	}
}

func TestGetClientConfigHandlerReturnsUpdatedProfile(t *testing.T) {
	store := &stubPlayerStore{players: map[string]*models.Player{
		"player-1": {
			PlayerID:  "player-1",
			Level:     2,
			Country:   "RO",
			Inventory: map[string]int{"Item 1": 1},
			Campaigns: []models.CampaignRef{},
		},
	}}
	router := newTestRouter(store, campaign.NewStaticSource(evergreenCampaign()))

	req := httptest.NewRequest(http.MethodGet, "/get_client_config/player-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		PlayerID  string               `json:"player_id"`
		Items     map[string]int       `json:"items"`
		Campaigns []models.CampaignRef `json:"campaigns"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PlayerID != "player-1" {
		t.Fatalf("unexpected player id %q", body.PlayerID)
	}
	if body.Items["Item 1"] != 1 {
		t.Fatalf("expected inventory as name-to-quantity mapping, got %v", body.Items)
	}
	if len(body.Campaigns) != 1 || body.Campaigns[0].CampaignID != "c1" {
		t.Fatalf("expected newly assigned campaign c1, got %+v", body.Campaigns)
	}
}

func TestCreatePlayerHandler(t *testing.T) {
	store := &stubPlayerStore{players: map[string]*models.Player{}}
	router := newTestRouter(store, campaign.NewStaticSource())

	req := httptest.NewRequest(http.MethodPost, "/players",
		strings.NewReader(`{"country": "CA", "language": "fr", "level": 3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body models.Player
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PlayerID == "" {
		t.Fatalf("expected a generated player id in the response")
	}
	if _, ok := store.players[body.PlayerID]; !ok {
		t.Fatalf("expected profile to be persisted")
	}
}

func TestCreatePlayerHandlerRejectsBadBody(t *testing.T) {
	router := newTestRouter(&stubPlayerStore{players: map[string]*models.Player{}}, campaign.NewStaticSource())

	req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
