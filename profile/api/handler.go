// profile/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/questforge/profile-services/profile/service"
	"github.com/questforge/profile-services/shared/api"
)

// ProfileAPIHandlers holds references to the services that handle business logic.
type ProfileAPIHandlers struct {
	ProfileService *service.ProfileService
}

// NewProfileAPIHandlers is the constructor for the API handlers.
func NewProfileAPIHandlers(ps *service.ProfileService) *ProfileAPIHandlers {
	return &ProfileAPIHandlers{
		ProfileService: ps,
	}
}

// --- Request/Response DTOs ---

type CreatePlayerRequest struct {
	PlayerID string `json:"player_id"`
	Country  string `json:"country"`
	Language string `json:"language"`
	Level    int    `json:"level"`
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}

// --- Handler Methods ---

// HealthcheckHandler reports service liveness.
// GET /
func (pah *ProfileAPIHandlers) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, HealthcheckResponse{Status: "ok"})
}

// GetClientConfigHandler returns a player's profile after evaluating and
// applying any newly matching campaigns.
// GET /get_client_config/{player_id}
func (pah *ProfileAPIHandlers) GetClientConfigHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["player_id"]
	if playerID == "" {
		api.WriteBadRequest(w, "Player id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	player, err := pah.ProfileService.GetClientConfig(ctx, playerID)
	if err != nil {
		switch err {
		case service.ErrPlayerNotFound:
			api.WriteNotFound(w, "Player not found")
		default:
			log.Printf("ERROR: Failed to build client config for player %s: %v", playerID, err)
			api.WriteInternalServerError(w, "Failed to build client config")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, player)
}

// CreatePlayerHandler handles requests to create a new player profile.
// POST /players
func (pah *ProfileAPIHandlers) CreatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Level < 0 {
		api.WriteBadRequest(w, "Level must be non-negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	player, err := pah.ProfileService.CreateProfile(ctx, req.PlayerID, req.Country, req.Language, req.Level)
	if err != nil {
		switch err {
		case service.ErrPlayerAlreadyExists:
			api.WriteError(w, http.StatusConflict, fmt.Sprintf("Player profile %s already exists", req.PlayerID))
		default:
			log.Printf("ERROR: Failed to create player profile: %v", err)
			api.WriteInternalServerError(w, "Failed to create player profile")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, player)
	log.Printf("INFO: Player profile %s created successfully.", player.PlayerID)
}

// RegisterRoutes registers all API endpoints for the profile service.
func (pah *ProfileAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", pah.HealthcheckHandler).Methods("GET")
	router.HandleFunc("/get_client_config/{player_id}", pah.GetClientConfigHandler).Methods("GET")
	router.HandleFunc("/players", pah.CreatePlayerHandler).Methods("POST")
}
