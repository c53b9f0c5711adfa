// campaigns/api/handler.go
package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/questforge/profile-services/shared/api"
	"github.com/questforge/profile-services/shared/campaign"
)

// CampaignAPIHandlers serves campaign definitions to consuming services.
type CampaignAPIHandlers struct {
	Source campaign.Source
}

// NewCampaignAPIHandlers is the constructor for the API handlers.
func NewCampaignAPIHandlers(source campaign.Source) *CampaignAPIHandlers {
	return &CampaignAPIHandlers{
		Source: source,
	}
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}

// HealthcheckHandler reports service liveness.
// GET /
func (cah *CampaignAPIHandlers) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, HealthcheckResponse{Status: "ok"})
}

// ListActiveCampaignsHandler returns the currently active campaign definitions.
// GET /campaigns
func (cah *CampaignAPIHandlers) ListActiveCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	campaigns, err := cah.Source.ActiveCampaigns(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to list active campaigns: %v", err)
		api.WriteInternalServerError(w, "Failed to list active campaigns")
		return
	}

	api.WriteJSON(w, http.StatusOK, campaigns)
}

// RegisterRoutes registers all API endpoints for the campaign service.
func (cah *CampaignAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", cah.HealthcheckHandler).Methods("GET")
	router.HandleFunc("/campaigns", cah.ListActiveCampaignsHandler).Methods("GET")
}
