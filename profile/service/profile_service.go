// profile/service/profile_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/profile-services/shared/campaign"
	"github.com/questforge/profile-services/shared/models"
	"go.mongodb.org/mongo-driver/mongo" // For checking specific MongoDB errors
)

// Custom errors for clear communication to the API layer
var (
	ErrPlayerNotFound      = fmt.Errorf("player not found")
	ErrPlayerAlreadyExists = fmt.Errorf("player profile already exists")
)

// PlayerStore is the persistence surface the profile service needs. The
// MongoDB store in profile/store satisfies it; tests use in-memory fakes.
type PlayerStore interface {
	GetPlayerByID(ctx context.Context, playerID string) (*models.Player, error)
	CreatePlayer(ctx context.Context, player *models.Player) error
	AssignCampaigns(ctx context.Context, playerID string, refs []models.CampaignRef) error
}

// ProfileService encapsulates the business logic for player profiles and
// campaign assignment.
type ProfileService struct {
	players   PlayerStore
	campaigns campaign.Source
	now       func() time.Time
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(players PlayerStore, campaigns campaign.Source) *ProfileService {
	return &ProfileService{
		players:   players,
		campaigns: campaigns,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetClientConfig loads a player profile, evaluates the currently active
// campaigns against it, persists any newly matched assignments, and returns
// the updated aggregate.
//
// All campaigns in one request are evaluated against a single instant, and
// the membership write happens at most once. An empty match list performs no
// write at all, so repeated calls over unchanged state are no-ops.
func (ps *ProfileService) GetClientConfig(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := ps.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("service failed to get player profile: %w", err)
	}

	active, err := ps.campaigns.ActiveCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to fetch active campaigns: %w", err)
	}

	now := ps.now()
	var matched []models.CampaignRef
	for i := range active {
		if campaign.IsEligible(player, &active[i], now) {
			matched = append(matched, models.CampaignRef{
				CampaignID: active[i].ID,
				Name:       active[i].Name,
			})
		}
	}

	if len(matched) > 0 {
		if err := ps.players.AssignCampaigns(ctx, player.PlayerID, matched); err != nil {
			return nil, fmt.Errorf("service failed to assign campaigns to player %s: %w", playerID, err)
		}
		for _, ref := range matched {
			player.AddCampaign(ref)
		}
		log.Printf("INFO: Assigned %d new campaign(s) to player %s.", len(matched), playerID)
	}

	return player, nil
}

// CreateProfile creates a new player profile. A player id is generated when
// none is supplied.
func (ps *ProfileService) CreateProfile(ctx context.Context, playerID, country, language string, level int) (*models.Player, error) {
	if playerID == "" {
		playerID = uuid.NewString()
	}
	now := ps.now()

	player := &models.Player{
		PlayerID:  playerID,
		Created:   &now,
		Modified:  &now,
		Level:     level,
		Country:   country,
		Language:  language,
		Devices:   []models.Device{},
		Inventory: map[string]int{},
		Campaigns: []models.CampaignRef{},
	}

	if err := ps.players.CreatePlayer(ctx, player); err != nil {
		if err.Error() == fmt.Sprintf("player profile %s already exists", playerID) {
			return nil, ErrPlayerAlreadyExists
		}
		return nil, fmt.Errorf("service failed to create player profile: %w", err)
	}

	return player, nil
}
