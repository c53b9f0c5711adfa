// profile/store/player_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/questforge/profile-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlayerStore represents the MongoDB data store for player profiles.
type PlayerStore struct {
	collection *mongo.Collection
}

// NewPlayerStore creates a new PlayerStore instance.
// The mongo.Collection comes from the shared/mongodb client.
func NewPlayerStore(collection *mongo.Collection) *PlayerStore {
	return &PlayerStore{
		collection: collection,
	}
}

// CreatePlayer inserts a new player document (profile) into the collection.
func (ps *PlayerStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	_, err := ps.collection.InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("player profile %s already exists", player.PlayerID)
		}
		return fmt.Errorf("failed to create player profile %s: %w", player.PlayerID, err)
	}
	return nil
}

// GetPlayerByID retrieves a player profile by its external player id.
func (ps *PlayerStore) GetPlayerByID(ctx context.Context, playerID string) (*models.Player, error) {
	var profile models.Player
	filter := bson.M{"_id": playerID}
	err := ps.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		return nil, err // Returns mongo.ErrNoDocuments if not found
	}
	if profile.Inventory == nil {
		profile.Inventory = map[string]int{}
	}
	return &profile, nil
}

// AssignCampaigns links the player to each campaign in refs. The whole
// membership mutation is a single document update ($addToSet with $each), so
// it commits atomically and re-applying the same refs never creates
// duplicates.
func (ps *PlayerStore) AssignCampaigns(ctx context.Context, playerID string, refs []models.CampaignRef) error {
	if len(refs) == 0 {
		return nil
	}
	filter := bson.M{"_id": playerID}
	update := bson.M{
		"$addToSet": bson.M{"campaigns": bson.M{"$each": refs}},
		"$set":      bson.M{"modified": time.Now().UTC()},
	}
	res, err := ps.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to assign campaigns to player %s: %w", playerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("player %s not found for campaign assignment", playerID)
	}
	return nil
}
