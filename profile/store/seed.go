// profile/store/seed.go
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/questforge/profile-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SamplePlayerID is the external id of the seeded development profile.
const SamplePlayerID = "97983be2-98b7-11e7-90cf-082e5f28d836"

// EnsureSamplePlayerExists upserts the sample player profile used in local
// development. Existing documents are left untouched.
func (ps *PlayerStore) EnsureSamplePlayerExists(ctx context.Context) error {
	player := samplePlayer()

	filter := bson.M{"_id": player.PlayerID}
	update := bson.M{"$setOnInsert": player}
	opts := options.Update().SetUpsert(true)

	result, err := ps.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert sample player %s: %w", player.PlayerID, err)
	}
	if result.UpsertedID != nil {
		log.Printf("INFO: Seeded sample player profile %s.", player.PlayerID)
	}
	return nil
}

func samplePlayer() *models.Player {
	created := time.Date(2021, 1, 10, 13, 37, 17, 0, time.UTC)
	modified := time.Date(2021, 1, 23, 13, 37, 17, 0, time.UTC)
	lastSession := time.Date(2021, 1, 23, 13, 37, 17, 0, time.UTC)
	lastPurchase := time.Date(2021, 1, 22, 13, 37, 17, 0, time.UTC)
	birthdate := time.Date(2000, 1, 10, 13, 37, 17, 0, time.UTC)

	return &models.Player{
		PlayerID:          SamplePlayerID,
		Credential:        "apple_credential",
		Created:           &created,
		Modified:          &modified,
		LastSession:       &lastSession,
		TotalSpent:        400,
		TotalRefund:       0,
		TotalTransactions: 5,
		LastPurchase:      &lastPurchase,
		Level:             3,
		XP:                1000,
		TotalPlaytime:     144,
		Country:           "CA",
		Language:          "fr",
		Birthdate:         &birthdate,
		Gender:            "male",
		CustomField:       "mycustom",
		Clan: &models.Clan{
			ClanID: "123456",
			Name:   "Hello world clan",
		},
		Devices: []models.Device{
			{
				DeviceID: 1,
				Model:    "apple iphone 11",
				Carrier:  "vodafone",
				Firmware: "123",
			},
		},
		Inventory: map[string]int{
			"Cash":    1,
			"Coins":   1,
			"Item 1":  1,
			"Item 34": 1,
			"Item 55": 1,
		},
		Campaigns: []models.CampaignRef{},
	}
}
