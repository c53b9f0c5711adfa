// shared/models/player.go
package models

import (
	"time"
)

// Clan is the player's clan reference, carried for profile completeness.
type Clan struct {
	ClanID string `bson:"clan_id" json:"clan_id"`
	Name   string `bson:"name" json:"name"`
}

// Device is one of the devices a player has logged in from.
type Device struct {
	DeviceID int    `bson:"device_id" json:"device_id"`
	Model    string `bson:"model" json:"model"`
	Carrier  string `bson:"carrier" json:"carrier"`
	Firmware string `bson:"firmware" json:"firmware"`
}

// CampaignRef is the durable link between a player and a campaign the player
// has been assigned to.
type CampaignRef struct {
	CampaignID string `bson:"campaign_id" json:"campaign_id"`
	Name       string `bson:"name" json:"name"`
}

// Player represents a player's profile document stored persistently in MongoDB.
// The aggregate owns its devices, inventory and campaign memberships by value;
// item names are resolved before the snapshot is built, so eligibility checks
// never query the database themselves.
type Player struct {
	PlayerID          string        `bson:"_id" json:"player_id"`
	Credential        string        `bson:"credential" json:"credential"`
	Created           *time.Time    `bson:"created,omitempty" json:"created"`
	Modified          *time.Time    `bson:"modified,omitempty" json:"modified"`
	LastSession       *time.Time    `bson:"last_session,omitempty" json:"last_session"`
	TotalSpent        float64       `bson:"total_spent" json:"total_spent"`
	TotalRefund       float64       `bson:"total_refund" json:"total_refund"`
	TotalTransactions int           `bson:"total_transactions" json:"total_transactions"`
	LastPurchase      *time.Time    `bson:"last_purchase,omitempty" json:"last_purchase"`
	Level             int           `bson:"level" json:"level"`
	XP                int           `bson:"xp" json:"xp"`
	TotalPlaytime     int           `bson:"total_playtime" json:"total_playtime"`
	Country           string        `bson:"country" json:"country"`
	Language          string        `bson:"language" json:"language"`
	Birthdate         *time.Time    `bson:"birthdate,omitempty" json:"birthdate"`
	Gender            string        `bson:"gender" json:"gender"`
	CustomField       string        `bson:"custom_field" json:"custom_field"`
	Clan              *Clan         `bson:"clan,omitempty" json:"clan"`
	Devices           []Device      `bson:"devices" json:"devices"`
	Inventory         map[string]int `bson:"inventory" json:"items"`
	Campaigns         []CampaignRef `bson:"campaigns" json:"campaigns"`
}

// HasAllItems reports whether the player possesses every named item with a
// quantity greater than zero. Vacuously true for an empty list.
func (p *Player) HasAllItems(names []string) bool {
	for _, name := range names {
		if p.Inventory[name] <= 0 {
			return false
		}
	}
	return true
}

// HasAnyItems reports whether the player possesses at least one of the named
// items with a quantity greater than zero. Vacuously false for an empty list.
func (p *Player) HasAnyItems(names []string) bool {
	for _, name := range names {
		if p.Inventory[name] > 0 {
			return true
		}
	}
	return false
}

// HasCampaign reports whether the player is already assigned to the campaign.
func (p *Player) HasCampaign(campaignID string) bool {
	for _, ref := range p.Campaigns {
		if ref.CampaignID == campaignID {
			return true
		}
	}
	return false
}

// AddCampaign links the player to a campaign. Adding an already-linked
// campaign id is a no-op, so the membership set never holds duplicates.
func (p *Player) AddCampaign(ref CampaignRef) {
	if p.HasCampaign(ref.CampaignID) {
		return
	}
	p.Campaigns = append(p.Campaigns, ref)
}
