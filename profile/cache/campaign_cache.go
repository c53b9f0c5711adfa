// profile/cache/campaign_cache.go
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/questforge/profile-services/shared/campaign"
	"github.com/redis/go-redis/v9"
)

// ActiveCampaignsKey is the Redis key holding the cached campaign list.
const ActiveCampaignsKey = "campaigns:active"

// CachedSource wraps a campaign.Source with a Redis cache so the campaign
// backend is not hit on every profile fetch. Cache failures degrade to the
// underlying source and are only logged.
type CachedSource struct {
	source      campaign.Source
	redisClient *redis.ClusterClient
	ttl         time.Duration
}

// NewCachedSource creates a CachedSource over the given source.
func NewCachedSource(source campaign.Source, redisClient *redis.ClusterClient, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:      source,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// ActiveCampaigns returns the cached campaign list when present, otherwise
// fetches from the underlying source and refreshes the cache.
func (cs *CachedSource) ActiveCampaigns(ctx context.Context) ([]campaign.Campaign, error) {
	data, err := cs.redisClient.Get(ctx, ActiveCampaignsKey).Bytes()
	if err == nil {
		var campaigns []campaign.Campaign
		jsonErr := json.Unmarshal(data, &campaigns)
		if jsonErr == nil {
			return campaigns, nil
		}
		log.Printf("WARN: Discarding corrupt campaign cache entry: %v", jsonErr)
	} else if err != redis.Nil {
		log.Printf("WARN: Campaign cache read failed, falling through to source: %v", err)
	}

	campaigns, err := cs.source.ActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(campaigns); jsonErr == nil {
		if setErr := cs.redisClient.Set(ctx, ActiveCampaignsKey, data, cs.ttl).Err(); setErr != nil {
			log.Printf("WARN: Failed to cache active campaigns: %v", setErr)
		}
	}

	return campaigns, nil
}
