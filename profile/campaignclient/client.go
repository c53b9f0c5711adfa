// profile/campaignclient/client.go
package campaignclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/questforge/profile-services/shared/api"
	"github.com/questforge/profile-services/shared/campaign"
)

// Client is an HTTP-backed campaign.Source talking to the campaign service.
type Client struct {
	client *api.Client
}

// NewClient creates a campaign API client for the given base URL. Pass a nil
// httpClient to use the shared default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		client: api.NewClient(baseURL, httpClient),
	}
}

// ActiveCampaigns fetches the currently active campaign definitions from the
// campaign service. Entries are validated/deserialized by the wire types in
// the campaign package; a malformed payload is an error here, never a silent
// skip.
func (c *Client) ActiveCampaigns(ctx context.Context) ([]campaign.Campaign, error) {
	var campaigns []campaign.Campaign
	if err := c.client.Get(ctx, "/campaigns", &campaigns); err != nil {
		return nil, fmt.Errorf("failed to fetch active campaigns: %w", err)
	}
	return campaigns, nil
}
