// shared/campaign/source.go
package campaign

import (
	"context"
	"time"
)

// Source supplies the currently active campaign definitions. The eligibility
// core depends only on this interface, so a network-backed implementation can
// replace the static one without touching the matcher.
type Source interface {
	ActiveCampaigns(ctx context.Context) ([]Campaign, error)
}

// StaticSource is an in-process Source serving a fixed set of definitions.
// It stands in for the real campaign backend in development and tests.
type StaticSource struct {
	campaigns []Campaign
}

// NewStaticSource returns a StaticSource over the given definitions. With no
// arguments it serves DefaultCampaigns().
func NewStaticSource(campaigns ...Campaign) *StaticSource {
	if len(campaigns) == 0 {
		campaigns = DefaultCampaigns()
	}
	return &StaticSource{campaigns: campaigns}
}

// ActiveCampaigns returns copies of the configured definitions.
func (s *StaticSource) ActiveCampaigns(ctx context.Context) ([]Campaign, error) {
	out := make([]Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out, nil
}

// DefaultCampaigns returns the built-in campaign fixtures.
func DefaultCampaigns() []Campaign {
	min := 1
	max := 3
	return []Campaign{
		{
			ID:       "campaign-005",
			Game:     "mygame",
			Name:     "mycampaign",
			Priority: 10.5,
			Matchers: Matchers{
				Level: &LevelRange{Min: &min, Max: &max},
				Has: &HasClause{
					Country: []string{"US", "RO", "CA"},
					Items:   []string{"Item 1"},
				},
				DoesNotHave: &ExclusionClause{
					Items: []string{"Item 4"},
				},
			},
			StartDate:   NewTimestamp(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)),
			EndDate:     NewTimestamp(time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)),
			Enabled:     true,
			LastUpdated: NewTimestamp(time.Date(2024, 7, 13, 11, 46, 58, 0, time.UTC)),
		},
	}
}
