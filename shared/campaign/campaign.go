// shared/campaign/campaign.go
package campaign

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the wire format used by the campaign API:
// "YYYY-MM-DD HH:MM:SS±HHMM". Go's Z0700 layout element also accepts a
// literal "Z" for UTC.
const timestampLayout = "2006-01-02 15:04:05Z0700"

// naiveLayout covers values that carry no timezone at all; those are taken
// as already expressed in UTC.
const naiveLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time with the campaign API's JSON wire format.
type Timestamp struct {
	time.Time
}

// NewTimestamp is a convenience constructor used by sources and tests.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", ts.UTC().Format(timestampLayout))), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		// Fall back to a naive value lacking a timezone, interpreted as UTC.
		t, err = time.ParseInLocation(naiveLayout, s, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid campaign timestamp %q: %w", s, err)
		}
	}
	ts.Time = t
	return nil
}

// LevelRange bounds the player level, inclusive on both ends. A nil Min
// defaults to 1; a nil Max is unbounded.
type LevelRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// HasClause lists attributes the player must have. Empty lists are no
// constraint.
type HasClause struct {
	Country []string `json:"country,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// ExclusionClause lists items the player must not possess.
type ExclusionClause struct {
	Items []string `json:"items,omitempty"`
}

// Matchers is a campaign's structured rule set. Every field is optional;
// absence means "no constraint for that field", never an error.
type Matchers struct {
	Level       *LevelRange      `json:"level,omitempty"`
	Has         *HasClause       `json:"has,omitempty"`
	DoesNotHave *ExclusionClause `json:"does_not_have,omitempty"`
}

// Campaign is an immutable campaign definition sourced from the campaign API.
// The matcher never mutates it.
type Campaign struct {
	ID          string     `json:"id"`
	Game        string     `json:"game"`
	Name        string     `json:"name"`
	Priority    float64    `json:"priority"`
	Matchers    Matchers   `json:"matchers"`
	StartDate   *Timestamp `json:"start_date,omitempty"`
	EndDate     *Timestamp `json:"end_date,omitempty"`
	Enabled     bool       `json:"enabled"`
	LastUpdated *Timestamp `json:"last_updated,omitempty"`
}

// ActiveAt reports whether the campaign is live at the given instant.
// Disabled campaigns are never active. Date filtering applies only when BOTH
// bounds are present (inclusive on both ends); a campaign with a single bound
// set applies no date filter at all.
func (c *Campaign) ActiveAt(now time.Time) bool {
	if !c.Enabled {
		return false
	}
	if c.StartDate == nil || c.EndDate == nil {
		return true
	}
	return !now.Before(c.StartDate.Time) && !now.After(c.EndDate.Time)
}
