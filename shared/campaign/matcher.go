// shared/campaign/matcher.go
package campaign

import (
	"slices"
	"time"

	"github.com/questforge/profile-services/shared/models"
)

// IsEligible decides whether a player newly qualifies for a campaign. It is a
// pure predicate over the in-memory snapshots: no I/O, no mutation, and every
// disqualifying condition is a false return, never an error.
//
// Guards run in order and short-circuit: players already linked to the
// campaign are never re-evaluated, inactive campaigns never reach the
// criteria checks.
func IsEligible(player *models.Player, c *Campaign, now time.Time) bool {
	if player.HasCampaign(c.ID) {
		return false
	}
	if !c.ActiveAt(now) {
		return false
	}
	return matchesCriteria(player, c)
}

// matchesCriteria evaluates the campaign's matcher clauses against the player
// profile. All present clauses must pass; an absent clause passes.
func matchesCriteria(player *models.Player, c *Campaign) bool {
	m := c.Matchers

	if lv := m.Level; lv != nil {
		min := 1
		if lv.Min != nil {
			min = *lv.Min
		}
		if player.Level < min {
			return false
		}
		if lv.Max != nil && player.Level > *lv.Max {
			return false
		}
	}

	if has := m.Has; has != nil {
		if len(has.Country) > 0 && !slices.Contains(has.Country, player.Country) {
			return false
		}
		if len(has.Items) > 0 && !player.HasAllItems(has.Items) {
			return false
		}
	}

	if not := m.DoesNotHave; not != nil {
		if len(not.Items) > 0 && player.HasAnyItems(not.Items) {
			return false
		}
	}

	return true
}
