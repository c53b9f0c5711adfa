package models

import "testing"

func TestHasAllItems(t *testing.T) {
	player := &Player{
		Inventory: map[string]int{
			"Sword":  1,
			"Shield": 0,
		},
	}

	tests := []struct {
		name  string
		items []string
		want  bool
	}{
		{name: "empty list is vacuously true", items: nil, want: true},
		{name: "possessed item", items: []string{"Sword"}, want: true},
		{name: "zero quantity counts as missing", items: []string{"Shield"}, want: false},
		{name: "unknown item", items: []string{"Bow"}, want: false},
		{name: "one missing fails the set", items: []string{"Sword", "Bow"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.HasAllItems(tt.items); got != tt.want {
				t.Fatalf("HasAllItems(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}

func TestHasAnyItems(t *testing.T) {
	player := &Player{
		Inventory: map[string]int{
			"Sword":  1,
			"Shield": 0,
		},
	}

	tests := []struct {
		name  string
		items []string
		want  bool
	}{
		{name: "empty list is vacuously false", items: nil, want: false},
		{name: "possessed item", items: []string{"Sword"}, want: true},
		{name: "zero quantity counts as missing", items: []string{"Shield"}, want: false},
		{name: "one possessed suffices", items: []string{"Bow", "Sword"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.HasAnyItems(tt.items); got != tt.want {
				t.Fatalf("HasAnyItems(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}

func TestHasCampaign(t *testing.T) {
	player := &Player{
		Campaigns: []CampaignRef{{CampaignID: "c1", Name: "promo"}},
	}

	if !player.HasCampaign("c1") {
		t.Fatalf("expected assigned campaign to be found")
	}
	if player.HasCampaign("c2") {
		t.Fatalf("expected unassigned campaign to be absent")
	}
}

func TestAddCampaignIsIdempotent(t *testing.T) {
	player := &Player{}
	ref := CampaignRef{CampaignID: "c1", Name: "promo"}

	player.AddCampaign(ref)
	player.AddCampaign(ref)

	if len(player.Campaigns) != 1 {
		t.Fatalf("expected 1 membership after duplicate add, got %d", len(player.Campaigns))
	}
}
