package campaignclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestActiveCampaignsDecodesWireFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaigns" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "campaign-005",
			"game": "mygame",
			"name": "mycampaign",
			"priority": 10.5,
			"matchers": {
				"level": {"min": 1, "max": 3},
				"has": {"country": ["US", "RO", "CA"], "items": ["Item 1"]},
				"does_not_have": {"items": ["Item 4"]}
			},
			"start_date": "2024-01-25 00:00:00Z",
			"end_date": "2026-02-25 00:00:00Z",
			"enabled": true,
			"last_updated": "2024-07-13 11:46:58Z"
		}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	campaigns, err := client.ActiveCampaigns(context.Background())
	if err != nil {
		t.Fatalf("active campaigns: %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(campaigns))
	}

	c := campaigns[0]
	if c.ID != "campaign-005" || !c.Enabled {
		t.Fatalf("unexpected campaign: %+v", c)
	}
	if c.StartDate == nil || !c.StartDate.Equal(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date: %v", c.StartDate)
	}
	if c.Matchers.Has == nil || c.Matchers.Has.Items[0] != "Item 1" {
		t.Fatalf("unexpected has clause: %+v", c.Matchers.Has)
	}
}

func TestActiveCampaignsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	if _, err := client.ActiveCampaigns(context.Background()); err == nil {
		t.Fatalf("expected error on server failure")
	}
}

func TestActiveCampaignsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"start_date": "not a date"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	if _, err := client.ActiveCampaigns(context.Background()); err == nil {
		t.Fatalf("expected error for malformed campaign payload")
	}
}
