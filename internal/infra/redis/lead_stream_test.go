package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"lead-assessment-service/internal/domain"
)

func TestLeadStreamPublishes(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	client := newClient(mr)
	stream := NewLeadStream(client, "", 0)

	lead := domain.Lead{
		ID:          "l1",
		SessionID:   "s1",
		Identity:    domain.Identity{FirstName: "Jane", Email: "jane@example.com"},
		Summary:     "Assessment completed. Score: 40%. Answers: website: yes",
		Percentage:  40,
		Tier:        domain.TierIntermediate,
		Answers:     map[string]string{"website": "yes"},
		SubmittedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := stream.Submit(ctx, lead); err != nil {
		t.Fatalf("submit: %v", err)
	}

	entries, err := client.XRange(ctx, DefaultLeadStream, "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	values := entries[0].Values
	if values["email"] != "jane@example.com" || values["tier"] != "intermediate" || values["percentage"] != "40" {
		t.Fatalf("unexpected entry %+v", values)
	}
	if values["answers"] != `{"website":"yes"}` {
		t.Fatalf("unexpected answers %v", values["answers"])
	}
}
