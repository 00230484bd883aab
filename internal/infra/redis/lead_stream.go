package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"lead-assessment-service/internal/domain"
)

// DefaultLeadStream is the stream downstream CRM workers consume.
const DefaultLeadStream = "assessment:leads"

// LeadStream publishes leads to a Redis stream.
type LeadStream struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewLeadStream publishes to stream, trimming it to roughly maxLen entries when maxLen > 0.
func NewLeadStream(client *redis.Client, stream string, maxLen int64) *LeadStream {
	if stream == "" {
		stream = DefaultLeadStream
	}
	return &LeadStream{client: client, stream: stream, maxLen: maxLen}
}

func (s *LeadStream) Submit(ctx context.Context, lead domain.Lead) error {
	answers, err := json.Marshal(lead.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"lead_id":          lead.ID,
			"session_id":       lead.SessionID,
			"questionnaire_id": lead.QuestionnaireID,
			"first_name":       lead.Identity.FirstName,
			"last_name":        lead.Identity.LastName,
			"email":            lead.Identity.Email,
			"phone":            lead.Identity.Phone,
			"business_type":    lead.Identity.BusinessType,
			"summary":          lead.Summary,
			"percentage":       strconv.Itoa(lead.Percentage),
			"tier":             string(lead.Tier),
			"answers":          string(answers),
			"submitted_at":     lead.SubmittedAt.UTC().Format(time.RFC3339),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish lead: %w", err)
	}
	return nil
}
