package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"lead-assessment-service/internal/domain"
)

type leadRow struct {
	bun.BaseModel `bun:"table:leads"`

	ID              string            `bun:"id,pk"`
	SessionID       string            `bun:"session_id"`
	QuestionnaireID string            `bun:"questionnaire_id"`
	FirstName       string            `bun:"first_name"`
	LastName        string            `bun:"last_name"`
	Email           string            `bun:"email"`
	Phone           string            `bun:"phone"`
	BusinessType    string            `bun:"business_type"`
	Summary         string            `bun:"summary"`
	Percentage      int               `bun:"percentage"`
	Tier            string            `bun:"tier"`
	Answers         map[string]string `bun:"answers,type:jsonb"`
	SubmittedAt     time.Time         `bun:"submitted_at"`
}

// LeadStore persists leads in the leads table.
type LeadStore struct {
	db *bun.DB
}

func NewLeadStore(db *bun.DB) *LeadStore {
	return &LeadStore{db: db}
}

// Submit inserts the lead. A repeated submission for the same session is ignored.
func (s *LeadStore) Submit(ctx context.Context, lead domain.Lead) error {
	row := &leadRow{
		ID:              lead.ID,
		SessionID:       lead.SessionID,
		QuestionnaireID: lead.QuestionnaireID,
		FirstName:       lead.Identity.FirstName,
		LastName:        lead.Identity.LastName,
		Email:           lead.Identity.Email,
		Phone:           lead.Identity.Phone,
		BusinessType:    lead.Identity.BusinessType,
		Summary:         lead.Summary,
		Percentage:      lead.Percentage,
		Tier:            string(lead.Tier),
		Answers:         lead.Answers,
		SubmittedAt:     lead.SubmittedAt,
	}
	if _, err := s.db.NewInsert().Model(row).On("CONFLICT (session_id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// ListLeads returns the most recent leads, newest first.
func (s *LeadStore) ListLeads(ctx context.Context, limit int) ([]domain.Lead, error) {
	var rows []leadRow
	if err := s.db.NewSelect().Model(&rows).Order("submitted_at DESC").Limit(limit).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	leads := make([]domain.Lead, 0, len(rows))
	for _, r := range rows {
		leads = append(leads, domain.Lead{
			ID:              r.ID,
			SessionID:       r.SessionID,
			QuestionnaireID: r.QuestionnaireID,
			Identity: domain.Identity{
				FirstName:    r.FirstName,
				LastName:     r.LastName,
				Email:        r.Email,
				Phone:        r.Phone,
				BusinessType: r.BusinessType,
			},
			Summary:     r.Summary,
			Percentage:  r.Percentage,
			Tier:        domain.Tier(r.Tier),
			Answers:     r.Answers,
			SubmittedAt: r.SubmittedAt,
		})
	}
	return leads, nil
}
