package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"lead-assessment-service/internal/domain"
)

type questionnaireRow struct {
	bun.BaseModel `bun:"table:questionnaires"`

	ID        string               `bun:"id,pk"`
	Data      domain.Questionnaire `bun:"data,type:jsonb"`
	UpdatedAt time.Time            `bun:"updated_at"`
}

// SeedQuestionnaire inserts or replaces a questionnaire.
func SeedQuestionnaire(ctx context.Context, db bun.IDB, q domain.Questionnaire) error {
	row := &questionnaireRow{ID: q.ID, Data: q, UpdatedAt: time.Now().UTC()}
	_, err := db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("seed questionnaire %s: %w", q.ID, err)
	}
	return nil
}
