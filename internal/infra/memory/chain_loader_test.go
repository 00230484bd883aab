package memory

import (
	"context"
	"errors"
	"testing"

	"lead-assessment-service/internal/domain"
)

type failingLoader struct{ err error }

func (f failingLoader) LoadQuestionnaire(context.Context, string) (domain.Questionnaire, error) {
	return domain.Questionnaire{}, f.err
}

func TestChainQuestionnaireLoader(t *testing.T) {
	ctx := context.Background()
	primary := NewStaticQuestionnaireLoader(map[string]domain.Questionnaire{
		"readiness": {ID: "readiness", Title: "primary"},
	})
	fallback := NewStaticQuestionnaireLoader(map[string]domain.Questionnaire{
		"readiness": {ID: "readiness", Title: "fallback"},
		"other":     {ID: "other"},
	})
	chain := NewChainQuestionnaireLoader(primary, fallback)

	q, err := chain.LoadQuestionnaire(ctx, "readiness")
	if err != nil || q.Title != "primary" {
		t.Fatalf("expected primary hit, got %+v, %v", q, err)
	}
	if q, err := chain.LoadQuestionnaire(ctx, "other"); err != nil || q.ID != "other" {
		t.Fatalf("expected fallback hit, got %+v, %v", q, err)
	}
	if _, err := chain.LoadQuestionnaire(ctx, "missing"); !errors.Is(err, domain.ErrQuestionnaireNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	boom := errors.New("db down")
	broken := NewChainQuestionnaireLoader(failingLoader{err: boom}, fallback)
	if _, err := broken.LoadQuestionnaire(ctx, "other"); !errors.Is(err, boom) {
		t.Fatalf("expected backend error to stop the chain, got %v", err)
	}
}
