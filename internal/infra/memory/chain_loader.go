package memory

import (
	"context"
	"errors"

	"lead-assessment-service/internal/domain"
)

// ChainQuestionnaireLoader asks each loader in turn and returns the first hit.
// Only ErrQuestionnaireNotFound moves on to the next loader; other errors stop the chain.
type ChainQuestionnaireLoader struct {
	loaders []QuestionnaireLoader
}

func NewChainQuestionnaireLoader(loaders ...QuestionnaireLoader) *ChainQuestionnaireLoader {
	return &ChainQuestionnaireLoader{loaders: loaders}
}

func (c *ChainQuestionnaireLoader) LoadQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error) {
	for _, l := range c.loaders {
		q, err := l.LoadQuestionnaire(ctx, questionnaireID)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, domain.ErrQuestionnaireNotFound) {
			return domain.Questionnaire{}, err
		}
	}
	return domain.Questionnaire{}, domain.ErrQuestionnaireNotFound
}
