// Package catalog ships the questionnaires bundled with the service.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"lead-assessment-service/internal/domain"
)

// DefaultQuestionnaireID is served when a client does not name a questionnaire.
const DefaultQuestionnaireID = "marketing-readiness"

//go:embed marketing_readiness.yaml
var marketingReadinessYAML []byte

// Parse decodes a questionnaire from YAML.
func Parse(data []byte) (domain.Questionnaire, error) {
	var q domain.Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return domain.Questionnaire{}, fmt.Errorf("parse questionnaire: %w", err)
	}
	if q.ID == "" {
		return domain.Questionnaire{}, fmt.Errorf("parse questionnaire: missing id")
	}
	if len(q.Questions) == 0 {
		return domain.Questionnaire{}, fmt.Errorf("parse questionnaire %s: %w", q.ID, domain.ErrEmptyQuestionSet)
	}
	seen := make(map[string]struct{}, len(q.Questions))
	for _, question := range q.Questions {
		if _, dup := seen[question.ID]; dup {
			return domain.Questionnaire{}, fmt.Errorf("parse questionnaire %s: duplicate question %q", q.ID, question.ID)
		}
		seen[question.ID] = struct{}{}
		if len(question.Options) == 0 {
			return domain.Questionnaire{}, fmt.Errorf("parse questionnaire %s: question %q has no options", q.ID, question.ID)
		}
		values := make(map[string]struct{}, len(question.Options))
		for _, opt := range question.Options {
			if opt.Value == "" {
				return domain.Questionnaire{}, fmt.Errorf("parse questionnaire %s: question %q has an option without a value", q.ID, question.ID)
			}
			if _, dup := values[opt.Value]; dup {
				return domain.Questionnaire{}, fmt.Errorf("parse questionnaire %s: question %q: duplicate option %q", q.ID, question.ID, opt.Value)
			}
			values[opt.Value] = struct{}{}
		}
	}
	return q, nil
}

// Builtin returns the bundled questionnaires keyed by ID.
func Builtin() map[string]domain.Questionnaire {
	q, err := Parse(marketingReadinessYAML)
	if err != nil {
		panic(err)
	}
	return map[string]domain.Questionnaire{q.ID: q}
}
