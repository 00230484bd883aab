package http

import (
	"time"

	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
	"lead-assessment-service/internal/assessment"
	"lead-assessment-service/internal/domain"
	"lead-assessment-service/internal/infra/memory"
)

func newTestService() (*app.AssessmentService, *memory.LeadSink) {
	quizRepo := memory.NewQuestionnaireRepository(memory.NewStaticQuestionnaireLoader(sampleQuestionnaires()), time.Minute)
	sink := memory.NewLeadSink()
	service := app.NewAssessmentService(memory.NewSessionStore(time.Hour), quizRepo, sink, app.Policy{
		Scoring:                assessment.DefaultScoring(),
		DefaultQuestionnaireID: "readiness",
	}, zap.NewNop())
	return service, sink
}

func sampleQuestionnaires() map[string]domain.Questionnaire {
	return map[string]domain.Questionnaire{
		"readiness": {
			ID: "readiness",
			Questions: []domain.Question{
				{
					ID:     "website",
					Prompt: "Do you have a website?",
					Options: []domain.Option{
						{Value: "no", Label: "No", Points: 0},
						{Value: "yes", Label: "Yes", Points: 40},
					},
				},
				{
					ID:     "reviews",
					Prompt: "Do you ask for reviews?",
					Options: []domain.Option{
						{Value: "no", Label: "No", Points: 5},
						{Value: "yes", Label: "Yes", Points: 35},
					},
				},
			},
		},
	}
}
