package assessment

import "lead-assessment-service/internal/domain"

// View is the read-only projection a front end renders while a session is in progress.
type View struct {
	SessionID       string          `json:"sessionId"`
	QuestionnaireID string          `json:"questionnaireId"`
	Phase           domain.Phase    `json:"phase"`
	Index           int             `json:"index"`
	Total           int             `json:"total"`
	Progress        float64         `json:"progress"`
	IsLast          bool            `json:"isLast"`
	QuestionID      string          `json:"questionId,omitempty"`
	Prompt          string          `json:"prompt,omitempty"`
	Options         []domain.Option `json:"options,omitempty"`
	Selected        string          `json:"selected,omitempty"`
	CanAdvance      bool            `json:"canAdvance"`
	CanRetreat      bool            `json:"canRetreat"`
}

// Result is the projection shown once the questions are done.
type Result struct {
	SessionID       string      `json:"sessionId"`
	RawTotal        int         `json:"rawTotal"`
	Denominator     int         `json:"denominator"`
	Percentage      int         `json:"percentage"`
	Tier            domain.Tier `json:"tier"`
	Title           string      `json:"title"`
	Badge           string      `json:"badge"`
	Recommendations []string    `json:"recommendations"`
}

// View projects the current state.
func (s *Session) View() View {
	total := s.Total()
	v := View{
		SessionID:       s.id,
		QuestionnaireID: s.questionnaire.ID,
		Phase:           s.Phase(),
		Index:           s.currentIndex,
		Total:           total,
		CanRetreat:      !s.submitted && s.currentIndex > 0,
	}

	q, ok := s.CurrentQuestion()
	if !ok {
		v.Progress = 1
		return v
	}
	v.Progress = float64(s.currentIndex+1) / float64(total)
	v.IsLast = s.currentIndex == total-1
	v.QuestionID = q.ID
	v.Prompt = q.Prompt
	v.Options = q.Options
	selected, answered := s.answers[q.ID]
	v.Selected = selected
	v.CanAdvance = !s.submitted && answered
	return v
}

// Result projects the score and tier profile.
func (s *Session) Result() Result {
	score := s.Score()
	profile := Profile(score.Tier)
	return Result{
		SessionID:       s.id,
		RawTotal:        score.RawTotal,
		Denominator:     score.Denominator,
		Percentage:      score.Percentage,
		Tier:            score.Tier,
		Title:           profile.Title,
		Badge:           profile.Badge,
		Recommendations: profile.Recommendations,
	}
}
