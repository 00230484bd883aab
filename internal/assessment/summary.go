package assessment

import (
	"fmt"
	"strings"
)

// Summary renders the score and answers as the free-text note attached to a lead.
// Answers are listed in questionnaire order.
func (s *Session) Summary() string {
	score := s.Score()

	pairs := make([]string, 0, len(s.answers))
	for _, q := range s.questionnaire.Questions {
		if value, ok := s.answers[q.ID]; ok {
			pairs = append(pairs, q.ID+": "+value)
		}
	}
	answers := "none"
	if len(pairs) > 0 {
		answers = strings.Join(pairs, ", ")
	}
	return fmt.Sprintf("Assessment completed. Score: %d%%. Answers: %s", score.Percentage, answers)
}
