package assessment

import (
	"time"

	"lead-assessment-service/internal/domain"
)

// Session is one visitor's run through a questionnaire.
type Session struct {
	id            string
	questionnaire domain.Questionnaire
	scoring       Scoring
	now           func() time.Time

	currentIndex int
	answers      map[string]string
	submitted    bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSession starts a session at the first question with no answers.
func NewSession(id string, questionnaire domain.Questionnaire, scoring Scoring) (*Session, error) {
	return NewSessionWithClock(id, questionnaire, scoring, time.Now)
}

// NewSessionWithClock allows deterministic timestamps in tests.
func NewSessionWithClock(id string, questionnaire domain.Questionnaire, scoring Scoring, now func() time.Time) (*Session, error) {
	if len(questionnaire.Questions) == 0 {
		return nil, domain.ErrEmptyQuestionSet
	}
	created := now()
	return &Session{
		id:            id,
		questionnaire: questionnaire,
		scoring:       scoring,
		now:           now,
		answers:       make(map[string]string),
		createdAt:     created,
		updatedAt:     created,
	}, nil
}

// Restore rebuilds a session from a stored record. The record must still fit the questionnaire.
func Restore(questionnaire domain.Questionnaire, rec domain.SessionRecord, scoring Scoring) (*Session, error) {
	return RestoreWithClock(questionnaire, rec, scoring, time.Now)
}

// RestoreWithClock is Restore with the clock used for later updates.
func RestoreWithClock(questionnaire domain.Questionnaire, rec domain.SessionRecord, scoring Scoring, now func() time.Time) (*Session, error) {
	if len(questionnaire.Questions) == 0 {
		return nil, domain.ErrEmptyQuestionSet
	}
	if rec.CurrentIndex < 0 || rec.CurrentIndex > len(questionnaire.Questions) {
		return nil, domain.ErrInvalidSnapshot
	}
	answers := make(map[string]string, len(rec.Answers))
	for questionID, value := range rec.Answers {
		q, ok := findQuestion(questionnaire.Questions, questionID)
		if !ok {
			return nil, domain.ErrInvalidSnapshot
		}
		if _, ok := q.Option(value); !ok {
			return nil, domain.ErrInvalidSnapshot
		}
		answers[questionID] = value
	}
	return &Session{
		id:            rec.ID,
		questionnaire: questionnaire,
		scoring:       scoring,
		now:           now,
		currentIndex:  rec.CurrentIndex,
		answers:       answers,
		submitted:     rec.Submitted,
		createdAt:     rec.CreatedAt,
		updatedAt:     rec.UpdatedAt,
	}, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) QuestionnaireID() string { return s.questionnaire.ID }

func (s *Session) CurrentIndex() int { return s.currentIndex }

func (s *Session) Total() int { return len(s.questionnaire.Questions) }

// Answers returns a copy of the recorded answers keyed by question ID.
func (s *Session) Answers() map[string]string {
	out := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Phase derives the lifecycle phase from the index and submission flag.
func (s *Session) Phase() domain.Phase {
	switch {
	case s.submitted:
		return domain.PhaseSubmitted
	case s.currentIndex >= len(s.questionnaire.Questions):
		return domain.PhaseAwaitingIdentity
	default:
		return domain.PhaseInProgress
	}
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	for _, q := range s.questionnaire.Questions {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// CurrentQuestion returns the question at the current index, if any.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	if s.currentIndex >= len(s.questionnaire.Questions) {
		return domain.Question{}, false
	}
	return s.questionnaire.Questions[s.currentIndex], true
}

// SelectAnswer records value for the current question, replacing any earlier choice.
// On error the session is left unchanged.
func (s *Session) SelectAnswer(questionID, value string) error {
	if s.submitted {
		return domain.ErrAlreadySubmitted
	}
	if _, ok := findQuestion(s.questionnaire.Questions, questionID); !ok {
		return domain.ErrQuestionNotFound
	}
	current, ok := s.CurrentQuestion()
	if !ok || current.ID != questionID {
		return domain.ErrQuestionNotCurrent
	}
	if _, ok := current.Option(value); !ok {
		return domain.ErrInvalidOption
	}
	s.answers[questionID] = value
	s.touch()
	return nil
}

// Advance moves to the next question. Advancing from the last question moves the
// session to the awaiting-identity phase.
func (s *Session) Advance() error {
	if s.submitted {
		return domain.ErrAlreadySubmitted
	}
	current, ok := s.CurrentQuestion()
	if !ok {
		// already past the last question
		return nil
	}
	if _, answered := s.answers[current.ID]; !answered {
		return domain.ErrNotAnswered
	}
	s.currentIndex++
	s.touch()
	return nil
}

// Retreat moves back one question. Answers are kept.
func (s *Session) Retreat() error {
	if s.submitted {
		return domain.ErrAlreadySubmitted
	}
	if s.currentIndex == 0 {
		return domain.ErrNoPreviousQuestion
	}
	s.currentIndex--
	s.touch()
	return nil
}

// MarkSubmitted freezes the session once the lead has been accepted.
func (s *Session) MarkSubmitted() {
	s.submitted = true
	s.touch()
}

// Score computes the current score from the recorded answers.
func (s *Session) Score() domain.ScoreResult {
	return ComputeScore(s.questionnaire.Questions, s.answers, s.scoring)
}

// Snapshot returns the persistable form of the session.
func (s *Session) Snapshot() domain.SessionRecord {
	return domain.SessionRecord{
		ID:              s.id,
		QuestionnaireID: s.questionnaire.ID,
		CurrentIndex:    s.currentIndex,
		Answers:         s.Answers(),
		Submitted:       s.submitted,
		CreatedAt:       s.createdAt,
		UpdatedAt:       s.updatedAt,
	}
}

func (s *Session) touch() {
	s.updatedAt = s.now()
}

func findQuestion(questions []domain.Question, id string) (domain.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}
