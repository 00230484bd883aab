package app

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lead-assessment-service/internal/assessment"
	"lead-assessment-service/internal/domain"
)

// SessionRepository abstracts how assessment sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Save(ctx context.Context, rec domain.SessionRecord) error
	Get(ctx context.Context, sessionID string) (domain.SessionRecord, error)
	Delete(ctx context.Context, sessionID string) error
}

// QuestionnaireRepository loads questionnaire content (from cache/backing store).
type QuestionnaireRepository interface {
	GetQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error)
}

// Submitter hands a finished assessment to the lead backend.
type Submitter interface {
	Submit(ctx context.Context, lead domain.Lead) error
}

// Policy holds the scoring and completion rules applied to every session.
type Policy struct {
	Scoring                assessment.Scoring
	RequireComplete        bool
	DefaultQuestionnaireID string
}

// AssessmentService contains the assessment use cases.
type AssessmentService struct {
	sessions       SessionRepository
	questionnaires QuestionnaireRepository
	submitter      Submitter
	policy         Policy
	logger         *zap.Logger
	now            func() time.Time
	locks          [64]sync.Mutex
}

func NewAssessmentService(sessions SessionRepository, questionnaires QuestionnaireRepository, submitter Submitter, policy Policy, logger *zap.Logger) *AssessmentService {
	return NewAssessmentServiceWithClock(sessions, questionnaires, submitter, policy, logger, time.Now)
}

// NewAssessmentServiceWithClock allows deterministic timestamps in tests.
func NewAssessmentServiceWithClock(sessions SessionRepository, questionnaires QuestionnaireRepository, submitter Submitter, policy Policy, logger *zap.Logger, now func() time.Time) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		sessions:       sessions,
		questionnaires: questionnaires,
		submitter:      submitter,
		policy:         policy,
		logger:         logger,
		now:            now,
	}
}

// Start creates a session positioned on the first question.
func (s *AssessmentService) Start(ctx context.Context, questionnaireID string) (assessment.View, error) {
	if questionnaireID == "" {
		questionnaireID = s.policy.DefaultQuestionnaireID
	}
	questionnaire, err := s.questionnaires.GetQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return assessment.View{}, err
	}

	session, err := assessment.NewSessionWithClock(uuid.NewString(), questionnaire, s.policy.Scoring, s.now)
	if err != nil {
		return assessment.View{}, err
	}
	if err := s.sessions.Save(ctx, session.Snapshot()); err != nil {
		return assessment.View{}, err
	}
	s.logger.Info("assessment started",
		zap.String("session_id", session.ID()),
		zap.String("questionnaire_id", questionnaireID))
	return session.View(), nil
}

// View returns the in-progress projection for a session.
func (s *AssessmentService) View(ctx context.Context, sessionID string) (assessment.View, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return assessment.View{}, err
	}
	return session.View(), nil
}

// Select records an answer for the session's current question.
func (s *AssessmentService) Select(ctx context.Context, sessionID, questionID, value string) (assessment.View, error) {
	session, err := s.mutate(ctx, sessionID, func(sess *assessment.Session) error {
		return sess.SelectAnswer(questionID, value)
	})
	if err != nil {
		return assessment.View{}, err
	}
	return session.View(), nil
}

// Advance moves the session to the next question.
func (s *AssessmentService) Advance(ctx context.Context, sessionID string) (assessment.View, error) {
	session, err := s.mutate(ctx, sessionID, func(sess *assessment.Session) error {
		return sess.Advance()
	})
	if err != nil {
		return assessment.View{}, err
	}
	return session.View(), nil
}

// Retreat moves the session back one question.
func (s *AssessmentService) Retreat(ctx context.Context, sessionID string) (assessment.View, error) {
	session, err := s.mutate(ctx, sessionID, func(sess *assessment.Session) error {
		return sess.Retreat()
	})
	if err != nil {
		return assessment.View{}, err
	}
	return session.View(), nil
}

// Result scores the session as it stands.
func (s *AssessmentService) Result(ctx context.Context, sessionID string) (assessment.Result, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return assessment.Result{}, err
	}
	return session.Result(), nil
}

// Submit sends the scored assessment and contact details to the lead backend.
// A failed submission leaves the session untouched so the visitor can retry.
func (s *AssessmentService) Submit(ctx context.Context, sessionID string, identity domain.Identity) (assessment.Result, error) {
	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return assessment.Result{}, err
	}
	if session.Phase() == domain.PhaseSubmitted {
		return assessment.Result{}, domain.ErrAlreadySubmitted
	}
	if s.policy.RequireComplete && !session.Complete() {
		return assessment.Result{}, domain.ErrIncomplete
	}
	identity, err = NormalizeIdentity(identity)
	if err != nil {
		return assessment.Result{}, err
	}

	score := session.Score()
	lead := domain.Lead{
		ID:              uuid.NewString(),
		SessionID:       session.ID(),
		QuestionnaireID: session.QuestionnaireID(),
		Identity:        identity,
		Summary:         session.Summary(),
		Percentage:      score.Percentage,
		Tier:            score.Tier,
		Answers:         session.Answers(),
		SubmittedAt:     s.now(),
	}
	if err := s.submitter.Submit(ctx, lead); err != nil {
		s.logger.Warn("lead submission failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return assessment.Result{}, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	session.MarkSubmitted()
	if err := s.sessions.Save(ctx, session.Snapshot()); err != nil {
		// the lead is already out; a stale record only allows a duplicate submission
		s.logger.Error("save submitted session", zap.String("session_id", sessionID), zap.Error(err))
	}
	s.logger.Info("assessment submitted",
		zap.String("session_id", sessionID),
		zap.String("lead_id", lead.ID),
		zap.Int("percentage", score.Percentage),
		zap.String("tier", string(score.Tier)))
	return session.Result(), nil
}

// Abandon discards a session.
func (s *AssessmentService) Abandon(ctx context.Context, sessionID string) error {
	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AssessmentService) mutate(ctx context.Context, sessionID string, fn func(*assessment.Session) error) (*assessment.Session, error) {
	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session.Snapshot()); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *AssessmentService) load(ctx context.Context, sessionID string) (*assessment.Session, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questionnaire, err := s.questionnaires.GetQuestionnaire(ctx, rec.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	return assessment.RestoreWithClock(questionnaire, rec, s.policy.Scoring, s.now)
}

// lockFor serializes operations on one session without a global lock.
func (s *AssessmentService) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}
