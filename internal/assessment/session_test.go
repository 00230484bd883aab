package assessment

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lead-assessment-service/internal/domain"
)

func testQuestionnaire(n int) domain.Questionnaire {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:     fmt.Sprintf("q%d", i),
			Prompt: fmt.Sprintf("Question %d", i),
			Options: []domain.Option{
				{Value: "low", Label: "Low", Points: 3},
				{Value: "mid", Label: "Mid", Points: 6},
				{Value: "high", Label: "High", Points: 10},
			},
		})
	}
	return domain.Questionnaire{ID: "test", Questions: questions}
}

func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	s, err := NewSession("s1", testQuestionnaire(n), DefaultScoring())
	require.NoError(t, err)
	return s
}

func answerAll(t *testing.T, s *Session, value string) {
	t.Helper()
	for s.Phase() == domain.PhaseInProgress {
		q, _ := s.CurrentQuestion()
		require.NoError(t, s.SelectAnswer(q.ID, value))
		require.NoError(t, s.Advance())
	}
}

func TestNewSession_EmptyQuestionSet(t *testing.T) {
	s, err := NewSession("s1", domain.Questionnaire{ID: "empty"}, DefaultScoring())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domain.ErrEmptyQuestionSet)
}

func TestNewSession_InitialState(t *testing.T) {
	s := newTestSession(t, 3)
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, s.Answers())
	assert.Equal(t, domain.PhaseInProgress, s.Phase())
}

func TestSelectAnswer_Overwrite(t *testing.T) {
	s := newTestSession(t, 3)
	require.NoError(t, s.SelectAnswer("q1", "low"))
	require.NoError(t, s.SelectAnswer("q1", "high"))
	assert.Equal(t, map[string]string{"q1": "high"}, s.Answers())
}

func TestSelectAnswer_Idempotent(t *testing.T) {
	once := newTestSession(t, 3)
	require.NoError(t, once.SelectAnswer("q1", "mid"))

	twice := newTestSession(t, 3)
	require.NoError(t, twice.SelectAnswer("q1", "mid"))
	require.NoError(t, twice.SelectAnswer("q1", "mid"))

	assert.Equal(t, once.Answers(), twice.Answers())
}

func TestSelectAnswer_Rejections(t *testing.T) {
	s := newTestSession(t, 3)
	require.NoError(t, s.SelectAnswer("q1", "mid"))

	assert.ErrorIs(t, s.SelectAnswer("q1", "bogus"), domain.ErrInvalidOption)
	assert.ErrorIs(t, s.SelectAnswer("q2", "low"), domain.ErrQuestionNotCurrent)
	assert.ErrorIs(t, s.SelectAnswer("nope", "low"), domain.ErrQuestionNotFound)

	assert.Equal(t, map[string]string{"q1": "mid"}, s.Answers())
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := newTestSession(t, 3)
	assert.ErrorIs(t, s.Advance(), domain.ErrNotAnswered)
	assert.Equal(t, 0, s.CurrentIndex())

	require.NoError(t, s.SelectAnswer("q1", "low"))
	require.NoError(t, s.Advance())
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestAdvance_LastQuestionAwaitsIdentity(t *testing.T) {
	s := newTestSession(t, 2)
	answerAll(t, s, "mid")

	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, domain.PhaseAwaitingIdentity, s.Phase())
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)

	// advancing again stays put
	require.NoError(t, s.Advance())
	assert.Equal(t, 2, s.CurrentIndex())
}

func TestRetreat_Blocked(t *testing.T) {
	s := newTestSession(t, 3)
	assert.ErrorIs(t, s.Retreat(), domain.ErrNoPreviousQuestion)
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestRetreat_PreservesAnswers(t *testing.T) {
	s := newTestSession(t, 3)
	require.NoError(t, s.SelectAnswer("q1", "high"))
	require.NoError(t, s.Advance())
	require.NoError(t, s.SelectAnswer("q2", "low"))

	require.NoError(t, s.Retreat())
	view := s.View()
	assert.Equal(t, "q1", view.QuestionID)
	assert.Equal(t, "high", view.Selected)

	require.NoError(t, s.Advance())
	assert.Equal(t, "low", s.View().Selected)
}

func TestRetreat_FromAwaitingIdentity(t *testing.T) {
	s := newTestSession(t, 2)
	answerAll(t, s, "low")
	require.NoError(t, s.Retreat())
	assert.Equal(t, domain.PhaseInProgress, s.Phase())
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestIndexStaysInBounds(t *testing.T) {
	s := newTestSession(t, 4)
	ops := []func() error{s.Advance, s.Retreat, s.Retreat, s.Advance}
	for i := 0; i < 50; i++ {
		if q, ok := s.CurrentQuestion(); ok && i%3 == 0 {
			require.NoError(t, s.SelectAnswer(q.ID, "mid"))
		}
		_ = ops[i%len(ops)]()
		assert.GreaterOrEqual(t, s.CurrentIndex(), 0)
		assert.LessOrEqual(t, s.CurrentIndex(), s.Total())
	}
}

func TestMarkSubmitted_FreezesSession(t *testing.T) {
	s := newTestSession(t, 1)
	answerAll(t, s, "high")
	s.MarkSubmitted()

	assert.Equal(t, domain.PhaseSubmitted, s.Phase())
	assert.ErrorIs(t, s.Retreat(), domain.ErrAlreadySubmitted)
	assert.ErrorIs(t, s.Advance(), domain.ErrAlreadySubmitted)
	assert.ErrorIs(t, s.SelectAnswer("q1", "low"), domain.ErrAlreadySubmitted)
}

func TestSnapshotRestore(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	q := testQuestionnaire(3)
	s, err := NewSessionWithClock("s1", q, DefaultScoring(), clock)
	require.NoError(t, err)
	require.NoError(t, s.SelectAnswer("q1", "high"))
	require.NoError(t, s.Advance())

	rec := s.Snapshot()
	assert.Equal(t, clock(), rec.CreatedAt)

	restored, err := Restore(q, rec, DefaultScoring())
	require.NoError(t, err)
	assert.Equal(t, s.CurrentIndex(), restored.CurrentIndex())
	assert.Equal(t, s.Answers(), restored.Answers())
	assert.Equal(t, s.Score(), restored.Score())
}

func TestRestore_RejectsMismatch(t *testing.T) {
	q := testQuestionnaire(2)
	cases := map[string]domain.SessionRecord{
		"index":    {ID: "s1", CurrentIndex: 3},
		"question": {ID: "s1", Answers: map[string]string{"q9": "low"}},
		"option":   {ID: "s1", Answers: map[string]string{"q1": "bogus"}},
	}
	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Restore(q, rec, DefaultScoring())
			assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
		})
	}
}

func TestView_Progress(t *testing.T) {
	s := newTestSession(t, 4)
	v := s.View()
	assert.Equal(t, 0.25, v.Progress)
	assert.False(t, v.IsLast)
	assert.False(t, v.CanAdvance)
	assert.False(t, v.CanRetreat)
	assert.Len(t, v.Options, 3)

	answerAll(t, s, "low")
	v = s.View()
	assert.Equal(t, 1.0, v.Progress)
	assert.Equal(t, domain.PhaseAwaitingIdentity, v.Phase)
	assert.Empty(t, v.QuestionID)
}

func TestSummary(t *testing.T) {
	s := newTestSession(t, 2)
	assert.Equal(t, "Assessment completed. Score: 0%. Answers: none", s.Summary())

	answerAll(t, s, "high")
	assert.Equal(t, "Assessment completed. Score: 20%. Answers: q1: high, q2: high", s.Summary())
}

func TestView_CanAdvanceWithEmptyValue(t *testing.T) {
	q := domain.Questionnaire{ID: "blank", Questions: []domain.Question{{
		ID:      "q1",
		Options: []domain.Option{{Value: "", Label: "None", Points: 0}, {Value: "x", Points: 5}},
	}}}
	s, err := NewSession("s1", q, DefaultScoring())
	require.NoError(t, err)
	assert.False(t, s.View().CanAdvance)

	require.NoError(t, s.SelectAnswer("q1", ""))
	assert.True(t, s.View().CanAdvance)
	require.NoError(t, s.Advance())
}

func TestRestoreWithClock_StampsUpdates(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	later := created.Add(time.Hour)
	q := testQuestionnaire(2)
	s, err := NewSessionWithClock("s1", q, DefaultScoring(), func() time.Time { return created })
	require.NoError(t, err)

	restored, err := RestoreWithClock(q, s.Snapshot(), DefaultScoring(), func() time.Time { return later })
	require.NoError(t, err)
	require.NoError(t, restored.SelectAnswer("q1", "low"))

	rec := restored.Snapshot()
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, later, rec.UpdatedAt)
}
