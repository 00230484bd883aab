package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"lead-assessment-service/internal/domain"
)

// QuestionnaireLoader fetches questionnaire content from a backing store.
type QuestionnaireLoader interface {
	LoadQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error)
}

// QuestionnaireRepository caches questionnaires with TTL to avoid repeated DB hits.
type QuestionnaireRepository struct {
	loader QuestionnaireLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedQuestionnaire
}

type cachedQuestionnaire struct {
	questionnaire domain.Questionnaire
	expiresAt     time.Time
}

func NewQuestionnaireRepository(loader QuestionnaireLoader, ttl time.Duration) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedQuestionnaire),
	}
}

func (r *QuestionnaireRepository) GetQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error) {
	if q, ok := r.cached(questionnaireID); ok {
		return q, nil
	}

	result, err, _ := r.sf.Do(questionnaireID, func() (interface{}, error) {
		if q, ok := r.cached(questionnaireID); ok {
			return q, nil
		}

		q, err := r.loader.LoadQuestionnaire(ctx, questionnaireID)
		if err != nil {
			return domain.Questionnaire{}, err
		}

		r.mu.Lock()
		r.cache[questionnaireID] = cachedQuestionnaire{
			questionnaire: q,
			expiresAt:     r.clock().Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return q, nil
	})
	if err != nil {
		return domain.Questionnaire{}, err
	}
	return result.(domain.Questionnaire), nil
}

func (r *QuestionnaireRepository) cached(questionnaireID string) (domain.Questionnaire, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[questionnaireID]
	if !ok || !entry.expiresAt.After(r.clock()) {
		return domain.Questionnaire{}, false
	}
	return entry.questionnaire, true
}

func (r *QuestionnaireRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticQuestionnaireLoader is a loader backed by an in-memory map (bundled catalog, tests).
type StaticQuestionnaireLoader struct {
	questionnaires map[string]domain.Questionnaire
}

func NewStaticQuestionnaireLoader(questionnaires map[string]domain.Questionnaire) *StaticQuestionnaireLoader {
	return &StaticQuestionnaireLoader{questionnaires: questionnaires}
}

func (l *StaticQuestionnaireLoader) LoadQuestionnaire(_ context.Context, questionnaireID string) (domain.Questionnaire, error) {
	if q, ok := l.questionnaires[questionnaireID]; ok {
		return q, nil
	}
	return domain.Questionnaire{}, domain.ErrQuestionnaireNotFound
}
