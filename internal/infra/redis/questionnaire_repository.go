package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"lead-assessment-service/internal/domain"
)

// QuestionnaireLoader fetches questionnaire content from a backing store.
type QuestionnaireLoader interface {
	LoadQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error)
}

// QuestionnaireRepository caches questionnaires in Redis and falls back to a loader on cache miss.
// Content is stored as: SET assessment:questionnaire:{id} {json}
type QuestionnaireRepository struct {
	client *redis.Client
	loader QuestionnaireLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewQuestionnaireRepository(client *redis.Client, loader QuestionnaireLoader, ttl time.Duration) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionnaireRepository) GetQuestionnaire(ctx context.Context, questionnaireID string) (domain.Questionnaire, error) {
	if q, ok := r.cached(ctx, questionnaireID); ok {
		return q, nil
	}

	result, err, _ := r.sf.Do(questionnaireID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if q, ok := r.cached(ctx, questionnaireID); ok {
			return q, nil
		}

		q, err := r.loader.LoadQuestionnaire(ctx, questionnaireID)
		if err != nil {
			return domain.Questionnaire{}, err
		}

		if data, err := json.Marshal(q); err == nil {
			_ = r.client.Set(ctx, r.key(questionnaireID), data, r.ttlWithJitter()).Err()
		}
		return q, nil
	})
	if err != nil {
		return domain.Questionnaire{}, err
	}
	return result.(domain.Questionnaire), nil
}

// cached treats any Redis or decode failure as a miss.
func (r *QuestionnaireRepository) cached(ctx context.Context, questionnaireID string) (domain.Questionnaire, bool) {
	data, err := r.client.Get(ctx, r.key(questionnaireID)).Bytes()
	if err != nil {
		return domain.Questionnaire{}, false
	}
	var q domain.Questionnaire
	if err := json.Unmarshal(data, &q); err != nil || len(q.Questions) == 0 {
		return domain.Questionnaire{}, false
	}
	return q, true
}

func (r *QuestionnaireRepository) key(questionnaireID string) string {
	return "assessment:questionnaire:" + questionnaireID
}

func (r *QuestionnaireRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
