package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
	"lead-assessment-service/internal/assessment"
	"lead-assessment-service/internal/catalog"
	"lead-assessment-service/internal/config"
	"lead-assessment-service/internal/infra/contact"
	"lead-assessment-service/internal/infra/memory"
	pgstore "lead-assessment-service/internal/infra/postgres"
	redisstore "lead-assessment-service/internal/infra/redis"
)

// buildPolicy turns the assessment config section into scoring rules.
func buildPolicy(cfg config.Config) (app.Policy, error) {
	scoring := assessment.DefaultScoring()
	switch strings.ToLower(cfg.Assessment.Denominator) {
	case "", string(assessment.DenominatorFixed):
		if cfg.Assessment.FixedDenominator > 0 {
			scoring.Fixed = cfg.Assessment.FixedDenominator
		}
	case string(assessment.DenominatorMax):
		scoring.Mode = assessment.DenominatorMax
	default:
		return app.Policy{}, fmt.Errorf("unknown denominator mode %q", cfg.Assessment.Denominator)
	}

	defaultID := cfg.Questionnaire.DefaultID
	if defaultID == "" {
		defaultID = catalog.DefaultQuestionnaireID
	}
	return app.Policy{
		Scoring:                scoring,
		RequireComplete:        cfg.Assessment.RequireComplete,
		DefaultQuestionnaireID: defaultID,
	}, nil
}

// buildSubmitter picks the lead backend. "auto" prefers the contact endpoint, then
// Postgres, then Redis, and falls back to memory.
func buildSubmitter(cfg config.Config, redisClient *redis.Client, db *bun.DB, logger *zap.Logger) (app.Submitter, error) {
	backend := strings.ToLower(cfg.Submission.Backend)
	if backend == "" || backend == "auto" {
		switch {
		case cfg.Submission.URL != "":
			backend = "http"
		case db != nil:
			backend = "postgres"
		case redisClient != nil:
			backend = "redis"
		default:
			backend = "memory"
		}
	}

	switch backend {
	case "http":
		if cfg.Submission.URL == "" {
			return nil, fmt.Errorf("submission backend http requires submission.url")
		}
		timeout := config.TTLDuration(cfg.Submission.Timeout, 10*time.Second)
		logger.Info("leads forwarded to contact endpoint", zap.String("url", cfg.Submission.URL))
		return contact.NewClient(cfg.Submission.URL, timeout), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("submission backend postgres requires postgres.url")
		}
		logger.Info("leads stored in postgres")
		return pgstore.NewLeadStore(db), nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("submission backend redis requires redis.addr")
		}
		stream := cfg.Submission.Stream
		logger.Info("leads published to redis stream", zap.String("stream", stream))
		return redisstore.NewLeadStream(redisClient, stream, cfg.Submission.StreamMaxLen), nil
	case "memory":
		logger.Warn("no lead backend configured, leads are kept in memory only")
		return memory.NewLeadSink(), nil
	default:
		return nil, fmt.Errorf("unknown submission backend %q", cfg.Submission.Backend)
	}
}
