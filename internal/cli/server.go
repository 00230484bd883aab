package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
	"lead-assessment-service/internal/catalog"
	"lead-assessment-service/internal/config"
	"lead-assessment-service/internal/infra/memory"
	pgstore "lead-assessment-service/internal/infra/postgres"
	redisstore "lead-assessment-service/internal/infra/redis"
	transport "lead-assessment-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the assessment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var db *bun.DB
	if cfg.Postgres.URL != "" {
		db, err = openBunDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := runMigrations(ctx, db, logger); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	sessionTTL := config.TTLDuration(cfg.Assessment.SessionTTL, config.TTLDuration(cfg.Redis.TTL, 2*time.Hour))

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.QuestionnaireLoader = memory.NewStaticQuestionnaireLoader(catalog.Builtin())
	if pool != nil {
		// stored questionnaires win; the bundled catalog still answers for its own IDs
		loader = memory.NewChainQuestionnaireLoader(pgstore.NewQuestionnaireLoader(pool), loader)
	}

	questionnaireTTL := config.TTLDuration(cfg.Questionnaire.TTL, 10*time.Minute)
	var questionnaires app.QuestionnaireRepository
	if redisClient != nil {
		questionnaires = redisstore.NewQuestionnaireRepository(redisClient, loader, questionnaireTTL)
	} else {
		questionnaires = memory.NewQuestionnaireRepository(loader, questionnaireTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore(sessionTTL)
	}

	submitter, err := buildSubmitter(cfg, redisClient, db, logger)
	if err != nil {
		return err
	}
	policy, err := buildPolicy(cfg)
	if err != nil {
		return err
	}

	service := app.NewAssessmentService(sessions, questionnaires, submitter, policy, logger)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(service, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting assessment service", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
