package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"lead-assessment-service/internal/catalog"
	"lead-assessment-service/internal/config"
	"lead-assessment-service/internal/domain"
	pgstore "lead-assessment-service/internal/infra/postgres"
)

// NewSeedCmd stores questionnaires in Postgres: the bundled catalog plus any YAML files given.
func NewSeedCmd(configPath *string) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store questionnaires in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			questionnaires := make([]domain.Questionnaire, 0, len(files)+1)
			for _, q := range catalog.Builtin() {
				questionnaires = append(questionnaires, q)
			}
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				q, err := catalog.Parse(data)
				if err != nil {
					return err
				}
				questionnaires = append(questionnaires, q)
			}

			db, err := openBunDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := runMigrations(cmd.Context(), db, logger); err != nil {
				return err
			}

			for _, q := range questionnaires {
				if err := pgstore.SeedQuestionnaire(cmd.Context(), db, q); err != nil {
					return err
				}
				logger.Info("questionnaire seeded",
					zap.String("questionnaire_id", q.ID),
					zap.Int("questions", len(q.Questions)))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "questionnaire YAML file to seed (repeatable)")
	return cmd
}
