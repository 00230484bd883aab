package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"lead-assessment-service/internal/config"
	pgstore "lead-assessment-service/internal/infra/postgres"
)

// NewLeadsCmd prints the most recent leads stored in Postgres.
func NewLeadsCmd(configPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List recent assessment leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			db, err := openBunDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			leads, err := pgstore.NewLeadStore(db).ListLeads(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SUBMITTED\tNAME\tEMAIL\tBUSINESS\tSCORE\tTIER")
			for _, l := range leads {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%d%%\t%s\n",
					l.SubmittedAt.Format("2006-01-02 15:04"),
					l.Identity.FirstName, l.Identity.LastName,
					l.Identity.Email, l.Identity.BusinessType,
					l.Percentage, l.Tier)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of leads to show")
	return cmd
}
