package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/contentforge/store"
)

func newStatusCmd(configPath *string) *cobra.Command {
	var (
		limit        int
		statusFilter string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List recent pipeline runs from the run ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if cfg.Store.Path == "" {
				return fmt.Errorf("no run ledger configured, set store.path or CONTENTFORGE_STORE_PATH")
			}

			db, err := store.Open(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := store.NewSQLiteStore(db)
			if err != nil {
				return err
			}

			runs, err := s.ListRuns(cmd.Context(), store.Filter{Status: statusFilter, Limit: limit})
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tPRODUCT\tSTATUS\tSTARTED\tDURATION\tERROR")

			for _, rec := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.RunID,
					rec.Product,
					rec.Status,
					rec.StartedAt.Format("2006-01-02 15:04:05"),
					rec.FinishedAt.Sub(rec.StartedAt).Round(10*time.Millisecond),
					rec.Error,
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of runs to list")
	cmd.Flags().StringVar(&statusFilter, "status", "", "filter by run status (completed, failed)")

	return cmd
}
