package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hupe1980/contentforge"
	"github.com/hupe1980/contentforge/sink"
	"github.com/hupe1980/contentforge/store"
	"github.com/hupe1980/contentforge/validate"
)

func newGenerateCmd(configPath *string) *cobra.Command {
	var (
		datasetPath  string
		productIndex int
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the content pipeline and write the generated pages",
		Long: `Run the five-agent content pipeline for a product record and write
faq.json, product_page.json and comparison_page.json to the output directory.

Without --dataset the built-in sample product is used. A dataset file is a
JSON document with a top-level "products" array; --product-index selects the
entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := newLogger(cfg.Log)

			client, err := newClient(cfg.Generation, logger)
			if err != nil {
				return err
			}

			record, err := loadProduct(datasetPath, productIndex)
			if err != nil {
				return err
			}

			pipeline, err := contentforge.New(client, func(o *contentforge.Options) {
				o.QuestionCount = cfg.Pipeline.QuestionCount
				o.CallBudget = cfg.Pipeline.CallBudget
				o.Logger = logger
			})
			if err != nil {
				return err
			}

			rec := store.RunRecord{
				RunID:     uuid.NewString(),
				Product:   fmt.Sprintf("%v", record["name"]),
				StartedAt: time.Now(),
			}

			result, runErr := pipeline.Generate(ctx, record)
			if runErr == nil {
				validator := validate.New(func(o *validate.Options) {
					o.MinFAQCount = cfg.Pipeline.MinFAQCount
				})
				runErr = validator.Outputs(result.Raw)
			}

			if runErr == nil {
				runErr = sink.WriteAll(ctx, sink.NewFileSink(cfg.Output.Dir), result.Pages())
			}

			rec.FinishedAt = time.Now()
			rec.Statuses = store.StatusSnapshot(pipeline.AgentStatus())

			if runErr != nil {
				rec.Status = store.RunFailed
				rec.Error = runErr.Error()
			} else {
				rec.Status = store.RunCompleted
			}

			if err := saveRun(ctx, cfg.Store.Path, rec); err != nil {
				logger.Warn("Failed to record run", "error", err)
			}

			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d pages for %q in %s\n",
				len(result.Pages()), result.Product.Name, cfg.Output.Dir)

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a JSON dataset with a products array")
	cmd.Flags().IntVar(&productIndex, "product-index", 0, "index of the product in the dataset")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")

	return cmd
}

// saveRun records the run in the configured ledger. An empty path disables
// persistence.
func saveRun(ctx context.Context, path string, rec store.RunRecord) error {
	if path == "" {
		return nil
	}

	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := store.NewSQLiteStore(db)
	if err != nil {
		return err
	}

	return s.SaveRun(ctx, rec)
}
