package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docmap/internal/observability"
	"docmap/internal/repository/sqlite"
	"docmap/internal/service"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the graph from the docs tree and persist it",
	Long: `Reads the configured docs directory (or tree manifest), builds the
graph model, and writes it to the database. The serve command picks the
persisted graph up on its next start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		repo, err := sqlite.New(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := service.NewGraphService(cfg, repo, service.NewEventBus(), logger, observability.New())
		if err := svc.Rebuild(context.Background()); err != nil {
			return err
		}

		model := svc.Model()
		logger.Info("graph ingested",
			zap.Int("nodes", model.NodeCount()),
			zap.Int("edges", model.EdgeCount()),
			zap.String("database", cfg.Database.Path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
