package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docmap/internal/codec"
	"docmap/internal/repository/sqlite"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the persisted graph to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := sqlite.New(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer repo.Close()

		model, err := repo.LoadModel(context.Background())
		if err != nil {
			return err
		}
		if model == nil {
			return fmt.Errorf("no graph in %s, run ingest first", cfg.Database.Path)
		}

		c, err := codec.ForFormat(exportFormat)
		if err != nil {
			return err
		}
		return c.ExportModel(model, os.Stdout)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json or yaml)")
	rootCmd.AddCommand(exportCmd)
}
