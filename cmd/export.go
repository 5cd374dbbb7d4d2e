package cmd

import (
	"fmt"
	"time"

	"china-division/core/database"
	"china-division/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export revisions to the configured database",
	Long: `Creates the divisions table if needed and upserts every division of the
selected revisions, or of all revisions when --revision is not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		resolver, err := openResolver(ctx, cfg, logg)
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		svc := export.NewService(resolver, db, logg)
		if err := svc.Migrate(ctx); err != nil {
			return err
		}

		revisions, _ := cmd.Flags().GetStringSlice("revision")
		report, err := svc.Export(ctx, revisions...)
		if err != nil {
			return err
		}

		logg.Info("Export completed",
			zap.Int("revisions", len(report.Revisions)),
			zap.Int("rows", report.Total),
			zap.Duration("execution_time", time.Since(startTime)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSlice("revision", nil, "Revisions to export (default all)")
}
