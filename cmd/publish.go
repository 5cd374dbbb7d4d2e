package cmd

import (
	"fmt"

	"china-division/core/dataset"
	"china-division/core/storage"
	"china-division/data"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the compiled-in source tables to the storage bucket",
	Long: `Uploads the embedded mca and contrib tables under the configured dataset
prefix so that servers can run with DATASET_SOURCE=bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		keys, err := dataset.Publish(cmd.Context(), client, cfg.Storage.Bucket, cfg.Dataset.Prefix, data.FS(), logg, data.SourceDirs...)
		if err != nil {
			return err
		}

		logg.Info("Dataset published", zap.String("bucket", cfg.Storage.Bucket), zap.Int("objects", len(keys)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
