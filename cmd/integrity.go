package cmd

import (
	"fmt"

	"china-division/core/config"
	"china-division/core/database"
	"china-division/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the dataset and export schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd, true, true)
	},
}

// datasetCmd represents the integrity dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Check that every revision's hierarchy can be derived",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the export table against the export model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(datasetCmd, schemaCmd)
}

func connectOptional(cfg *config.Config, logg *zap.Logger) *gorm.DB {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	return db
}

func runIntegrityChecks(cmd *cobra.Command, runDataset, runSchema bool) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	resolver, err := openResolver(cmd.Context(), cfg, logg)
	if err != nil {
		return err
	}

	var db *gorm.DB
	if runSchema {
		db = connectOptional(cfg, logg)
	}
	svc := integrity.NewService(resolver, db, logg)

	failed := false

	if runDataset {
		logg.Info("Checking dataset...")
		report := svc.CheckDataset()
		for _, rev := range report.Revisions {
			logg.Info("Revision checked",
				zap.String("revision", rev.Revision),
				zap.String("status", rev.Status),
				zap.Int("provinces", rev.Provinces),
				zap.Int("prefectures", rev.Prefectures),
				zap.Int("counties", rev.Counties))
		}
		if report.Matched {
			logg.Info("Dataset is intact.")
		} else {
			failed = true
		}
	}

	if runSchema {
		logg.Info("Checking export schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		switch {
		case err != nil:
			logg.Error("Schema check failed", zap.Error(err))
			failed = true
		case report.Matched:
			logg.Info("Export schema matches expected definition.", zap.String("table", report.Table))
		default:
			failed = true
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", report.Table), zap.Strings("mismatches", report.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks failed")
	}
	return nil
}
