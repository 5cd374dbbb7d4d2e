package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"china-division/core/database"
	"china-division/core/reconcile"
	"china-division/data"
	"china-division/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileRevision string
	insertMissing     bool
	purgeStale        bool
	syncMismatches    bool
	dryRunReconcile   bool
	yesConfirm        bool
)

// reconcileCmd compares one revision with the export table.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the export table with a dataset revision",
	Long: `Reconcile one revision of the dataset with the rows exported for it.

Reports rows missing in the database, stale rows the dataset no longer holds,
and field mismatches. Optionally inserts, purges or syncs them.

Examples:
  # Report only
  reconcile --revision 201904

  # Repair everything with auto-confirm (non-interactive)
  reconcile --insert --purge --sync --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileRevision, "revision", data.CurrentRevision, "Revision to reconcile")
	reconcileCmd.Flags().BoolVar(&insertMissing, "insert", false, "Insert rows missing in the database")
	reconcileCmd.Flags().BoolVar(&purgeStale, "purge", false, "Delete rows the dataset no longer holds")
	reconcileCmd.Flags().BoolVar(&syncMismatches, "sync", false, "Overwrite mismatched rows from the dataset")
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	resolver, err := openResolver(ctx, cfg, l)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := export.NewService(resolver, db, l)
	opts := reconcile.Options{
		DoInsert: insertMissing,
		DoPurge:  purgeStale,
		DoSync:   syncMismatches,
		DryRun:   dryRunReconcile,
	}

	l.Info("Planning reconciliation...", zap.String("revision", reconcileRevision))
	plan, err := svc.Plan(ctx, reconcileRevision, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printReconcileReport(l, plan)

	if !insertMissing && !purgeStale && !syncMismatches {
		l.Info("No actions requested. Use --insert, --purge or --sync to repair the table.")
		return nil
	}

	if dryRunReconcile {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction(cmd) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := svc.Apply(ctx, reconcileRevision, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("missing_db", s.MissingTarget),
		zap.Int("stale_db", s.MissingSource),
		zap.Int("mismatches", s.Mismatches),
	)

	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("insert_actions", s.InsertActions),
		zap.Int("delete_actions", s.DeleteActions),
		zap.Int("sync_actions", s.SyncActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()
	if yesConfirm {
		fmt.Fprintln(out, "\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\nType 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
