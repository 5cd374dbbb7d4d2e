package export

import (
	"context"
	"fmt"

	"china-division/core/reconcile"
	"china-division/feature/export/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Plan reconciles one revision of the dataset with the rows stored for it in
// the export table. The dataset is the source of truth.
func (s *Service) Plan(ctx context.Context, revision string, opts reconcile.Options) (*reconcile.Plan, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	rows, err := s.Rows(revision)
	if err != nil {
		return nil, err
	}
	source := make(reconcile.Index, len(rows))
	for _, row := range rows {
		source[row.Code] = itemOf(row)
	}

	var stored []models.Division
	if err := s.db.WithContext(ctx).Where("revision = ?", revision).Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load exported rows of %s: %w", revision, err)
	}
	target := make(reconcile.Index, len(stored))
	for _, row := range stored {
		target[row.Code] = itemOf(row)
	}

	plan := reconcile.BuildPlan(source, target, opts)
	s.logger.Info("Reconciliation planned",
		zap.String("revision", revision),
		zap.Int("missing_db", plan.Summary.MissingTarget),
		zap.Int("stale_db", plan.Summary.MissingSource),
		zap.Int("mismatches", plan.Summary.Mismatches),
		zap.Int("actions", len(plan.Actions)))
	return plan, nil
}

// Apply executes a plan built by Plan for the same revision.
func (s *Service) Apply(ctx context.Context, revision string, plan *reconcile.Plan, opts reconcile.Options) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}

	var executed int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := &tableMutator{service: s.withDB(tx), revision: revision}
		n, err := reconcile.ApplyPlan(ctx, m, plan, opts)
		executed = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile revision %s: %w", revision, err)
	}
	return executed, nil
}

func (s *Service) withDB(db *gorm.DB) *Service {
	clone := *s
	clone.db = db
	return &clone
}

func itemOf(row models.Division) reconcile.Item {
	prefecture := ""
	if row.PrefectureCode != nil {
		prefecture = *row.PrefectureCode
	}
	return reconcile.Item{
		Key:  row.Code,
		Name: row.Name,
		Fields: map[string]string{
			"name":            row.Name,
			"level":           row.Level,
			"province_code":   row.ProvinceCode,
			"prefecture_code": prefecture,
		},
		Value: row,
	}
}

// tableMutator applies reconcile actions to one revision of the export table.
type tableMutator struct {
	service  *Service
	revision string
}

func (m *tableMutator) Insert(ctx context.Context, items []reconcile.Item) error {
	return m.service.upsert(ctx, rowsOf(items))
}

func (m *tableMutator) Sync(ctx context.Context, items []reconcile.Item) error {
	return m.service.upsert(ctx, rowsOf(items))
}

func (m *tableMutator) Delete(ctx context.Context, keys []string) error {
	return m.service.db.WithContext(ctx).
		Where("revision = ? AND code IN ?", m.revision, keys).
		Delete(&models.Division{}).Error
}

func rowsOf(items []reconcile.Item) []models.Division {
	rows := make([]models.Division, 0, len(items))
	for _, item := range items {
		if row, ok := item.Value.(models.Division); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
