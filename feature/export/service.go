package export

import (
	"context"
	"fmt"

	"china-division/core/division"
	"china-division/feature/export/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 500

// Report summarises an export run.
type Report struct {
	Revisions map[string]int `json:"revisions"`
	Total     int            `json:"total"`
}

// Service exports divisions through gorm.
type Service struct {
	resolver  *division.Resolver
	db        *gorm.DB
	logger    *zap.Logger
	batchSize int
}

// NewService creates a new export service.
func NewService(resolver *division.Resolver, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		resolver:  resolver,
		db:        db,
		logger:    logger,
		batchSize: DefaultBatchSize,
	}
}

// Migrate creates or updates the export table.
func (s *Service) Migrate(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Division{}); err != nil {
		return fmt.Errorf("failed to migrate divisions table: %w", err)
	}
	return nil
}

// Rows derives the export rows of revision.
func (s *Service) Rows(revision string) ([]models.Division, error) {
	all, ok := s.resolver.All(revision)
	if !ok {
		return nil, fmt.Errorf("unknown revision %q", revision)
	}

	rows := make([]models.Division, 0, len(all))
	for _, d := range all {
		province, err := d.Province()
		if err != nil {
			return nil, err
		}

		row := models.Division{
			Code:         d.Code,
			Revision:     d.Revision,
			Name:         d.Name,
			Level:        d.Level().String(),
			ProvinceCode: province.Code,
		}
		if prefecture, ok := d.Prefecture(); ok {
			code := prefecture.Code
			row.PrefectureCode = &code
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Export writes the given revisions, or all revisions when none are given.
func (s *Service) Export(ctx context.Context, revisions ...string) (*Report, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if len(revisions) == 0 {
		revisions = s.resolver.Revisions()
	}

	report := &Report{Revisions: make(map[string]int, len(revisions))}
	for _, revision := range revisions {
		rows, err := s.Rows(revision)
		if err != nil {
			return report, err
		}

		if err := s.upsert(ctx, rows); err != nil {
			return report, fmt.Errorf("failed to export revision %s: %w", revision, err)
		}

		s.logger.Info("Exported revision", zap.String("revision", revision), zap.Int("rows", len(rows)))
		report.Revisions[revision] = len(rows)
		report.Total += len(rows)
	}

	return report, nil
}

// upsert writes rows keyed on (code, revision), overwriting existing values.
func (s *Service) upsert(ctx context.Context, rows []models.Division) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}, {Name: "revision"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "level", "province_code", "prefecture_code"}),
		}).
		CreateInBatches(rows, s.batchSize).Error
}
