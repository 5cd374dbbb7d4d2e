package integrity

import (
	"fmt"

	"china-division/core/division"
	"china-division/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	resolver *division.Resolver
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil, in which case the
// schema check reports an error.
func NewService(resolver *division.Resolver, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		db:       db,
		logger:   logger,
	}
}

// CheckDataset runs the structural dataset check.
func (s *Service) CheckDataset() *checks.DatasetReport {
	report := checks.CheckDataset(s.resolver)
	for _, rev := range report.Revisions {
		switch rev.Status {
		case "error":
			s.logger.Error("Revision has orphaned divisions",
				zap.String("revision", rev.Revision),
				zap.Strings("orphans", rev.Orphans))
		case "warning":
			s.logger.Warn("Revision has prefecture gaps",
				zap.String("revision", rev.Revision),
				zap.Int("gaps", len(rev.Gaps)))
		}
	}
	return report
}

// CheckSchema compares the export table with the export model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is not configured")
	}
	return checks.CheckSchema(s.db)
}
