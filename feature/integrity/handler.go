package integrity

import (
	"china-division/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/dataset", h.HandleDatasetCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})
	report["dataset"] = h.service.CheckDataset()

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleDatasetCheck checks every loaded revision.
func (h *Handler) HandleDatasetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckDataset()
	l.Info("Dataset check completed",
		zap.Int("revisions", len(report.Revisions)),
		zap.Bool("matched", report.Matched))

	return c.JSON(report)
}

// HandleSchemaCheck checks the export table schema.
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
