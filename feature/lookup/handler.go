package lookup

import (
	"errors"

	"china-division/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for division lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/divisions")
	group.Get("/revisions", h.HandleRevisions)
	group.Get("/:code", h.HandleGetDivision)
	group.Get("/:code/stack", h.HandleGetStack)
}

func queryFrom(c *fiber.Ctx) Query {
	return Query{
		Code:     c.Params("code"),
		Revision: c.Query("revision"),
		Search:   c.QueryBool("search"),
	}
}

// HandleRevisions lists known revisions.
func (h *Handler) HandleRevisions(c *fiber.Ctx) error {
	return c.JSON(h.service.Revisions())
}

// HandleGetDivision resolves a code and returns it with its ancestry.
func (h *Handler) HandleGetDivision(c *fiber.Ctx) error {
	q := queryFrom(c)
	report, err := h.service.Resolve(q)
	if err != nil {
		return h.fail(c, q, err)
	}
	return c.JSON(report)
}

// HandleGetStack resolves a code and returns only its ancestry.
func (h *Handler) HandleGetStack(c *fiber.Ctx) error {
	q := queryFrom(c)
	d, err := h.service.Find(q)
	if err != nil {
		return h.fail(c, q, err)
	}
	stack, err := h.service.Stack(d)
	if err != nil {
		return h.fail(c, q, err)
	}
	return c.JSON(fiber.Map{"stack": stack})
}

func (h *Handler) fail(c *fiber.Ctx, q Query, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":    err.Error(),
			"code":     q.Code,
			"revision": q.Revision,
		})
	}

	logger.WithRayID(h.service.logger, c).Error("Lookup failed", zap.String("code", q.Code), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
