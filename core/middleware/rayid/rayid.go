// Package rayid tags every request with a unique id.
package rayid

import (
	"china-division/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// New returns a middleware that reuses an incoming X-Ray-ID or generates a new
// one, stores it in the locals and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
