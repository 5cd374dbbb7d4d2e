package rayid

import (
	"net/http/httptest"
	"testing"

	"china-division/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() (*fiber.App, *string) {
	var seen string
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(logger.RayIDKey).(string)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, &seen
}

func TestNew_Generates(t *testing.T) {
	app, seen := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(Header)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, *seen)
}

func TestNew_ReusesValidHeader(t *testing.T) {
	app, seen := setupApp()
	incoming := uuid.NewString()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, incoming)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, incoming, resp.Header.Get(Header))
	assert.Equal(t, incoming, *seen)
}

func TestNew_ReplacesGarbage(t *testing.T) {
	app, _ := setupApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "<script>")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.NotEqual(t, "<script>", resp.Header.Get(Header))
}
