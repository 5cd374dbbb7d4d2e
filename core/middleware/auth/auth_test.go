package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"Disabled", "", "", 200},
		{"Valid", "secret", "secret", 200},
		{"Missing", "secret", "", 401},
		{"Wrong", "secret", "guess", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}
			resp, err := setupApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
