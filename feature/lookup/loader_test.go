package lookup

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(setupResolver(t), zap.NewNop())

	assert.Equal(t, "lookup", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
