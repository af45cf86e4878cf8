package common

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"go.scnd.dev/open/stackwalk"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule(t *testing.T) {
	var app *fiber.App
	var provider stackwalk.Provider

	fxtest.New(
		t,
		fx.NopLogger,
		fx.Supply(new(stackwalk.Config)),
		Module,
		fx.Populate(&app, &provider),
	)

	assert.NotNil(t, app)
	assert.NotNil(t, provider.Walker())
}
