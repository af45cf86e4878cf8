package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/stackwalk/package/span"
)

type query struct {
	Skip *int `validate:"required,gte=0"`
}

func request(t *testing.T, handler fiber.Handler) (int, *ErrorResponse) {
	app := fiber.New(fiber.Config{ErrorHandler: HandleError})
	app.Get("/", handler)

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	payload := new(ErrorResponse)
	require.NoError(t, json.Unmarshal(body, payload))
	return res.StatusCode, payload
}

func TestHandleSpanError(t *testing.T) {
	status, payload := request(t, func(c fiber.Ctx) error {
		err := span.NewError(nil, "unable to walk", io.EOF)
		return span.NewError(nil, "unable to inspect", err)
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *payload.Success)
	assert.Equal(t, "unable to inspect", *payload.Message)
	assert.Equal(t, "EOF", *payload.Error)
	assert.Len(t, payload.Trace, 2)
}

func TestHandleEmptySpanError(t *testing.T) {
	status, payload := request(t, func(c fiber.Ctx) error {
		return &span.Error{}
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *payload.Success)
	assert.Nil(t, payload.Error)
	assert.Empty(t, payload.Trace)
}

func TestHandleFiberError(t *testing.T) {
	status, payload := request(t, func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "no frame")
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "no frame", *payload.Message)
	assert.Nil(t, payload.Error)
}

func TestHandleValidationError(t *testing.T) {
	status, payload := request(t, func(c fiber.Ctx) error {
		return validator.New().Struct(new(query))
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, *payload.Message, "validation failed on Skip (required)")
}

func TestHandleUnknownError(t *testing.T) {
	status, payload := request(t, func(c fiber.Ctx) error {
		return errors.New("boom")
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "boom", *payload.Error)
}

func TestSuccess(t *testing.T) {
	assert.Equal(t, "done", *Success("done").Message)
	assert.Equal(t, []string{"a"}, Success([]string{"a"}).Data)
}
