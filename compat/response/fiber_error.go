package response

import (
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/stackwalk/package/span"
)

func HandleError(c fiber.Ctx, err error) error {
	// * case of `*fiber.Error`
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&ErrorResponse{
			Success: gut.Ptr(false),
			Message: &fiberError.Message,
		})
	}

	// * case of `validator.ValidationErrors`
	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}

		message := strings.Join(lists, ", ")

		return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + message),
			Error:   gut.Ptr(validatorErr.Error()),
		})
	}

	// * case of `*span.Error`
	var spanError *span.Error
	if errors.As(err, &spanError) {
		response := &ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr(spanError.Error()),
			Error:   nil,
			Trace:   spanError.Trace(),
		}
		if len(spanError.Items) > 0 {
			response.Message = spanError.Items[len(spanError.Items)-1].Message
		}
		if cause := spanError.Unwrap(); cause != nil {
			response.Error = gut.Ptr(cause.Error())
		}
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
