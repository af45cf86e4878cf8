package serve

import (
	"strconv"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/stackwalk/compat/response"
	"go.scnd.dev/open/stackwalk/core"
	"go.scnd.dev/open/stackwalk/package/walker"
)

type Handler struct {
	Instance *core.Instance
}

type Query struct {
	Skip   *int    `validate:"required,gte=0"`
	Limit  *int    `validate:"required,gte=0,lte=1024"`
	Prefix *string `validate:"omitempty"`
}

type NamePayload struct {
	Name *string `json:"name"`
}

func ParseQuery(c fiber.Ctx) (*Query, error) {
	query := &Query{
		Skip:   gut.Ptr(0),
		Limit:  gut.Ptr(0),
		Prefix: nil,
	}

	integers := []struct {
		key    string
		target **int
	}{
		{"skip", &query.Skip},
		{"limit", &query.Limit},
	}
	for _, integer := range integers {
		value := c.Query(integer.key)
		if value == "" {
			continue
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, integer.key+" must be an integer")
		}
		*integer.target = &number
	}
	if prefix := c.Query("prefix"); prefix != "" {
		query.Prefix = &prefix
	}

	if err := gut.Validate(query); err != nil {
		return nil, err
	}

	return query, nil
}

// HandleName reports the function found skip frames above the handler.
func (r *Handler) HandleName(c fiber.Ctx) error {
	query, err := ParseQuery(c)
	if err != nil {
		return err
	}

	var predicate walker.Predicate
	if query.Prefix != nil {
		predicate = walker.HasPrefix(*query.Prefix)
	}

	name, ok := r.Instance.FunctionName(c.Context(), *query.Skip, predicate)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no matching frame")
	}

	return c.JSON(response.Success(&NamePayload{
		Name: &name,
	}))
}

// HandleWalk lists the frames above the handler.
func (r *Handler) HandleWalk(c fiber.Ctx) error {
	query, err := ParseQuery(c)
	if err != nil {
		return err
	}

	frames := make([]*walker.Frame, 0)
	for frame := range r.Instance.Walker().Frames(*query.Skip) {
		if *query.Limit > 0 && len(frames) >= *query.Limit {
			break
		}
		frames = append(frames, frame)
	}

	return c.JSON(response.Success(frames))
}
