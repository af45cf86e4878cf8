package response

import (
	"github.com/bsthun/gut"
)

type SuccessResponse struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

func Success(data any) *SuccessResponse {
	if message, ok := data.(string); ok {
		return &SuccessResponse{
			Success: gut.Ptr(true),
			Message: &message,
		}
	}

	return &SuccessResponse{
		Success: gut.Ptr(true),
		Data:    data,
	}
}
