package httpserver

import (
	"errors"
	"net/http"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/intent"
)

func statusFor(err error) int {
	if errors.Is(err, intent.ErrValidation) ||
		errors.Is(err, intent.ErrConfirmationRequired) ||
		errors.Is(err, intent.ErrSelfAction) {
		return http.StatusBadRequest
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 600 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// userMessage picks what the failure banner says: the validation text, the
// backend's error field, or a generic fallback for transport failures.
func userMessage(err error) string {
	var vErr *intent.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Msg
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, intent.ErrConfirmationRequired) {
		return "a ação precisa ser confirmada"
	}
	if errors.Is(err, intent.ErrSelfAction) {
		return "você não pode alterar sua própria conta"
	}
	return "erro inesperado, tente novamente mais tarde"
}
