// Package apierr maps service and storage errors onto HTTP errors.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jagannath-p-s/malabareco-sub001/internal/service"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/sqlconfig"
)

// FromService converts err, returned while acting on entity, into a huma error.
func FromService(err error, entity string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		details := make([]error, 0, len(validationErr.Fields))
		for field, msg := range validationErr.Fields {
			details = append(details, &huma.ErrorDetail{Location: "body." + field, Message: msg})
		}
		return huma.NewError(http.StatusUnprocessableEntity, "validation failed", details...)
	case errors.Is(err, sqlconfig.ErrNotFound):
		return huma.Error404NotFound(entity + " not found")
	case errors.Is(err, sqlconfig.ErrReferenceInUse):
		return huma.Error409Conflict(fmt.Sprintf("%s is in use by existing entries and cannot be deleted", entity))
	default:
		return huma.NewError(http.StatusInternalServerError, entity+" operation failed", err)
	}
}
