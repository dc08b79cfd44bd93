// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"sort"
	"strings"

	"loopcard/internal/delivery/api/response"
	"loopcard/internal/delivery/api/validator"
	deliverycontext "loopcard/internal/delivery/context"
	domainerrors "loopcard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		fields := validator.FieldErrors(err)
		if fields == nil {
			return errors.WithStack(err)
		}

		return domainerrors.ErrValidationFailed.WithDetails(describeFields(fields))
	}

	return nil
}

// describeFields renders field -> rule pairs as "a: required; b: email".
func describeFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name])
	}

	return strings.Join(parts, "; ")
}

// paramUUID parses the path parameter name.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// currentUserID returns the user set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionNotFound
	}

	return userID, nil
}
