package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError reports missing or malformed input the caller can correct.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// NotFoundError reports an absent referenced entity.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// AuthorizationError reports a caller who is not the owning party. It is
// deliberately distinct from NotFoundError so audit trails stay honest.
type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string { return e.Msg }

// StateConflictError reports an operation that is illegal in the entity's
// current state: an unreachable transition, a duplicate report, a second
// review.
type StateConflictError struct {
	Msg string
}

func (e StateConflictError) Error() string { return e.Msg }

// HTTPStatus maps a domain error to its response status. Anything outside
// the taxonomy is a dependency failure.
func HTTPStatus(err error) int {
	var (
		ve ValidationError
		nf NotFoundError
		ae AuthorizationError
		sc StateConflictError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ae):
		return http.StatusForbidden
	case errors.As(err, &sc):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a JSON error response. Dependency failures are
// logged with the real cause and surfaced with a generic message.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	c.JSON(status, ErrorResponse{Message: err.Error()})
}
