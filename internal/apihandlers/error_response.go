package apihandlers

import (
	"errors"
	"net/http"

	"bubble/internal/models"
	"bubble/internal/taxonomy"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Invalid ID" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

func Unavailable(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusServiceUnavailable, "not_configured", msg)
}

// respondError maps domain sentinels onto the envelope.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrEmptyArticle):
		BadRequest(ctx, err.Error())
	case errors.Is(err, models.ErrNotFound), errors.Is(err, taxonomy.ErrNoCategories):
		NotFound(ctx, err.Error())
	case errors.Is(err, models.ErrNotConfigured):
		Unavailable(ctx, err.Error())
	default:
		log.Errorf("%s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
		Internal(ctx, "internal error")
	}
}
