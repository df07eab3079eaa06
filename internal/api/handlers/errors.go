package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irfndi/oddsframe/internal/cache"
	"github.com/irfndi/oddsframe/internal/middleware"
	"github.com/irfndi/oddsframe/internal/utils"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string      `json:"error"`
	Code      string      `json:"code"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type invalidValueDetails struct {
	Field   string   `json:"field"`
	Value   string   `json:"value"`
	Allowed []string `json:"allowed"`
}

type invalidTypeDetails struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type missingColumnDetails struct {
	Operation string   `json:"operation"`
	Columns   []string `json:"columns"`
}

// respondError maps err onto a status code and writes an ErrorResponse.
func respondError(c *gin.Context, err error) {
	status, resp := classify(err)
	resp.RequestID = middleware.GetRequestID(c)
	_ = c.Error(err)
	middleware.RecordError(c, err, resp.Code)
	c.AbortWithStatusJSON(status, resp)
}

func classify(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: err.Error()}

	var valueErr *utils.ValidationError
	var typeErr *utils.TypeError
	var colErr *utils.ColumnError
	var sizeErr *http.MaxBytesError

	switch {
	case errors.As(err, &valueErr):
		resp.Code = "invalid_value"
		if valueErr.Field != "" {
			resp.Details = invalidValueDetails{Field: valueErr.Field, Value: valueErr.Value, Allowed: valueErr.Allowed}
		}
		return http.StatusBadRequest, resp
	case errors.As(err, &typeErr):
		resp.Code = "invalid_type"
		resp.Details = invalidTypeDetails{Field: typeErr.Field, Expected: typeErr.Expected, Got: typeErr.Got}
		return http.StatusBadRequest, resp
	case errors.As(err, &colErr):
		resp.Code = "missing_column"
		resp.Details = missingColumnDetails{Operation: colErr.Operation, Columns: colErr.Columns}
		return http.StatusUnprocessableEntity, resp
	case errors.As(err, &sizeErr):
		resp.Code = "body_too_large"
		return http.StatusRequestEntityTooLarge, resp
	case errors.Is(err, cache.ErrCacheDisabled):
		resp.Code = "cache_disabled"
		return http.StatusConflict, resp
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		resp.Code = "timeout"
		return http.StatusServiceUnavailable, resp
	default:
		resp.Code = "internal_error"
		resp.Error = "internal server error"
		return http.StatusInternalServerError, resp
	}
}

// badRequest reports a malformed request body.
func badRequest(c *gin.Context, err error) {
	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		respondError(c, err)
		return
	}
	_ = c.Error(err)
	middleware.RecordError(c, err, "invalid_request")
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "invalid_request",
		RequestID: middleware.GetRequestID(c),
	})
}
