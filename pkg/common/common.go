package common

import (
	"context"
	"strconv"
)

const (
	// DefaultPage is used when the page query parameter is absent or unusable.
	DefaultPage = 1
	// DefaultLimit is used when the limit query parameter is absent or unusable.
	DefaultLimit = 10
)

// MessageResponse wraps a successful mutation or detail read.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the structured body for every client-visible failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// PageParams holds coerced pagination input.
type PageParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams coerces raw query values into positive pagination
// parameters, falling back to defaults for anything absent, non-numeric,
// or non-positive.
func ParsePageParams(rawPage, rawLimit string) PageParams {
	page := DefaultPage
	if n, err := strconv.Atoi(rawPage); err == nil && n > 0 {
		page = n
	}
	limit := DefaultLimit
	if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 {
		limit = n
	}
	return PageParams{Page: page, Limit: limit}
}

// TotalPages computes the page count for a total row count at the given
// page size.
func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	requestIDKey contextKey = "request_id"
)

// ContextWithUserID stores the caller's user ID into context.
func ContextWithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the user ID from context.
func GetUserID(ctx context.Context) (int, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case string:
		id, err := strconv.Atoi(val)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// ContextWithRequestID stores the per-request correlation ID into context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
