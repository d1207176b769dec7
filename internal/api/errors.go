package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/page-router/pkg/route"
)

// Errors returned by the route diagnostics endpoints.
var (
	ErrNotFound     = errors.New("route not found")
	ErrPathRequired = errors.New("path query parameter required")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrPathRequired) {
		return http.StatusBadRequest
	}
	if errors.Is(err, route.ErrRedirectLoop) {
		return http.StatusLoopDetected
	}
	return http.StatusInternalServerError
}
