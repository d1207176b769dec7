package routes

import (
	"net/http"

	"github.com/JaimeStill/page-router/pkg/openapi"
)

// Route is a single HTTP endpoint. OpenAPI is optional; routes without it
// are served but left out of generated documents.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}
