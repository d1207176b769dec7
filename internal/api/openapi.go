package api

import (
	"net/http"

	"github.com/JaimeStill/page-router/pkg/openapi"
)

type spec struct {
	List    *openapi.Operation
	Lookup  *openapi.Operation
	Resolve *openapi.Operation
}

// Spec documents the diagnostics endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List route records",
		Description: "Returns every record in table order, including redirect records.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route records", &openapi.Schema{
				Type:  "array",
				Items: openapi.SchemaRef("Record"),
			}),
		},
	},
	Lookup: &openapi.Operation{
		Summary: "Find a route by name",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Route name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route record", openapi.SchemaRef("Record")),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Resolve: &openapi.Operation{
		Summary:     "Resolve a navigation path",
		Description: "Follows redirects from path and returns each hop with the final outcome.",
		Tags:        []string{"Resolution"},
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "string", "Navigation path relative to the history base", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolution", openapi.SchemaRef("Resolution")),
			400: openapi.ResponseRef("BadRequest"),
			508: openapi.ResponseRef("LoopDetected"),
		},
	},
}

// Components returns the schemas and shared responses referenced by Spec.
func Components() *openapi.Components {
	c := openapi.NewComponents()

	str := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "string", Description: desc}
	}

	outcome := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"kind":      {Type: "string", Enum: []string{"render", "redirect", "none"}},
			"path":      str("Path the outcome applies to"),
			"target":    str("Redirect target"),
			"name":      str("Route name"),
			"component": str("Component identifier"),
		},
		Required: []string{"kind", "path"},
	}

	c.AddSchemas(map[string]*openapi.Schema{
		"Record": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":      str("Exact history-mode path"),
				"redirect":  str("Redirect target path"),
				"name":      str("Unique route name"),
				"component": str("Component identifier"),
			},
			Required: []string{"path"},
		},
		"Outcome": outcome,
		"Resolution": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"requested": str("Normalized requested path"),
				"outcome":   openapi.SchemaRef("Outcome"),
				"redirects": {Type: "array", Items: openapi.SchemaRef("Outcome")},
			},
			Required: []string{"requested", "outcome", "redirects"},
		},
		"Error": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"error": str("Error message")},
			Required:   []string{"error"},
		},
	})

	for name, status := range map[string]int{
		"BadRequest":   http.StatusBadRequest,
		"NotFound":     http.StatusNotFound,
		"LoopDetected": http.StatusLoopDetected,
	} {
		c.Responses[name] = openapi.ResponseJSON(http.StatusText(status), openapi.SchemaRef("Error"))
	}

	return c
}
