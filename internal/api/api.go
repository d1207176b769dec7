// Package api provides the JSON diagnostics module for the route table.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/pkg/middleware"
	"github.com/JaimeStill/page-router/pkg/module"
	"github.com/JaimeStill/page-router/pkg/openapi"
	"github.com/JaimeStill/page-router/pkg/route"
	"github.com/JaimeStill/page-router/pkg/routes"
)

// NewModule builds the API module mounted at cfg.BasePath with request
// logging and CORS applied. The module also serves its own OpenAPI
// document at /openapi.json.
func NewModule(cfg *config.APIConfig, version string, table *route.Table, logger *slog.Logger) (*module.Module, error) {
	h := NewHandler(table, logger)

	sys := routes.New()
	sys.RegisterGroup(h.Routes())
	sys.RegisterRoute(h.ResolveRoute())

	doc := routes.Spec(sys,
		&openapi.Info{
			Title:       cfg.OpenAPI.Title,
			Version:     version,
			Description: cfg.OpenAPI.Description,
		},
		[]*openapi.Server{{URL: cfg.BasePath}},
		Components(),
	)
	specBytes, err := openapi.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/openapi.json",
		Handler: serveOpenAPISpec(specBytes),
	})

	m := module.New(cfg.BasePath, sys.Build())
	m.Use(middleware.Logger(logger))
	m.Use(middleware.CORS(&cfg.CORS))
	return m, nil
}

func serveOpenAPISpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
