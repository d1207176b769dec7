package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/page-router/pkg/handlers"
	"github.com/JaimeStill/page-router/pkg/route"
	"github.com/JaimeStill/page-router/pkg/routes"
)

// Handler exposes a route table over JSON for diagnostics.
type Handler struct {
	table  *route.Table
	logger *slog.Logger
}

// NewHandler creates a diagnostics handler for table.
func NewHandler(table *route.Table, logger *slog.Logger) *Handler {
	return &Handler{
		table:  table,
		logger: logger.With("handler", "routes"),
	}
}

// Routes returns the route group for table inspection endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/routes",
		Tags:        []string{"Routes"},
		Description: "Route table inspection",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{name}", Handler: h.Lookup, OpenAPI: Spec.Lookup},
		},
	}
}

// List handles GET /routes, returning every record in table order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.table.Records())
}

// Lookup handles GET /routes/{name} for named navigation.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rec, ok := h.table.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, name)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rec)
}

// ResolveRoute returns the resolution endpoint, registered outside the routes group.
func (h *Handler) ResolveRoute() routes.Route {
	return routes.Route{
		Method:  "GET",
		Pattern: "/resolve",
		Handler: h.Resolve,
		OpenAPI: Spec.Resolve,
	}
}

// Resolve handles GET /resolve?path=..., returning the full resolution.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrPathRequired), ErrPathRequired)
		return
	}

	res, err := h.table.Resolve(path)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, res)
}
