package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/page-router/pkg/middleware"
	"github.com/JaimeStill/page-router/pkg/route"
)

// RouteData is passed to view templates as ViewData.Data.
type RouteData struct {
	Requested string
	Path      string
	Name      string
	Component string
}

// HistoryConfig holds the collaborators of a History handler.
type HistoryConfig struct {
	Table     *route.Table
	Registry  *Registry
	Templates *TemplateSet
	Layout    string
	NotFound  ViewDef
	Failure   ViewDef
	Logger    *slog.Logger
}

// History serves a route table in history mode. Every request path is
// resolved against the table: redirects answer 302 to the final path, render
// outcomes execute the registered view, and unmatched paths render NotFound.
type History struct {
	table     *route.Table
	registry  *Registry
	templates *TemplateSet
	layout    string
	notFound  ViewDef
	failure   ViewDef
	logger    *slog.Logger
}

// NewHistory validates that every component in the table is registered.
func NewHistory(cfg HistoryConfig) (*History, error) {
	if cfg.Table == nil || cfg.Registry == nil || cfg.Templates == nil {
		return nil, errors.New("history: table, registry and templates are required")
	}
	if err := cfg.Registry.Check(cfg.Table); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &History{
		table:     cfg.Table,
		registry:  cfg.Registry,
		templates: cfg.Templates,
		layout:    cfg.Layout,
		notFound:  cfg.NotFound,
		failure:   cfg.Failure,
		logger:    logger,
	}, nil
}

func (h *History) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	logger := h.logger
	if id := middleware.RequestID(r.Context()); id != "" {
		logger = logger.With("request_id", id)
	}

	res, err := h.table.Resolve(r.URL.Path)
	if err != nil {
		logger.Error("route resolution failed", "path", r.URL.Path, "error", err)
		h.render(w, logger, h.failure, http.StatusLoopDetected, RouteData{Requested: res.Requested})
		return
	}

	if res.Redirected() {
		target := h.table.Href(res.Outcome.Path)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		logger.Debug("route redirect", "from", res.Requested, "to", target, "hops", len(res.Redirects))
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	data := RouteData{
		Requested: res.Requested,
		Path:      res.Outcome.Path,
		Name:      res.Outcome.Name,
		Component: res.Outcome.Component,
	}

	if res.Outcome.Kind != route.KindRender {
		h.render(w, logger, h.notFound, http.StatusNotFound, data)
		return
	}

	view, ok := h.registry.Lookup(res.Outcome.Component)
	if !ok {
		logger.Error("component not registered", "component", res.Outcome.Component, "path", res.Outcome.Path)
		h.render(w, logger, h.failure, http.StatusInternalServerError, data)
		return
	}

	h.render(w, logger, view, http.StatusOK, data)
}

func (h *History) render(w http.ResponseWriter, logger *slog.Logger, view ViewDef, status int, data RouteData) {
	if err := h.templates.Render(w, h.layout, view, status, data); err != nil {
		logger.Error("render failed", "template", view.Template, "error", err)
		http.Error(w, http.StatusText(status), status)
	}
}
