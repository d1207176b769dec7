// Package app is the page1 single-page application: its route table,
// component views, and embedded templates and assets.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/JaimeStill/page-router/pkg/route"
	"github.com/JaimeStill/page-router/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"site.webmanifest",
}

var records = []route.Record{
	{Path: "/page1/", Redirect: "/page1/index"},
	{Path: "/page1/index", Name: "HelloWorld", Component: "HelloWorld"},
}

var components = []web.ViewDef{
	{Component: "HelloWorld", Template: "hello-world.html", Title: "Hello World", Bundle: "app"},
}

var (
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
	failureView  = web.ViewDef{Template: "error.html", Title: "Navigation Error", Bundle: "app"}
)

// Routes builds the application route table for the given history settings.
func Routes(cfg route.Config) (*route.Table, error) {
	return route.New(cfg, records...)
}

// Components returns the registry of views the route table renders.
func Components() (*web.Registry, error) {
	return web.NewRegistry(components...)
}

// NewHandler serves table in history mode with the embedded views, plus
// bundled assets under dist/ and public files, all relative to the table base.
func NewHandler(table *route.Table, logger *slog.Logger) (http.Handler, error) {
	registry, err := Components()
	if err != nil {
		return nil, err
	}

	views := append(slices.Clone(components), notFoundView, failureView)
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "server/layouts/*.html", "server/views", table.Base(), views)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	history, err := web.NewHistory(web.HistoryConfig{
		Table:     table,
		Registry:  registry,
		Templates: ts,
		Layout:    layout,
		NotFound:  notFoundView,
		Failure:   failureView,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()
	r.SetFallback(history.ServeHTTP)

	dist := table.Href("/dist/")
	r.HandleFunc("GET "+dist, web.DistServer(distFS, "dist", dist))

	for _, pf := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(pf.Method+" "+table.Href(pf.Pattern), pf.Handler)
	}

	return r, nil
}
