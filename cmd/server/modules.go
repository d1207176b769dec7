package main

import (
	"net/http"

	"github.com/JaimeStill/page-router/internal/api"
	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/internal/infrastructure"
	"github.com/JaimeStill/page-router/pkg/middleware"
	"github.com/JaimeStill/page-router/pkg/module"
	"github.com/JaimeStill/page-router/web/app"
)

// Modules holds the prefix-mounted modules and the history-mode app handler.
type Modules struct {
	API *module.Module
	App http.Handler
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(&cfg.API, cfg.Version, infra.Routes, infra.Logger)
	if err != nil {
		return nil, err
	}

	appHandler, err := app.NewHandler(infra.Routes, infra.Logger)
	if err != nil {
		return nil, err
	}

	appMiddleware := middleware.New()
	appMiddleware.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API: apiModule,
		App: appMiddleware.Apply(appHandler),
	}, nil
}

// Mount registers the API module by prefix and the app as the native catch-all,
// so every path outside a module prefix is resolved in history mode.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.HandleNative("/", m.App.ServeHTTP)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
