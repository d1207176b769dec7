// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module shares: lifecycle coordination,
// logging, and the application route table.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/pkg/lifecycle"
	"github.com/JaimeStill/page-router/pkg/logging"
	"github.com/JaimeStill/page-router/pkg/route"
	"github.com/JaimeStill/page-router/web/app"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Routes    *route.Table
}

// New creates an Infrastructure from the application configuration, writing logs to w.
// The route table is built and validated here so a bad table fails startup.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging, w)

	table, err := app.Routes(cfg.Router)
	if err != nil {
		return nil, fmt.Errorf("route table init failed: %w", err)
	}

	logger.Info("route table loaded",
		"base", table.Base(),
		"records", len(table.Records()),
		"max_redirects", cfg.Router.MaxRedirects,
	)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Routes:    table,
	}, nil
}
