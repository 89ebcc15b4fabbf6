// Package app wires configuration and schema loading into a runnable server.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"sliceql/internal/api"
	"sliceql/internal/config"
	"sliceql/internal/declarative"
	"sliceql/internal/service/slicer"
)

// App holds the assembled server dependencies.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services []*slicer.Service
	Router   http.Handler
}

// New loads the slicer documents from the configured schema directory and
// builds the HTTP router.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	registries, err := declarative.LoadDirectory(cfg.SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("load schema directory: %w", err)
	}
	if len(registries) == 0 {
		return nil, fmt.Errorf("no slicers defined in %s", cfg.SchemaDir)
	}

	services := make([]*slicer.Service, 0, len(registries))
	for _, reg := range registries {
		logger.Info("loaded slicer",
			"component", "app",
			"slicer", reg.Name(),
			"table", reg.Table().Name,
			"dialect", reg.Dialect().Name(),
			"metrics", len(reg.Metrics()),
			"dimensions", len(reg.Dimensions()))
		services = append(services, slicer.NewService(reg))
	}

	handler := api.NewHandler(services, logger)
	return &App{
		Config:   cfg,
		Logger:   logger,
		Services: services,
		Router:   api.NewRouter(handler, cfg),
	}, nil
}
