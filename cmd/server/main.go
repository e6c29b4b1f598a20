package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/fxquery/infra/initializer"
	"github.com/amirasaad/fxquery/pkg/app"
	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// @title Currency Converter API
// @version 1.0.0
// @description Free-text currency conversion queries
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, err := newServer(cfg, os.Stdout)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}

// newServer wires dependencies and routes without listening.
func newServer(cfg *config.App, logOut io.Writer) (*fiber.App, error) {
	deps, err := initializer.InitializeDependencies(cfg, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	if cfg.ExchangeRateApi.ApiKey == "" {
		deps.Logger.Warn("No rate provider API key configured; requests must send X-Api-Key")
	}
	return webapi.SetupApp(app.New(deps, cfg)), nil
}
