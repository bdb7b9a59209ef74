package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaelo-app/admin-console/internal/api"
	"github.com/kaelo-app/admin-console/internal/interfaces/cli"
	"github.com/kaelo-app/admin-console/internal/session"
	"github.com/kaelo-app/admin-console/pkg/config"
	"github.com/kaelo-app/admin-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("api_url", cfg.API.BaseURL).
		Msg("iniciando consola de administración")

	sessions := session.NewStore(cfg.API.TokenFile)
	client := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}, sessions, log)

	// Ctrl-C cancela la petición en vuelo; no hay reintentos ni colas.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Deps{
		API:      client,
		Sessions: sessions,
		Notifier: cli.NewToastNotifier(os.Stdout),
		Log:      log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("comando finalizado con error")
		os.Exit(1)
	}
}
