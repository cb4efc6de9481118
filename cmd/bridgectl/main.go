package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/bridgectl/internal/bridge"
	"github.com/danmuck/bridgectl/internal/logging"
	"github.com/danmuck/bridgectl/internal/server"
	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "bridge config path (toml)")
	stdio := flag.Bool("stdio", false, "serve the console on stdin/stdout instead of a serial device")
	flag.Parse()

	if err := run(*configPath, *stdio); err != nil {
		fmt.Fprintf(os.Stderr, "bridgectl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, stdio bool) error {
	logging.ConfigureRuntime()

	cfg := bridge.DefaultServiceConfig()
	if configPath != "" {
		loaded, err := loadServiceConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.UseStdio = cfg.UseStdio || stdio
	if err := cfg.Validate(); err != nil {
		return err
	}

	port, err := openPort(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := bridge.NewService(cfg, bridge.NewLoopback())
	if cfg.AdminAddr != "" {
		admin := server.NewAdmin(svc)
		go func() {
			if err := admin.ListenAndServe(ctx); err != nil {
				log.Error().Err(err).Msg("admin api stopped")
			}
		}()
	}
	return svc.Serve(ctx, port)
}

func openPort(cfg bridge.ServiceConfig) (transport.Port, error) {
	if cfg.UseStdio {
		return transport.NewStdioPort(), nil
	}
	return transport.OpenSerial(cfg.Serial)
}
