// cmd/chatmock/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"techtorque/chatmock/internal/config"
	"techtorque/chatmock/internal/logging"
	"techtorque/chatmock/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return exitWithError(err)
	}

	log := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "chatmock",
	})
	log.Debug("config loaded",
		"listen", cfg.Server.ListenAddr,
		"delay", cfg.Chat.Delay,
		"origins", cfg.CORS.AllowedOrigins,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, log).Run(ctx); err != nil {
		return exitWithError(err)
	}
	log.Info("shutdown complete")
	return 0
}

func exitWithError(err error) int {
	_, _ = os.Stderr.WriteString("chatmock error: " + err.Error() + "\n")
	return 1
}
