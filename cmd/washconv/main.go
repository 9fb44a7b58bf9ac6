package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avolkov/washconv/internal/config"
	"github.com/avolkov/washconv/internal/deps"
	"github.com/avolkov/washconv/internal/server"
	"github.com/avolkov/washconv/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewConfig()
	store := storage.NewMemoryStore()
	deps := deps.NewDependencies(config.Logger)

	srv := server.NewServer(store, config, deps)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
