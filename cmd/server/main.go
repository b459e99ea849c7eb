package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New(os.Stderr, zerolog.InfoLevel, os.LookupEnv)

	sc, err := parser.ParseServerFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to launch minigrep server: %v\n", err)
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appmode.RunServer(ctx, stop, sc, log)
}
