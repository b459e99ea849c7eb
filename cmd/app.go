package main

import (
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(launch(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

// launch возвращает код выхода процесса: 0 - поиск выполнен, 1 - ошибка аргументов или чтения файла
func launch(args []string, lookupEnv parser.LookupEnv, stdout, stderr io.Writer) int {
	log := logger.New(stderr, zerolog.WarnLevel, lookupEnv)

	// собираем конфиг из аргументов и окружения
	cfg, err := parser.Build(args, lookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %s\n", err)
		return 1
	}
	log.Debug().Str("query", cfg.Query).Str("file", cfg.FilePath).Bool("ignore_case", cfg.IgnoreCase).Msg("config built")

	if err := appmode.Run(cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "Application error: %s\n", err)
		return 1
	}
	return 0
}
