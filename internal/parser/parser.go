// Package parser builds launch configuration from os.Args and the environment
package parser

import (
	"errors"
	"flag"
	"fmt"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// IgnoreCaseEnv - наличие этой переменной окружения (с любым значением) включает поиск без учета регистра
const IgnoreCaseEnv = "IGNORE_CASE"

var (
	ErrMissingQuery    = errors.New("Didn't get a query string")
	ErrMissingFilePath = errors.New("Didn't get a file path")
)

// LookupEnv - сигнатура os.LookupEnv, передается явно, чтобы не лезть в окружение процесса из парсера
type LookupEnv func(key string) (string, bool)

// Build собирает Config: args[0] (имя программы) пропускается, дальше query и путь к файлу.
// Лишние аргументы игнорируются.
func Build(args []string, lookupEnv LookupEnv) (*model.Config, error) {
	// имя программы нам не нужно
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) == 0 {
		return nil, ErrMissingQuery
	}
	query := args[0]

	if len(args) == 1 {
		return nil, ErrMissingFilePath
	}
	filePath := args[1]

	ignoreCase := false
	if lookupEnv != nil {
		_, ignoreCase = lookupEnv(IgnoreCaseEnv)
	}

	return &model.Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}

// ParseServerFlags разбирает флаги HTTP-сервиса поиска (args - без имени программы)
func ParseServerFlags(args []string) (*model.ServerConfig, error) {
	flagParser := flag.NewFlagSet("minigrep-server", flag.ContinueOnError)
	addr := flagParser.String("address", model.DefaultServerAddress, "address for the search server to listen on")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *addr == "" {
		return nil, fmt.Errorf("empty server address")
	}

	return &model.ServerConfig{Address: *addr}, nil
}
