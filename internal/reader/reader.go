// Package reader loads the whole target file into memory as UTF-8 text
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

func ReadDocument(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified file %q is a directory", fileName)
	}

	// читаем файл целиком
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %q: %w", fileName, ErrInvalidEncoding)
	}

	return string(raw), nil
}
