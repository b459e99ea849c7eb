// Package appmode provides 2 ways to run the app: a one-shot CLI search and the HTTP search server
package appmode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// Run читает файл из cfg целиком, ищет в нем и печатает найденные строки в w по одной на строку
func Run(cfg *model.Config, w io.Writer) error {
	text, err := reader.ReadDocument(cfg.FilePath)
	if err != nil {
		return err
	}

	lines := matcher.Find(cfg.Query, text, cfg.IgnoreCase)

	out := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
