// Package processor runs a search request through the line filters and fingerprints the result
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessRequest(ctx context.Context, req *model.SearchRequest) *model.SearchResult {
	result := model.SearchResult{
		RequestID: req.RequestID,
		Lines:     []string{},
	}

	// запрос уже отменен - не ищем
	select {
	case <-ctx.Done():
		result.Hash = hasher(ctx, result.Lines)
		return &result
	default:
	}

	result.Lines = matcher.Find(req.Query, req.Text, req.IgnoreCase)

	// считаем общий хеш
	result.Hash = hasher(ctx, result.Lines)

	return &result
}

// hasher считает xxhash по всем строкам, каждая строка завершается '\n',
// чтобы ["ab"] и ["a","b"] давали разные суммы
func hasher(ctx context.Context, lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
