package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

func RunServer(ctx context.Context, stop context.CancelFunc, sc *model.ServerConfig, log zerolog.Logger) {
	// получить экземпляр сервера
	srv := transport.NewServer(sc.Address, processor.Processor{}, log)

	// запуск сервера
	go func() {
		log.Info().Str("address", srv.Addr).Msg("search server running")
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Info().Msg("server gracefully stopping...")
			default:
				log.Error().Err(err).Msg("server stopped")
				stop()
			}
		}
	}()

	<-ctx.Done()

	// закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Str("address", sc.Address).Msg("failed to shutdown search server correctly")
	} else {
		log.Info().Str("address", sc.Address).Msg("search server is closed")
	}
}
