// Package transport provides the HTTP search server (by ginext) with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

type RequestProcessor interface {
	ProcessRequest(ctx context.Context, req *model.SearchRequest) *model.SearchResult
}

type handlers struct {
	proc RequestProcessor
	log  zerolog.Logger
}

func NewServer(addr string, proc RequestProcessor, log zerolog.Logger) *http.Server {
	h := handlers{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.Search)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.log.Debug().Msg("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) Search(ctx *ginext.Context) {
	var req model.SearchRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("failed to parse search request")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse search request from body: " + err.Error()})
		return
	}

	if req.RequestID == "" {
		req.RequestID = uuid.Generate().String()
	}

	res := h.proc.ProcessRequest(ctx.Request.Context(), &req)
	h.log.Info().
		Str("request_id", res.RequestID).
		Bool("ignore_case", req.IgnoreCase).
		Int("matches", len(res.Lines)).
		Msg("search done")

	ctx.JSON(http.StatusOK, res)
}
