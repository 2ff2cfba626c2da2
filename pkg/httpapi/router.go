// Package httpapi wires the answering pipeline into a gin HTTP surface.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/websage/answerd/pkg/rag"
)

// Answerer runs the full answering pipeline.
type Answerer interface {
	Answer(ctx context.Context, req rag.Request) (*rag.Response, error)
}

// SetupRouter registers all HTTP routes. mcpHandler may be nil to disable
// the MCP endpoint.
func SetupRouter(e *gin.Engine, pipeline Answerer, mcpHandler http.Handler, log zerolog.Logger) {
	e.Use(requestLogger(log.With().Str("component", "http").Logger()))

	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	e.POST("/ask", func(c *gin.Context) {
		var req rag.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		answer(c, pipeline, req)
	})

	// GET variant for quick curl-style use: /ask?q=...
	e.GET("/ask", func(c *gin.Context) {
		answer(c, pipeline, rag.Request{
			Content:  c.Query("q"),
			Provider: c.Query("provider"),
		})
	})

	if mcpHandler != nil {
		e.Any("/mcp", gin.WrapH(mcpHandler))
	}
}

func answer(c *gin.Context, pipeline Answerer, req rag.Request) {
	resp, err := pipeline.Answer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, rag.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
