// Package admin exposes the operational HTTP surface next to the gRPC data
// path: pool health (including engine-init degradation) and aggregate
// request metrics.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lexrey20/STDISCM/internal/auth"
	"github.com/lexrey20/STDISCM/internal/pool"
	"github.com/lexrey20/STDISCM/internal/repository"
)

// PoolStatus is the pool-facing view needed by the health endpoint.
type PoolStatus interface {
	Stats() pool.Stats
	Healthy() bool
}

// MetricsSource reads persisted recognition logs. Nil disables the metrics
// and lookup endpoints (they report persistence as disabled instead).
type MetricsSource interface {
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
	FindByRequestID(ctx context.Context, requestID string) (*repository.RecognitionLog, error)
}

// MetricsSummary is the response shape of the metrics endpoint.
type MetricsSummary struct {
	TotalRequests       int64   `json:"total_requests"`
	AverageProcessingMs float64 `json:"average_processing_ms"`
}

// RegisterRoutes wires the admin handlers to the Gin router. When secret is
// empty the endpoints stay unauthenticated.
func RegisterRoutes(router *gin.Engine, status PoolStatus, metrics MetricsSource, logger *zap.Logger, secret, audience string) {
	group := router.Group("/")
	if secret != "" {
		group.Use(auth.JWTMiddleware(secret, audience))
	}

	group.GET("/health", func(c *gin.Context) {
		stats := status.Stats()
		state := "ok"
		code := http.StatusOK
		if !status.Healthy() {
			// Workers are serving with uninitialized engines; results are
			// degraded even though the wire contract still reports ok=true.
			state = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": state,
			"pool":   stats,
		})
	})

	group.GET("/metrics", func(c *gin.Context) {
		if metrics == nil {
			c.JSON(http.StatusOK, gin.H{"persistence": "disabled"})
			return
		}
		agg, err := metrics.AggregateMetrics(c.Request.Context())
		if err != nil {
			logger.Error("metrics aggregation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "metrics unavailable"})
			return
		}
		c.JSON(http.StatusOK, MetricsSummary{
			TotalRequests:       agg.TotalCount,
			AverageProcessingMs: agg.AverageProcessingMs,
		})
	})

	group.GET("/requests/:id", func(c *gin.Context) {
		if metrics == nil {
			c.JSON(http.StatusOK, gin.H{"persistence": "disabled"})
			return
		}
		log, err := metrics.FindByRequestID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"request_id":    log.RequestID,
			"client_id":     log.ClientID,
			"batch_id":      log.BatchID,
			"filename":      log.Filename,
			"lang":          log.Lang,
			"text_length":   log.TextLength,
			"processing_ms": log.ProcessingMs,
			"created_at":    log.CreatedAt,
		})
	})
}
