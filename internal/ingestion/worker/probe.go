package worker

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

// Probe serves the readiness endpoint the orchestrator polls. Ready means
// a live broker subscription, not just a running process.
type Probe struct {
	log   *logger.Logger
	port  string
	ready atomic.Bool
}

func NewProbe(log *logger.Logger) *Probe {
	return &Probe{
		log:  log.With("component", "Probe"),
		port: envutil.Str("WORKER_PROBE_PORT", "8080"),
	}
}

func (p *Probe) SetReady(ready bool) {
	p.ready.Store(ready)
}

func (p *Probe) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", p.healthz)

	server := &http.Server{
		Addr:    ":" + p.port,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	p.log.Info("Readiness probe listening", "port", p.port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (p *Probe) healthz(c *gin.Context) {
	if !p.ready.Load() {
		c.String(http.StatusServiceUnavailable, "not ready")
		return
	}
	c.String(http.StatusOK, "ok")
}
