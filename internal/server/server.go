package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/username/jp-holidays/internal/calendar"
	"github.com/username/jp-holidays/internal/snapshot"
	"go.uber.org/zap"
)

// Provider hands out the calendar; *calendar.Lazy satisfies it
type Provider interface {
	Get(ctx context.Context) (*calendar.Calendar, error)
}

// Error is an API failure with its HTTP status
type Error struct {
	Code    int
	Message string
}

// HandlerFunc returns a JSON body or an API error
type HandlerFunc func(ctx *gin.Context, cal *calendar.Calendar) (any, *Error)

// DayResponse adds the day-off classification to the per-day document
type DayResponse struct {
	snapshot.Response
	Weekend bool `json:"weekend"`
	DayOff  bool `json:"day_off"`
}

// Server exposes calendar queries over HTTP
type Server struct {
	provider Provider
	logger   *zap.Logger
}

// New creates a new Server
func New(provider Provider, logger *zap.Logger) *Server {
	return &Server{
		provider: provider,
		logger:   logger,
	}
}

// Router builds the gin engine with every route mounted
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	v1 := r.Group("/api/v1")
	v1.GET("/holidays", s.resolve(listHolidays))
	v1.GET("/holidays/:date", s.resolve(getHoliday))
	v1.GET("/days/:date", s.resolve(getDay))

	return r
}

// resolve loads the calendar and writes the handler's result as JSON
func (s *Server) resolve(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cal, err := s.provider.Get(ctx.Request.Context())
		if err != nil {
			s.logger.Error("Calendar unavailable", zap.Error(err))
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "holiday calendar unavailable"})
			return
		}

		result, apiErr := h(ctx, cal)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		s.logger.Debug("Request served",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()))
	}
}

// ListenAndServe runs the API until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP API")
		return srv.Shutdown(context.Background())
	}
}
