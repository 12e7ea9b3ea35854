package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hausa-translate/internal/config"
	"hausa-translate/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server exposes the translation service over HTTP: a JSON API plus a
// small browser UI.
type Server struct {
	cfg    *config.Config
	svc    *service.Service
	logger *zap.Logger
}

func New(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port),
		Handler:      s.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	s.logger.Info("Server exited")
	return nil
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(requestLogger(s.logger))
	r.Use(gin.Recovery())
	r.Use(rateLimit(s.cfg.RateLimit))

	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/health", s.health)

	// JSON API
	r.POST("/translate", s.translate)
	r.POST("/translate/batch", s.batchTranslate)
	r.GET("/history", s.history)
	r.GET("/languages", s.languages)

	// Browser UI
	r.GET("/", s.indexPage)
	r.POST("/web/translate", s.webTranslate)
	r.GET("/about", s.aboutPage)

	return r
}
