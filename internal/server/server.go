package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nconklindev/rowify/internal/config"
	"github.com/nconklindev/rowify/internal/converter"
	mw "github.com/nconklindev/rowify/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const GracefulShutdownTimeout = 10 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	Echo *echo.Echo

	cfg    config.ServerConfig
	svc    *converter.Service
	logger *slog.Logger
}

type templateRenderer struct {
	templates *template.Template
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func New(cfg config.ServerConfig, svc *converter.Service, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}

	s := &Server{
		Echo:   e,
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}

	s.setupMiddlewares()
	s.routes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.Echo.Use(mw.Logger(s.logger, mw.WithSkipper(func(c echo.Context) bool {
		return c.Path() == "/health"
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  s.cfg.CorsOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		ExposeHeaders: []string{echo.HeaderContentDisposition, HeaderConversionID},
	}))
}

func (s *Server) routes() {
	s.Echo.GET("/", s.index)
	s.Echo.POST("/convert", s.convert)
	s.Echo.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "port", s.cfg.Port)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutdown started")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(shutdownCtx)
}
