package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/middleware"
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	templateGlob   string
	maxUploadBytes int64
	rateLimitPM    int

	timesheetUC timesheet.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TemplateGlob   string
	MaxUploadBytes int64
	RateLimitPM    int

	TimesheetUC timesheet.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		templateGlob:   cfg.TemplateGlob,
		maxUploadBytes: cfg.MaxUploadBytes,
		rateLimitPM:    cfg.RateLimitPM,
		timesheetUC:    cfg.TimesheetUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timesheetUC == nil {
		return errors.New("timesheet usecase is required")
	}
	return nil
}

// mw builds the middleware bundle shared by domain routes.
func (srv *HTTPServer) mw() middleware.Middleware {
	return middleware.New(srv.l, srv.rateLimitPM)
}
