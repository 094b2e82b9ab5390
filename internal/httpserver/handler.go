package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	timesheetHTTP "voice-timesheet/internal/timesheet/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	if srv.maxUploadBytes > 0 {
		srv.gin.MaxMultipartMemory = srv.maxUploadBytes
	}

	if srv.templateGlob != "" {
		srv.gin.LoadHTMLGlob(srv.templateGlob)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the timesheet domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	h := timesheetHTTP.New(srv.l, srv.timesheetUC, srv.maxUploadBytes)
	timesheetHTTP.RegisterRoutes(srv.gin, h, srv.mw())

	srv.l.Infof(ctx, "Timesheet domain registered")
}
