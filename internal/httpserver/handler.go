package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "customer-support-agents/internal/chat/delivery/http"
	"customer-support-agents/internal/middleware"
	"customer-support-agents/internal/model"
	userHTTP "customer-support-agents/internal/user/delivery/http"
	validateHTTP "customer-support-agents/internal/validate/delivery/http"
)

func (srv HTTPServer) mapHandlers(mw middleware.Middleware) {
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	// Access logs are noise in production; structured request logs come from
	// the handlers there.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(mw.AccessLog())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/agents", srv.listAgents)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatHTTP.RegisterRoutes(api, srv.chatHandler)
	srv.l.Infof(ctx, "Chat routes registered at POST /api/v1/chat")

	if srv.validateHandler != nil {
		validateHTTP.RegisterRoutes(api, srv.validateHandler)
		srv.l.Infof(ctx, "Validation routes registered at /api/v1/validate")
	} else {
		srv.l.Infof(ctx, "Validation handler not configured, skipping validation routes")
	}

	if srv.userHandler != nil {
		userHTTP.RegisterRoutes(api, srv.userHandler)
		srv.l.Infof(ctx, "Identity routes registered at /api/v1/users")
	} else {
		srv.l.Infof(ctx, "Identity handler not configured, skipping identity routes")
	}
}
