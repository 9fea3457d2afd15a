package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/middleware"
	"github.com/pagelift/core/internal/modules/auth"
	"github.com/pagelift/core/internal/modules/page"
	"github.com/pagelift/core/internal/modules/public"
	"github.com/pagelift/core/internal/modules/tenant"
	"github.com/pagelift/core/internal/pkg/renderer"
	"github.com/pagelift/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	htmlRenderer := renderer.New(a.cfg.PlatformDomain)

	tenantSvc := tenant.NewService(a.db)
	pageSvc := page.NewService(a.db)
	authSvc := auth.NewService(a.db, tenantSvc)

	// Public site rendering lives at the root, outside the versioned API.
	root := r.Group("")
	public.NewHandler(pageSvc, tenantSvc, htmlRenderer, a.logger).RegisterRoutes(root)

	api := r.Group("/api/v1")
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	tenant.NewHandler(tenantSvc).RegisterRoutes(api, authMW)
	page.NewHandler(pageSvc, htmlRenderer, a.db).RegisterRoutes(api, authMW)
}
