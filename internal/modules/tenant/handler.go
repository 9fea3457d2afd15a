package tenant

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/middleware"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/pkg/response"
)

type UpdateTenantDTO struct {
	Subdomain string                `json:"subdomain"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Settings  models.TenantSettings `json:"settings"`
}

type updateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/tenants")
	g.GET("/subdomain-available", h.subdomainAvailable)

	me := g.Group("/me", authMW)
	me.GET("", h.me)
	me.PUT("", middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.update)
	me.PATCH("/status", middleware.RequireRole(models.RoleOwner), h.updateStatus)
}

func (h *Handler) me(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	t, err := h.svc.GetByID(p.TenantID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, t)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateTenantDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p := middleware.CurrentPrincipal(c)
	t, err := h.svc.Update(p.TenantID, &models.TenantModel{
		Subdomain: dto.Subdomain,
		Name:      dto.Name,
		Email:     dto.Email,
		Settings:  dto.Settings,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, t)
}

func (h *Handler) updateStatus(c *gin.Context) {
	var dto updateStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p := middleware.CurrentPrincipal(c)
	t, err := h.svc.UpdateStatus(p.TenantID, dto.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, t)
}

func (h *Handler) subdomainAvailable(c *gin.Context) {
	subdomain := c.Query("subdomain")
	if !ValidSubdomain(subdomain) {
		response.OK(c, gin.H{"available": false, "reason": "invalid subdomain format"})
		return
	}
	available, err := h.svc.IsSubdomainAvailable(subdomain)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"available": available})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.Is(err, ErrSubdomainTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, ErrNotAllowed):
		response.UnprocessableEntity(c, err.Error())
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Reason)
	default:
		response.InternalError(c, err)
	}
}
