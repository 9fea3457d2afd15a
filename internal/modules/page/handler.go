package page

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/middleware"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/pkg/pagination"
	"github.com/pagelift/core/internal/pkg/renderer"
	"github.com/pagelift/core/internal/pkg/response"
	"gorm.io/gorm"
)

// PageDTO is the full-document payload the editor sends on create and
// update. The content tree is always the complete tree, never a patch.
type PageDTO struct {
	Slug            string             `json:"slug"`
	Title           string             `json:"title"           binding:"required"`
	MetaDescription string             `json:"metaDescription"`
	MetaKeywords    string             `json:"metaKeywords"`
	Status          string             `json:"status"`
	Content         models.PageContent `json:"content"`
	SeoSettings     models.SeoSettings `json:"seoSettings"`
}

func (dto *PageDTO) toModel() *models.PageModel {
	return &models.PageModel{
		Slug:            dto.Slug,
		Title:           dto.Title,
		MetaDescription: dto.MetaDescription,
		MetaKeywords:    dto.MetaKeywords,
		Status:          dto.Status,
		Content:         dto.Content,
		SeoSettings:     dto.SeoSettings,
	}
}

type Handler struct {
	svc      *Service
	renderer *renderer.Renderer
	db       *gorm.DB
}

func NewHandler(svc *Service, r *renderer.Renderer, db *gorm.DB) *Handler {
	return &Handler{svc: svc, renderer: r, db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/pages", authMW)
	g.GET("", h.list)
	g.GET("/slug-available", h.slugAvailable)
	g.GET("/:id", h.get)
	g.GET("/:id/preview", h.preview)

	edit := g.Group("", middleware.RequirePermission(models.CanEdit))
	edit.POST("", h.create)
	edit.PUT("/:id", h.update)
	edit.PATCH("/:id/publish", h.publish)
	edit.PATCH("/:id/unpublish", h.unpublish)

	g.DELETE("/:id", middleware.RequirePermission(models.CanDelete), h.delete)
}

func (h *Handler) list(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	pages, meta, err := h.svc.List(p.TenantID, c.Query("status"), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, pages, meta)
}

func (h *Handler) get(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.GetByID(p.TenantID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, pg)
}

// GET /pages/:id/preview renders the page regardless of status so editors
// can see drafts exactly as they will publish.
func (h *Handler) preview(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.GetByID(p.TenantID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	var tenant models.TenantModel
	if err := h.db.First(&tenant, "id = ?", p.TenantID).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(200, "text/html; charset=utf-8", []byte(h.renderer.Render(pg, &tenant)))
}

func (h *Handler) slugAvailable(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	available, err := h.svc.IsSlugAvailable(p.TenantID, c.Query("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"available": available})
}

func (h *Handler) create(c *gin.Context) {
	var dto PageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.Create(p.TenantID, dto.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, pg)
}

func (h *Handler) update(c *gin.Context) {
	var dto PageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.Update(p.TenantID, c.Param("id"), dto.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, pg)
}

func (h *Handler) publish(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.Publish(p.TenantID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, pg)
}

func (h *Handler) unpublish(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	pg, err := h.svc.Unpublish(p.TenantID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, pg)
}

func (h *Handler) delete(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	if err := h.svc.Delete(p.TenantID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
