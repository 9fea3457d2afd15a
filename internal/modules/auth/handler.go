package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/middleware"
	"github.com/pagelift/core/internal/modules/tenant"
	"github.com/pagelift/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.POST("/refresh", h.refresh)
	g.GET("/me", authMW, h.me)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Signup(&dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, res)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Login(&dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, res)
}

func (h *Handler) refresh(c *gin.Context) {
	var dto RefreshDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Refresh(dto.RefreshToken)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, res)
}

func (h *Handler) me(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	u, err := h.svc.GetUser(p.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, toUserInfo(u))
}

func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *tenant.ValidationError
	switch {
	case errors.Is(err, errInvalidCredentials), errors.Is(err, errInvalidRefresh):
		response.Unauthorized(c)
	case errors.Is(err, errEmailTaken), errors.Is(err, tenant.ErrSubdomainTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, errUserNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.As(err, &vErr):
		response.BadRequest(c, vErr.Reason)
	default:
		response.InternalError(c, err)
	}
}
