package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/findelmundo/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/settings", h.get)
	rg.PUT("/settings", authMW, h.save)
}

func (h *Handler) get(c *gin.Context) {
	current, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, current)
}

func (h *Handler) save(c *gin.Context) {
	var dto SiteSettings
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := h.svc.Save(dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, saved)
}
