package contact

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/findelmundo/core/internal/pkg/pagination"
	"github.com/findelmundo/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/contact")
	g.POST("", h.submit)
	g.GET("/messages", authMW, h.list)
	g.PATCH("/messages/:id/read", authMW, h.markRead)
}

func (h *Handler) submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.svc.Submit(c.Request.Context(), dto, c.ClientIP())
	if errors.Is(err, errThrottled) {
		response.TooManyRequests(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, msg)
}

// list returns the whole inbox; with an explicit page query it returns
// one page plus pagination metadata.
func (h *Handler) list(c *gin.Context) {
	if c.Query("page") != "" {
		msgs, pag, err := h.svc.ListPage(pagination.FromContext(c))
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.Paged(c, msgs, pag)
		return
	}

	msgs, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, msgs)
}

func (h *Handler) markRead(c *gin.Context) {
	msg, err := h.svc.MarkRead(c.Param("id"))
	if errors.Is(err, errMessageNotFound) {
		response.NotFoundMsg(c, "message not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, msg)
}
