package media

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/findelmundo/core/internal/pkg/response"
)

// Handler exposes the portfolio media catalogue. Listing and file
// retrieval are public; everything that mutates requires admin auth.
type Handler struct {
	svc   *Service
	local *LocalStorage
}

// NewHandler wires the media routes. local may be nil when uploads are
// stored on S3 only; the /uploads route then always answers 404.
func NewHandler(svc *Service, local *LocalStorage) *Handler {
	return &Handler{svc: svc, local: local}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/media")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("/upload", authMW, h.upload)
	g.PUT("/:id", authMW, h.update)
	g.PATCH("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)

	rg.GET("/uploads/:name", h.serveFile)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{Category: strings.TrimSpace(c.Query("category"))}
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "featured must be a boolean")
			return
		}
		q.Featured = &v
	}

	items, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.Get(c.Param("id"))
	if errors.Is(err, errMediaNotFound) {
		response.NotFoundMsg(c, "media not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *Handler) upload(c *gin.Context) {
	var dto UploadDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	item, err := h.svc.Upload(c.Request.Context(), dto, fileHeader.Filename, contentType, payload)
	if errors.Is(err, errInvalidMediaType) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Update(c.Param("id"), dto)
	switch {
	case errors.Is(err, errMediaNotFound):
		response.NotFoundMsg(c, "media not found")
	case errors.Is(err, errNoUpdateFields):
		response.BadRequest(c, err.Error())
	case err != nil:
		response.InternalError(c, err)
	default:
		response.OK(c, item)
	}
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, errMediaNotFound) {
		response.NotFoundMsg(c, "media not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) serveFile(c *gin.Context) {
	if h.local == nil {
		response.NotFound(c)
		return
	}
	path, ok := h.local.Path(c.Param("name"))
	if !ok {
		response.NotFound(c)
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000")
	c.File(path)
}
