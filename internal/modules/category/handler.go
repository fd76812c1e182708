// Package category exposes the categories visitors can filter the
// portfolio by. Categories are not stored on their own; they are
// derived from the media catalogue.
package category

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/models"
	"github.com/findelmundo/core/internal/pkg/response"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	rg.GET("/categories", h.list)
}

// Category is one distinct media category and how many items carry it.
type Category struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func (h *Handler) list(c *gin.Context) {
	items := []Category{}
	err := h.db.Model(&models.MediaModel{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&items).Error
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}
