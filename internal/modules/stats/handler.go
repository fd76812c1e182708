// Package stats backs the admin dashboard counters.
package stats

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/stats", authMW, h.get)
}

// Overview is the dashboard snapshot.
type Overview struct {
	Media          int64 `json:"media"`
	Featured       int64 `json:"featured"`
	Categories     int64 `json:"categories"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

func (h *Handler) get(c *gin.Context) {
	var out Overview

	counts := []struct {
		dst *int64
		tx  *gorm.DB
	}{
		{&out.Media, h.db.Model(&models.MediaModel{})},
		{&out.Featured, h.db.Model(&models.MediaModel{}).Where("featured = ?", true)},
		{&out.Categories, h.db.Model(&models.MediaModel{}).Distinct("category")},
		{&out.Messages, h.db.Model(&models.MessageModel{})},
		{&out.UnreadMessages, h.db.Model(&models.MessageModel{}).Where(map[string]any{"read": false})},
	}
	for _, q := range counts {
		if err := q.tx.Count(q.dst).Error; err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.OK(c, out)
}
