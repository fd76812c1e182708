// Package contact receives contact form submissions from the public
// site and surfaces them in the admin inbox.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/models"
	"github.com/findelmundo/core/internal/pkg/pagination"
	"github.com/findelmundo/core/internal/pkg/redis"
	"github.com/findelmundo/core/internal/pkg/response"
)

// submitWindow limits a visitor to one submission per interval.
const submitWindow = 30 * time.Second

type Service struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewService wires the contact inbox. rdb may be nil; submissions are
// then accepted without throttling.
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{db: db, rdb: rdb}
}

// Submit records a visitor message. Repeat submissions from the same
// IP inside the window are rejected.
func (s *Service) Submit(ctx context.Context, dto SubmitDTO, ip string) (*models.MessageModel, error) {
	if s.rdb != nil && ip != "" {
		key := fmt.Sprintf("fdm:contact:%s", ip)
		ok, err := s.rdb.SetNX(ctx, key, 1, submitWindow)
		if err == nil && !ok {
			return nil, errThrottled
		}
		// redis being down never blocks the contact form
	}

	msg := models.MessageModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns the inbox, newest first.
func (s *Service) List() ([]models.MessageModel, error) {
	var msgs []models.MessageModel
	if err := s.db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListPage returns one page of the inbox, newest first.
func (s *Service) ListPage(q pagination.Query) ([]models.MessageModel, response.Pagination, error) {
	tx := s.db.Model(&models.MessageModel{}).Order("created_at DESC")
	var msgs []models.MessageModel
	pag, err := pagination.Paginate(tx, q, &msgs)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return msgs, pag, nil
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(id string) (*models.MessageModel, error) {
	var msg models.MessageModel
	err := s.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	if !msg.Read {
		if err := s.db.Model(&msg).Update("read", true).Error; err != nil {
			return nil, err
		}
		msg.Read = true
	}
	return &msg, nil
}
