package media

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/models"
)

type Service struct {
	db      *gorm.DB
	storage Storage
}

func NewService(db *gorm.DB, storage Storage) *Service {
	return &Service{db: db, storage: storage}
}

func (s *Service) List(q ListQuery) ([]models.MediaModel, error) {
	tx := s.db.Model(&models.MediaModel{})
	if q.Category != "" && !strings.EqualFold(q.Category, "all") {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	var items []models.MediaModel
	if err := tx.Order("order_num ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(id string) (*models.MediaModel, error) {
	var item models.MediaModel
	err := s.db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upload stores the file and creates the media row. New items land at
// the end of the ordering.
func (s *Service) Upload(ctx context.Context, dto UploadDTO, originalName, contentType string, data []byte) (*models.MediaModel, error) {
	mediaType := strings.ToLower(strings.TrimSpace(dto.MediaType))
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		return nil, errInvalidMediaType
	}

	category := strings.TrimSpace(dto.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := uuid.NewString() + ext

	url, err := s.storage.Save(ctx, fileName, contentType, data)
	if err != nil {
		return nil, err
	}

	item := models.MediaModel{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    category,
		MediaType:   mediaType,
		FileName:    fileName,
		FileURL:     url,
		Order:       s.nextOrder(),
		Storage:     s.storage.Name(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		// the row failed, don't leave the file orphaned
		_ = s.storage.Remove(ctx, fileName)
		return nil, err
	}
	return &item, nil
}

func (s *Service) Update(id string, dto UpdateDTO) (*models.MediaModel, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}
	if dto.Order != nil {
		updates["order_num"] = *dto.Order
	}
	if len(updates) == 0 {
		return nil, errNoUpdateFields
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the row and, when the file lives on the active
// backend, the stored file as well.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return err
	}
	if item.Storage == s.storage.Name() {
		_ = s.storage.Remove(ctx, item.FileName)
	}
	return nil
}

func (s *Service) nextOrder() int {
	var max sql.NullInt64
	s.db.Model(&models.MediaModel{}).Select("MAX(order_num)").Scan(&max)
	if !max.Valid {
		return 1
	}
	return int(max.Int64) + 1
}
