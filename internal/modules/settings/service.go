// Package settings manages the site-wide settings record shown on the
// public pages and edited from the admin area.
package settings

import (
	"encoding/json"
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/findelmundo/core/internal/models"
)

const settingsKey = "site_settings"

// SiteSettings is a single record; saving always overwrites the whole
// thing.
type SiteSettings struct {
	SiteTitle       string `json:"site_title"`
	Tagline         string `json:"tagline"`
	AboutBio        string `json:"about_bio"`
	ContactEmail    string `json:"contact_email"`
	SocialInstagram string `json:"social_instagram"`
	SocialTwitter   string `json:"social_twitter"`
	SocialVimeo     string `json:"social_vimeo"`
}

// Defaults returns the settings a fresh install starts with.
func Defaults() SiteSettings {
	return SiteSettings{
		SiteTitle: "FINDELMUNNDO",
		Tagline:   "Audio • Vidéo • Photographie",
	}
}

// Service caches the settings in memory and persists them as JSON in
// the options table.
type Service struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache *SiteSettings
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the current settings, loading from DB if not cached.
func (s *Service) Get() (SiteSettings, error) {
	s.mu.RLock()
	if s.cache != nil {
		defer s.mu.RUnlock()
		return *s.cache, nil
	}
	s.mu.RUnlock()

	return s.load()
}

func (s *Service) load() (SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opt models.OptionModel
	err := s.db.Where("name = ?", settingsKey).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := Defaults()
		s.cache = &defaults
		_ = s.persist(defaults)
		return defaults, nil
	}
	if err != nil {
		return SiteSettings{}, err
	}

	current := Defaults()
	if err := json.Unmarshal([]byte(opt.Value), &current); err != nil {
		return SiteSettings{}, err
	}
	s.cache = &current
	return current, nil
}

// Save replaces the stored settings with the given record.
func (s *Service) Save(updated SiteSettings) (SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(updated); err != nil {
		return SiteSettings{}, err
	}
	s.cache = &updated
	return updated, nil
}

func (s *Service) persist(v SiteSettings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	opt := models.OptionModel{Name: settingsKey, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&opt).Error
}

// Invalidate clears the cache, forcing a DB reload on next Get.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}
