package media

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/database"
	"github.com/findelmundo/core/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "media.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	local, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	svc := NewService(db, local)
	r := gin.New()
	api := r.Group("/api")
	// tests exercise routes without the auth layer
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(svc, local).RegisterRoutes(api, passthrough)
	return r, svc, db
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(payload); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadCreatesMediaAndServesFile(t *testing.T) {
	r, _, _ := newTestRouter(t)

	body, ct := multipartUpload(t, map[string]string{
		"title":       "Sunset session",
		"description": "golden hour",
		"category":    "Photographie",
	}, "sunset.JPG", []byte("fake-jpeg-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var item models.MediaModel
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.Title != "Sunset session" || item.Category != "Photographie" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.MediaType != models.MediaTypeImage {
		t.Fatalf("media_type = %q, want image", item.MediaType)
	}
	if item.Order != 1 {
		t.Fatalf("order = %d, want 1", item.Order)
	}
	if !strings.HasPrefix(item.FileURL, "/api/uploads/") || !strings.HasSuffix(item.FileURL, ".jpg") {
		t.Fatalf("file_url = %q", item.FileURL)
	}

	// the stored file round-trips through the public uploads route
	getReq := httptest.NewRequest(http.MethodGet, item.FileURL, nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("serve status = %d", getW.Code)
	}
	if getW.Body.String() != "fake-jpeg-bytes" {
		t.Fatalf("served body = %q", getW.Body.String())
	}
}

func TestUploadRequiresFileAndTitle(t *testing.T) {
	r, _, _ := newTestRouter(t)

	body, ct := multipartUpload(t, map[string]string{"title": "No file"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing file: status = %d", w.Code)
	}

	body, ct = multipartUpload(t, map[string]string{"description": "untitled"}, "a.png", []byte("x"))
	req = httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing title: status = %d", w.Code)
	}
}

func TestUploadRejectsUnknownMediaType(t *testing.T) {
	r, _, _ := newTestRouter(t)

	body, ct := multipartUpload(t, map[string]string{
		"title":      "Weird",
		"media_type": "hologram",
	}, "weird.bin", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	r, svc, _ := newTestRouter(t)

	seed := []struct {
		title    string
		category string
		featured bool
	}{
		{"One", "Portrait", true},
		{"Two", "Vidéo", false},
		{"Three", "Portrait", false},
	}
	for _, s := range seed {
		dto := UploadDTO{Title: s.title, Category: s.category}
		item, err := svc.Upload(t.Context(), dto, s.title+".jpg", "image/jpeg", []byte("x"))
		if err != nil {
			t.Fatalf("seed upload: %v", err)
		}
		if s.featured {
			f := true
			if _, err := svc.Update(item.ID, UpdateDTO{Featured: &f}); err != nil {
				t.Fatalf("feature: %v", err)
			}
		}
	}

	var got []models.MediaModel
	doList := func(path string) []models.MediaModel {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, w.Code)
		}
		var envelope struct {
			Data []models.MediaModel `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return envelope.Data
	}

	got = doList("/api/media")
	if len(got) != 3 {
		t.Fatalf("all: got %d items", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Order > got[i].Order {
			t.Fatalf("not ordered: %+v", got)
		}
	}

	got = doList("/api/media?category=Portrait")
	if len(got) != 2 {
		t.Fatalf("category filter: got %d items", len(got))
	}

	// "all" is a passthrough, not a category
	got = doList("/api/media?category=all")
	if len(got) != 3 {
		t.Fatalf("category=all: got %d items", len(got))
	}

	got = doList("/api/media?featured=true")
	if len(got) != 1 || got[0].Title != "One" {
		t.Fatalf("featured filter: %+v", got)
	}
}

func TestUpdatePartialAndNoFields(t *testing.T) {
	r, svc, _ := newTestRouter(t)

	item, err := svc.Upload(t.Context(), UploadDTO{Title: "Before"}, "b.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	payload := []byte(`{"title":"After","featured":true}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/media/"+item.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated models.MediaModel
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Title != "After" || !updated.Featured {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if updated.Category != models.DefaultCategory {
		t.Fatalf("category changed: %q", updated.Category)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/media/"+item.ID, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty update: status = %d", w.Code)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	r, svc, db := newTestRouter(t)

	item, err := svc.Upload(t.Context(), UploadDTO{Title: "Gone"}, "g.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/media/"+item.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	var count int64
	db.Model(&models.MediaModel{}).Where("id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Fatalf("row still present")
	}

	getReq := httptest.NewRequest(http.MethodGet, item.FileURL, nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusNotFound {
		t.Fatalf("file still served: %d", getW.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/media/"+item.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete: status = %d", w.Code)
	}
}
