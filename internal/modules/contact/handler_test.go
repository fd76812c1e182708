package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/database"
	"github.com/findelmundo/core/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "contact.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	r := gin.New()
	NewHandler(NewService(db, nil)).RegisterRoutes(r.Group("/api"), func(c *gin.Context) { c.Next() })
	return r, db
}

func TestSubmitStoresMessage(t *testing.T) {
	r, db := newTestRouter(t)

	payload := `{"name":"Ana","email":"ana@example.com","subject":"Booking","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var msg models.MessageModel
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Read {
		t.Fatalf("new message already read")
	}

	var count int64
	db.Model(&models.MessageModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("count = %d", count)
	}
}

func TestSubmitValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []string{
		`{"email":"a@b.com","message":"hi"}`,
		`{"name":"Ana","email":"not-an-email","message":"hi"}`,
		`{"name":"Ana","email":"a@b.com"}`,
	}
	for _, payload := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: status = %d", payload, w.Code)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	r, db := newTestRouter(t)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"old", "mid", "new"} {
		msg := models.MessageModel{Name: name, Email: name + "@example.com", Message: "m"}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(&msg).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var envelope struct {
		Data []models.MessageModel `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("got %d messages", len(envelope.Data))
	}
	if envelope.Data[0].Name != "new" || envelope.Data[2].Name != "old" {
		t.Fatalf("wrong order: %s, %s, %s", envelope.Data[0].Name, envelope.Data[1].Name, envelope.Data[2].Name)
	}
}

func TestListPaged(t *testing.T) {
	r, db := newTestRouter(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		msg := models.MessageModel{Name: "n", Email: "n@example.com", Message: "m"}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(&msg).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages?page=2&size=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var envelope struct {
		Data       []models.MessageModel `json:"data"`
		Pagination struct {
			Total       int64 `json:"total"`
			CurrentPage int   `json:"current_page"`
			TotalPage   int   `json:"total_page"`
			HasNextPage bool  `json:"has_next_page"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("page size = %d", len(envelope.Data))
	}
	p := envelope.Pagination
	if p.Total != 5 || p.CurrentPage != 2 || p.TotalPage != 3 || !p.HasNextPage {
		t.Fatalf("pagination = %+v", p)
	}
}

func TestMarkRead(t *testing.T) {
	r, db := newTestRouter(t)

	msg := models.MessageModel{Name: "Ana", Email: "ana@example.com", Message: "m"}
	if err := db.Create(&msg).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/messages/"+msg.ID+"/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated models.MessageModel
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !updated.Read {
		t.Fatalf("message not marked read")
	}

	// marking twice is idempotent
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/contact/messages/"+msg.ID+"/read", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("second mark: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/contact/messages/missing/read", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: status = %d", w.Code)
	}
}
