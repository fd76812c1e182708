package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/database"
	"github.com/findelmundo/core/internal/middleware"
	"github.com/findelmundo/core/internal/pkg/jwt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("auth-test-secret")

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r.Group("/api"), middleware.Auth(db))
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMe(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", `{"email":"admin@findelmunndo.art","password":"s3cret!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	var reg struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Admin       struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reg.TokenType != "bearer" || reg.AccessToken == "" {
		t.Fatalf("bad token envelope: %+v", reg)
	}
	if reg.Admin.Email != "admin@findelmunndo.art" {
		t.Fatalf("admin email = %q", reg.Admin.Email)
	}

	w = postJSON(t, r, "/api/auth/login", `{"email":"admin@findelmunndo.art","password":"s3cret!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	meW := httptest.NewRecorder()
	r.ServeHTTP(meW, req)
	if meW.Code != http.StatusOK {
		t.Fatalf("me status = %d, body = %s", meW.Code, meW.Body.String())
	}
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(meW.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.ID != reg.Admin.ID {
		t.Fatalf("me id = %q, want %q", me.ID, reg.Admin.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := postJSON(t, r, "/api/auth/register", `{"email":"a@b.com","password":"s3cret!"}`); w.Code != http.StatusOK {
		t.Fatalf("first register: %d", w.Code)
	}
	w := postJSON(t, r, "/api/auth/register", `{"email":"a@b.com","password":"other-pass"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := postJSON(t, r, "/api/auth/register", `{"email":"a@b.com","password":"s3cret!"}`); w.Code != http.StatusOK {
		t.Fatalf("register: %d", w.Code)
	}

	w := postJSON(t, r, "/api/auth/login", `{"email":"a@b.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", w.Code)
	}
	w = postJSON(t, r, "/api/auth/login", `{"email":"nobody@b.com","password":"s3cret!"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email status = %d", w.Code)
	}
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}
