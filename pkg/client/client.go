// Package client talks to a findelmundo backend's /api namespace and
// keeps the admin session on disk between invocations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// APIError is a non-2xx reply decoded from the backend's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client issues requests against the backend. The bearer token is read
// fresh from the session store on every protected call, so a
// just-completed login or logout is reflected immediately.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
}

// New creates a client for the given base address, e.g.
// "http://localhost:8001". The /api root is derived from it.
func New(baseURL string, store *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
}

// Store exposes the session store backing this client.
func (c *Client) Store() *SessionStore { return c.store }

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, auth bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		if token := c.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := struct {
			Message string `json:"message"`
		}{}
		_ = json.Unmarshal(payload, &msg)
		if msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}

func (c *Client) getJSON(ctx context.Context, path string, auth bool, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", auth, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in any, auth bool, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", auth, out)
}

// Login authenticates and persists the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.obtainSession(ctx, "/auth/login", email, password)
}

// Register creates the admin account and persists the returned session.
func (c *Client) Register(ctx context.Context, email, password string) (*Session, error) {
	return c.obtainSession(ctx, "/auth/register", email, password)
}

func (c *Client) obtainSession(ctx context.Context, path, email, password string) (*Session, error) {
	in := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.sendJSON(ctx, http.MethodPost, path, in, false, &out); err != nil {
		return nil, err
	}
	if err := c.store.Save(out.AccessToken, out.Admin); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &Session{Token: out.AccessToken, Admin: out.Admin}, nil
}

// Logout clears the persisted session. Purely local; the backend keeps
// no session state to invalidate.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// Me fetches the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var out Admin
	if err := c.getJSON(ctx, "/auth/me", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Media lists the portfolio. category and featured narrow the listing
// server-side; pass "" and nil for everything.
func (c *Client) Media(ctx context.Context, category string, featured *bool) ([]MediaItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if featured != nil {
		q.Set("featured", fmt.Sprintf("%t", *featured))
	}
	path := "/media"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out struct {
		Data []MediaItem `json:"data"`
	}
	if err := c.getJSON(ctx, path, false, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UploadMedia sends the file at filePath with its metadata as a
// multipart request.
func (c *Client) UploadMedia(ctx context.Context, filePath, title, description, category, mediaType string) (*MediaItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":       title,
		"description": description,
		"category":    category,
		"media_type":  mediaType,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	fw, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out MediaItem
	if err := c.do(ctx, http.MethodPost, "/media/upload", &buf, w.FormDataContentType(), true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMedia applies a partial update.
func (c *Client) UpdateMedia(ctx context.Context, id string, update MediaUpdate) (*MediaItem, error) {
	var out MediaItem
	if err := c.sendJSON(ctx, http.MethodPut, "/media/"+id, update, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMedia removes one item and its stored file.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/media/"+id, nil, "", true, nil)
}

// Categories lists the distinct media categories with counts.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Data []Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/categories", false, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Settings fetches the site settings.
func (c *Client) Settings(ctx context.Context) (*SiteSettings, error) {
	var out SiteSettings
	if err := c.getJSON(ctx, "/settings", false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveSettings overwrites the whole settings record.
func (c *Client) SaveSettings(ctx context.Context, s SiteSettings) (*SiteSettings, error) {
	var out SiteSettings
	if err := c.sendJSON(ctx, http.MethodPut, "/settings", s, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact sends a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, sub ContactSubmission) error {
	return c.sendJSON(ctx, http.MethodPost, "/contact", sub, false, nil)
}

// Messages lists the admin inbox, newest first.
func (c *Client) Messages(ctx context.Context) ([]Message, error) {
	var out struct {
		Data []Message `json:"data"`
	}
	if err := c.getJSON(ctx, "/contact/messages", true, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// MarkMessageRead flags one inbox message as read.
func (c *Client) MarkMessageRead(ctx context.Context, id string) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPatch, "/contact/messages/"+id+"/read", nil, "", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats fetches the dashboard counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.getJSON(ctx, "/stats", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
