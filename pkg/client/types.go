package client

import "time"

// Admin is the authenticated identity returned by the backend.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session pairs the bearer token with the admin it belongs to.
type Session struct {
	Token string
	Admin Admin
}

// TokenResponse is the login/register reply envelope.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Admin       Admin  `json:"admin"`
}

// MediaItem is one portfolio asset.
type MediaItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	MediaType    string    `json:"media_type"`
	FileURL      string    `json:"file_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category is a derived view over MediaItem.Category.
type Category struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// SiteSettings is the singleton record shown on the public pages.
// Saving always sends the whole record.
type SiteSettings struct {
	SiteTitle       string `json:"site_title"`
	Tagline         string `json:"tagline"`
	AboutBio        string `json:"about_bio"`
	ContactEmail    string `json:"contact_email"`
	SocialInstagram string `json:"social_instagram"`
	SocialTwitter   string `json:"social_twitter"`
	SocialVimeo     string `json:"social_vimeo"`
}

// Message is one contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSubmission is what the public contact form sends.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	Media          int64 `json:"media"`
	Featured       int64 `json:"featured"`
	Categories     int64 `json:"categories"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

// MediaUpdate is a partial update; nil fields are left untouched.
type MediaUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	Order       *int    `json:"order,omitempty"`
}
