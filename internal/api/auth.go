package api

import (
	"context"
	"net/http"

	"github.com/mvieira/catalogfront/internal/models"
)

type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// CurrentUser is the session probe. The backend answers {"user": {...}} for a
// live session and {} otherwise; both are successful replies, so a nil user
// with a nil error means logged out.
func (c *Client) CurrentUser(ctx context.Context, sess Session) (*models.User, error) {
	resp, err := c.do(ctx, sess, http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := decodeJSON(resp, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// Login exchanges credentials for a session. The Set-Cookie headers of the
// backend reply must be relayed to the browser verbatim, so they come back
// alongside the user.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.User, []*http.Cookie, error) {
	return c.authenticate(ctx, "/login", creds)
}

func (c *Client) Register(ctx context.Context, creds Credentials) (*models.User, []*http.Cookie, error) {
	return c.authenticate(ctx, "/register", creds)
}

func (c *Client) authenticate(ctx context.Context, path string, creds Credentials) (*models.User, []*http.Cookie, error) {
	resp, err := c.do(ctx, Session{}, http.MethodPost, path, creds)
	if err != nil {
		return nil, nil, err
	}
	cookies := resp.Cookies()
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := decodeJSON(resp, &payload); err != nil {
		return nil, nil, err
	}
	return payload.User, cookies, nil
}

// Logout ends the session. Expired cookies from the reply are relayed so the
// browser actually drops them.
func (c *Client) Logout(ctx context.Context, sess Session) ([]*http.Cookie, error) {
	resp, err := c.do(ctx, sess, http.MethodPost, "/logout", nil)
	if err != nil {
		return nil, err
	}
	cookies := resp.Cookies()
	if err := decodeJSON(resp, nil); err != nil {
		return cookies, err
	}
	return cookies, nil
}

// Health is the liveness probe behind the dashboard's status badge.
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	resp, err := c.do(ctx, Session{}, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var health models.Health
	if err := decodeJSON(resp, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
