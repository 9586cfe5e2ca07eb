// Package api is the typed client for the catalog backend. Every privileged
// call rides on the browser's session cookie, which the caller hands over as a
// Session; the client itself holds no credentials.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mvieira/catalogfront/internal/logging"
)

type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
}

// NewClient takes the backend base URL including the /api prefix,
// e.g. http://localhost:5000/api.
func NewClient(apiBaseURL string) *Client {
	base := strings.TrimRight(apiBaseURL, "/")
	return &Client{
		baseURL: base,
		origin:  strings.TrimSuffix(base, "/api"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// UploadURL resolves a server-relative image filename against the backend
// origin. Empty names are the caller's problem (the views substitute a
// placeholder).
func (c *Client) UploadURL(name string) string {
	return c.origin + "/uploads/" + name
}

// Session carries the browser's cookies into outgoing API calls.
type Session struct {
	cookies []*http.Cookie
}

func SessionFromRequest(r *http.Request) Session {
	if r == nil {
		return Session{}
	}
	return Session{cookies: r.Cookies()}
}

func SessionFromCookies(cookies []*http.Cookie) Session {
	return Session{cookies: cookies}
}

// Error is a non-2xx backend reply with the body's "error" field, when one
// was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the session cookie.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

func (c *Client) do(ctx context.Context, sess Session, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.doRaw(ctx, sess, method, path, reader, contentType)
}

func (c *Client) doRaw(ctx context.Context, sess Session, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	for _, ck := range sess.cookies {
		req.AddCookie(ck)
	}

	logging.FromContext(ctx).Debug("api_call", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// decodeJSON consumes resp and fills out, turning non-2xx replies into *Error
// with the body's "error" string when the backend sent one.
func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromBody(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorFromBody(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		msg = payload.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
