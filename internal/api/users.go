package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mvieira/catalogfront/internal/models"
)

// UserAction names the per-user mutation endpoints.
type UserAction string

const (
	ActionPromote UserAction = "promote"
	ActionDemote  UserAction = "demote"
	ActionToggle  UserAction = "toggle"
)

func (a UserAction) Valid() bool {
	switch a {
	case ActionPromote, ActionDemote, ActionToggle:
		return true
	}
	return false
}

func (c *Client) AdminUsers(ctx context.Context, sess Session) ([]models.User, error) {
	resp, err := c.do(ctx, sess, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := decodeJSON(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MutateUser issues one PUT against the action endpoint and returns the
// backend's message. The caller reloads the whole list afterwards; there is
// no partial update.
func (c *Client) MutateUser(ctx context.Context, sess Session, id int, action UserAction) (string, error) {
	if !action.Valid() {
		return "", fmt.Errorf("unknown user action %q", action)
	}
	resp, err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/admin/users/%d/%s", id, action), nil)
	if err != nil {
		return "", err
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(resp, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (c *Client) InviteAdmin(ctx context.Context, sess Session, username, email string) (*models.InviteResult, error) {
	body := map[string]string{"username": username, "email": email}
	resp, err := c.do(ctx, sess, http.MethodPost, "/admin/invite", body)
	if err != nil {
		return nil, err
	}
	var result models.InviteResult
	if err := decodeJSON(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
