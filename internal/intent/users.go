package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvieira/catalogfront/internal/api"
)

// userAction builds the handler for one of the promote/demote/toggle
// endpoints. All three are destructive, all three are forbidden against the
// acting user's own account.
func (r *Registry) userAction(action api.UserAction) Handler {
	return func(ctx context.Context, sess api.Session, actingUserID int, in Intent) (*Outcome, error) {
		if in.UserID == actingUserID {
			return nil, ErrSelfAction
		}
		if !in.Confirmed {
			return nil, ErrConfirmationRequired
		}
		message, err := r.client.MutateUser(ctx, sess, in.UserID, action)
		if err != nil {
			return nil, fmt.Errorf("%s user: %w", action, err)
		}
		if message == "" {
			message = "Usuário atualizado com sucesso!"
		}
		return &Outcome{
			Message:  message,
			Redirect: "/admin?section=users",
		}, nil
	}
}

func (r *Registry) inviteAdmin(ctx context.Context, sess api.Session, _ int, in Intent) (*Outcome, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return nil, &ValidationError{Msg: "usuário e email são obrigatórios"}
	}
	result, err := r.client.InviteAdmin(ctx, sess, username, email)
	if err != nil {
		return nil, fmt.Errorf("invite admin: %w", err)
	}
	return &Outcome{
		Message:      result.Message,
		TempPassword: result.TemporaryPassword,
	}, nil
}
