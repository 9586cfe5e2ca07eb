package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/logging"
)

func redirectFor(isAdmin bool) string {
	if isAdmin {
		return "/admin"
	}
	return "/"
}

func (r *Registry) login(ctx context.Context, _ api.Session, _ int, in Intent) (*Outcome, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, &ValidationError{Msg: "usuário e senha são obrigatórios"}
	}
	user, cookies, err := r.client.Login(ctx, api.Credentials{
		Username: username,
		Password: in.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		// A 2xx reply without a user object is a backend defect, not a
		// session.
		return nil, fmt.Errorf("login: backend reply carried no user")
	}
	return &Outcome{
		Message:  "Login realizado com sucesso!",
		Redirect: redirectFor(user.IsAdmin),
		Cookies:  cookies,
	}, nil
}

func (r *Registry) registerUser(ctx context.Context, _ api.Session, _ int, in Intent) (*Outcome, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, &ValidationError{Msg: "todos os campos são obrigatórios"}
	}
	if len(in.Password) < 6 {
		return nil, &ValidationError{Msg: "a senha deve ter pelo menos 6 caracteres"}
	}
	user, cookies, err := r.client.Register(ctx, api.Credentials{
		Username: username,
		Email:    email,
		Password: in.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("register: backend reply carried no user")
	}
	return &Outcome{
		Message:  "Registro realizado com sucesso!",
		Redirect: redirectFor(user.IsAdmin),
		Cookies:  cookies,
	}, nil
}

// logout always navigates to /login, even when the backend call fails; the
// session is gone from the user's point of view either way.
func (r *Registry) logout(ctx context.Context, sess api.Session, _ int, _ Intent) (*Outcome, error) {
	cookies, err := r.client.Logout(ctx, sess)
	if err != nil {
		logging.FromContext(ctx).Warn("logout_failed", "error", err)
	}
	return &Outcome{
		Redirect: "/login",
		Cookies:  cookies,
	}, nil
}
