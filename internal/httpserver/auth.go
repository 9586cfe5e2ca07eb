package httpserver

import (
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/intent"
	"github.com/mvieira/catalogfront/internal/logging"
	"github.com/mvieira/catalogfront/internal/view"
)

// AuthHTTP is the login/registration gate. A standing probe keeps
// already-authenticated visitors away from the forms entirely.
type AuthHTTP struct {
	Deps *Deps
}

const authForms = template.HTML(`
<div class="row justify-content-center">
  <div class="col-md-5" id="login-section">
    <h4>Entrar</h4>
    <form method="post" action="/login" id="login-form">
      <div class="mb-3"><label class="form-label" for="username">Usuário</label>
        <input class="form-control" id="username" name="username" required></div>
      <div class="mb-3"><label class="form-label" for="password">Senha</label>
        <input class="form-control" type="password" id="password" name="password" required></div>
      <button type="submit" class="btn btn-primary w-100">Entrar</button>
    </form>
  </div>
  <div class="col-md-5" id="register-section">
    <h4>Registrar</h4>
    <form method="post" action="/register" id="register-form">
      <div class="mb-3"><label class="form-label" for="reg-username">Usuário</label>
        <input class="form-control" id="reg-username" name="username" required></div>
      <div class="mb-3"><label class="form-label" for="reg-email">Email</label>
        <input class="form-control" type="email" id="reg-email" name="email" required></div>
      <div class="mb-3"><label class="form-label" for="reg-password">Senha</label>
        <input class="form-control" type="password" id="reg-password" name="password" minlength="6" required></div>
      <button type="submit" class="btn btn-outline-primary w-100">Registrar</button>
    </form>
  </div>
</div>`)

func (h *AuthHTTP) AuthPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.page")

	sess := api.SessionFromRequest(c.Request())
	user, err := h.Deps.API.CurrentUser(ctx, sess)
	if err != nil {
		// A failing probe means logged out; the forms render normally.
		l.Warn("auth_probe_failed", "error", err)
	}
	if user != nil {
		target := "/"
		if user.IsAdmin {
			target = "/admin"
		}
		l.Info("auth_probe_authenticated", "redirect", target)
		return c.Redirect(http.StatusSeeOther, target)
	}

	return renderPage(c, http.StatusOK, page{
		Title:   "Login",
		Message: flashFromQuery(c),
		Content: authForms,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	return h.submit(c, intent.Intent{
		Name:     intent.Login,
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	})
}

func (h *AuthHTTP) RegisterUser(c echo.Context) error {
	return h.submit(c, intent.Intent{
		Name:     intent.Register,
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	})
}

// submit runs a login or register intent. Success shows the message and lets
// a meta refresh navigate after the configured delay.
func (h *AuthHTTP) submit(c echo.Context, in intent.Intent) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.submit")

	out, err := h.Deps.Registry.Dispatch(ctx, api.Session{}, 0, in)
	if err != nil {
		l.Warn("auth_submit_failed", "intent", string(in.Name), "error", err)
		return renderPage(c, statusFor(err), page{
			Title:   "Login",
			Message: view.Message("Erro: "+userMessage(err), view.MessageError),
			Content: authForms,
		})
	}

	relayCookies(c, out.Cookies)
	seconds := int(h.Deps.RedirectDelay.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return renderPage(c, http.StatusOK, page{
		Title:          "Login",
		Message:        view.Message(out.Message, view.MessageSuccess),
		Content:        view.Loading("Redirecionando..."),
		Refresh:        out.Redirect,
		RefreshSeconds: seconds,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	sess := api.SessionFromRequest(c.Request())

	out, err := h.Deps.Registry.Dispatch(ctx, sess, 0, intent.Intent{Name: intent.Logout})
	if err != nil {
		// Logout never fails the navigation.
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	relayCookies(c, out.Cookies)
	return c.Redirect(http.StatusSeeOther, out.Redirect)
}
