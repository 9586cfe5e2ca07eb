// Package httpserver wires the webfront's pages and form endpoints. Each
// handler fetches from the backend, renders its fragment, and mutations end in
// a full redirect-and-reload of the owning section; nothing is patched in
// place.
package httpserver

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/intent"
	"github.com/mvieira/catalogfront/internal/logging"
	"github.com/mvieira/catalogfront/internal/view"
)

type Deps struct {
	API      *api.Client
	Registry *intent.Registry
	Renderer *view.Renderer

	// RedirectDelay is how long the login/register success message stays
	// visible before the meta refresh fires.
	RedirectDelay time.Duration

	Logger *slog.Logger
}

func Common(l *slog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		ecM.Recover(),
		ecM.RequestID(),
		ecM.Logger(),
		ecM.Secure(),
		func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				reqID := c.Response().Header().Get(echo.HeaderXRequestID)
				ctx := logging.IntoContext(c.Request().Context(), l.With("request_id", reqID))
				c.SetRequest(c.Request().WithContext(ctx))
				return next(c)
			}
		},
	}
}

func Register(e *echo.Echo, d *Deps) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })

	catalog := &CatalogHTTP{Deps: d}
	auth := &AuthHTTP{Deps: d}
	admin := &AdminHTTP{Deps: d}

	e.GET("/", catalog.CatalogPage)
	e.GET("/products/:id", catalog.ProductDetail)

	e.GET("/login", auth.AuthPage)
	e.POST("/login", auth.Login)
	e.POST("/register", auth.RegisterUser)
	e.GET("/logout", auth.Logout)
	e.POST("/logout", auth.Logout)

	e.GET("/admin", admin.Console)
	e.POST("/admin/products", admin.CreateProduct)
	e.GET("/admin/products/:id/edit", admin.EditProductForm)
	e.POST("/admin/products/:id", admin.UpdateProduct)
	e.GET("/admin/products/:id/confirm-delete", admin.ConfirmDeleteProduct)
	e.POST("/admin/products/:id/delete", admin.DeleteProduct)
	e.POST("/admin/import", admin.ImportCSV)
	e.GET("/admin/users/:id/:action/confirm", admin.ConfirmUserAction)
	e.POST("/admin/users/:id/:action", admin.UserAction)
	e.POST("/admin/invite", admin.InviteAdmin)

	d.Logger.Info("routes_registered", "routes", len(e.Routes()))
}
