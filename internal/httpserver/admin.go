package httpserver

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/intent"
	"github.com/mvieira/catalogfront/internal/logging"
	"github.com/mvieira/catalogfront/internal/models"
	"github.com/mvieira/catalogfront/internal/state"
	"github.com/mvieira/catalogfront/internal/view"
)

// AdminHTTP is the authenticated console. Every request re-validates the
// session with the probe before anything else runs; a failed probe means the
// section switch never happens and no loader fires.
type AdminHTTP struct {
	Deps *Deps
}

// requireAdmin probes the session. When it returns ok=false the redirect to
// /login has already been written.
func (h *AdminHTTP) requireAdmin(c echo.Context) (*models.User, api.Session, bool) {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.require")

	sess := api.SessionFromRequest(c.Request())
	user, err := h.Deps.API.CurrentUser(ctx, sess)
	if err != nil || user == nil || !user.IsAdmin {
		if err != nil {
			l.Warn("admin_probe_failed", "error", err)
		} else {
			l.Warn("admin_probe_rejected", "reason", "no session or not admin")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return nil, api.Session{}, false
	}
	return user, sess, true
}

// Console is showSection: probe, pick the panel, hide the rest, refresh the
// health badge, then load the panel's data when it has any.
func (h *AdminHTTP) Console(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.console")

	user, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}

	panel, err := state.ParsePanel(c.QueryParam("section"))
	if err != nil {
		l.Warn("console_failed", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	panels := state.NewPanels()
	panels.Show(panel)

	health, err := h.Deps.API.Health(ctx)
	healthy := err == nil && health.OK()
	if !healthy {
		l.Warn("health_degraded", "error", err)
	}

	var content template.HTML
	switch panel {
	case state.PanelProducts:
		content = h.productsPanel(c, sess)
	case state.PanelAdd:
		content = h.addPanel(c, sess)
	case state.PanelImport:
		content = importForm
	case state.PanelUsers:
		content = h.usersPanel(c, sess, user.ID)
	case state.PanelInvite:
		content = inviteForm
	}

	return renderPage(c, http.StatusOK, page{
		Title:       "Painel Administrativo",
		Message:     flashFromQuery(c),
		Content:     content,
		Nav:         navFor(panels),
		HealthBadge: healthBadge(healthy),
	})
}

func (h *AdminHTTP) productsPanel(c echo.Context, sess api.Session) template.HTML {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.products_panel")

	products, err := h.Deps.API.Products(ctx, sess)
	if err != nil {
		l.Error("load_products_failed", "status", 502, "error", err)
		return view.ErrorRetry("Erro ao carregar produtos: "+userMessage(err), "/admin?section=products")
	}

	stats := view.CalculateStats(products)
	var b strings.Builder
	b.WriteString(string(h.Deps.Renderer.StatsStrip(stats)))
	fmt.Fprintf(&b, `<p id="products-count">%d produtos</p>`, stats.TotalProducts)
	b.WriteString(`<table class="table align-middle"><tbody id="products-table">`)
	b.WriteString(string(h.Deps.Renderer.ProductTable(products)))
	b.WriteString(`</tbody></table>`)
	return template.HTML(b.String())
}

// addPanel is the creation form plus category suggestions from the existing
// names. A failed categories fetch degrades to the bare form.
func (h *AdminHTTP) addPanel(c echo.Context, sess api.Session) template.HTML {
	ctx := c.Request().Context()

	categories, err := h.Deps.API.Categories(ctx, sess)
	if err != nil {
		logging.FromContext(ctx).Warn("load_categories_failed", "error", err)
	}
	return addProductForm + categoryDatalist(categories)
}

func (h *AdminHTTP) usersPanel(c echo.Context, sess api.Session, actingUserID int) template.HTML {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.users_panel")

	users, err := h.Deps.API.AdminUsers(ctx, sess)
	if err != nil {
		l.Error("load_users_failed", "status", 502, "error", err)
		return view.ErrorRetry("Erro ao carregar usuários: "+userMessage(err), "/admin?section=users")
	}

	return template.HTML(`<div class="list-group" id="users-list">` +
		string(h.Deps.Renderer.UserList(users, actingUserID)) + `</div>`)
}

// ---- product CRUD ----

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}

	in := intent.Intent{
		Name: intent.CreateProduct,
		Product: intent.ProductForm{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			PriceRaw:    c.FormValue("price"),
			Category:    c.FormValue("category"),
		},
	}

	fh, err := c.FormFile("image")
	if err == nil && fh != nil {
		file, err := fh.Open()
		if err != nil {
			return h.adminError(c, addProductForm, fmt.Errorf("open upload: %w", err))
		}
		defer file.Close()
		in.File = file
		in.Filename = fh.Filename
	}

	return h.dispatchForm(c, sess, 0, in, addProductForm)
}

func (h *AdminHTTP) EditProductForm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.edit_form")

	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.Deps.API.Product(ctx, sess, id)
	if err != nil {
		l.Warn("edit_form_failed", "error", err)
		return redirectWithMessage(c, "/admin?section=products",
			"Erro ao carregar produto: "+userMessage(err), view.MessageError)
	}

	return renderPage(c, http.StatusOK, page{
		Title:       "Editar Produto",
		Content:     editProductForm(product),
		Nav:         navFor(state.NewPanels()),
		HealthBadge: healthBadge(true),
	})
}

func (h *AdminHTTP) UpdateProduct(c echo.Context) error {
	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	in := intent.Intent{
		Name:      intent.UpdateProduct,
		ProductID: id,
		Product: intent.ProductForm{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			PriceRaw:    c.FormValue("price"),
			Category:    c.FormValue("category"),
			ImageURL:    c.FormValue("image_url"),
		},
	}
	return h.dispatchForm(c, sess, 0, in, "")
}

func (h *AdminHTTP) ConfirmDeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	// The confirmation shows the product's name, so a stale row cannot
	// delete the wrong thing silently.
	product, err := h.Deps.API.Product(ctx, sess, id)
	if err != nil {
		return redirectWithMessage(c, "/admin?section=products",
			"Erro ao carregar produto: "+userMessage(err), view.MessageError)
	}

	return renderPage(c, http.StatusOK, page{
		Title: "Confirmar Exclusão",
		Content: view.Confirm(
			"Excluir produto",
			"Tem certeza que deseja excluir",
			product.Name,
			fmt.Sprintf("/admin/products/%d/delete", product.ID),
			"/admin?section=products",
		),
		Nav:         navFor(state.NewPanels()),
		HealthBadge: healthBadge(true),
	})
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	in := intent.Intent{
		Name:      intent.DeleteProduct,
		ProductID: id,
		Confirmed: c.FormValue("confirmed") == "true",
	}
	return h.dispatchForm(c, sess, 0, in, "")
}

func (h *AdminHTTP) ImportCSV(c echo.Context) error {
	_, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}

	in := intent.Intent{Name: intent.ImportCSV}
	fh, err := c.FormFile("file")
	if err == nil && fh != nil {
		file, err := fh.Open()
		if err != nil {
			return h.adminError(c, importForm, fmt.Errorf("open upload: %w", err))
		}
		defer file.Close()
		in.File = file
		in.Filename = fh.Filename
	}
	return h.dispatchForm(c, sess, 0, in, importForm)
}

// ---- user management ----

var userIntents = map[string]intent.Name{
	"promote": intent.PromoteUser,
	"demote":  intent.DemoteUser,
	"toggle":  intent.ToggleUserActive,
}

func (h *AdminHTTP) ConfirmUserAction(c echo.Context) error {
	_, _, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	action := c.Param("action")
	if _, known := userIntents[action]; !known {
		return echo.NewHTTPError(http.StatusNotFound, "unknown action")
	}

	titles := map[string]string{
		"promote": "Promover usuário",
		"demote":  "Rebaixar usuário",
		"toggle":  "Alterar status do usuário",
	}
	return renderPage(c, http.StatusOK, page{
		Title: titles[action],
		Content: view.Confirm(
			titles[action],
			"Tem certeza que deseja aplicar esta ação ao usuário",
			fmt.Sprintf("#%d", id),
			fmt.Sprintf("/admin/users/%d/%s", id, action),
			"/admin?section=users",
		),
		Nav:         navFor(state.NewPanels()),
		HealthBadge: healthBadge(true),
	})
}

func (h *AdminHTTP) UserAction(c echo.Context) error {
	user, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	name, known := userIntents[c.Param("action")]
	if !known {
		return echo.NewHTTPError(http.StatusNotFound, "unknown action")
	}

	in := intent.Intent{
		Name:      name,
		UserID:    id,
		Confirmed: c.FormValue("confirmed") == "true",
	}
	return h.dispatchForm(c, sess, user.ID, in, "")
}

func (h *AdminHTTP) InviteAdmin(c echo.Context) error {
	user, sess, ok := h.requireAdmin(c)
	if !ok {
		return nil
	}

	in := intent.Intent{
		Name:     intent.InviteAdmin,
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
	}
	out, err := h.Deps.Registry.Dispatch(c.Request().Context(), sess, user.ID, in)
	if err != nil {
		return h.adminError(c, inviteForm, err)
	}

	// The temporary password is shown exactly once, inline, and never
	// travels through a redirect URL.
	banner := h.Deps.Renderer.InviteBanner(&models.InviteResult{
		Message:           out.Message,
		TemporaryPassword: out.TempPassword,
	})
	panels := state.NewPanels()
	panels.Show(state.PanelInvite)
	return renderPage(c, http.StatusOK, page{
		Title:       "Convidar Admin",
		Message:     banner,
		Content:     inviteForm,
		Nav:         navFor(panels),
		HealthBadge: healthBadge(true),
	})
}

// ---- shared plumbing ----

// dispatchForm runs the intent and turns the outcome into the
// redirect-and-reload of the owning section. Failures re-render the given
// form with the error banner, or redirect back to the owning section when
// there is no form. A failed DELETE therefore lands on a fully reloaded table
// with the product still in it.
func (h *AdminHTTP) dispatchForm(c echo.Context, sess api.Session, actingUserID int, in intent.Intent, form template.HTML) error {
	out, err := h.Deps.Registry.Dispatch(c.Request().Context(), sess, actingUserID, in)
	if err != nil {
		if form == "" {
			return redirectWithMessage(c, sectionFor(in.Name),
				"Erro: "+userMessage(err), view.MessageError)
		}
		return h.adminError(c, form, err)
	}
	return redirectWithMessage(c, out.Redirect, out.Message, view.MessageSuccess)
}

func sectionFor(name intent.Name) string {
	switch name {
	case intent.PromoteUser, intent.DemoteUser, intent.ToggleUserActive:
		return "/admin?section=users"
	}
	return "/admin?section=products"
}

func (h *AdminHTTP) adminError(c echo.Context, form template.HTML, err error) error {
	return renderPage(c, statusFor(err), page{
		Title:       "Painel Administrativo",
		Message:     view.Message("Erro: "+userMessage(err), view.MessageError),
		Content:     form,
		Nav:         navFor(state.NewPanels()),
		HealthBadge: healthBadge(true),
	})
}
