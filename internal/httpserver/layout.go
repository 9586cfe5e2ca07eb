package httpserver

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mvieira/catalogfront/internal/state"
	"github.com/mvieira/catalogfront/internal/view"
)

type page struct {
	Title   string
	Message template.HTML
	Content template.HTML

	// Refresh, when set, emits a meta refresh so a success message stays
	// on screen for the configured delay before the page navigates away.
	Refresh        string
	RefreshSeconds int

	// Nav is only filled for the admin console.
	Nav         []navItem
	HealthBadge template.HTML
}

type navItem struct {
	Label   string
	Section state.Panel
	Active  bool
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{if .Refresh}}<meta http-equiv="refresh" content="{{.RefreshSeconds}};url={{.Refresh}}">{{end}}
<title>{{.Title}}</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
{{if .Nav}}
<nav class="sidebar">
  <ul class="nav flex-column">
    {{range .Nav}}<li class="nav-item"><a class="nav-link{{if .Active}} active{{end}}" href="/admin?section={{.Section}}">{{.Label}}</a></li>
    {{end}}<li class="nav-item"><a class="nav-link" href="/logout">Sair</a></li>
  </ul>
  {{.HealthBadge}}
</nav>
{{end}}
<main class="main-content container py-4">
{{.Message}}
{{.Content}}
</main>
</body>
</html>`))

func renderPage(c echo.Context, status int, p page) error {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return c.HTML(status, b.String())
}

var adminNav = []navItem{
	{Label: "Produtos", Section: state.PanelProducts},
	{Label: "Adicionar", Section: state.PanelAdd},
	{Label: "Importar CSV", Section: state.PanelImport},
	{Label: "Usuários", Section: state.PanelUsers},
	{Label: "Convidar Admin", Section: state.PanelInvite},
}

func navFor(panels *state.Panels) []navItem {
	items := make([]navItem, len(adminNav))
	copy(items, adminNav)
	for i := range items {
		items[i].Active = panels.NavActive(items[i].Section)
	}
	return items
}

func healthBadge(ok bool) template.HTML {
	if ok {
		return `<span class="badge bg-success" id="health-badge">API online</span>`
	}
	return `<span class="badge bg-danger" id="health-badge">API indisponível</span>`
}

// relayCookies copies backend Set-Cookie values to the browser untouched.
func relayCookies(c echo.Context, cookies []*http.Cookie) {
	for _, ck := range cookies {
		c.SetCookie(ck)
	}
}

// redirectWithMessage sends a see-other carrying the flash text in the query,
// since the webfront keeps no session state of its own.
func redirectWithMessage(c echo.Context, target, msg string, kind view.MessageKind) error {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	u := target + sep + "msg=" + url.QueryEscape(msg) + "&kind=" + url.QueryEscape(string(kind))
	return c.Redirect(http.StatusSeeOther, u)
}

func flashFromQuery(c echo.Context) template.HTML {
	msg := c.QueryParam("msg")
	if msg == "" {
		return ""
	}
	kind := view.MessageKind(c.QueryParam("kind"))
	switch kind {
	case view.MessageSuccess, view.MessageError, view.MessageInfo:
	default:
		kind = view.MessageInfo
	}
	return view.Message(msg, kind)
}
