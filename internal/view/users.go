package view

import (
	"html/template"

	"github.com/mvieira/catalogfront/internal/models"
)

type userRow struct {
	models.User
	Self bool
}

var usersTmpl = template.Must(template.New("users").Funcs(funcs).Parse(`
{{- if not .Rows -}}
<div class="text-center text-muted py-5"><h5>Nenhum usuário encontrado</h5></div>
{{- else -}}
{{- range .Rows}}
<div class="list-group-item d-flex justify-content-between align-items-center">
  <div>
    <strong>{{.Username}}</strong> <small class="text-muted">{{.Email}}</small>
    {{if .IsAdmin}}<span class="badge bg-primary">admin</span>{{else}}<span class="badge bg-secondary">usuário</span>{{end}}
    {{if .IsActive}}<span class="badge bg-success">ativo</span>{{else}}<span class="badge bg-danger">inativo</span>{{end}}
    {{if .Self}}<span class="badge bg-info">você</span>{{end}}
  </div>
  {{- if not .Self}}
  <div class="btn-group btn-group-sm">
    {{if .IsAdmin -}}
    <a class="btn btn-outline-warning" href="/admin/users/{{.ID}}/demote/confirm">Rebaixar</a>
    {{- else -}}
    <a class="btn btn-outline-primary" href="/admin/users/{{.ID}}/promote/confirm">Promover</a>
    {{- end}}
    <a class="btn btn-outline-danger" href="/admin/users/{{.ID}}/toggle/confirm">{{if .IsActive}}Desativar{{else}}Ativar{{end}}</a>
  </div>
  {{- end}}
</div>
{{- end}}
{{- end}}`))

// UserList renders the management list. The acting user's own row carries no
// action controls at all; promote/demote/toggle must stay impossible against
// yourself from this UI.
func (r *Renderer) UserList(users []models.User, actingUserID int) template.HTML {
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{User: u, Self: u.ID == actingUserID})
	}
	return exec(usersTmpl, map[string]any{"Rows": rows})
}

var inviteTmpl = template.Must(template.New("invite").Parse(`
<div class="alert alert-success">
  {{.Message}}
  <hr>
  <p class="mb-0">Senha temporária (mostrada apenas uma vez): <code>{{.Password}}</code></p>
</div>`))

// InviteBanner shows the one-time temporary password. The password is
// deliberately inserted without escaping; that trust boundary comes from the
// backend generating it.
func (r *Renderer) InviteBanner(result *models.InviteResult) template.HTML {
	return exec(inviteTmpl, map[string]any{
		"Message":  result.Message,
		"Password": template.HTML(result.TemporaryPassword),
	})
}
