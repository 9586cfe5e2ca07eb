// Package view renders the HTML fragments of the storefront and the admin
// console. Everything goes through html/template so server-supplied text is
// escaped; the one deliberate exception is the invite banner's temporary
// password, which is inserted raw.
package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mvieira/catalogfront/internal/models"
)

// Renderer resolves image URLs against the backend origin and substitutes the
// placeholder for products without one.
type Renderer struct {
	// ImageURL maps a server-relative filename to an absolute URL,
	// normally api.Client.UploadURL.
	ImageURL func(name string) string

	// Placeholder is shown when image_url is empty.
	Placeholder string
}

func (r *Renderer) imageSrc(name string) string {
	if name == "" {
		return r.Placeholder
	}
	return r.ImageURL(name)
}

func money(v float64) string { return fmt.Sprintf("R$ %.2f", v) }

// shortDate trims a server timestamp down to its date part.
func shortDate(s string) string {
	if r := []rune(s); len(r) >= 10 {
		return string(r[:10])
	}
	return s
}

// truncate cuts on runes so an accented character on the boundary is never
// split mid-sequence.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func exec(t *template.Template, data any) template.HTML {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return template.HTML("<!-- render failed -->")
	}
	return template.HTML(b.String())
}

var funcs = template.FuncMap{
	"money":     money,
	"shortDate": shortDate,
}

// ---- storefront grid ----

type productCard struct {
	models.Product
	ImageSrc    string
	ErrorSrc    string
	Description string
}

var gridTmpl = template.Must(template.New("grid").Funcs(funcs).Parse(`
{{- if not .Cards -}}
<div class="col-12"><div class="empty-state">
  <h4>Nenhum produto encontrado</h4>
  <p>{{.EmptyText}}</p>
</div></div>
{{- else -}}
{{- range .Cards}}
<div class="col-md-6 col-lg-4 col-xl-3 mb-4">
  <div class="card product-card h-100">
    <img src="{{.ImageSrc}}" class="card-img-top product-image" alt="{{.Name}}" onerror="this.src='{{.ErrorSrc}}'">
    <div class="card-body d-flex flex-column">
      <h5 class="card-title">{{.Name}}</h5>
      <p class="card-text flex-grow-1 text-muted">{{.Description}}</p>
      <div class="mt-auto">
        <p class="card-text"><strong class="h5 text-primary">{{money .Price}}</strong></p>
        {{if .Category}}<span class="badge bg-secondary mb-2">{{.Category}}</span>{{end}}
        <a class="btn btn-primary btn-sm w-100" href="/products/{{.ID}}">Ver Detalhes</a>
      </div>
    </div>
  </div>
</div>
{{- end}}
{{- end}}`))

// ProductGrid renders the storefront cards for one already-filtered
// collection. The empty-state copy distinguishes "nothing at all" from
// "nothing in this category".
func (r *Renderer) ProductGrid(products []models.Product, category string) template.HTML {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		desc := p.Description
		if desc == "" {
			desc = "Sem descrição"
		}
		cards = append(cards, productCard{
			Product:     p,
			ImageSrc:    r.imageSrc(p.ImageURL),
			ErrorSrc:    r.Placeholder,
			Description: desc,
		})
	}
	emptyText := "Nenhum produto nesta categoria."
	if category == "all" || category == "" {
		emptyText = "Não há produtos cadastrados no momento."
	}
	return exec(gridTmpl, map[string]any{"Cards": cards, "EmptyText": emptyText})
}

var filterTmpl = template.Must(template.New("filter").Parse(`
<a class="btn btn-outline-primary{{if .AllActive}} active{{end}}" data-category="all" href="/?category=all">Todos</a>
{{- range .Buttons}}
<a class="btn btn-outline-primary ms-1 mb-1{{if .Active}} active{{end}}" data-category="{{.Name}}" href="/?category={{.Name}}">{{.Name}}</a>
{{- end}}`))

// CategoryFilter rebuilds the filter buttons from the just-loaded collection,
// so buttons for vanished categories disappear and new ones show up. "Todos"
// always comes first.
func (r *Renderer) CategoryFilter(products []models.Product, active string) template.HTML {
	type button struct {
		Name   string
		Active bool
	}
	stats := CalculateStats(products)
	buttons := make([]button, 0, len(stats.Categories))
	for _, c := range stats.Categories {
		buttons = append(buttons, button{Name: c, Active: c == active})
	}
	return exec(filterTmpl, map[string]any{
		"AllActive": active == "all" || active == "",
		"Buttons":   buttons,
	})
}

var detailTmpl = template.Must(template.New("detail").Funcs(funcs).Parse(`
<div class="row">
  <div class="col-md-6">
    <img src="{{.ImageSrc}}" class="img-fluid rounded" alt="{{.Name}}" onerror="this.src='{{.ErrorSrc}}'">
  </div>
  <div class="col-md-6">
    <h4 class="text-primary">{{.Name}}</h4>
    <p class="text-muted">{{.Description}}</p>
    <p><strong class="h5">Preço: {{money .Price}}</strong></p>
    {{if .Category}}<p><strong>Categoria:</strong> <span class="badge bg-secondary">{{.Category}}</span></p>{{end}}
    <p class="text-muted"><small>Atualizado em: {{shortDate .UpdatedAt}}</small></p>
  </div>
</div>`))

func (r *Renderer) ProductDetail(p *models.Product) template.HTML {
	desc := p.Description
	if desc == "" {
		desc = "Sem descrição"
	}
	return exec(detailTmpl, productCard{
		Product:     *p,
		ImageSrc:    r.imageSrc(p.ImageURL),
		ErrorSrc:    r.Placeholder,
		Description: desc,
	})
}

// ---- admin product table ----

type tableRow struct {
	models.Product
	ImageSrc string
	ErrorSrc string
	Excerpt  string
}

var tableTmpl = template.Must(template.New("table").Funcs(funcs).Parse(`
{{- if not .Rows -}}
<tr><td colspan="7" class="text-center text-muted py-5">
  <h5>Nenhum produto cadastrado</h5>
  <p class="mb-0">Adicione seu primeiro produto usando o formulário acima</p>
</td></tr>
{{- else -}}
{{- range .Rows}}
<tr>
  <td><span class="badge bg-secondary">#{{.ID}}</span></td>
  <td><img src="{{.ImageSrc}}" width="50" height="50" onerror="this.src='{{.ErrorSrc}}'" alt="{{.Name}}" class="img-thumbnail"></td>
  <td><strong>{{.Name}}</strong>{{if .Excerpt}}<br><small class="text-muted">{{.Excerpt}}</small>{{end}}</td>
  <td><span class="badge bg-success">{{money .Price}}</span></td>
  <td>{{if .Category}}<span class="badge bg-primary">{{.Category}}</span>{{else}}<span class="text-muted">-</span>{{end}}</td>
  <td><small class="text-muted">{{shortDate .CreatedAt}}</small></td>
  <td>
    <div class="btn-group btn-group-sm">
      <a class="btn btn-outline-warning" href="/admin/products/{{.ID}}/edit" title="Editar">Editar</a>
      <a class="btn btn-outline-danger" href="/admin/products/{{.ID}}/confirm-delete" title="Excluir">Excluir</a>
    </div>
  </td>
</tr>
{{- end}}
{{- end}}`))

// ProductTable renders the editable rows of the admin console. Delete links
// go through the confirmation view, never straight to the DELETE.
func (r *Renderer) ProductTable(products []models.Product) template.HTML {
	rows := make([]tableRow, 0, len(products))
	for _, p := range products {
		excerpt := ""
		if p.Description != "" {
			excerpt = truncate(p.Description, 50)
		}
		rows = append(rows, tableRow{
			Product:  p,
			ImageSrc: r.imageSrc(p.ImageURL),
			ErrorSrc: r.Placeholder,
			Excerpt:  excerpt,
		})
	}
	return exec(tableTmpl, map[string]any{"Rows": rows})
}

var statsTmpl = template.Must(template.New("stats").Funcs(funcs).Parse(`
<div class="row stats-section">
  <div class="col"><div class="stat-card"><span id="total-products">{{.TotalProducts}}</span><small>produtos</small></div></div>
  <div class="col"><div class="stat-card"><span id="total-categories">{{len .Categories}}</span><small>categorias</small></div></div>
  <div class="col"><div class="stat-card"><span id="products-with-images">{{.WithImages}}</span><small>com imagem</small></div></div>
  <div class="col"><div class="stat-card"><span id="avg-price">{{money .AvgPrice}}</span><small>preço médio</small></div></div>
</div>`))

// StatsStrip renders the aggregate cards. The strip is omitted entirely when
// the collection is empty.
func (r *Renderer) StatsStrip(stats Stats) template.HTML {
	if stats.TotalProducts == 0 {
		return ""
	}
	return exec(statsTmpl, stats)
}
