package httpserver

import (
	"html/template"
	"strings"

	"github.com/mvieira/catalogfront/internal/models"
)

const addProductForm = template.HTML(`
<h4>Adicionar Produto</h4>
<form method="post" action="/admin/products" enctype="multipart/form-data" id="add-product-form">
  <div class="mb-3"><label class="form-label" for="product-name">Nome *</label>
    <input class="form-control" id="product-name" name="name" required></div>
  <div class="mb-3"><label class="form-label" for="product-description">Descrição</label>
    <textarea class="form-control" id="product-description" name="description"></textarea></div>
  <div class="mb-3"><label class="form-label" for="product-price">Preço *</label>
    <input class="form-control" id="product-price" name="price" type="number" step="0.01" min="0" required></div>
  <div class="mb-3"><label class="form-label" for="product-category">Categoria</label>
    <input class="form-control" id="product-category" name="category" list="category-options"></div>
  <div class="mb-3"><label class="form-label" for="product-image">Imagem</label>
    <input class="form-control" id="product-image" name="image" type="file" accept="image/*"></div>
  <button type="submit" class="btn btn-primary">Adicionar</button>
</form>`)

const importForm = template.HTML(`
<h4>Importar Produtos (CSV)</h4>
<form method="post" action="/admin/import" enctype="multipart/form-data" id="import-form">
  <div class="mb-3"><label class="form-label" for="import-file">Arquivo CSV</label>
    <input class="form-control" id="import-file" name="file" type="file" accept=".csv"></div>
  <button type="submit" class="btn btn-primary">Importar</button>
</form>`)

const inviteForm = template.HTML(`
<h4>Convidar Admin</h4>
<form method="post" action="/admin/invite" id="invite-admin-form">
  <div class="mb-3"><label class="form-label" for="invite-username">Usuário</label>
    <input class="form-control" id="invite-username" name="username" required></div>
  <div class="mb-3"><label class="form-label" for="invite-email">Email</label>
    <input class="form-control" id="invite-email" name="email" type="email" required></div>
  <button type="submit" class="btn btn-primary">Convidar</button>
</form>`)

var editFormTmpl = template.Must(template.New("editForm").Parse(`
<h4>Editar Produto</h4>
<form method="post" action="/admin/products/{{.ID}}" id="edit-product-form">
  <input type="hidden" id="edit-product-id" name="id" value="{{.ID}}">
  <div class="mb-3"><label class="form-label" for="edit-product-name">Nome *</label>
    <input class="form-control" id="edit-product-name" name="name" value="{{.Name}}" required></div>
  <div class="mb-3"><label class="form-label" for="edit-product-description">Descrição</label>
    <textarea class="form-control" id="edit-product-description" name="description">{{.Description}}</textarea></div>
  <div class="mb-3"><label class="form-label" for="edit-product-price">Preço *</label>
    <input class="form-control" id="edit-product-price" name="price" type="number" step="0.01" min="0" value="{{.Price}}" required></div>
  <div class="mb-3"><label class="form-label" for="edit-product-category">Categoria</label>
    <input class="form-control" id="edit-product-category" name="category" value="{{.Category}}"></div>
  <div class="mb-3"><label class="form-label" for="edit-product-image">Imagem (arquivo no servidor)</label>
    <input class="form-control" id="edit-product-image" name="image_url" value="{{.ImageURL}}"></div>
  <button type="submit" class="btn btn-primary">Salvar</button>
  <a class="btn btn-secondary" href="/admin?section=products">Cancelar</a>
</form>`))

func editProductForm(p *models.Product) template.HTML {
	var b strings.Builder
	if err := editFormTmpl.Execute(&b, p); err != nil {
		return template.HTML("<!-- render failed -->")
	}
	return template.HTML(b.String())
}

var datalistTmpl = template.Must(template.New("datalist").Parse(`
<datalist id="category-options">{{range .}}<option value="{{.}}">{{end}}</datalist>`))

// categoryDatalist feeds the add form's category suggestions from the
// existing category names.
func categoryDatalist(categories []string) template.HTML {
	if len(categories) == 0 {
		return ""
	}
	var b strings.Builder
	if err := datalistTmpl.Execute(&b, categories); err != nil {
		return ""
	}
	return template.HTML(b.String())
}
