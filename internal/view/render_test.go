package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvieira/catalogfront/internal/models"
)

const placeholder = "https://via.placeholder.com/300x200?text=Sem+Imagem"

func newTestRenderer() *Renderer {
	return &Renderer{
		ImageURL:    func(name string) string { return "http://backend:5000/uploads/" + name },
		Placeholder: placeholder,
	}
}

func TestProductGrid_ImageResolution(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()

	t.Run("empty image_url falls back to placeholder", func(t *testing.T) {
		t.Parallel()
		html := string(r.ProductGrid([]models.Product{{ID: 1, Name: "A", Price: 10}}, "all"))
		// The attribute escaper rewrites the + in the query string.
		assert.Contains(t, html, "https://via.placeholder.com/300x200?text=Sem&#43;Imagem")
		assert.NotContains(t, html, "/uploads/")
	})

	t.Run("non-empty image_url resolves against origin", func(t *testing.T) {
		t.Parallel()
		html := string(r.ProductGrid([]models.Product{{ID: 1, Name: "A", Price: 10, ImageURL: "foto.png"}}, "all"))
		assert.Contains(t, html, "http://backend:5000/uploads/foto.png")
	})
}

func TestProductGrid_EscapesServerText(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	html := string(r.ProductGrid([]models.Product{
		{ID: 1, Name: `<script>alert("x")</script>`, Description: "a & b", Price: 5},
	}, "all"))

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b")
}

func TestProductGrid_PriceTwoDecimals(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	html := string(r.ProductGrid([]models.Product{{ID: 1, Name: "A", Price: 10}}, "all"))
	assert.Contains(t, html, "R$ 10.00")
}

func TestProductGrid_EmptyStates(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()

	all := string(r.ProductGrid(nil, "all"))
	assert.Contains(t, all, "Não há produtos cadastrados no momento.")

	filtered := string(r.ProductGrid(nil, "Bebidas"))
	assert.Contains(t, filtered, "Nenhum produto nesta categoria.")
}

func TestCategoryFilter_RebuiltFromCollection(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	products := []models.Product{
		{Name: "a", Category: "X"},
		{Name: "b", Category: "Y"},
		{Name: "c", Category: ""},
	}

	html := string(r.CategoryFilter(products, "Y"))
	require.Contains(t, html, `data-category="all"`)
	assert.Contains(t, html, `data-category="X"`)
	assert.Contains(t, html, `data-category="Y"`)
	// "Todos" first, then first-seen order.
	assert.Less(t, strings.Index(html, `data-category="all"`), strings.Index(html, `data-category="X"`))
	assert.Less(t, strings.Index(html, `data-category="X"`), strings.Index(html, `data-category="Y"`))
	// Active marker sits on the selected category only.
	assert.Contains(t, html, `active" data-category="Y"`)
	assert.NotContains(t, html, `active" data-category="X"`)
}

func TestProductTable_DescriptionExcerpt(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	long := strings.Repeat("d", 80)
	html := string(r.ProductTable([]models.Product{{ID: 1, Name: "A", Price: 1, Description: long}}))

	assert.Contains(t, html, strings.Repeat("d", 50)+"...")
	assert.NotContains(t, html, strings.Repeat("d", 51))
}

func TestProductTable_ExcerptNeverSplitsAccentedRunes(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	long := strings.Repeat("ç", 60)
	html := string(r.ProductTable([]models.Product{{ID: 1, Name: "A", Price: 1, Description: long}}))

	assert.Contains(t, html, strings.Repeat("ç", 50)+"...")
	assert.NotContains(t, html, "�")
}

func TestStatsStrip_HiddenWhenEmpty(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	require.Empty(t, string(r.StatsStrip(CalculateStats(nil))))

	html := string(r.StatsStrip(CalculateStats([]models.Product{{Name: "A", Price: 7.5}})))
	assert.Contains(t, html, "R$ 7.50")
}

func TestUserList_SelfRowHasNoControls(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	users := []models.User{
		{ID: 1, Username: "root", IsAdmin: true, IsActive: true},
		{ID: 2, Username: "bob", IsAdmin: false, IsActive: true},
	}

	html := string(r.UserList(users, 1))
	// The other row keeps its actions.
	assert.Contains(t, html, "/admin/users/2/promote/confirm")
	// The self row exposes none.
	assert.NotContains(t, html, "/admin/users/1/demote/confirm")
	assert.NotContains(t, html, "/admin/users/1/toggle/confirm")
	assert.Contains(t, html, "você")
}

func TestInviteBanner_TempPasswordUnescaped(t *testing.T) {
	t.Parallel()

	r := newTestRenderer()
	html := string(r.InviteBanner(&models.InviteResult{
		Message:           "ok",
		TemporaryPassword: "Ab12Cd",
	}))
	assert.Contains(t, html, "Ab12Cd")

	// The trust boundary: the password is inserted raw.
	raw := string(r.InviteBanner(&models.InviteResult{
		Message:           "ok",
		TemporaryPassword: "A<b>1</b>",
	}))
	assert.Contains(t, raw, "A<b>1</b>")
}

func TestMessage_KindsAndDismiss(t *testing.T) {
	t.Parallel()

	errHTML := string(Message("falhou", MessageError))
	assert.Contains(t, errHTML, "alert-danger")
	assert.Contains(t, errHTML, "falhou")
	assert.Contains(t, errHTML, `data-timeout="5000"`)

	okHTML := string(Message("ok", MessageSuccess))
	assert.Contains(t, okHTML, "alert-success")
}

func TestErrorRetry_HasRetryAffordance(t *testing.T) {
	t.Parallel()

	html := string(ErrorRetry("Erro ao carregar produtos.", "/admin?section=products"))
	assert.Contains(t, html, "Tentar Novamente")
	assert.Contains(t, html, "/admin?section=products")
}

func TestConfirm_ShowsEscapedSubjectName(t *testing.T) {
	t.Parallel()

	html := string(Confirm("Excluir produto", "Tem certeza que deseja excluir",
		"Caneca <Edição>", "/admin/products/9/delete", "/admin?section=products"))

	assert.Contains(t, html, "Caneca &lt;Edição&gt;")
	assert.NotContains(t, html, "Caneca <Edição>")
	assert.Contains(t, html, `action="/admin/products/9/delete"`)
	assert.Contains(t, html, `name="confirmed" value="true"`)
}
