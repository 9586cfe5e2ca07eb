package httpserver

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/logging"
	"github.com/mvieira/catalogfront/internal/view"
)

// CatalogHTTP serves the public storefront. No session is required here;
// everything renders from the product collection alone.
type CatalogHTTP struct {
	Deps *Deps
}

func (h *CatalogHTTP) CatalogPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.page")

	category := c.QueryParam("category")
	if category == "" {
		category = "all"
	}

	sess := api.SessionFromRequest(c.Request())
	products, err := h.Deps.API.Products(ctx, sess)
	if err != nil {
		l.Error("load_products_failed", "status", 502, "error", err)
		return renderPage(c, http.StatusBadGateway, page{
			Title:   "Catálogo",
			Content: view.ErrorRetry("Erro ao carregar produtos. Tente novamente mais tarde.", "/"),
		})
	}

	filtered := view.FilterByCategory(products, category)
	content := `<div class="category-filter mb-3">` +
		string(h.Deps.Renderer.CategoryFilter(products, category)) +
		`</div><div class="row" id="products-container">` +
		string(h.Deps.Renderer.ProductGrid(filtered, category)) +
		`</div>`

	l.Info("catalog_rendered", "total", len(products), "shown", len(filtered), "category", category)
	return renderPage(c, http.StatusOK, page{
		Title:   "Catálogo",
		Message: flashFromQuery(c),
		Content: template.HTML(content),
	})
}

func (h *CatalogHTTP) ProductDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.detail")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("detail_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	sess := api.SessionFromRequest(c.Request())
	product, err := h.Deps.API.Product(ctx, sess, id)
	if err != nil {
		if api.IsNotFound(err) {
			l.Warn("detail_failed", "status", 404, "reason", "product does not exist")
			return renderPage(c, http.StatusNotFound, page{
				Title:   "Produto",
				Message: view.Message("Erro ao carregar detalhes do produto: produto não encontrado", view.MessageError),
			})
		}
		l.Error("detail_failed", "status", 502, "error", err)
		return renderPage(c, http.StatusBadGateway, page{
			Title:   "Produto",
			Content: view.ErrorRetry("Erro ao carregar detalhes do produto.", c.Request().RequestURI),
		})
	}

	return renderPage(c, http.StatusOK, page{
		Title:   product.Name,
		Content: h.Deps.Renderer.ProductDetail(product),
	})
}
