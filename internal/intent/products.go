package intent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mvieira/catalogfront/internal/api"
)

// validateProduct enforces the only client-side rules that exist: name and
// price present, price numeric and non-negative. Everything else is the
// backend's call.
func validateProduct(form ProductForm) (api.ProductInput, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return api.ProductInput{}, &ValidationError{Msg: "nome e preço são obrigatórios"}
	}
	raw := strings.TrimSpace(form.PriceRaw)
	if raw == "" {
		return api.ProductInput{}, &ValidationError{Msg: "nome e preço são obrigatórios"}
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return api.ProductInput{}, &ValidationError{Msg: "preço inválido"}
	}
	return api.ProductInput{
		Name:        name,
		Description: strings.TrimSpace(form.Description),
		Price:       price,
		Category:    strings.TrimSpace(form.Category),
		ImageURL:    strings.TrimSpace(form.ImageURL),
	}, nil
}

func (r *Registry) createProduct(ctx context.Context, sess api.Session, _ int, in Intent) (*Outcome, error) {
	input, err := validateProduct(in.Product)
	if err != nil {
		return nil, err
	}

	// Image first, product second. An upload failure aborts the product
	// write; a product failure after a successful upload is not rolled
	// back, the orphan file stays on the server.
	if in.File != nil {
		result, err := r.client.Upload(ctx, sess, in.Filename, in.File)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		input.ImageURL = result.Filename
	}

	if _, err := r.client.CreateProduct(ctx, sess, input); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &Outcome{
		Message:  "Produto adicionado com sucesso!",
		Redirect: "/admin?section=products",
	}, nil
}

func (r *Registry) updateProduct(ctx context.Context, sess api.Session, _ int, in Intent) (*Outcome, error) {
	input, err := validateProduct(in.Product)
	if err != nil {
		return nil, err
	}
	if _, err := r.client.UpdateProduct(ctx, sess, in.ProductID, input); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &Outcome{
		Message:  "Produto atualizado com sucesso!",
		Redirect: "/admin?section=products",
	}, nil
}

func (r *Registry) deleteProduct(ctx context.Context, sess api.Session, _ int, in Intent) (*Outcome, error) {
	if !in.Confirmed {
		return nil, ErrConfirmationRequired
	}
	if err := r.client.DeleteProduct(ctx, sess, in.ProductID); err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &Outcome{
		Message:  "Produto excluído com sucesso!",
		Redirect: "/admin?section=products",
	}, nil
}

func (r *Registry) importCSV(ctx context.Context, sess api.Session, _ int, in Intent) (*Outcome, error) {
	if in.File == nil {
		return nil, &ValidationError{Msg: "selecione um arquivo CSV"}
	}
	result, err := r.client.Upload(ctx, sess, in.Filename, in.File)
	if err != nil {
		return nil, fmt.Errorf("import products: %w", err)
	}
	return &Outcome{
		Message:  result.Message,
		Redirect: "/admin?section=products",
	}, nil
}
