package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/mvieira/catalogfront/internal/models"
)

// ProductInput is the write shape for create and update. The backend assigns
// id and timestamps.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (c *Client) Products(ctx context.Context, sess Session) ([]models.Product, error) {
	resp, err := c.do(ctx, sess, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := decodeJSON(resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, sess Session, id int) (*models.Product, error) {
	resp, err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := decodeJSON(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, sess Session, in ProductInput) (*models.Product, error) {
	resp, err := c.do(ctx, sess, http.MethodPost, "/products", in)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := decodeJSON(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, sess Session, id int, in ProductInput) (*models.Product, error) {
	resp, err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/products/%d", id), in)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := decodeJSON(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, sess Session, id int) error {
	resp, err := c.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// Categories hits the dedicated endpoint that lists distinct non-empty
// category names. The storefront filter derives its buttons from the loaded
// collection instead; this feeds the admin form's suggestions.
func (c *Client) Categories(ctx context.Context, sess Session) ([]string, error) {
	resp, err := c.do(ctx, sess, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := decodeJSON(resp, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Upload posts a file as the multipart "file" field. The backend decides what
// it got: images come back as {filename}, CSV imports as {message} only.
func (c *Client) Upload(ctx context.Context, sess Session, filename string, file io.Reader) (*models.UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	resp, err := c.doRaw(ctx, sess, http.MethodPost, "/upload", pr, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var result models.UploadResult
	if err := decodeJSON(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
