package gateway

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/models"
)

func (c *Client) Products(ctx context.Context, page, size int) (*models.ProductPage, error) {
	var result models.ProductPage

	path := fmt.Sprintf("/api/products?page=%d&size=%d", page, size)
	if err := c.do(ctx, http.MethodGet, "/api/products", path, nil, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product

	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodGet, "/api/products/:id", path, nil, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}
