package gateway

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/models"
)

func userIDHeader(userID int64) map[string]string {
	return map[string]string{"X-User-Id": fmt.Sprintf("%d", userID)}
}

func (c *Client) Cart(ctx context.Context, userID int64) (*models.Cart, error) {
	var cart models.Cart

	if err := c.do(ctx, http.MethodGet, "/api/cart", "/api/cart", userIDHeader(userID), nil, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

type addCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (c *Client) AddCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	req := addCartItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/api/cart/items", "/api/cart/items", userIDHeader(userID), req, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	path := fmt.Sprintf("/api/cart/items/%d", productID)
	return c.do(ctx, http.MethodDelete, "/api/cart/items/:productId", path, userIDHeader(userID), nil, nil)
}
