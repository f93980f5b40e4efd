package gateway

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

func (c *Client) Orders(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order

	if err := c.do(ctx, http.MethodGet, "/api/orders/user", "/api/orders/user", userIDHeader(userID), nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
