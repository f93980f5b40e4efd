package handlers

import (
	"net/http"

	"storefront/internal/middlewares"
	"storefront/internal/models"
	"storefront/internal/web"
)

type ordersView struct {
	Orders []models.Order
}

func Orders(ctx *middlewares.AppContext) {
	user := ctx.Session.User()

	orders, err := ctx.Backend.Orders(ctx, user.Ident())
	if err != nil {
		handleBackendError(ctx, err, "Failed to load orders")
		return
	}

	ctx.RenderPage(http.StatusOK, "orders", &web.PageData{
		Title:   "My Orders",
		Content: ordersView{Orders: orders},
	})
}
