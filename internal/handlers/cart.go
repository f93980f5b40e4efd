package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/middlewares"
	"storefront/internal/models"
	"storefront/internal/web"
)

type cartView struct {
	Cart *models.Cart
}

func Cart(ctx *middlewares.AppContext) {
	user := ctx.Session.User()

	cart, err := ctx.Backend.Cart(ctx, user.Ident())
	if err != nil {
		handleBackendError(ctx, err, "Failed to load cart")
		return
	}

	ctx.RenderPage(http.StatusOK, "cart", &web.PageData{
		Title:   "Shopping Cart",
		Content: cartView{Cart: cart},
	})
}

// AddToCart handles the product page's add form and lands on the cart.
func AddToCart(ctx *middlewares.AppContext) {
	user := ctx.Session.User()

	productID, err := strconv.ParseInt(chi.URLParam(ctx.Request, "id"), 10, 64)
	if err != nil {
		renderError(ctx, http.StatusNotFound, "Product not found")
		return
	}

	quantity, err := strconv.Atoi(ctx.Request.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	if err := ctx.Backend.AddCartItem(ctx, user.Ident(), productID, quantity); err != nil {
		handleBackendError(ctx, err, "Failed to add item to cart")
		return
	}

	if ctx.UISession != nil {
		ctx.UISession.PutFlash(ctx, fmt.Sprintf("Added %d to cart", quantity))
	}
	ctx.Redirect("/cart", http.StatusSeeOther)
}

func RemoveCartItem(ctx *middlewares.AppContext) {
	user := ctx.Session.User()

	productID, err := strconv.ParseInt(chi.URLParam(ctx.Request, "productId"), 10, 64)
	if err != nil {
		renderError(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	if err := ctx.Backend.RemoveCartItem(ctx, user.Ident(), productID); err != nil {
		handleBackendError(ctx, err, "Failed to remove item from cart")
		return
	}

	ctx.Redirect("/cart", http.StatusSeeOther)
}
