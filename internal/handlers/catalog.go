package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/middlewares"
	"storefront/internal/models"
	"storefront/internal/web"
)

const productPageSize = 12

type productsView struct {
	Products   []models.Product
	Page       int
	TotalPages int
	HasNext    bool
}

func (v productsView) DisplayPage() int { return v.Page + 1 }
func (v productsView) PrevPage() int    { return v.Page - 1 }
func (v productsView) NextPage() int    { return v.Page + 1 }

// Products lists the catalog a page at a time. Pages are zero-based on
// the wire, one-based in the view.
func Products(ctx *middlewares.AppContext) {
	page := 0
	if raw := ctx.Request.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			page = parsed
		}
	}

	result, err := ctx.Backend.Products(ctx, page, productPageSize)
	if err != nil {
		handleBackendError(ctx, err, "Failed to load products")
		return
	}

	ctx.RenderPage(http.StatusOK, "products", &web.PageData{
		Title: "Products",
		Content: productsView{
			Products:   result.Content,
			Page:       page,
			TotalPages: result.TotalPages,
			HasNext:    page < result.TotalPages-1,
		},
	})
}

type productView struct {
	Product *models.Product
}

func ProductDetail(ctx *middlewares.AppContext) {
	id, err := strconv.ParseInt(chi.URLParam(ctx.Request, "id"), 10, 64)
	if err != nil {
		renderError(ctx, http.StatusNotFound, "Product not found")
		return
	}

	product, err := ctx.Backend.Product(ctx, id)
	if err != nil {
		handleBackendError(ctx, err, "Failed to load product")
		return
	}

	ctx.RenderPage(http.StatusOK, "product", &web.PageData{
		Title:   product.Name,
		Content: productView{Product: product},
	})
}
