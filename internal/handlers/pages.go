package handlers

import (
	"net/http"

	"storefront/internal/middlewares"
	"storefront/internal/web"
)

func Home(ctx *middlewares.AppContext) {
	ctx.RenderPage(http.StatusOK, "home", &web.PageData{Title: "Home"})
}

func Admin(ctx *middlewares.AppContext) {
	ctx.RenderPage(http.StatusOK, "admin", &web.PageData{Title: "Admin Dashboard"})
}
