package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/gateway"
	"storefront/internal/middlewares"
	"storefront/internal/web"
)

type errorView struct {
	Message string
}

// handleBackendError is the shared failure path for page handlers.
// Credential expiry turns into the hard login redirect (the gateway has
// already torn the session down); anything else renders the error page
// without disturbing session state.
func handleBackendError(ctx *middlewares.AppContext, err error, fallback string) {
	if errors.Is(err, gateway.ErrSessionExpired) {
		ctx.ForceLoginRedirect()
		return
	}

	ctx.Logger.Error("backend request failed", "path", ctx.Request.URL.Path, "error", err)
	renderError(ctx, http.StatusBadGateway, gateway.ErrorMessage(err, fallback))
}

func renderError(ctx *middlewares.AppContext, status int, message string) {
	ctx.RenderPage(status, "error", &web.PageData{
		Title:   "Error",
		Content: errorView{Message: message},
	})
}
