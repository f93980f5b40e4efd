package handlers

import (
	"net/http"

	"storefront/internal/middlewares"
	"storefront/internal/version"
)

func GetHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}
