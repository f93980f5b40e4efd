package middlewares

import (
	"net/http"
)

// UISessionProvider is the browser cookie session: navigation state
// only, never identity or credentials.
type UISessionProvider interface {
	PutFlash(ctx *AppContext, message string)
	PopFlash(ctx *AppContext) string
	SetReturnTo(ctx *AppContext, url string)
	PopReturnTo(ctx *AppContext) string

	LoadAndSave(next http.Handler) http.Handler
}
