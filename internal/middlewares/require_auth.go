package middlewares

import (
	"net/http"

	"storefront/internal/web"
)

// RequireAuth gates a page on session state, in precedence order:
// loading placeholder while restoration is in flight, redirect to the
// login entry point for anonymous sessions, otherwise the wrapped page.
// These are in-app redirects; the gateway's credential-expiry redirect
// is a separate, harder path.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if appCtx.Session.Loading() {
			renderLoading(appCtx)
			return
		}

		if appCtx.Session.User() == nil {
			if appCtx.UISession != nil {
				appCtx.UISession.SetReturnTo(appCtx, r.URL.RequestURI())
			}
			appCtx.Redirect("/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin adds the admin check on top of RequireAuth's contract: an
// authenticated non-admin is sent home, not to the login page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if appCtx.Session.Loading() {
			renderLoading(appCtx)
			return
		}

		if appCtx.Session.User() == nil {
			if appCtx.UISession != nil {
				appCtx.UISession.SetReturnTo(appCtx, r.URL.RequestURI())
			}
			appCtx.Redirect("/login", http.StatusFound)
			return
		}

		if !appCtx.Session.IsAdmin() {
			appCtx.Redirect("/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func renderLoading(ctx *AppContext) {
	// The browser retries shortly; restoration is a one-shot startup task.
	ctx.Response.Header().Set("Refresh", "1")
	ctx.RenderPage(http.StatusOK, "loading", &web.PageData{Title: "Loading"})
}
