package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/config"
	"storefront/internal/gateway"
	"storefront/internal/session"
	"storefront/internal/web"
)

type AppContext struct {
	context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Session   *session.Store
	Backend   *gateway.Client
	UISession UISessionProvider
	Renderer  *web.Renderer

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:   r.Context(),
				Config:    baseCtx.Config,
				Logger:    baseCtx.Logger,
				Session:   baseCtx.Session,
				Backend:   baseCtx.Backend,
				UISession: baseCtx.UISession,
				Renderer:  baseCtx.Renderer,
				Request:   r,
				Response:  w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts an AppHandler to an http.HandlerFunc.
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, store *session.Store, backend *gateway.Client, uiSession UISessionProvider, renderer *web.Renderer) *AppContext {
	return &AppContext{
		Context:   ctx,
		Config:    cfg,
		Logger:    logger,
		Session:   store,
		Backend:   backend,
		UISession: uiSession,
		Renderer:  renderer,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

// Redirect issues an in-app navigation, preserving the browser session.
func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

// ForceLoginRedirect is the hard navigation used after credential
// expiry: no caching, straight to the login entry point.
func (ctx *AppContext) ForceLoginRedirect() {
	ctx.Response.Header().Set("Cache-Control", "no-store")
	http.Redirect(ctx.Response, ctx.Request, "/login", http.StatusSeeOther)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

// RenderPage executes a page template inside the navigation shell,
// filling the session-derived fields every view needs.
func (ctx *AppContext) RenderPage(status int, page string, data *web.PageData) {
	if data == nil {
		data = &web.PageData{}
	}
	data.User = ctx.Session.User()
	data.IsAdmin = ctx.Session.IsAdmin()
	if data.Flash == "" && ctx.UISession != nil {
		data.Flash = ctx.UISession.PopFlash(ctx)
	}

	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.WriteHeader(status)
	if err := ctx.Renderer.Render(ctx.Response, page, data); err != nil {
		ctx.Logger.Error("failed to render page", "page", page, "error", err)
	}
}
