package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/handlers"
	"storefront/internal/middlewares"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.UISession.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	authLimiter := middlewares.NewAuthRateLimiter(ctx.Config.RateLimit.AuthPerMinute)

	r.Get("/", ctx.HandlerFunc(handlers.Home))
	r.Get("/products", ctx.HandlerFunc(handlers.Products))
	r.Get("/products/{id}", ctx.HandlerFunc(handlers.ProductDetail))

	r.Get("/login", ctx.HandlerFunc(handlers.LoginPage))
	r.Get("/register", ctx.HandlerFunc(handlers.RegisterPage))
	r.Post("/logout", ctx.HandlerFunc(handlers.Logout))

	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Handler)
		r.Post("/login", ctx.HandlerFunc(handlers.Login))
		r.Post("/register", ctx.HandlerFunc(handlers.Register))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)
		r.Post("/products/{id}/cart", ctx.HandlerFunc(handlers.AddToCart))
		r.Get("/cart", ctx.HandlerFunc(handlers.Cart))
		r.Post("/cart/items/{productId}/remove", ctx.HandlerFunc(handlers.RemoveCartItem))
		r.Get("/orders", ctx.HandlerFunc(handlers.Orders))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAdmin)
		r.Get("/admin", ctx.HandlerFunc(handlers.Admin))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", ctx.HandlerFunc(handlers.GetHealth))
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
