package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/handler"
	"github.com/BuzzLyutic/todo-api/internal/metrics"
)

// corsMaxAge - сколько секунд клиент может кешировать ответ на preflight
const corsMaxAge = 3600

type Deps struct {
	Todos  *handler.TodoHandler
	DB     handler.Pinger
	Logger *zap.Logger
}

// NewRouter собирает роутер со всеми middleware и маршрутами
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	// CORS после логгера и метрик: preflight отвечает сам и дальше не проходит
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         corsMaxAge,
	}))

	r.Get("/health", handler.Health(d.DB, d.Logger))
	r.Get("/metrics", metrics.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/todos", d.Todos.List)
		r.Post("/todos", d.Todos.Create)
		r.Get("/todos/{id}", d.Todos.Get)
		r.Put("/todos/{id}", d.Todos.Update)
		r.Delete("/todos/{id}", d.Todos.Delete)
		r.Get("/categories", d.Todos.ListCategories)
	})

	return r
}
