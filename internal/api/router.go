package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/bookshelfapp/bookshelf-server/internal/api/handlers"
	"github.com/bookshelfapp/bookshelf-server/internal/config"
	"github.com/bookshelfapp/bookshelf-server/internal/metrics"
	"github.com/bookshelfapp/bookshelf-server/internal/middleware"
	"github.com/bookshelfapp/bookshelf-server/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	Auth        *middleware.AuthMiddleware
	Users       *services.UserService
	Books       *services.BookService
	GoogleBooks *services.GoogleBooksService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("Hello from Backend!")) })
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	uh := handlers.NewUserHandler(d.Users)
	bh := handlers.NewBookHandler(d.Books)
	gh := handlers.NewGoogleBooksHandler(d.GoogleBooks)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", uh.Register)
		r.Post("/users/login", uh.Login)

		r.Get("/googlebooks/search", gh.Search)

		// everything below requires a resolved identity
		r.Group(func(r chi.Router) {
			r.Use(d.Auth.Auth)
			r.Get("/books", bh.List)
			r.Post("/books", bh.Create)
			r.Put("/books/{id}", bh.Update)
			r.Delete("/books/{id}", bh.Delete)
		})
	})

	return r
}
