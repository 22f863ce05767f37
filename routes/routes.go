package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/suenot/sporthub/handlers"
	"github.com/suenot/sporthub/middleware"
)

type Options struct {
	AllowedOrigins []string
	JWTSecret      []byte
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	filterHandler *handlers.FilterHandler,
	eventHandler *handlers.EventHandler,
	brandingHandler *handlers.BrandingHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Language"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	// Описание формы фильтров
	router.Route("/filters", func(r chi.Router) {
		r.Get("/schema", filterHandler.GetFilterSchema)
		r.Get("/ui-schema", filterHandler.GetUISchema)
		r.Get("/options", filterHandler.GetOptions)
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Get("/{eventID}", eventHandler.GetEvent)
	})

	router.Get("/branding/logo", brandingHandler.GetLogo)

	router.Get("/ws/filters", webSocketHandler.ServeFilters)

	router.Route("/admin/filters", func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.JWTSecret))
		r.Use(middleware.Authorize(middleware.RoleAdmin))

		r.Post("/refresh", filterHandler.RefreshOptions)
		r.Post("/publish", filterHandler.PublishSchemas)
	})
}
