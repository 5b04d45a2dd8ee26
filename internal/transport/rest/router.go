package rest

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/contact"
	"github.com/wordhope/donation-site/internal/donation"
	"github.com/wordhope/donation-site/internal/gallery"
	"github.com/wordhope/donation-site/internal/transport/middleware"
	"github.com/wordhope/donation-site/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, donationHandler *donation.Handler, galleryHandler *gallery.Handler, contactHandler *contact.Handler, healthHandler *HealthHandler, cfg *internal.Config, logger *slog.Logger) {
	// Permissive by intent: the donation endpoint is meant to be callable
	// from anywhere the site is embedded. Tighten via allowed_origins.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.Origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "POST, OPTIONS")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// The checkout endpoint keeps its historical root-level path; deployed
	// clients post to it directly.
	if donationHandler != nil {
		router.Post("/create-checkout-session", donationHandler.CreateCheckoutSession)
		router.Options("/create-checkout-session", donationHandler.Preflight)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if galleryHandler != nil {
			r.Get("/gallery", galleryHandler.GetGallery)
			r.Get("/gallery/tags", galleryHandler.GetTags)
		}

		if contactHandler != nil {
			r.Post("/contact", contactHandler.SubmitMessage)
		}
	})

	// Static collaborators: the raw gallery feed and the post-checkout pages.
	contentServer := http.StripPrefix("/content/", http.FileServer(http.Dir(cfg.Content.Dir)))
	router.Get("/content/*", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		contentServer.ServeHTTP(w, r)
	})

	registerStaticPage(router, cfg.Content.WebDir, "/donate/success", "donate", "success.html")
	registerStaticPage(router, cfg.Content.WebDir, "/donate/cancel", "donate", "cancel.html")
	registerStaticPage(router, cfg.Content.WebDir, "/contact/success", "contact", "success.html")
}

func registerStaticPage(router *chi.Mux, webDir, route string, pathParts ...string) {
	page := filepath.Join(append([]string{webDir}, pathParts...)...)
	router.Get(route, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, page)
	})
}
