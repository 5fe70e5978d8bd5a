package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// Capsule reads and media writes identify the account through
		// request data rather than the session token, matching the
		// page-embedded client.
		r.Post("/api/capsules", h.createCapsule)
		r.Get("/api/capsules", h.listCapsules)
		r.Get("/api/capsules/{capsuleID}", h.getCapsule)
		r.Post("/api/media", h.uploadMedia)
		r.Post("/api/media/delete", h.deleteMedia)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/password", h.changePassword)

		r.Get("/api/profile", h.getProfile)
		r.Post("/api/profile", h.updateProfile)
		r.Post("/api/profile/picture", h.uploadProfilePicture)

		r.Post("/api/capsules/{capsuleID}", h.updateCapsule)
		r.Post("/api/capsules/{capsuleID}/delete", h.deleteCapsule)
		r.Post("/api/capsules/{capsuleID}/share", h.shareCapsule)
	})

	// stored media, served as-is
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
