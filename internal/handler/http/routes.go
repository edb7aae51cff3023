package http

import (
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
		r.Post("/api/identity/signup", h.signUp)
		r.Post("/api/identity/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// directory answers anonymous callers with its own response kinds
	router.Route("/api/directory", func(r chi.Router) {
		r.Use(h.optionalAuth)

		r.Get("/resource", h.resolveResource)
		r.Post("/resource/retry", h.retryResourceCreation)
		r.Get("/shared", h.listSharedIn)
		r.Get("/whoami", h.whoAmI)
		r.Post("/users", h.registerUser)
		r.Get("/users", h.listUsers)
		r.Get("/users/{principal}", h.getUser)
	})

	router.Route("/api/resources/{resource}", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withResource)

		r.Get("/files", h.listFiles)
		r.Post("/files", h.createFile)
		r.Delete("/files/{file}", h.deleteFile)
		r.Put("/files/{file}/chunks/{chunk}", h.uploadChunk)
		r.Get("/files/{file}/chunks/{chunk}", h.downloadChunk)
		r.Get("/files/{file}/shares", h.allowedUsers)
		r.Post("/files/{file}/shares", h.shareFile)
		r.Post("/files/{file}/shares/revoke", h.revokeShare)
		r.Post("/requests", h.requestFile)
		r.Get("/aliases/{alias}", h.getAliasInfo)
		r.Post("/aliases/{alias}", h.claimRequest)
		r.Get("/public-key", h.getPublicKey)
		r.Put("/public-key", h.setPublicKey)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
