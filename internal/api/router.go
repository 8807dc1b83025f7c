// Package api assembles the HTTP router from handlers and middleware.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/comcode/blog-engine/internal/api/handlers"
	mw "github.com/comcode/blog-engine/internal/api/middleware"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

type Dependencies struct {
	HMACSecret []byte

	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UsersHandler
	Posts        *handlers.PostsHandler
	Technologies *handlers.TechnologiesHandler
	Collections  *handlers.ResourceHandler[models.Collection, dto.CollectionDTO, dto.CollectionPatch]
	Comments     *handlers.ResourceHandler[models.Comment, dto.CommentDTO, dto.CommentPatch]
	Media        *handlers.ResourceHandler[models.Media, dto.MediaDTO, dto.MediaPatch]
}

// NewRouter wires the full HTTP surface. Reads are public; mutations require
// a bearer token, and the technology and media catalogs additionally require
// the admin role.
func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	r.Get("/healthz", dep.Health.Liveness)
	r.Get("/readyz", dep.Health.Readiness)

	auth := mw.Auth(dep.HMACSecret)
	admin := mw.RequireRole(string(models.RoleAdmin))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", dep.Auth.Login)
			ar.Get("/verify", dep.Auth.Verify)
		})

		api.Mount("/users", dep.Users.Routes(auth))
		api.Mount("/posts", dep.Posts.Routes(auth))
		api.Mount("/collections", dep.Collections.Routes(auth))
		api.Mount("/comments", dep.Comments.Routes(auth))
		api.Mount("/technologies", dep.Technologies.Routes(auth, admin))
		api.Mount("/media", dep.Media.Routes(auth, admin))
	})

	return r
}
