package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/services"
)

// UsersHandler adds signup and search on top of the generic user CRUD
// surface.
type UsersHandler struct {
	*ResourceHandler[models.User, dto.UserDTO, dto.UserPatch]
	svc services.UserService
}

func NewUsersHandler(svc services.UserService) *UsersHandler {
	return &UsersHandler{
		ResourceHandler: NewResourceHandler[models.User, dto.UserDTO, dto.UserPatch](svc),
		svc:             svc,
	}
}

// Routes extends the CRUD surface with the public signup and search
// endpoints. Static paths win over the {id} wildcard in chi, so /search and
// /signup never collide with lookups by id.
func (h *UsersHandler) Routes(protect ...func(http.Handler) http.Handler) chi.Router {
	r := h.ResourceHandler.Routes(protect...)
	r.Post("/signup", h.Signup)
	r.Get("/search", h.Search)
	return r
}

// Signup registers a new account and returns a session envelope. Public by
// design: the caller has no token yet.
func (h *UsersHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var d dto.UserDTO
	if err := decodeBody(r, &d); err != nil {
		types.WriteError(w, r, err)
		return
	}
	session, err := h.svc.Signup(r.Context(), d)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Search filters users by name (accent-insensitive contains) and exact
// email; both parameters are optional.
func (h *UsersHandler) Search(w http.ResponseWriter, r *http.Request) {
	pageable, err := parsePageable(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	q := r.URL.Query()
	if q.Get("sort") == "" {
		pageable.Sort = "name ASC"
	}
	page, err := h.svc.Search(r.Context(), q.Get("name"), q.Get("email"), pageable)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
