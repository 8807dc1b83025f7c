// Package handlers exposes the HTTP surface. Every resource shares one
// generic CRUD handler; resource-specific endpoints live in their own files.
package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/internal/api/validators"
	"github.com/comcode/blog-engine/internal/repository"
	"github.com/comcode/blog-engine/internal/services"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

const maxPageSize = 100

// sortColumn restricts sort fields to plain identifiers so user input never
// reaches the ORDER BY clause verbatim.
var sortColumn = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ResourceHandler serves the uniform CRUD surface for one resource type.
type ResourceHandler[E, D, P any] struct {
	svc services.CrudService[E, D, P]
}

func NewResourceHandler[E, D, P any](svc services.CrudService[E, D, P]) *ResourceHandler[E, D, P] {
	return &ResourceHandler[E, D, P]{svc: svc}
}

// Routes mounts the CRUD endpoints. Reads stay public; mutations run behind
// the given middleware chain (authentication plus any role guards).
func (h *ResourceHandler[E, D, P]) Routes(protect ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/page", h.Page)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Group(func(pr chi.Router) {
		for _, mw := range protect {
			pr.Use(mw)
		}
		pr.Post("/", h.Create)
		pr.Put("/{id}", h.Update)
		pr.Patch("/{id}", h.PatchOne)
		pr.Delete("/{id}", h.Delete)
	})
	return r
}

func (h *ResourceHandler[E, D, P]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ResourceHandler[E, D, P]) Page(w http.ResponseWriter, r *http.Request) {
	pageable, err := parsePageable(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	page, err := h.svc.PageSorted(r.Context(), pageable)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ResourceHandler[E, D, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	d, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *ResourceHandler[E, D, P]) Create(w http.ResponseWriter, r *http.Request) {
	var d D
	if err := decodeBody(r, &d); err != nil {
		types.WriteError(w, r, err)
		return
	}
	out, err := h.svc.Save(r.Context(), d)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *ResourceHandler[E, D, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	var d D
	if err := decodeBody(r, &d); err != nil {
		types.WriteError(w, r, err)
		return
	}
	out, err := h.svc.Update(r.Context(), id, d)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ResourceHandler[E, D, P]) PatchOne(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	var p P
	if err := decodePatch(r, &p); err != nil {
		types.WriteError(w, r, err)
		return
	}
	out, err := h.svc.Patch(r.Context(), id, p)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ResourceHandler[E, D, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		types.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, appErr.Newf(appErr.CodeInvalid, "invalid id %q", raw)
	}
	return uint(id), nil
}

// decodeBody parses and validates a full-body payload.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid json body")
	}
	return validators.Check(v)
}

// decodePatch parses a partial payload; patch structs carry only optional
// fields, so required-tag validation does not apply.
func decodePatch(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid json body")
	}
	return validators.Check(v)
}

// parsePageable reads page (zero-based), size and sort query parameters,
// falling back to the first ten rows by ascending id.
func parsePageable(r *http.Request) (repository.Pageable, error) {
	p := repository.DefaultPageable()
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return p, appErr.Newf(appErr.CodeInvalid, "invalid page %q", raw)
		}
		p.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 || size > maxPageSize {
			return p, appErr.Newf(appErr.CodeInvalid, "invalid size %q", raw)
		}
		p.Size = size
	}
	if raw := q.Get("sort"); raw != "" {
		col := strings.ToLower(raw)
		if !sortColumn.MatchString(col) {
			return p, appErr.Newf(appErr.CodeInvalid, "invalid sort column %q", raw)
		}
		dir := "ASC"
		if strings.EqualFold(q.Get("order"), "desc") {
			dir = "DESC"
		}
		p.Sort = col + " " + dir
	}
	return p, nil
}
