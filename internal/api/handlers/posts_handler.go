package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/services"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

// PostsHandler adds search and the comment tree to the generic post CRUD
// surface.
type PostsHandler struct {
	*ResourceHandler[models.Post, dto.PostDTO, dto.PostPatch]
	svc      services.PostService
	comments services.CommentService
}

func NewPostsHandler(svc services.PostService, comments services.CommentService) *PostsHandler {
	return &PostsHandler{
		ResourceHandler: NewResourceHandler[models.Post, dto.PostDTO, dto.PostPatch](svc),
		svc:             svc,
		comments:        comments,
	}
}

// Routes extends the CRUD surface with search and the per-post comment tree.
func (h *PostsHandler) Routes(protect ...func(http.Handler) http.Handler) chi.Router {
	r := h.ResourceHandler.Routes(protect...)
	r.Get("/search", h.Search)
	r.Get("/{id}/comments", h.Comments)
	return r
}

// Search combines a free-text query with exact filters; every parameter is
// optional and missing ones widen the result.
func (h *PostsHandler) Search(w http.ResponseWriter, r *http.Request) {
	pageable, err := parsePageable(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	q := r.URL.Query()

	params := services.PostSearch{Query: q.Get("q")}
	if raw := q.Get("status"); raw != "" {
		status := models.PostStatus(raw)
		switch status {
		case models.PostDraft, models.PostPublished, models.PostArchived:
			params.Status = &status
		default:
			types.WriteError(w, r, appErr.Newf(appErr.CodeInvalid, "invalid status %q", raw))
			return
		}
	}
	if params.AuthorID, err = optionalID(q.Get("author_id"), "author_id"); err != nil {
		types.WriteError(w, r, err)
		return
	}
	if params.CollectionID, err = optionalID(q.Get("collection_id"), "collection_id"); err != nil {
		types.WriteError(w, r, err)
		return
	}
	if params.TechnologyIDs, err = idList(q.Get("technology_ids")); err != nil {
		types.WriteError(w, r, err)
		return
	}

	page, err := h.svc.Search(r.Context(), params, pageable)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Comments returns the post's discussion as a tree of root comments with
// nested replies.
func (h *PostsHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	tree, err := h.comments.TreeByPost(r.Context(), id)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func optionalID(raw, name string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, appErr.Newf(appErr.CodeInvalid, "invalid %s %q", name, raw)
	}
	id := uint(v)
	return &id, nil
}

// idList parses a comma-separated id list such as "1,2,3".
func idList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, appErr.Newf(appErr.CodeInvalid, "invalid technology id %q", part)
		}
		out = append(out, uint(v))
	}
	return out, nil
}
