package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/services"
)

// TechnologiesHandler adds fuzzy name search to the generic technology CRUD
// surface.
type TechnologiesHandler struct {
	*ResourceHandler[models.Technology, dto.TechnologyDTO, dto.TechnologyPatch]
	svc services.TechnologyService
}

func NewTechnologiesHandler(svc services.TechnologyService) *TechnologiesHandler {
	return &TechnologiesHandler{
		ResourceHandler: NewResourceHandler[models.Technology, dto.TechnologyDTO, dto.TechnologyPatch](svc),
		svc:             svc,
	}
}

// Routes extends the CRUD surface with fuzzy name search.
func (h *TechnologiesHandler) Routes(protect ...func(http.Handler) http.Handler) chi.Router {
	r := h.ResourceHandler.Routes(protect...)
	r.Get("/search", h.Search)
	return r
}

// Search matches technology names by trigram similarity so near-misses like
// "reactt" still find "React".
func (h *TechnologiesHandler) Search(w http.ResponseWriter, r *http.Request) {
	pageable, err := parsePageable(r)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	page, err := h.svc.SearchByName(r.Context(), r.URL.Query().Get("name"), pageable)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
