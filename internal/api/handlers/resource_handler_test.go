package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
	"github.com/comcode/blog-engine/internal/services"
	appErr "github.com/comcode/blog-engine/pkg/errors"
	"github.com/comcode/blog-engine/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("info", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

// stubMediaService backs handler tests with canned data; it records the
// pageable it received so query-parameter parsing can be asserted.
type stubMediaService struct {
	items        map[uint]dto.MediaDTO
	lastPageable repository.Pageable
}

func newStubMediaService() *stubMediaService {
	return &stubMediaService{items: map[uint]dto.MediaDTO{
		1: {ID: 1, URL: "https://cdn.dev/a.png", FileName: "a.png", Size: 10, MimeType: "image/png"},
	}}
}

func (s *stubMediaService) Save(_ context.Context, d dto.MediaDTO) (dto.MediaDTO, error) {
	d.ID = 99
	s.items[d.ID] = d
	return d, nil
}

func (s *stubMediaService) SaveAll(_ context.Context, ds []dto.MediaDTO) ([]dto.MediaDTO, error) {
	return ds, nil
}

func (s *stubMediaService) Update(_ context.Context, id uint, d dto.MediaDTO) (dto.MediaDTO, error) {
	if _, ok := s.items[id]; !ok {
		return dto.MediaDTO{}, appErr.NotFound("media", id)
	}
	d.ID = id
	s.items[id] = d
	return d, nil
}

func (s *stubMediaService) Patch(_ context.Context, id uint, p dto.MediaPatch) (dto.MediaDTO, error) {
	d, ok := s.items[id]
	if !ok {
		return dto.MediaDTO{}, appErr.NotFound("media", id)
	}
	if p.FileName != nil {
		d.FileName = *p.FileName
	}
	s.items[id] = d
	return d, nil
}

func (s *stubMediaService) Delete(_ context.Context, id uint) error {
	if _, ok := s.items[id]; !ok {
		return appErr.NotFound("media", id)
	}
	delete(s.items, id)
	return nil
}

func (s *stubMediaService) DeleteAll(context.Context, []dto.MediaDTO) error { return nil }

func (s *stubMediaService) GetByID(_ context.Context, id uint) (dto.MediaDTO, error) {
	d, ok := s.items[id]
	if !ok {
		return dto.MediaDTO{}, appErr.NotFound("media", id)
	}
	return d, nil
}

func (s *stubMediaService) List(context.Context) ([]dto.MediaDTO, error) {
	out := make([]dto.MediaDTO, 0, len(s.items))
	for _, d := range s.items {
		out = append(out, d)
	}
	return out, nil
}

func (s *stubMediaService) PageSorted(_ context.Context, pageable repository.Pageable) (*services.Page[dto.MediaDTO], error) {
	s.lastPageable = pageable
	return &services.Page[dto.MediaDTO]{Items: []dto.MediaDTO{}, Total: 0, Page: pageable.Page, Size: pageable.Size}, nil
}

func (s *stubMediaService) FindBySpecification(ctx context.Context, _ *repository.Predicate, pageable repository.Pageable) (*services.Page[dto.MediaDTO], error) {
	return s.PageSorted(ctx, pageable)
}

func newMediaRouter(stub *stubMediaService) http.Handler {
	h := NewResourceHandler[models.Media, dto.MediaDTO, dto.MediaPatch](stub)
	r := chi.NewRouter()
	r.Mount("/media", h.Routes())
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestResourceGet(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodGet, "/media/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "a.png")
}

func TestResourceGetNotFoundProblem(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodGet, "/media/999", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), "Resource Not Found")
}

func TestResourceGetBadID(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodGet, "/media/abc", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResourceCreate(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodPost, "/media/",
		`{"url":"https://cdn.dev/b.png","file_name":"b.png","size":5,"mime_type":"image/png"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Contains(t, rr.Body.String(), `"id":99`)
}

func TestResourceCreateValidation(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodPost, "/media/", `{"url":"not-a-url"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Validation Failed")
	require.Contains(t, rr.Body.String(), "errors")
}

func TestResourceDelete(t *testing.T) {
	stub := newStubMediaService()
	router := newMediaRouter(stub)

	rr := doRequest(t, router, http.MethodDelete, "/media/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, stub.items)

	rr = doRequest(t, router, http.MethodDelete, "/media/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourcePageDefaults(t *testing.T) {
	stub := newStubMediaService()
	router := newMediaRouter(stub)

	rr := doRequest(t, router, http.MethodGet, "/media/page", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 0, stub.lastPageable.Page)
	require.Equal(t, 10, stub.lastPageable.Size)
	require.Equal(t, "id ASC", stub.lastPageable.Sort)
}

func TestResourcePageParams(t *testing.T) {
	stub := newStubMediaService()
	router := newMediaRouter(stub)

	rr := doRequest(t, router, http.MethodGet, "/media/page?page=2&size=5&sort=file_name&order=desc", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 2, stub.lastPageable.Page)
	require.Equal(t, 5, stub.lastPageable.Size)
	require.Equal(t, "file_name DESC", stub.lastPageable.Sort)
}

func TestResourcePageRejectsBadParams(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	for _, path := range []string{
		"/media/page?page=-1",
		"/media/page?size=0",
		"/media/page?size=1000",
		"/media/page?sort=file_name;drop%20table",
	} {
		rr := doRequest(t, router, http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, rr.Code, path)
	}
}

func TestResourcePatch(t *testing.T) {
	router := newMediaRouter(newStubMediaService())

	rr := doRequest(t, router, http.MethodPatch, "/media/1", `{"file_name":"renamed.png"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "renamed.png")
}
