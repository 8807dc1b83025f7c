package repository

// Pageable carries the pagination and ordering parameters shared by all list
// queries. Page is zero-based.
type Pageable struct {
	Page int
	Size int
	Sort string
}

// DefaultPageable returns the standard page window: first page, ten rows,
// ascending id.
func DefaultPageable() Pageable {
	return Pageable{Page: 0, Size: 10, Sort: "id ASC"}
}

// Offset returns the row offset for the page window.
func (p Pageable) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Size
}

// PageResult is one page of rows plus the metadata callers need to iterate.
type PageResult[T any] struct {
	Items []*T  `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}
