package dto

// CollectionDTO exposes a collection plus its derived member-post count.
type CollectionDTO struct {
	ID       uint   `json:"id,omitempty"`
	AuthorID uint   `json:"author_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Posts    int64  `json:"posts"`
}

type CollectionPatch struct {
	Title *string `json:"title,omitempty"`
	Slug  *string `json:"slug,omitempty"`
}
