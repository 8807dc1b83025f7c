package dto

// CommentDTO is one node of a post's discussion. Replies are populated only
// by the tree endpoint; flat CRUD responses leave them empty.
type CommentDTO struct {
	ID       uint         `json:"id,omitempty"`
	Content  string       `json:"content" validate:"required"`
	AuthorID uint         `json:"author_id" validate:"required"`
	Author   *UserDTO     `json:"author,omitempty"`
	PostID   uint         `json:"post_id" validate:"required"`
	ParentID *uint        `json:"parent_id,omitempty"`
	Replies  []CommentDTO `json:"replies,omitempty"`
}

type CommentPatch struct {
	Content *string `json:"content,omitempty"`
}
