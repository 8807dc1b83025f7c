package dto

import "github.com/comcode/blog-engine/internal/models"

// UserDTO is the wire shape of a user. Password is write-only: it is accepted
// on input and never set when mapping back from an entity.
type UserDTO struct {
	ID       uint            `json:"id,omitempty"`
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Slug     string          `json:"slug" validate:"required"`
	Bio      string          `json:"bio"`
	Password string          `json:"password,omitempty" validate:"omitempty,min=8"`
	Verified bool            `json:"verified,omitempty"`
	Provider models.Provider `json:"provider,omitempty"`
	Role     models.Role     `json:"role,omitempty"`
}

// UserPatch carries a partial update; nil fields leave the entity untouched.
type UserPatch struct {
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Slug     *string          `json:"slug,omitempty"`
	Bio      *string          `json:"bio,omitempty"`
	Password *string          `json:"password,omitempty" validate:"omitempty,min=8"`
	Provider *models.Provider `json:"provider,omitempty"`
	Role     *models.Role     `json:"role,omitempty"`
}
