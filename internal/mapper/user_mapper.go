package mapper

import (
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
)

// UserMapper never copies the stored password hash into a DTO.
type UserMapper struct{}

func NewUserMapper() UserMapper { return UserMapper{} }

func (UserMapper) ToEntity(d dto.UserDTO) *models.User {
	return &models.User{
		ID:       d.ID,
		Name:     d.Name,
		Email:    d.Email,
		Slug:     d.Slug,
		Bio:      d.Bio,
		Password: d.Password,
		Verified: d.Verified,
		Provider: d.Provider,
		Role:     d.Role,
	}
}

func (UserMapper) ToDTO(e *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Slug:     e.Slug,
		Bio:      e.Bio,
		Verified: e.Verified,
		Provider: e.Provider,
		Role:     e.Role,
	}
}

func (UserMapper) Patch(p dto.UserPatch, e *models.User) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
	if p.Bio != nil {
		e.Bio = *p.Bio
	}
	if p.Password != nil {
		e.Password = *p.Password
	}
	if p.Provider != nil {
		e.Provider = *p.Provider
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
}
