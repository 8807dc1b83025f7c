package models

// Provider identifies where a user's credentials originate.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

// Role controls coarse-grained authorization.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a platform account. Password always holds a bcrypt hash; the user
// service's prepare-for-write step guarantees raw passwords never reach the
// repository.
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"not null" json:"name"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Slug     string   `gorm:"uniqueIndex;not null" json:"slug"`
	Bio      string   `gorm:"not null" json:"bio"`
	Password string   `gorm:"not null" json:"-"`
	Verified bool     `gorm:"not null;default:false" json:"verified"`
	Provider Provider `gorm:"type:varchar(16);not null" json:"provider"`
	Role     Role     `gorm:"type:varchar(16);not null" json:"role"`
	AuditModel
}
