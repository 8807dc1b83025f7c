package models

import "time"

// AuditModel carries the creation/update timestamps shared by audited entities.
// Both fields are populated by the persistence layer (GORM auto timestamps),
// never by application code.
type AuditModel struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
