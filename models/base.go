package models

import "time"

// Audited carries the audit columns shared by every persisted entity.
// Version is an optimistic-lock counter; it is bumped on updates but no
// code path currently retries on a version conflict.
type Audited struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version" gorm:"not null;default:1"`
}
