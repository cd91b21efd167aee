package models

// Role is an ordinal role value. Lower values carry more privilege, so a
// role check passes when the principal's role is numerically <= the
// required role.
type Role int

const (
	RoleAdmin    Role = iota // 0
	RolePaidUser             // 1
	RoleUser                 // 2
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleUser
}

// User represents an account in the system.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role     Role   `json:"role" gorm:"not null"`
	Audited
}
