package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleCRM   UserRole = "CRM"
	RoleAdmin UserRole = "ADMIN"
)

// ValidRole reports whether s is one of the two roles accepted when an
// admin creates or edits an account.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleCRM, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}
