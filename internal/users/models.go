package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleAdmin        Role = "admin"
	RoleTicketOffice Role = "ticket_office"
	RoleDoorStaff    Role = "door_staff"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'customer'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleCustomer), string(RoleAdmin), string(RoleTicketOffice), string(RoleDoorStaff):
		return true
	default:
		return false
	}
}

// NormalizeRole maps legacy role aliases onto the current set.
// "caissier" was the historical name for the ticket office role.
func NormalizeRole(role string) string {
	if role == "caissier" {
		return string(RoleTicketOffice)
	}
	return role
}

// IsStaffRole reports whether the role belongs to back-office staff.
func IsStaffRole(role string) bool {
	switch role {
	case string(RoleAdmin), string(RoleTicketOffice), string(RoleDoorStaff):
		return true
	default:
		return false
	}
}
