package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
