package entity

import "strings"

// Role names as carried in tokens.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
	RoleUser     = "USER"
)

// Role ids of the role table.
const (
	RoleIDUser     int64 = 1 // self-registered customers
	RoleIDEmployee int64 = 2 // default for registered employees
)

// User account; linked to at most one customer and one employee.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *int64
	PasswordHash string // bcrypt hash, never plain after persisting
	RoleID       int64
	RoleName     string // filled only by the role-joined lookup
	CustomerID   *int64
	EmployeeID   *int64
}

// NormalizeRole turns "ROLE_ADMIN", "admin" or " Admin " into "ADMIN".
func NormalizeRole(role string) string {
	r := strings.ToUpper(strings.TrimSpace(role))
	return strings.TrimPrefix(r, "ROLE_")
}

// UserFilter criteria for the filtered user search.
type UserFilter struct {
	ID     *int64
	Email  *string
	RoleID *int64
	Limit  *int32
}
