package constants

// Role user di CourseHub
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
	RoleCorporate  = "corporate"
)

// AllowedRoles dipakai validasi DTO user
var AllowedRoles = map[string]bool{
	RoleAdmin:      true,
	RoleInstructor: true,
	RoleStudent:    true,
	RoleCorporate:  true,
}
