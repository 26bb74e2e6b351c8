package admin

// Role is the access level attached to a user session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// ParseRole maps a raw value to a Role; unknown values report false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(s), true
	}
	return RoleGuest, false
}

// Authorize reports whether an authenticated user holding role may
// access a resource that requires requiredRole. Unauthenticated users
// are always denied, whatever role they claim.
func Authorize(isAuthenticated bool, role, requiredRole Role) bool {
	if !isAuthenticated {
		return false
	}
	return role == requiredRole
}
