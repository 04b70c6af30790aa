package domain

import "time"

// Seeded role names. Each gated route requires exactly one of them.
const (
	RoleAdmin     = "admin"
	RoleFilms     = "films"
	RolePeople    = "people"
	RoleLocations = "locations"
	RoleSpecies   = "species"
	RoleVehicles  = "vehicles"
)

// SeedRoles lists the roles created on first start, in creation order.
var SeedRoles = []string{RoleAdmin, RoleFilms, RolePeople, RoleLocations, RoleSpecies, RoleVehicles}

// Role is a named permission. Users reference exactly one.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is an account able to log in. PasswordHash is always a bcrypt hash.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int64  `json:"role_id"`
	Role         *Role  `json:"role,omitempty"`
}

// RoleName returns the name of the user's role, or "" when it was not loaded.
func (u *User) RoleName() string {
	if u == nil || u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// AccessClaims is the decoded content of a valid access token.
type AccessClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}
