package types

import "github.com/golang-jwt/jwt/v5"

// Role is the role claim issued by the identity provider.
type Role string

const (
	RoleCompany     Role = "company"
	RoleCoordinator Role = "coordinator"
	RoleStudent     Role = "student"
	RoleAdmin       Role = "admin"
)

// Claims is the subset of the identity provider token the services trust.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) HasRole(roles ...Role) bool {
	if p.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
