package entity

// Role is carried in the access token and checked by the admin routes.
type Role string

// RoleAdmin may call every mutating endpoint.
const RoleAdmin Role = "admin"

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}
