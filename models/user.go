package models

// RoleAdmin is the only role with elevated privileges.
const RoleAdmin = "admin"

// User is an account record. Role is empty for regular users.
type User struct {
	ID    string `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
