package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether u holds the admin role. A nil user (no stored
// record) is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
