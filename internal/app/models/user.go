package models

import "time"

// User defines an account in the 'user' collection. Passwords are
// stored and compared as plain strings; see the security note in
// DESIGN.md.
type User struct {
	ID        string    `bson:"-" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
