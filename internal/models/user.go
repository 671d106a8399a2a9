package models

import "time"

// User is the database representation of an application user.
type User struct {
	UserID         string    `db:"user_id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	FullName       string    `db:"full_name"`
	CreatedAt      time.Time `db:"created_at"`
}
