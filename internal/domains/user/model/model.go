package model

import (
	"time"

	"passat/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// User is a staff account of the back office.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  string     `db:"full_name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
