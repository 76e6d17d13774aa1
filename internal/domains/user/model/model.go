package model

import "cospace/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldEmail     = "email"
	FieldPassword  = "password_hash"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type User struct {
	ID        string  `db:"id"`
	FirstName string  `db:"first_name"`
	Email     string  `db:"email"`
	Password  string  `db:"password_hash"`
	Role      string  `db:"role"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
