// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package models

// User represents an account registered in the User Service.
// Username and Email are globally unique; the password is only ever held
// as a one-way hash and is never serialized.
type User struct {
	// UserID is the server-assigned numeric identifier.
	UserID int64 `json:"id"`

	// Username is the unique display/login name.
	Username string `json:"username"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is excluded from JSON so it can never leak through a response.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is the outcome of a successful login: the signed token together
// with the identity it was issued for.
type Session struct {
	Token    Token
	UserID   int64
	Username string
}
