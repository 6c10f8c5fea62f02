package model

import "time"

// User is an account that owns todos.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
