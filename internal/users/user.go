package users

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrAlreadyExists      = errors.New("user with this email already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrMissingCredentials = errors.New("email and password are required")
)

// TokenPrefix prefixes the pseudo token handed out on login. The token is an
// identifier only and carries no signature.
const TokenPrefix = "moodsync_token_"

// User is a directory record. Password is kept exactly as submitted.
type User struct {
	ID         string
	UserID     int64
	FullName   string
	Email      string
	Age        json.RawMessage
	Gender     string
	Password   string
	CreatedAt  time.Time
	LastActive time.Time
}

// Profile is the part of a user returned by register and login.
type Profile struct {
	ID       string          `json:"id"`
	UserID   int64           `json:"userId"`
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Age      json.RawMessage `json:"age,omitempty"`
	Gender   string          `json:"gender"`
}

// Listing is the password-free view served by the debug users listing.
type Listing struct {
	Profile
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		UserID:   u.UserID,
		FullName: u.FullName,
		Email:    u.Email,
		Age:      u.Age,
		Gender:   u.Gender,
	}
}

func (u User) Listing() Listing {
	return Listing{
		Profile:    u.Profile(),
		CreatedAt:  u.CreatedAt,
		LastActive: u.LastActive,
	}
}
