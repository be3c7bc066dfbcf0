package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

type RegisterInput struct {
	FullName string
	Email    string
	Age      json.RawMessage
	Gender   string
	Password string
}

type LoginResult struct {
	User  User
	Token string
}

// Directory implements registration and login on top of a Store.
type Directory struct {
	store Store
	now   func() time.Time
}

func NewDirectory(store Store) *Directory {
	return &Directory{store: store, now: time.Now}
}

// Register creates a user unless the email is already taken. Ids derive from
// the creation time in milliseconds.
func (d *Directory) Register(ctx context.Context, in RegisterInput) (User, error) {
	now := d.now().UTC()
	millis := now.UnixMilli()
	user := User{
		ID:         "user_" + strconv.FormatInt(millis, 10),
		UserID:     millis,
		FullName:   in.FullName,
		Email:      in.Email,
		Age:        in.Age,
		Gender:     in.Gender,
		Password:   in.Password,
		CreatedAt:  now,
		LastActive: now,
	}
	if err := d.store.Add(ctx, user); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, ErrAlreadyExists
		}
		return User{}, fmt.Errorf("add user: %w", err)
	}
	return user, nil
}

// Login checks the plaintext password and bumps LastActive.
func (d *Directory) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, ErrMissingCredentials
	}
	user, err := d.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, ErrNotFound
		}
		return LoginResult{}, fmt.Errorf("find user: %w", err)
	}
	if user.Password != password {
		return LoginResult{}, ErrInvalidPassword
	}

	now := d.now().UTC()
	if now.After(user.LastActive) {
		user.LastActive = now
	}
	if err := d.store.Update(ctx, user); err != nil {
		return LoginResult{}, fmt.Errorf("update last active: %w", err)
	}
	return LoginResult{
		User:  user,
		Token: TokenPrefix + strconv.FormatInt(user.UserID, 10),
	}, nil
}

func (d *Directory) List(ctx context.Context) ([]Listing, error) {
	all, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]Listing, 0, len(all))
	for _, u := range all {
		out = append(out, u.Listing())
	}
	return out, nil
}
