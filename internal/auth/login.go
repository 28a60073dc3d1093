package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"mediexplain/internal/content"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

var (
	ErrMissingFields = errors.New("auth: email and password are required")
	ErrMissingName   = errors.New("auth: name is required to sign up")
)

// FormError is a rejected login form. Msg is the copy shown to the user.
type FormError struct {
	Msg string
	Err error
}

func (e *FormError) Error() string { return e.Err.Error() }
func (e *FormError) Unwrap() error { return e.Err }

// Credentials is the login/signup form. Passwords are only checked for
// presence and never stored.
type Credentials struct {
	Name     string `json:"name" example:"Asha"`
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"password123"`
}

func (c Credentials) Validate(signup bool) error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return &FormError{Msg: "Please fill in all fields.", Err: ErrMissingFields}
	}
	if signup && strings.TrimSpace(c.Name) == "" {
		return &FormError{Msg: "Please enter your name.", Err: ErrMissingName}
	}
	return nil
}

// User derives the session user: the given name, else the email's local part.
func (c Credentials) User() models.User {
	email := strings.TrimSpace(c.Email)
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = email
		if i := strings.Index(email, "@"); i >= 0 {
			name = email[:i]
		}
	}
	return models.User{Name: name, Email: email}
}

// Login validates the form, waits delay, and overwrites the session slot.
func Login(ctx context.Context, sessions *storage.SessionStore, creds Credentials, signup bool, delay time.Duration) (models.User, error) {
	if err := creds.Validate(signup); err != nil {
		return models.User{}, err
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		}
	}

	user := creds.User()
	if err := sessions.Save(ctx, user); err != nil {
		return models.User{}, err
	}
	log.Printf("Login(): session started for %s", user.Email)
	return user, nil
}

// DemoLogin stores the fixed demo account without any delay.
func DemoLogin(ctx context.Context, sessions *storage.SessionStore) (models.User, error) {
	user := content.DemoUser
	if err := sessions.Save(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
