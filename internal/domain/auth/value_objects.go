package auth

import (
	"errors"

	"clinic-booking/internal/domain/patient"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials is a login attempt. Only the password length rule is checked
// here; the account decides whether it may log in at all.
type Credentials struct {
	email    patient.Email
	password patient.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := patient.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	password, err := patient.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() patient.Email {
	return c.email
}

func (c Credentials) Password() patient.Password {
	return c.password
}
