package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (patient.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (patient.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return patient.Actor{}, err
	}

	role, err := patient.NewRole(claims.Role)
	if err != nil {
		return patient.Actor{}, err
	}

	return patient.NewActor(claims.UserID, claims.Email, role), nil
}
