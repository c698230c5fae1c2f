package response

import (
	"time"

	"clinic-booking/internal/domain/patient"

	"github.com/google/uuid"
)

type ActorResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Patient     ActorResponse `json:"patient"`
}

func FromActor(a patient.Actor) ActorResponse {
	return ActorResponse{ID: a.ID, Email: a.Email, Role: a.Role.String()}
}
