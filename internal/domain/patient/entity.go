package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a person who can hold visits. The administrator is also stored
// as a patient with RoleAdmin so that blocks have an owner.
type Patient struct {
	id                uuid.UUID
	email             Email
	firstName         Name
	lastName          Name
	mobile            Mobile
	role              Role
	confirmed         bool
	passwordHash      string
	confirmationToken *uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

type Profile struct {
	FirstName Name
	LastName  Name
	Mobile    Mobile
}

// NewRegistered creates a self-registered patient waiting for email confirmation.
func NewRegistered(email Email, passwordHash string, profile Profile, now time.Time) *Patient {
	token := uuid.New()
	return &Patient{
		id:                uuid.New(),
		email:             email,
		firstName:         profile.FirstName,
		lastName:          profile.LastName,
		mobile:            profile.Mobile,
		role:              RolePatient,
		passwordHash:      passwordHash,
		confirmationToken: &token,
		createdAt:         now,
		updatedAt:         now,
	}
}

// NewWalkIn creates a confirmed patient registered by the administrator.
// Walk-in patients have no password and cannot log in.
func NewWalkIn(email Email, profile Profile, now time.Time) *Patient {
	return &Patient{
		id:        uuid.New(),
		email:     email,
		firstName: profile.FirstName,
		lastName:  profile.LastName,
		mobile:    profile.Mobile,
		role:      RolePatient,
		confirmed: true,
		createdAt: now,
		updatedAt: now,
	}
}

func NewAdministrator(email Email, passwordHash string, profile Profile, now time.Time) *Patient {
	return &Patient{
		id:           uuid.New(),
		email:        email,
		firstName:    profile.FirstName,
		lastName:     profile.LastName,
		mobile:       profile.Mobile,
		role:         RoleAdmin,
		confirmed:    true,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct rebuilds a patient from storage without validation.
func Reconstruct(
	id uuid.UUID,
	email Email,
	profile Profile,
	role Role,
	confirmed bool,
	passwordHash string,
	confirmationToken *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Patient {
	return &Patient{
		id:                id,
		email:             email,
		firstName:         profile.FirstName,
		lastName:          profile.LastName,
		mobile:            profile.Mobile,
		role:              role,
		confirmed:         confirmed,
		passwordHash:      passwordHash,
		confirmationToken: confirmationToken,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *Patient) ID() uuid.UUID                 { return p.id }
func (p *Patient) Email() Email                  { return p.email }
func (p *Patient) FirstName() Name               { return p.firstName }
func (p *Patient) LastName() Name                { return p.lastName }
func (p *Patient) Mobile() Mobile                { return p.mobile }
func (p *Patient) Role() Role                    { return p.role }
func (p *Patient) IsConfirmed() bool             { return p.confirmed }
func (p *Patient) PasswordHash() string          { return p.passwordHash }
func (p *Patient) ConfirmationToken() *uuid.UUID { return p.confirmationToken }
func (p *Patient) CreatedAt() time.Time          { return p.createdAt }
func (p *Patient) UpdatedAt() time.Time          { return p.updatedAt }
func (p *Patient) IsAdmin() bool                 { return p.role == RoleAdmin }
func (p *Patient) CanLogIn() bool                { return p.confirmed && p.passwordHash != "" }

func (p *Patient) Profile() Profile {
	return Profile{FirstName: p.firstName, LastName: p.lastName, Mobile: p.mobile}
}

func (p *Patient) Actor() Actor {
	return NewActor(p.id, p.email.Value(), p.role)
}

func (p *Patient) Confirm(now time.Time) {
	p.confirmed = true
	p.confirmationToken = nil
	p.updatedAt = now
}

// ProfilePatch updates only the fields that are set.
type ProfilePatch struct {
	FirstName *Name
	LastName  *Name
	Mobile    *Mobile
}

func (p *Patient) ApplyProfile(patch ProfilePatch, now time.Time) {
	if patch.FirstName != nil {
		p.firstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.lastName = *patch.LastName
	}
	if patch.Mobile != nil {
		p.mobile = *patch.Mobile
	}
	p.updatedAt = now
}
