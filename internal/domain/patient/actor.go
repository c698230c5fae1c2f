package patient

import "github.com/google/uuid"

// Capability is a permission granted to an actor by its role.
type Capability string

const (
	CanBookForOthers         Capability = "book_for_others"
	ExemptFromDuplicateGuard Capability = "exempt_from_duplicate_guard"
	CanCancelAny             Capability = "cancel_any"
	CanManagePatients        Capability = "manage_patients"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin:   {CanBookForOthers, ExemptFromDuplicateGuard, CanCancelAny, CanManagePatients},
	RolePatient: nil,
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func NewActor(id uuid.UUID, email string, role Role) Actor {
	return Actor{ID: id, Email: email, Role: role}
}

func (a Actor) Capabilities() []Capability {
	caps := roleCapabilities[a.Role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

func (a Actor) Can(c Capability) bool {
	for _, granted := range roleCapabilities[a.Role] {
		if granted == c {
			return true
		}
	}
	return false
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the patient identified by email.
func (a Actor) Owns(email string) bool {
	if a.Email == "" {
		return false
	}
	e, err := NewEmail(a.Email)
	if err != nil {
		return false
	}
	return e.Matches(email)
}
