// internal/domain/user.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// User represents a user in the system (either a Coach or an Athlete).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	Sex          Sex                `bson:"sex,omitempty" json:"sex,omitempty"` // selects default prescribed loads
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Athlete-specific ---
	// Equipment the athlete has access to; empty means bodyweight-only.
	Equipment []Equipment `bson:"equipment,omitempty" json:"equipment,omitempty"`
	// Recorded physical limitations. The engine only reads the constraints
	// derived from the active ones.
	Impediments []Impediment `bson:"impediments,omitempty" json:"impediments,omitempty"`
}

// Helper methods (Optional but can be useful)
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// Inventory returns the athlete's equipment as a containment set.
func (u *User) Inventory() Inventory {
	return NewInventory(u.Equipment...)
}

// ActiveImpediments returns the impediments in effect at time t.
func (u *User) ActiveImpediments(t time.Time) []Impediment {
	var active []Impediment
	for _, imp := range u.Impediments {
		if imp.ActiveAt(t) {
			active = append(active, imp)
		}
	}
	return active
}
