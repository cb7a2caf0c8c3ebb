// internal/domain/workout.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription prescribes a single movement within a workout: which movement
// and how much of it. Only the fields that apply to the movement's load type
// are set; the rest stay zero.
type Prescription struct {
	MovementID string    `bson:"movementId" json:"movementId"`
	Movement   *Movement `bson:"-" json:"movement,omitempty"` // resolved view, never persisted

	Reps            int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Load            float64 `bson:"load,omitempty" json:"load,omitempty"` // lbs
	DistanceMeters  float64 `bson:"distanceMeters,omitempty" json:"distanceMeters,omitempty"`
	DurationSeconds int     `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
	Calories        int     `bson:"calories,omitempty" json:"calories,omitempty"`
	Notes           string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout is a named list of movement prescriptions, authored at the Rx
// benchmark level.
type Workout struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID       primitive.ObjectID `bson:"coachId" json:"coachId"`
	Slug          string             `bson:"slug" json:"slug"` // stable key, e.g. "fran"
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Prescriptions []Prescription     `bson:"prescriptions" json:"prescriptions"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ScaledPrescription is a prescription rewritten for a target tier, plus
// human-readable notes describing what changed ("kept", load delta, rep
// delta, substitution).
type ScaledPrescription struct {
	Prescription `json:",inline"`
	Changes      []string `json:"changes"`
}

// ScaledWorkout is the output of scaling a workout to one tier.
type ScaledWorkout struct {
	ID            string               `json:"id"`   // source slug suffixed with the tier
	Name          string               `json:"name"` // source name with a tier parenthetical
	Tier          Tier                 `json:"tier"`
	Prescriptions []ScaledPrescription `json:"prescriptions"`
}
