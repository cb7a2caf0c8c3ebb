package repository

import (
	"alcyxob/wodadapt/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data
// (coaches and athletes, including the athlete's equipment inventory and
// impediment records embedded on the profile).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetEquipment(ctx context.Context, userID primitive.ObjectID, equipment []domain.Equipment) error
	AddImpediment(ctx context.Context, userID primitive.ObjectID, imp *domain.Impediment) (primitive.ObjectID, error)
	RemoveImpediment(ctx context.Context, userID, impedimentID primitive.ObjectID) error
}

// MovementRepository defines the interface for the persisted movement
// catalog. List must return movements in a stable order (creation order)
// because the in-memory snapshot inherits its iteration order from here.
type MovementRepository interface {
	List(ctx context.Context) ([]domain.Movement, error)
	GetByID(ctx context.Context, id string) (*domain.Movement, error)
	Create(ctx context.Context, movement *domain.Movement) error
	Update(ctx context.Context, movement *domain.Movement) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, movements []domain.Movement) error
}

// WorkoutRepository defines the interface for the benchmark workout library.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID, coachID primitive.ObjectID) error
}

// MediaRepository defines the interface for demo-media upload metadata.
type MediaRepository interface {
	Create(ctx context.Context, upload *domain.MediaUpload) (primitive.ObjectID, error)
	GetByMovementID(ctx context.Context, movementID string) (*domain.MediaUpload, error)
}
