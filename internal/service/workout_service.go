package service

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutAlreadyExists = errors.New("workout with this slug already exists")
	ErrInvalidWorkout       = errors.New("workout validation failed")
	ErrNotWorkoutOwner      = errors.New("workout belongs to another coach")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// --- Service Interface ---

// WorkoutService manages the benchmark workout library. Workouts are
// authored by coaches at the Rx level; athletes only ever read them through
// the scaling service.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, coachID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, coachID primitive.ObjectID, workout *domain.Workout) error
	DeleteWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) error
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	catalogs    CatalogService
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, catalogs CatalogService) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo, catalogs: catalogs}
}

// CreateWorkout validates and stores a new benchmark workout.
func (s *workoutService) CreateWorkout(ctx context.Context, coachID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error) {
	if err := s.validateWorkout(workout); err != nil {
		return nil, err
	}

	workout.CoachID = coachID
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrWorkoutAlreadyExists
		}
		return nil, err
	}
	workout.ID = id
	return workout, nil
}

// GetWorkout retrieves one workout with its prescriptions resolved against
// the current catalog snapshot.
func (s *workoutService) GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	snap := s.catalogs.Snapshot()
	for i := range workout.Prescriptions {
		if m, ok := snap.Get(workout.Prescriptions[i].MovementID); ok {
			workout.Prescriptions[i].Movement = m
		}
	}
	return workout, nil
}

// ListWorkouts returns all stored workouts.
func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

// UpdateWorkout replaces a workout the coach owns.
func (s *workoutService) UpdateWorkout(ctx context.Context, coachID primitive.ObjectID, workout *domain.Workout) error {
	if err := s.validateWorkout(workout); err != nil {
		return err
	}

	existing, err := s.workoutRepo.GetByID(ctx, workout.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	if existing.CoachID != coachID {
		return ErrNotWorkoutOwner
	}

	workout.CoachID = existing.CoachID
	err = s.workoutRepo.Update(ctx, workout)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// DeleteWorkout removes a workout the coach owns.
func (s *workoutService) DeleteWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, workoutID, coachID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	if errors.Is(err, repository.ErrDeleteFailed) {
		return ErrNotWorkoutOwner
	}
	return err
}

// validateWorkout checks the shape of a workout and that every prescription
// names a movement in the current catalog.
func (s *workoutService) validateWorkout(workout *domain.Workout) error {
	if workout.Name == "" || len(workout.Prescriptions) == 0 {
		return ErrInvalidWorkout
	}
	if !slugPattern.MatchString(workout.Slug) {
		return ErrInvalidWorkout
	}

	snap := s.catalogs.Snapshot()
	for _, p := range workout.Prescriptions {
		if _, ok := snap.Get(p.MovementID); !ok {
			return ErrInvalidWorkout
		}
	}
	return nil
}
