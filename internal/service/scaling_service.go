package service

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/engine"
	"alcyxob/wodadapt/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidTier     = errors.New("unknown scaling tier")
)

// AdaptedPrescription is one prescription after the athlete's constraints
// have been applied: the original movement, the replacement (nil when no
// allowed movement exists), and the reasons and warnings the engine emitted.
type AdaptedPrescription struct {
	Original    domain.Prescription `json:"original"`
	Replacement *domain.Movement    `json:"replacement,omitempty"`
	Reasons     []string            `json:"reasons,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
	LoadScale   float64             `json:"loadScale"`
}

// --- Service Interface ---

// ScalingService is the athlete-facing face of the adaptation engine. It
// resolves the athlete's inventory and active impediments, merges them into
// a single constraint, and runs checks, substitutions, and tier scaling
// against the current catalog snapshot.
type ScalingService interface {
	// CheckMovement evaluates one movement against the athlete's merged
	// constraint and equipment.
	CheckMovement(ctx context.Context, userID primitive.ObjectID, movementID string) (*engine.MovementCheck, error)

	// Substitute finds a replacement for one movement under the athlete's
	// merged constraint and equipment.
	Substitute(ctx context.Context, userID primitive.ObjectID, movementID string) (*engine.SubstitutionResult, error)

	// AdaptWorkout runs the substitution search across every prescription of
	// a stored workout.
	AdaptWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) ([]AdaptedPrescription, error)

	// ScaleWorkout rewrites a stored workout for one target tier, using the
	// athlete's equipment for movement fallbacks. Constraints do not apply
	// here; tier scaling answers "how much", not "is it safe".
	ScaleWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, tier domain.Tier) (*domain.ScaledWorkout, error)

	// ScaleWorkoutAllTiers produces the full five-tier card for a workout.
	ScaleWorkoutAllTiers(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.ScaledWorkout, error)
}

// --- Service Implementation ---

type scalingService struct {
	profiles    ProfileService
	catalogs    CatalogService
	workoutRepo repository.WorkoutRepository
}

// NewScalingService creates a new instance of scalingService.
func NewScalingService(profiles ProfileService, catalogs CatalogService, workoutRepo repository.WorkoutRepository) ScalingService {
	return &scalingService{
		profiles:    profiles,
		catalogs:    catalogs,
		workoutRepo: workoutRepo,
	}
}

// CheckMovement evaluates one movement for the athlete.
func (s *scalingService) CheckMovement(ctx context.Context, userID primitive.ObjectID, movementID string) (*engine.MovementCheck, error) {
	snap := s.catalogs.Snapshot()
	m, ok := snap.Get(movementID)
	if !ok {
		return nil, ErrMovementNotFound
	}

	inv, impediments, err := s.profiles.ActiveConstraintInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	check := engine.CheckMovement(m, engine.MergeConstraints(impediments), inv)
	return &check, nil
}

// Substitute finds a replacement for one movement for the athlete.
func (s *scalingService) Substitute(ctx context.Context, userID primitive.ObjectID, movementID string) (*engine.SubstitutionResult, error) {
	snap := s.catalogs.Snapshot()
	m, ok := snap.Get(movementID)
	if !ok {
		return nil, ErrMovementNotFound
	}

	inv, impediments, err := s.profiles.ActiveConstraintInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := engine.FindSubstitution(snap, m, engine.MergeConstraints(impediments), inv)
	return &result, nil
}

// AdaptWorkout applies the substitution search to every prescription of a
// stored workout. Prescriptions naming unknown movements pass through
// unchanged so one stale reference never sinks the whole workout.
func (s *scalingService) AdaptWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) ([]AdaptedPrescription, error) {
	workout, err := s.getWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	inv, impediments, err := s.profiles.ActiveConstraintInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := s.catalogs.Snapshot()
	constraint := engine.MergeConstraints(impediments)

	adapted := make([]AdaptedPrescription, 0, len(workout.Prescriptions))
	for _, p := range workout.Prescriptions {
		m, ok := snap.Get(p.MovementID)
		if !ok {
			adapted = append(adapted, AdaptedPrescription{Original: p, LoadScale: 1})
			continue
		}
		result := engine.FindSubstitution(snap, m, constraint, inv)
		adapted = append(adapted, AdaptedPrescription{
			Original:    p,
			Replacement: result.Replacement,
			Reasons:     result.Reasons,
			Warnings:    result.Warnings,
			LoadScale:   result.LoadScale,
		})
	}
	return adapted, nil
}

// ScaleWorkout rewrites a stored workout for one target tier.
func (s *scalingService) ScaleWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, tier domain.Tier) (*domain.ScaledWorkout, error) {
	if !tier.Valid() {
		return nil, ErrInvalidTier
	}

	workout, err := s.getWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	inv, err := s.inventoryFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	scaled := engine.ScaleWorkoutToTier(s.catalogs.Snapshot(), workout, tier, inv)
	return &scaled, nil
}

// ScaleWorkoutAllTiers produces one scaled rendition per tier, ascending.
func (s *scalingService) ScaleWorkoutAllTiers(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.ScaledWorkout, error) {
	workout, err := s.getWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	inv, err := s.inventoryFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.GenerateAllScalingTiers(s.catalogs.Snapshot(), workout, inv), nil
}

func (s *scalingService) getWorkout(ctx context.Context, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *scalingService) inventoryFor(ctx context.Context, userID primitive.ObjectID) (domain.Inventory, error) {
	inv, _, err := s.profiles.ActiveConstraintInputs(ctx, userID)
	return inv, err
}
