package service

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrImpedimentNotFound = errors.New("impediment not found")
	ErrInvalidImpediment  = errors.New("impediment validation failed")
	ErrInvalidEquipment   = errors.New("unknown equipment kind")
)

// knownEquipment is the closed set of inventory kinds the API accepts.
var knownEquipment = map[domain.Equipment]bool{
	domain.EquipmentNone:       true,
	domain.EquipmentBarbell:    true,
	domain.EquipmentDumbbell:   true,
	domain.EquipmentKettlebell: true,
	domain.EquipmentPullUpBar:  true,
	domain.EquipmentRings:      true,
	domain.EquipmentJumpRope:   true,
	domain.EquipmentBox:        true,
	domain.EquipmentBench:      true,
	domain.EquipmentRack:       true,
	domain.EquipmentWall:       true,
	domain.EquipmentMedBall:    true,
	domain.EquipmentRower:      true,
	domain.EquipmentBike:       true,
	domain.EquipmentSled:       true,
}

// --- Service Interface ---

// ProfileService manages the athlete-facing profile: equipment inventory
// and impediment records. The engine reads both but owns neither.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	SetEquipment(ctx context.Context, userID primitive.ObjectID, equipment []domain.Equipment) error
	AddImpediment(ctx context.Context, userID primitive.ObjectID, imp domain.Impediment) (*domain.Impediment, error)
	RemoveImpediment(ctx context.Context, userID, impedimentID primitive.ObjectID) error
	// ActiveConstraintInputs returns the athlete's inventory and the
	// impediments in effect right now, the two inputs every engine call
	// needs.
	ActiveConstraintInputs(ctx context.Context, userID primitive.ObjectID) (domain.Inventory, []domain.Impediment, error)
}

// --- Service Implementation ---

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// GetProfile retrieves the full user profile.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// SetEquipment replaces the athlete's equipment inventory.
func (s *profileService) SetEquipment(ctx context.Context, userID primitive.ObjectID, equipment []domain.Equipment) error {
	for _, kind := range equipment {
		if !knownEquipment[kind] {
			return ErrInvalidEquipment
		}
	}

	err := s.userRepo.SetEquipment(ctx, userID, equipment)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// AddImpediment validates and records a new impediment on the profile.
func (s *profileService) AddImpediment(ctx context.Context, userID primitive.ObjectID, imp domain.Impediment) (*domain.Impediment, error) {
	if err := validateImpediment(&imp); err != nil {
		return nil, err
	}

	id, err := s.userRepo.AddImpediment(ctx, userID, &imp)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	imp.ID = id
	return &imp, nil
}

// RemoveImpediment deletes an impediment record from the profile.
func (s *profileService) RemoveImpediment(ctx context.Context, userID, impedimentID primitive.ObjectID) error {
	err := s.userRepo.RemoveImpediment(ctx, userID, impedimentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrImpedimentNotFound
	}
	return err
}

// ActiveConstraintInputs loads the athlete's inventory and currently active
// impediments.
func (s *profileService) ActiveConstraintInputs(ctx context.Context, userID primitive.ObjectID) (domain.Inventory, []domain.Impediment, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return user.Inventory(), user.ActiveImpediments(time.Now().UTC()), nil
}

func validateImpediment(imp *domain.Impediment) error {
	switch imp.Category {
	case domain.ImpedimentPregnancy:
		if imp.Trimester < 1 || imp.Trimester > 3 {
			return ErrInvalidImpediment
		}
	case domain.ImpedimentPostpartum:
		if imp.WeeksPostpartum < 0 {
			return ErrInvalidImpediment
		}
	case domain.ImpedimentAcuteInjury, domain.ImpedimentChronic, domain.ImpedimentRehab,
		domain.ImpedimentMobility, domain.ImpedimentMedical, domain.ImpedimentSoreness:
		// Region-based categories need at least one region to mean anything.
		if len(imp.Regions) == 0 && imp.Category != domain.ImpedimentMedical {
			return ErrInvalidImpediment
		}
	default:
		return ErrInvalidImpediment
	}

	switch imp.Severity {
	case domain.SeverityMild, domain.SeverityModerate, domain.SeveritySevere:
	default:
		return ErrInvalidImpediment
	}

	if imp.StartDate != nil && imp.EndDate != nil && imp.EndDate.Before(*imp.StartDate) {
		return ErrInvalidImpediment
	}

	return nil
}
