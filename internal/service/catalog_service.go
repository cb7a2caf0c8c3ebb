package service

import (
	"alcyxob/wodadapt/internal/catalog"
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"
	"alcyxob/wodadapt/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMovementNotFound      = errors.New("movement not found")
	ErrMovementAlreadyExists = errors.New("movement with this id already exists")
	ErrInvalidMovement       = errors.New("movement validation failed")
	ErrMovementReferenced    = errors.New("movement is referenced by other substitution chains")
	ErrNoMediaForMovement    = errors.New("movement has no demonstration media")
)

// --- Service Interface ---

// CatalogService owns the movement library: coach-side CRUD against Mongo,
// the immutable in-memory snapshot the engine reads, and the presigned-URL
// workflow for demonstration media. Every write rebuilds the snapshot, so
// readers always see a validated, self-consistent library.
type CatalogService interface {
	// Snapshot returns the current catalog snapshot. It never blocks on a
	// concurrent rebuild; callers get whichever snapshot was live when they
	// asked.
	Snapshot() *catalog.Catalog

	ListMovements(ctx context.Context) []domain.Movement
	GetMovement(ctx context.Context, id string) (*domain.Movement, error)
	CreateMovement(ctx context.Context, movement *domain.Movement) error
	UpdateMovement(ctx context.Context, movement *domain.Movement) error
	DeleteMovement(ctx context.Context, id string) error

	// InitiateMediaUpload returns a presigned PUT URL for a movement's demo
	// video and records the pending upload.
	InitiateMediaUpload(ctx context.Context, coachID primitive.ObjectID, movementID, fileName, contentType string) (uploadURL, objectKey string, err error)
	// MediaDownloadURL returns a presigned GET URL for a movement's demo video.
	MediaDownloadURL(ctx context.Context, movementID string) (string, error)
}

// --- Service Implementation ---

type catalogService struct {
	movementRepo repository.MovementRepository
	mediaRepo    repository.MediaRepository
	fileStorage  storage.FileStorage

	mu       sync.RWMutex
	snapshot *catalog.Catalog
}

// NewCatalogService loads the movement library, seeding it on first run,
// and builds the initial snapshot. It fails hard if the stored library does
// not validate: serving a broken catalog is worse than not starting.
func NewCatalogService(ctx context.Context, movementRepo repository.MovementRepository, mediaRepo repository.MediaRepository, fileStorage storage.FileStorage) (CatalogService, error) {
	s := &catalogService{
		movementRepo: movementRepo,
		mediaRepo:    mediaRepo,
		fileStorage:  fileStorage,
	}

	count, err := movementRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting movements: %w", err)
	}
	if count == 0 {
		seed := catalog.Seed()
		log.Printf("INFO: Movement collection is empty, seeding %d movements", len(seed))
		if err := movementRepo.InsertMany(ctx, seed); err != nil {
			return nil, fmt.Errorf("seeding movement catalog: %w", err)
		}
	}

	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// reload rebuilds the snapshot from the repository and swaps it in.
func (s *catalogService) reload(ctx context.Context) error {
	movements, err := s.movementRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading movement catalog: %w", err)
	}

	snap, err := catalog.New(movements)
	if err != nil {
		return fmt.Errorf("validating movement catalog: %w", err)
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	log.Printf("INFO: Movement catalog snapshot rebuilt (%d movements)", snap.Len())
	return nil
}

// Snapshot returns the live catalog snapshot.
func (s *catalogService) Snapshot() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// ListMovements returns every movement in stable catalog order.
func (s *catalogService) ListMovements(ctx context.Context) []domain.Movement {
	return s.Snapshot().All()
}

// GetMovement looks a single movement up in the snapshot.
func (s *catalogService) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	m, ok := s.Snapshot().Get(id)
	if !ok {
		return nil, ErrMovementNotFound
	}
	return m, nil
}

// CreateMovement persists a new movement and rebuilds the snapshot. The
// snapshot rebuild is also the validation gate: if the new movement breaks
// a vocabulary rule or a substitution chain, the write is rolled back.
func (s *catalogService) CreateMovement(ctx context.Context, movement *domain.Movement) error {
	if movement.ID == "" || movement.Name == "" {
		return ErrInvalidMovement
	}

	if err := s.validateAgainstSnapshot(movement, false); err != nil {
		return err
	}

	if err := s.movementRepo.Create(ctx, movement); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrMovementAlreadyExists
		}
		return err
	}

	if err := s.reload(ctx); err != nil {
		// Roll the write back so the store and the snapshot stay in step.
		if delErr := s.movementRepo.Delete(ctx, movement.ID); delErr != nil {
			log.Printf("ERROR: Failed to roll back movement '%s' after snapshot rebuild failure: %v", movement.ID, delErr)
		}
		return err
	}
	return nil
}

// UpdateMovement replaces a movement and rebuilds the snapshot.
func (s *catalogService) UpdateMovement(ctx context.Context, movement *domain.Movement) error {
	if movement.ID == "" {
		return ErrInvalidMovement
	}

	previous, ok := s.Snapshot().Get(movement.ID)
	if !ok {
		return ErrMovementNotFound
	}

	if err := s.validateAgainstSnapshot(movement, true); err != nil {
		return err
	}

	if err := s.movementRepo.Update(ctx, movement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovementNotFound
		}
		return err
	}

	if err := s.reload(ctx); err != nil {
		restored := *previous
		if updErr := s.movementRepo.Update(ctx, &restored); updErr != nil {
			log.Printf("ERROR: Failed to restore movement '%s' after snapshot rebuild failure: %v", movement.ID, updErr)
		}
		return err
	}
	return nil
}

// DeleteMovement removes a movement unless another movement's substitution
// chain still points at it.
func (s *catalogService) DeleteMovement(ctx context.Context, id string) error {
	snap := s.Snapshot()
	if _, ok := snap.Get(id); !ok {
		return ErrMovementNotFound
	}

	for _, m := range snap.All() {
		for _, subID := range m.Substitutions {
			if subID == id {
				return fmt.Errorf("%w: referenced by %q", ErrMovementReferenced, m.ID)
			}
		}
	}

	if err := s.movementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovementNotFound
		}
		return err
	}

	return s.reload(ctx)
}

// validateAgainstSnapshot runs the catalog validation pass over the current
// snapshot with the candidate movement applied, without touching the store.
func (s *catalogService) validateAgainstSnapshot(movement *domain.Movement, replace bool) error {
	existing := s.Snapshot().All()
	candidate := make([]domain.Movement, 0, len(existing)+1)
	for _, m := range existing {
		if replace && m.ID == movement.ID {
			continue
		}
		candidate = append(candidate, m)
	}
	candidate = append(candidate, *movement)

	if _, err := catalog.New(candidate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMovement, err)
	}
	return nil
}

// --- Demo Media ---

// InitiateMediaUpload generates a presigned PUT URL for a movement's demo
// video. The object key is server-generated so clients cannot collide with
// or overwrite each other's uploads.
func (s *catalogService) InitiateMediaUpload(ctx context.Context, coachID primitive.ObjectID, movementID, fileName, contentType string) (string, string, error) {
	if _, ok := s.Snapshot().Get(movementID); !ok {
		return "", "", ErrMovementNotFound
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("movements/%s/%s", movementID, uuid.NewString())

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", fmt.Errorf("generating upload URL: %w", err)
	}

	upload := &domain.MediaUpload{
		MovementID:  movementID,
		UploadedBy:  coachID,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.mediaRepo.Create(ctx, upload); err != nil {
		return "", "", fmt.Errorf("recording media upload: %w", err)
	}

	// Point the movement at its newest demo clip.
	m, _ := s.Snapshot().Get(movementID)
	updated := *m
	updated.MediaObjectKey = objectKey
	if err := s.movementRepo.Update(ctx, &updated); err != nil {
		log.Printf("ERROR: Failed to attach media key to movement '%s': %v", movementID, err)
		return "", "", err
	}
	if err := s.reload(ctx); err != nil {
		return "", "", err
	}

	return uploadURL, objectKey, nil
}

// MediaDownloadURL generates a presigned GET URL for a movement's demo video.
func (s *catalogService) MediaDownloadURL(ctx context.Context, movementID string) (string, error) {
	m, ok := s.Snapshot().Get(movementID)
	if !ok {
		return "", ErrMovementNotFound
	}
	if m.MediaObjectKey == "" {
		return "", ErrNoMediaForMovement
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, m.MediaObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("generating download URL: %w", err)
	}
	return url, nil
}
