package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) add(user *domain.User) primitive.ObjectID {
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = user
	return id
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	return r.add(user), nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) SetEquipment(ctx context.Context, userID primitive.ObjectID, equipment []domain.Equipment) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Equipment = equipment
	return nil
}

func (r *fakeUserRepo) AddImpediment(ctx context.Context, userID primitive.ObjectID, imp *domain.Impediment) (primitive.ObjectID, error) {
	u, ok := r.users[userID]
	if !ok {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	imp.ID = primitive.NewObjectID()
	u.Impediments = append(u.Impediments, *imp)
	return imp.ID, nil
}

func (r *fakeUserRepo) RemoveImpediment(ctx context.Context, userID, impedimentID primitive.ObjectID) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, imp := range u.Impediments {
		if imp.ID == impedimentID {
			u.Impediments = append(u.Impediments[:i], u.Impediments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func Test_ProfileService_SetEquipment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := repo.add(&domain.User{Name: "a", Email: "a@example.com", Role: domain.RoleAthlete})
	svc := NewProfileService(repo)

	err := svc.SetEquipment(ctx, userID, []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack})
	require.NoError(t, err)

	user, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack}, user.Equipment)
}

func Test_ProfileService_SetEquipment_RejectsUnknownKind(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := repo.add(&domain.User{Name: "a", Email: "a@example.com", Role: domain.RoleAthlete})
	svc := NewProfileService(repo)

	err := svc.SetEquipment(ctx, userID, []domain.Equipment{"treadmill"})
	assert.ErrorIs(t, err, ErrInvalidEquipment)
}

func Test_ProfileService_AddImpediment_Validation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := repo.add(&domain.User{Name: "a", Email: "a@example.com", Role: domain.RoleAthlete})
	svc := NewProfileService(repo)

	tests := []struct {
		name    string
		imp     domain.Impediment
		wantErr error
	}{
		{
			name: "valid pregnancy",
			imp:  domain.Impediment{Category: domain.ImpedimentPregnancy, Severity: domain.SeverityModerate, Trimester: 2},
		},
		{
			name:    "pregnancy without trimester",
			imp:     domain.Impediment{Category: domain.ImpedimentPregnancy, Severity: domain.SeverityModerate},
			wantErr: ErrInvalidImpediment,
		},
		{
			name:    "injury without regions",
			imp:     domain.Impediment{Category: domain.ImpedimentAcuteInjury, Severity: domain.SeverityMild},
			wantErr: ErrInvalidImpediment,
		},
		{
			name:    "unknown category",
			imp:     domain.Impediment{Category: "bad_hair_day", Severity: domain.SeverityMild},
			wantErr: ErrInvalidImpediment,
		},
		{
			name: "unknown severity",
			imp: domain.Impediment{
				Category: domain.ImpedimentAcuteInjury,
				Severity: "catastrophic",
				Regions:  []domain.BodyRegion{domain.RegionKnee},
			},
			wantErr: ErrInvalidImpediment,
		},
		{
			name: "medical without regions is fine",
			imp:  domain.Impediment{Category: domain.ImpedimentMedical, Severity: domain.SeveritySevere},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.AddImpediment(ctx, userID, tt.imp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, created.ID.IsZero())
		})
	}
}

func Test_ProfileService_AddImpediment_RejectsInvertedWindow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := repo.add(&domain.User{Name: "a", Email: "a@example.com", Role: domain.RoleAthlete})
	svc := NewProfileService(repo)

	start := time.Now()
	end := start.AddDate(0, 0, -7)
	_, err := svc.AddImpediment(ctx, userID, domain.Impediment{
		Category:  domain.ImpedimentSoreness,
		Severity:  domain.SeverityMild,
		Regions:   []domain.BodyRegion{domain.RegionQuad},
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidImpediment)
}

func Test_ProfileService_ActiveConstraintInputs(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()

	past := time.Now().AddDate(0, -2, 0)
	ended := time.Now().AddDate(0, -1, 0)
	userID := repo.add(&domain.User{
		Name: "a", Email: "a@example.com", Role: domain.RoleAthlete,
		Equipment: []domain.Equipment{domain.EquipmentDumbbell},
		Impediments: []domain.Impediment{
			{ID: primitive.NewObjectID(), Category: domain.ImpedimentSoreness, Severity: domain.SeverityMild},
			{ID: primitive.NewObjectID(), Category: domain.ImpedimentAcuteInjury, Severity: domain.SeverityMild,
				Regions: []domain.BodyRegion{domain.RegionKnee}, StartDate: &past, EndDate: &ended},
		},
	})
	svc := NewProfileService(repo)

	inv, active, err := svc.ActiveConstraintInputs(ctx, userID)
	require.NoError(t, err)
	assert.True(t, inv.Has(domain.EquipmentDumbbell))
	assert.False(t, inv.Has(domain.EquipmentBarbell))
	// The expired injury is filtered out.
	require.Len(t, active, 1)
	assert.Equal(t, domain.ImpedimentSoreness, active[0].Category)
}

func Test_ProfileService_RemoveImpediment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := repo.add(&domain.User{Name: "a", Email: "a@example.com", Role: domain.RoleAthlete})
	svc := NewProfileService(repo)

	created, err := svc.AddImpediment(ctx, userID, domain.Impediment{
		Category: domain.ImpedimentSoreness,
		Severity: domain.SeverityMild,
		Regions:  []domain.BodyRegion{domain.RegionQuad},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveImpediment(ctx, userID, created.ID))
	err = svc.RemoveImpediment(ctx, userID, created.ID)
	assert.ErrorIs(t, err, ErrImpedimentNotFound)
}
