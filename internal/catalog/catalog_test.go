package catalog

import (
	"testing"

	"alcyxob/wodadapt/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovement(id string) domain.Movement {
	return domain.Movement{
		ID:           id,
		Name:         id,
		Equipment:    []domain.Equipment{domain.EquipmentNone},
		MuscleGroups: []domain.MuscleGroup{domain.GroupSquat},
		Modality:     domain.ModalityGymnastics,
		Difficulty:   domain.TierBeginner,
		LoadType:     domain.LoadBodyweight,
	}
}

func Test_New_SeedIsValid(t *testing.T) {
	cat, err := New(Seed())
	require.NoError(t, err)
	assert.Equal(t, len(Seed()), cat.Len())
}

func Test_New_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		movements func() []domain.Movement
		wantErr   string
	}{
		{
			name: "empty id",
			movements: func() []domain.Movement {
				return []domain.Movement{validMovement("")}
			},
			wantErr: "empty id",
		},
		{
			name: "duplicate id",
			movements: func() []domain.Movement {
				return []domain.Movement{validMovement("a"), validMovement("a")}
			},
			wantErr: "duplicate movement id",
		},
		{
			name: "unknown difficulty",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.Difficulty = "expert"
				return []domain.Movement{m}
			},
			wantErr: "unknown difficulty",
		},
		{
			name: "unknown modality",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.Modality = "yoga"
				return []domain.Movement{m}
			},
			wantErr: "unknown modality",
		},
		{
			name: "unknown load type",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.LoadType = "vibes"
				return []domain.Movement{m}
			},
			wantErr: "unknown load type",
		},
		{
			name: "unknown tag",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.Tags = []string{"explosive"}
				return []domain.Movement{m}
			},
			wantErr: "unknown tag",
		},
		{
			name: "self substitution",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.Substitutions = []string{"a"}
				return []domain.Movement{m}
			},
			wantErr: "substitutes to itself",
		},
		{
			name: "dangling substitution",
			movements: func() []domain.Movement {
				m := validMovement("a")
				m.Substitutions = []string{"ghost"}
				return []domain.Movement{m}
			},
			wantErr: "does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.movements())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func Test_Get(t *testing.T) {
	cat, err := New(Seed())
	require.NoError(t, err)

	m, ok := cat.Get("back-squat")
	require.True(t, ok)
	assert.Equal(t, "Back Squat", m.Name)

	_, ok = cat.Get("no-such-movement")
	assert.False(t, ok)
}

func Test_All_PreservesLoadOrder(t *testing.T) {
	seed := Seed()
	cat, err := New(seed)
	require.NoError(t, err)

	all := cat.All()
	require.Len(t, all, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].ID, all[i].ID)
	}
}

func Test_Queries(t *testing.T) {
	cat, err := New(Seed())
	require.NoError(t, err)

	mono := cat.ByModality(domain.ModalityMonostructural)
	require.NotEmpty(t, mono)
	for _, m := range mono {
		assert.Equal(t, domain.ModalityMonostructural, m.Modality)
	}

	pulls := cat.ByMuscleGroup(domain.GroupPull)
	require.NotEmpty(t, pulls)
	for _, m := range pulls {
		assert.Contains(t, m.MuscleGroups, domain.GroupPull)
	}

	barbell := cat.ByEquipment(domain.EquipmentBarbell)
	require.NotEmpty(t, barbell)
	for _, m := range barbell {
		assert.Contains(t, m.Equipment, domain.EquipmentBarbell)
	}

	overhead := cat.ByTag(domain.TagOverhead)
	require.NotEmpty(t, overhead)
	for _, m := range overhead {
		assert.True(t, m.HasTag(domain.TagOverhead))
	}
}

func Test_Seed_ChainsAreEasiestFirst(t *testing.T) {
	cat, err := New(Seed())
	require.NoError(t, err)

	// Not a hard catalog invariant, but the seed is authored easiest-first
	// and the substitution walk depends on that curation.
	for _, m := range cat.All() {
		prev := -1
		for _, subID := range m.Substitutions {
			sub, ok := cat.Get(subID)
			require.True(t, ok)
			assert.GreaterOrEqual(t, sub.Difficulty.Index(), prev,
				"%s chain out of order at %s", m.ID, subID)
			prev = sub.Difficulty.Index()
		}
	}
}
