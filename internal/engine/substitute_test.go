package engine

import (
	"testing"

	"alcyxob/wodadapt/internal/catalog"
	"alcyxob/wodadapt/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)
	return cat
}

func mustGet(t *testing.T, cat *catalog.Catalog, id string) *domain.Movement {
	t.Helper()
	m, ok := cat.Get(id)
	require.True(t, ok, "movement %q missing from seed catalog", id)
	return m
}

func Test_FindSubstitution_OriginalAllowed(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat")

	result := FindSubstitution(cat, m, nil, fullInventory())

	require.NotNil(t, result.Replacement)
	assert.Equal(t, "back-squat", result.Replacement.ID)
	assert.Empty(t, result.Reasons)
	assert.Equal(t, 1.0, result.LoadScale)
}

func Test_FindSubstitution_ChainFirstPassWins(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat")

	// No barbell: the chain is [air-squat, goblet-squat] and air squat needs
	// nothing, so it wins regardless of what else the athlete owns.
	result := FindSubstitution(cat, m, nil, domain.NewInventory(domain.EquipmentDumbbell))

	require.NotNil(t, result.Replacement)
	assert.Equal(t, "air-squat", result.Replacement.ID)
	assert.Contains(t, result.Reasons, "Missing equipment: barbell")
	assert.Contains(t, result.Warnings, "Substituted Air Squat for Back Squat")
	assert.Equal(t, 1.0, result.LoadScale)
}

func Test_FindSubstitution_Idempotent(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat")
	inv := bodyweightOnly()

	first := FindSubstitution(cat, m, nil, inv)
	require.NotNil(t, first.Replacement)

	// Substituting the replacement again is a no-op.
	second := FindSubstitution(cat, first.Replacement, nil, inv)
	require.NotNil(t, second.Replacement)
	assert.Equal(t, first.Replacement.ID, second.Replacement.ID)
	assert.Empty(t, second.Reasons)
}

func Test_FindSubstitution_ConstraintBlocksChainEntry(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat")

	// Trimester 3 blocks axial loading, so the back squat itself is out; the
	// air squat at the head of the chain carries no tags and passes.
	c := MergeConstraints([]domain.Impediment{{Category: domain.ImpedimentPregnancy, Trimester: 3}})
	result := FindSubstitution(cat, m, c, fullInventory())

	require.NotNil(t, result.Replacement)
	assert.Equal(t, "air-squat", result.Replacement.ID)
	assert.Contains(t, result.Reasons, "Heavy axial loading restricted")
}

func Test_FindSubstitution_FallbackByMuscleGroup(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "farmers-carry")

	// Farmers carry has no authored chain. Without a kettlebell the fallback
	// searches the catalog for carry/core work and lands on the plank (first
	// highest-scoring bodyweight core movement in catalog order).
	inv := bodyweightOnly()
	result := FindSubstitution(cat, m, nil, inv)

	require.NotNil(t, result.Replacement)
	assert.Equal(t, "plank", result.Replacement.ID)
	assert.Contains(t, result.Warnings, "No authored substitution available; Plank Hold selected by muscle-group match")
	assert.Contains(t, result.Reasons, "Missing equipment: kettlebell")
}

func Test_FindSubstitution_FallbackDeterministic(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "farmers-carry")
	inv := bodyweightOnly()

	first := FindSubstitution(cat, m, nil, inv)
	require.NotNil(t, first.Replacement)
	for i := 0; i < 10; i++ {
		again := FindSubstitution(cat, m, nil, inv)
		require.NotNil(t, again.Replacement)
		assert.Equal(t, first.Replacement.ID, again.Replacement.ID)
	}
}

func Test_FindSubstitution_NoSafeAlternative(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "handstand-push-up")

	// A severe shoulder injury avoids the whole pressing musculature; with a
	// bodyweight-only inventory every push movement in the catalog is blocked
	// by region or missing equipment, so the search exhausts.
	c := MergeConstraints([]domain.Impediment{{
		Category: domain.ImpedimentAcuteInjury,
		Severity: domain.SeveritySevere,
		Regions:  []domain.BodyRegion{domain.RegionShoulder, domain.RegionChest, domain.RegionTriceps},
	}})
	result := FindSubstitution(cat, m, c, bodyweightOnly())

	assert.Nil(t, result.Replacement)
	assert.NotEmpty(t, result.Reasons)
	assert.Equal(t, 0.0, result.LoadScale)
}

func Test_FindSubstitution_ReplacementCarriesLoadCap(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat")

	// Moderate chronic knee trouble: cap 70, knee avoided, high impact cut.
	// The back squat itself passes the region gates (knee is not among its
	// regions) but it is capped; the result's load scale reflects the cap.
	c := MergeConstraints([]domain.Impediment{{
		Category: domain.ImpedimentChronic,
		Severity: domain.SeverityModerate,
		Regions:  []domain.BodyRegion{domain.RegionKnee},
	}})
	result := FindSubstitution(cat, m, c, fullInventory())

	require.NotNil(t, result.Replacement)
	assert.Equal(t, "back-squat", result.Replacement.ID)
	assert.InDelta(t, 0.7, result.LoadScale, 1e-9)
}

func Test_ScaleWorkoutMovements(t *testing.T) {
	cat := seedCatalog(t)
	movements := []domain.Movement{
		*mustGet(t, cat, "air-squat"),
		*mustGet(t, cat, "back-squat"),
	}

	results := ScaleWorkoutMovements(cat, movements, nil, bodyweightOnly())
	require.Len(t, results, 2)
	assert.Equal(t, "air-squat", results[0].Replacement.ID)
	assert.Equal(t, "air-squat", results[1].Replacement.ID) // chain head
}
