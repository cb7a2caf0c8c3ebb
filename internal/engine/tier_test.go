package engine

import (
	"testing"

	"alcyxob/wodadapt/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FactorsForTier(t *testing.T) {
	tests := []struct {
		tier domain.Tier
		load float64
		reps float64
	}{
		{domain.TierBeginner, 0.45, 0.60},
		{domain.TierIntermediate, 0.65, 0.80},
		{domain.TierAdvanced, 0.85, 1.00},
		{domain.TierRx, 1.00, 1.00},
		{domain.TierRxPlus, 1.10, 1.20},
		{domain.Tier("bogus"), 1.00, 1.00}, // degrades to Rx
	}

	for _, tt := range tests {
		load, reps := FactorsForTier(tt.tier)
		assert.Equal(t, tt.load, load, "load factor for %s", tt.tier)
		assert.Equal(t, tt.reps, reps, "reps factor for %s", tt.tier)
	}
}

func Test_FindTieredMovement_KeepsAtOrBelowTarget(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "back-squat") // beginner

	got := FindTieredMovement(cat, m, domain.TierBeginner, fullInventory())
	assert.Equal(t, "back-squat", got.ID)

	got = FindTieredMovement(cat, m, domain.TierRxPlus, fullInventory())
	assert.Equal(t, "back-squat", got.ID)
}

func Test_FindTieredMovement_ChainWalk(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "handstand-push-up") // advanced

	// At beginner, the chain [push-up, dumbbell-press, pike-push-up] yields
	// the push-up: first entry at or below the target that the inventory
	// supports.
	got := FindTieredMovement(cat, m, domain.TierBeginner, bodyweightOnly())
	assert.Equal(t, "push-up", got.ID)
}

func Test_FindTieredMovement_FallbackRespectsCeiling(t *testing.T) {
	cat := seedCatalog(t)
	m := mustGet(t, cat, "muscle-up") // rx, chain needs rings or a harder tier

	// Only a pull-up bar: ring-row is blocked by equipment, pull-up and
	// ring-dip sit above beginner. The catalog-wide fallback must stay at or
	// below the target tier.
	got := FindTieredMovement(cat, m, domain.TierBeginner, domain.NewInventory(domain.EquipmentPullUpBar))
	require.NotNil(t, got)
	assert.LessOrEqual(t, got.Difficulty.Index(), domain.TierBeginner.Index())
	assert.Equal(t, "knee-push-up", got.ID)
}

func Test_FindTieredMovement_NothingFits_KeepsOriginal(t *testing.T) {
	// A one-movement catalog: nothing shares a muscle group, so a tier
	// request on the too-hard movement returns it unchanged.
	cat := &catalogStub{movements: []domain.Movement{
		{
			ID:           "lonely-lift",
			Name:         "Lonely Lift",
			Equipment:    []domain.Equipment{domain.EquipmentSled},
			MuscleGroups: []domain.MuscleGroup{domain.GroupCarry},
			Modality:     domain.ModalityStrongman,
			Difficulty:   domain.TierRx,
			LoadType:     domain.LoadWeighted,
		},
	}}

	m, ok := cat.Get("lonely-lift")
	require.True(t, ok)

	got := FindTieredMovement(cat, m, domain.TierBeginner, bodyweightOnly())
	assert.Equal(t, "lonely-lift", got.ID)
}

type catalogStub struct {
	movements []domain.Movement
}

func (c *catalogStub) Get(id string) (*domain.Movement, bool) {
	for i := range c.movements {
		if c.movements[i].ID == id {
			return &c.movements[i], true
		}
	}
	return nil, false
}

func (c *catalogStub) All() []domain.Movement { return c.movements }

func Test_ScalePrescription_BeginnerLoadAndReps(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "back-squat", Reps: 10, Load: 225}
	scaled := ScalePrescription(cat, p, domain.TierBeginner, fullInventory())

	assert.Equal(t, "back-squat", scaled.MovementID) // beginner movement, no swap
	assert.Equal(t, 101.0, scaled.Load)              // round(225 × 0.45)
	assert.Equal(t, 6, scaled.Reps)                  // round(10 × 0.60)
	assert.Contains(t, scaled.Changes, "load 225 → 101")
	assert.Contains(t, scaled.Changes, "reps 10 → 6")
}

func Test_ScalePrescription_RxIsIdentity(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "back-squat", Reps: 10, Load: 225}
	scaled := ScalePrescription(cat, p, domain.TierRx, fullInventory())

	assert.Equal(t, 225.0, scaled.Load)
	assert.Equal(t, 10, scaled.Reps)
	assert.Equal(t, []string{"kept"}, scaled.Changes)
}

func Test_ScalePrescription_RepsNeverBelowOne(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "air-squat", Reps: 1}
	scaled := ScalePrescription(cat, p, domain.TierBeginner, bodyweightOnly())
	assert.Equal(t, 1, scaled.Reps)
}

func Test_ScalePrescription_DurationAndDistancePassThrough(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "plank", DurationSeconds: 60}
	scaled := ScalePrescription(cat, p, domain.TierBeginner, bodyweightOnly())
	assert.Equal(t, 60, scaled.DurationSeconds)
	assert.Equal(t, []string{"kept"}, scaled.Changes)

	p = domain.Prescription{MovementID: "run", DistanceMeters: 400}
	scaled = ScalePrescription(cat, p, domain.TierBeginner, bodyweightOnly())
	assert.Equal(t, 400.0, scaled.DistanceMeters)
}

func Test_ScalePrescription_UnknownMovementDegrades(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "does-not-exist", Reps: 21, Load: 95}
	scaled := ScalePrescription(cat, p, domain.TierBeginner, fullInventory())

	assert.Nil(t, scaled.Movement)
	assert.Equal(t, "does-not-exist", scaled.MovementID)
	assert.Equal(t, 95.0, scaled.Load) // untouched
	assert.Equal(t, 21, scaled.Reps)
	assert.Equal(t, []string{"kept"}, scaled.Changes)
}

func Test_ScalePrescription_SubstitutionNoted(t *testing.T) {
	cat := seedCatalog(t)

	p := domain.Prescription{MovementID: "handstand-push-up", Reps: 10}
	scaled := ScalePrescription(cat, p, domain.TierBeginner, bodyweightOnly())

	assert.Equal(t, "push-up", scaled.MovementID)
	assert.Contains(t, scaled.Changes, "Handstand Push-Up → Push-Up")
}

func Test_ScaleWorkoutToTier_Naming(t *testing.T) {
	cat := seedCatalog(t)
	w := &domain.Workout{
		Slug: "fran",
		Name: "Fran",
		Prescriptions: []domain.Prescription{
			{MovementID: "thruster", Reps: 21, Load: 95},
			{MovementID: "pull-up", Reps: 21},
		},
	}

	scaled := ScaleWorkoutToTier(cat, w, domain.TierBeginner, fullInventory())
	assert.Equal(t, "fran-beginner", scaled.ID)
	assert.Equal(t, "Fran (Beginner)", scaled.Name)
	assert.Equal(t, domain.TierBeginner, scaled.Tier)
	require.Len(t, scaled.Prescriptions, 2)

	rxPlus := ScaleWorkoutToTier(cat, w, domain.TierRxPlus, fullInventory())
	assert.Equal(t, "fran-rx_plus", rxPlus.ID)
	assert.Equal(t, "Fran (Rx+)", rxPlus.Name)
}

func Test_GenerateAllScalingTiers_AscendingAndMonotonic(t *testing.T) {
	cat := seedCatalog(t)
	w := &domain.Workout{
		Slug:          "heavy-day",
		Name:          "Heavy Day",
		Prescriptions: []domain.Prescription{{MovementID: "deadlift", Reps: 5, Load: 225}},
	}

	tiers := GenerateAllScalingTiers(cat, w, fullInventory())
	require.Len(t, tiers, 5)

	for i, tier := range domain.AllTiers {
		assert.Equal(t, tier, tiers[i].Tier)
	}

	// Loads never decrease as the tier rises.
	prev := 0.0
	for _, sw := range tiers {
		require.Len(t, sw.Prescriptions, 1)
		load := sw.Prescriptions[0].Load
		assert.GreaterOrEqual(t, load, prev, "tier %s", sw.Tier)
		prev = load
	}

	// Rx reproduces the prescription exactly.
	assert.Equal(t, 225.0, tiers[3].Prescriptions[0].Load)
	assert.Equal(t, 5, tiers[3].Prescriptions[0].Reps)
}
