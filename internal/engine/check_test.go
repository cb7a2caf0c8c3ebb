package engine

import (
	"testing"

	"alcyxob/wodadapt/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullInventory() domain.Inventory {
	return domain.NewInventory(
		domain.EquipmentBarbell, domain.EquipmentDumbbell, domain.EquipmentKettlebell,
		domain.EquipmentPullUpBar, domain.EquipmentRings, domain.EquipmentJumpRope,
		domain.EquipmentBox, domain.EquipmentBench, domain.EquipmentRack,
		domain.EquipmentWall, domain.EquipmentMedBall, domain.EquipmentRower,
		domain.EquipmentBike, domain.EquipmentSled,
	)
}

func bodyweightOnly() domain.Inventory {
	return domain.NewInventory()
}

func backSquat() *domain.Movement {
	return &domain.Movement{
		ID:               "back-squat",
		Name:             "Back Squat",
		Equipment:        []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack},
		PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
		SecondaryRegions: []domain.BodyRegion{domain.RegionLowerBack, domain.RegionCore},
		MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
		Modality:         domain.ModalityWeightlifting,
		Difficulty:       domain.TierBeginner,
		Tags:             []string{domain.TagAxialLoad},
		LoadType:         domain.LoadWeighted,
	}
}

func Test_CheckMovement_EquipmentGate(t *testing.T) {
	check := CheckMovement(backSquat(), nil, bodyweightOnly())

	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reasons, "Missing equipment: barbell")
	assert.Contains(t, check.Reasons, "Missing equipment: rack")
	assert.Empty(t, check.Warnings)
}

func Test_CheckMovement_EquipmentGate_AppliesWithoutConstraint(t *testing.T) {
	// A nil constraint means unrestricted, but the equipment gate still runs.
	airSquat := &domain.Movement{
		ID:        "air-squat",
		Equipment: []domain.Equipment{domain.EquipmentNone},
		LoadType:  domain.LoadBodyweight,
	}

	assert.True(t, CheckMovement(airSquat, nil, bodyweightOnly()).Allowed)
	assert.False(t, CheckMovement(backSquat(), nil, bodyweightOnly()).Allowed)
}

func Test_CheckMovement_RegionGate(t *testing.T) {
	c := &domain.Constraint{
		AvoidRegions:    []domain.BodyRegion{domain.RegionLowerBack},
		AllowHighImpact: true, AllowOverhead: true, AllowInversion: true,
		AllowProne: true, AllowKipping: true, AllowAxialLoad: true,
	}

	// Lower back is only a secondary region of the back squat: warn, don't block.
	check := CheckMovement(backSquat(), c, fullInventory())
	assert.True(t, check.Allowed)
	assert.Contains(t, check.Warnings, "Secondary stress on restricted region: lower_back")

	// Make it a primary hit: block.
	c.AvoidRegions = []domain.BodyRegion{domain.RegionQuad}
	check = CheckMovement(backSquat(), c, fullInventory())
	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reasons, "Stresses restricted region: quad")
}

func Test_CheckMovement_TagGate(t *testing.T) {
	c := &domain.Constraint{
		AvoidTags:       []string{domain.TagBallistic},
		AllowHighImpact: true, AllowOverhead: true, AllowInversion: true,
		AllowProne: true, AllowKipping: true, AllowAxialLoad: true,
	}

	boxJump := &domain.Movement{
		ID:       "box-jump",
		Tags:     []string{domain.TagHighImpact, domain.TagBallistic},
		LoadType: domain.LoadBodyweight,
	}

	check := CheckMovement(boxJump, c, fullInventory())
	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reasons, "Movement tag restricted: ballistic")
}

func Test_CheckMovement_NamedPropertyGates(t *testing.T) {
	tests := []struct {
		name   string
		deny   func(c *domain.Constraint)
		tag    string
		reason string
	}{
		{"high impact", func(c *domain.Constraint) { c.AllowHighImpact = false }, domain.TagHighImpact, "High-impact movements restricted"},
		{"overhead", func(c *domain.Constraint) { c.AllowOverhead = false }, domain.TagOverhead, "Overhead movements restricted"},
		{"inversion", func(c *domain.Constraint) { c.AllowInversion = false }, domain.TagInverted, "Inverted movements restricted"},
		{"prone", func(c *domain.Constraint) { c.AllowProne = false }, domain.TagProne, "Prone positioning restricted"},
		{"kipping", func(c *domain.Constraint) { c.AllowKipping = false }, domain.TagKipping, "Kipping movements restricted"},
		{"axial load", func(c *domain.Constraint) { c.AllowAxialLoad = false }, domain.TagAxialLoad, "Heavy axial loading restricted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &domain.Constraint{
				AllowHighImpact: true, AllowOverhead: true, AllowInversion: true,
				AllowProne: true, AllowKipping: true, AllowAxialLoad: true,
			}
			tt.deny(c)

			m := &domain.Movement{ID: "m", Tags: []string{tt.tag}, LoadType: domain.LoadBodyweight}
			check := CheckMovement(m, c, fullInventory())
			assert.False(t, check.Allowed)
			assert.Contains(t, check.Reasons, tt.reason)

			// The same movement without the tag passes.
			m.Tags = nil
			assert.True(t, CheckMovement(m, c, fullInventory()).Allowed)
		})
	}
}

func Test_CheckMovement_PregnancyTrimester3_BlocksOverheadBarbell(t *testing.T) {
	imp := domain.Impediment{Category: domain.ImpedimentPregnancy, Trimester: 3}
	c := MergeConstraints([]domain.Impediment{imp})
	require.NotNil(t, c)

	strictPress := &domain.Movement{
		ID:             "strict-press",
		Name:           "Strict Press",
		Equipment:      []domain.Equipment{domain.EquipmentBarbell},
		PrimaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
		Tags:           []string{domain.TagOverhead},
		LoadType:       domain.LoadWeighted,
	}

	check := CheckMovement(strictPress, c, fullInventory())
	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reasons, "Overhead movements restricted")
}

func Test_CheckMovement_LoadCap(t *testing.T) {
	cap70 := 70.0
	c := &domain.Constraint{
		MaxLoadPercent:  &cap70,
		AllowHighImpact: true, AllowOverhead: true, AllowInversion: true,
		AllowProne: true, AllowKipping: true, AllowAxialLoad: true,
	}

	check := CheckMovement(backSquat(), c, fullInventory())
	assert.True(t, check.Allowed)
	require.NotNil(t, check.MaxLoadPercent)
	assert.Equal(t, 70.0, *check.MaxLoadPercent)
	assert.Contains(t, check.Warnings, "Load capped at 70% of prescription")
	assert.InDelta(t, 0.7, check.LoadScale(), 1e-9)

	// The cap is irrelevant to bodyweight movements.
	airSquat := &domain.Movement{ID: "air-squat", LoadType: domain.LoadBodyweight}
	check = CheckMovement(airSquat, c, fullInventory())
	assert.True(t, check.Allowed)
	assert.Nil(t, check.MaxLoadPercent)
	assert.Equal(t, 1.0, check.LoadScale())
}

func Test_CheckMovement_ZeroCapBlocksAllWeighted(t *testing.T) {
	zero := 0.0
	c := &domain.Constraint{
		MaxLoadPercent:  &zero,
		AllowHighImpact: true, AllowOverhead: true, AllowInversion: true,
		AllowProne: true, AllowKipping: true, AllowAxialLoad: true,
	}

	check := CheckMovement(backSquat(), c, fullInventory())
	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reasons, "All weighted loading restricted")

	// Bodyweight movements are unaffected by a zero cap.
	airSquat := &domain.Movement{ID: "air-squat", LoadType: domain.LoadBodyweight}
	assert.True(t, CheckMovement(airSquat, c, fullInventory()).Allowed)
}

func Test_MergeConstraints_Empty(t *testing.T) {
	assert.Nil(t, MergeConstraints(nil))
	assert.Nil(t, MergeConstraints([]domain.Impediment{}))
}

func Test_MergeConstraints_MostRestrictiveWins(t *testing.T) {
	pregnancy := domain.Impediment{Category: domain.ImpedimentPregnancy, Trimester: 2}
	injury := domain.Impediment{
		Category: domain.ImpedimentAcuteInjury,
		Severity: domain.SeverityMild,
		Regions:  []domain.BodyRegion{domain.RegionWrist},
	}

	merged := MergeConstraints([]domain.Impediment{pregnancy, injury})
	require.NotNil(t, merged)

	// Cap 70 (pregnancy T2) beats cap 80 (mild injury).
	require.NotNil(t, merged.MaxLoadPercent)
	assert.Equal(t, 70.0, *merged.MaxLoadPercent)

	// Permission cuts from either side survive the merge.
	assert.False(t, merged.AllowHighImpact) // pregnancy T2
	assert.False(t, merged.AllowInversion)  // pregnancy T1 baseline
	assert.True(t, merged.AllowOverhead)    // neither denies it

	// Avoid regions union.
	assert.True(t, merged.AvoidsRegion(domain.RegionWrist))
}

func Test_MergeConstraints_OrderIndependent(t *testing.T) {
	impediments := []domain.Impediment{
		{Category: domain.ImpedimentPregnancy, Trimester: 2},
		{Category: domain.ImpedimentAcuteInjury, Severity: domain.SeverityModerate, Regions: []domain.BodyRegion{domain.RegionKnee}},
		{Category: domain.ImpedimentSoreness, Severity: domain.SeverityMild},
	}
	reversed := []domain.Impediment{impediments[2], impediments[1], impediments[0]}

	a := MergeConstraints(impediments)
	b := MergeConstraints(reversed)
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, *a.MaxLoadPercent, *b.MaxLoadPercent)
	assert.Equal(t, a.AllowHighImpact, b.AllowHighImpact)
	assert.Equal(t, a.AllowOverhead, b.AllowOverhead)
	assert.Equal(t, a.AllowInversion, b.AllowInversion)
	assert.Equal(t, a.AllowProne, b.AllowProne)
	assert.Equal(t, a.AllowKipping, b.AllowKipping)
	assert.Equal(t, a.AllowAxialLoad, b.AllowAxialLoad)
	assert.ElementsMatch(t, a.AvoidRegions, b.AvoidRegions)
	assert.ElementsMatch(t, a.AvoidTags, b.AvoidTags)
}

func Test_MergeConstraints_AddingImpedimentNeverRelaxes(t *testing.T) {
	base := []domain.Impediment{
		{Category: domain.ImpedimentAcuteInjury, Severity: domain.SeverityMild, Regions: []domain.BodyRegion{domain.RegionShoulder}},
	}
	extended := append(append([]domain.Impediment{}, base...), domain.Impediment{
		Category: domain.ImpedimentPregnancy, Trimester: 3,
	})

	a := MergeConstraints(base)
	b := MergeConstraints(extended)
	require.NotNil(t, a)
	require.NotNil(t, b)

	// Every region avoided before is still avoided.
	for _, r := range a.AvoidRegions {
		assert.True(t, b.AvoidsRegion(r))
	}
	// The cap only moves down.
	require.NotNil(t, a.MaxLoadPercent)
	require.NotNil(t, b.MaxLoadPercent)
	assert.LessOrEqual(t, *b.MaxLoadPercent, *a.MaxLoadPercent)
	// Permissions only flip toward false.
	if !a.AllowOverhead {
		assert.False(t, b.AllowOverhead)
	}
}

func Test_FilterAllowedMovements(t *testing.T) {
	movements := []domain.Movement{
		{ID: "a", Equipment: []domain.Equipment{domain.EquipmentNone}, LoadType: domain.LoadBodyweight},
		{ID: "b", Equipment: []domain.Equipment{domain.EquipmentBarbell}, LoadType: domain.LoadWeighted},
		{ID: "c", Equipment: []domain.Equipment{domain.EquipmentNone}, LoadType: domain.LoadBodyweight},
	}

	allowed := FilterAllowedMovements(movements, nil, bodyweightOnly())
	require.Len(t, allowed, 2)
	assert.Equal(t, "a", allowed[0].ID)
	assert.Equal(t, "c", allowed[1].ID)
}
