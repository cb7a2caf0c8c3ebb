package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Impediment_ActiveAt(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  bool
	}{
		{"no window", nil, nil, true},
		{"inside window", &yesterday, &tomorrow, true},
		{"before start", &tomorrow, nil, false},
		{"after end", nil, &yesterday, false},
		{"open start", nil, &tomorrow, true},
		{"open end", &yesterday, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := Impediment{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, imp.ActiveAt(now))
		})
	}
}

func Test_Impediment_PregnancyPresets(t *testing.T) {
	t1 := Impediment{Category: ImpedimentPregnancy, Trimester: 1}
	c := t1.Constraint()
	assert.False(t, c.AllowInversion)
	assert.False(t, c.AllowKipping)
	assert.True(t, c.AllowHighImpact)
	assert.True(t, c.AllowProne)
	require.NotNil(t, c.MaxLoadPercent)
	assert.Equal(t, 85.0, *c.MaxLoadPercent)

	t2 := Impediment{Category: ImpedimentPregnancy, Trimester: 2}
	c = t2.Constraint()
	assert.False(t, c.AllowProne)
	assert.False(t, c.AllowHighImpact)
	assert.True(t, c.AllowOverhead)
	assert.Equal(t, 70.0, *c.MaxLoadPercent)

	t3 := Impediment{Category: ImpedimentPregnancy, Trimester: 3}
	c = t3.Constraint()
	assert.False(t, c.AllowOverhead)
	assert.False(t, c.AllowAxialLoad)
	assert.True(t, c.AvoidsRegion(RegionCore))
	assert.Equal(t, 60.0, *c.MaxLoadPercent)
}

func Test_Impediment_PregnancyTrimesterClamped(t *testing.T) {
	// Out-of-range trimesters clamp instead of skipping the preset.
	zero := Impediment{Category: ImpedimentPregnancy, Trimester: 0}
	assert.Equal(t, 85.0, *zero.Constraint().MaxLoadPercent)

	high := Impediment{Category: ImpedimentPregnancy, Trimester: 7}
	assert.Equal(t, 60.0, *high.Constraint().MaxLoadPercent)
}

func Test_Impediment_PostpartumPresets(t *testing.T) {
	early := Impediment{Category: ImpedimentPostpartum, WeeksPostpartum: 4}
	c := early.Constraint()
	assert.False(t, c.AllowHighImpact)
	assert.False(t, c.AllowAxialLoad)
	assert.True(t, c.AvoidsRegion(RegionCore))
	assert.Equal(t, 50.0, *c.MaxLoadPercent)

	mid := Impediment{Category: ImpedimentPostpartum, WeeksPostpartum: 8}
	c = mid.Constraint()
	assert.False(t, c.AllowHighImpact)
	assert.True(t, c.AllowAxialLoad)
	assert.False(t, c.AvoidsRegion(RegionCore))
	assert.Equal(t, 70.0, *c.MaxLoadPercent)

	late := Impediment{Category: ImpedimentPostpartum, WeeksPostpartum: 20}
	c = late.Constraint()
	assert.True(t, c.AllowHighImpact)
	assert.Equal(t, 85.0, *c.MaxLoadPercent)
}

func Test_Impediment_AcuteInjuryPresets(t *testing.T) {
	mild := Impediment{Category: ImpedimentAcuteInjury, Severity: SeverityMild, Regions: []BodyRegion{RegionShoulder}}
	c := mild.Constraint()
	assert.True(t, c.AvoidsRegion(RegionShoulder))
	// Mild injuries avoid the region but keep the permission cuts off.
	assert.True(t, c.AllowOverhead)
	assert.Equal(t, 80.0, *c.MaxLoadPercent)

	moderate := Impediment{Category: ImpedimentAcuteInjury, Severity: SeverityModerate, Regions: []BodyRegion{RegionShoulder}}
	c = moderate.Constraint()
	assert.False(t, c.AllowOverhead)
	assert.False(t, c.AllowKipping)
	assert.False(t, c.AllowInversion)
	assert.Equal(t, 60.0, *c.MaxLoadPercent)

	severe := Impediment{Category: ImpedimentAcuteInjury, Severity: SeveritySevere, Regions: []BodyRegion{RegionKnee}}
	c = severe.Constraint()
	assert.True(t, c.AvoidsRegion(RegionKnee))
	assert.False(t, c.AllowHighImpact)
	assert.Equal(t, 40.0, *c.MaxLoadPercent)
}

func Test_Impediment_MedicalSeverePresetBlocksAllLoading(t *testing.T) {
	imp := Impediment{Category: ImpedimentMedical, Severity: SeveritySevere}
	c := imp.Constraint()
	assert.False(t, c.AllowHighImpact)
	require.NotNil(t, c.MaxLoadPercent)
	assert.Equal(t, 0.0, *c.MaxLoadPercent)
}

func Test_Impediment_MobilityPresetRestrictsPositionsOnly(t *testing.T) {
	moderate := Impediment{Category: ImpedimentMobility, Severity: SeverityModerate, Regions: []BodyRegion{RegionShoulder}}
	c := moderate.Constraint()
	assert.False(t, c.AllowOverhead)
	assert.Nil(t, c.MaxLoadPercent)
	assert.False(t, c.AvoidsRegion(RegionShoulder)) // positions cut, region not avoided

	severe := Impediment{Category: ImpedimentMobility, Severity: SeveritySevere, Regions: []BodyRegion{RegionShoulder}}
	c = severe.Constraint()
	assert.True(t, c.AvoidsRegion(RegionShoulder))
}

func Test_Impediment_SorenessPresets(t *testing.T) {
	mild := Impediment{Category: ImpedimentSoreness, Severity: SeverityMild, Regions: []BodyRegion{RegionQuad}}
	c := mild.Constraint()
	assert.Equal(t, 90.0, *c.MaxLoadPercent)
	assert.False(t, c.AvoidsRegion(RegionQuad)) // mild soreness only lowers load

	moderate := Impediment{Category: ImpedimentSoreness, Severity: SeverityModerate, Regions: []BodyRegion{RegionQuad}}
	c = moderate.Constraint()
	assert.Equal(t, 80.0, *c.MaxLoadPercent)
	assert.True(t, c.AvoidsRegion(RegionQuad))
}

func Test_User_ActiveImpediments(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -2, 0)
	ended := now.AddDate(0, -1, 0)

	user := User{
		Impediments: []Impediment{
			{Category: ImpedimentSoreness, Severity: SeverityMild},                                   // no window, active
			{Category: ImpedimentAcuteInjury, Severity: SeverityMild, StartDate: &past, EndDate: &ended}, // expired
		},
	}

	active := user.ActiveImpediments(now)
	require.Len(t, active, 1)
	assert.Equal(t, ImpedimentSoreness, active[0].Category)
}
