package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Inventory_NoneAlwaysSatisfied(t *testing.T) {
	empty := NewInventory()
	assert.True(t, empty.Has(EquipmentNone))
	assert.False(t, empty.Has(EquipmentBarbell))

	inv := NewInventory(EquipmentBarbell, EquipmentRack)
	assert.True(t, inv.Has(EquipmentNone))
	assert.True(t, inv.Has(EquipmentBarbell))
	assert.True(t, inv.Has(EquipmentRack))
	assert.False(t, inv.Has(EquipmentRings))
}

func Test_Movement_SharesMuscleGroup(t *testing.T) {
	thruster := &Movement{MuscleGroups: []MuscleGroup{GroupSquat, GroupPush}}
	wallBall := &Movement{MuscleGroups: []MuscleGroup{GroupSquat, GroupPush}}
	deadlift := &Movement{MuscleGroups: []MuscleGroup{GroupHinge}}

	assert.Equal(t, 2, thruster.SharesMuscleGroup(wallBall))
	assert.Equal(t, 0, thruster.SharesMuscleGroup(deadlift))
}

func Test_Movement_StressedRegions(t *testing.T) {
	m := &Movement{
		PrimaryRegions:   []BodyRegion{RegionQuad, RegionGlute},
		SecondaryRegions: []BodyRegion{RegionCore},
	}
	assert.Equal(t, []BodyRegion{RegionQuad, RegionGlute, RegionCore}, m.StressedRegions())
}

func Test_Tier_Ordering(t *testing.T) {
	for i := 1; i < len(AllTiers); i++ {
		assert.Less(t, AllTiers[i-1].Index(), AllTiers[i].Index())
	}

	// Unknown tiers degrade to Rx.
	assert.Equal(t, TierRx.Index(), Tier("heroic").Index())
	assert.False(t, Tier("heroic").Valid())
}

func Test_Tier_Label(t *testing.T) {
	assert.Equal(t, "Rx+", TierRxPlus.Label())
	assert.Equal(t, "Beginner", TierBeginner.Label())
	assert.Equal(t, "custom", Tier("custom").Label())
}
