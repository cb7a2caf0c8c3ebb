// internal/domain/impediment.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImpedimentCategory classifies what kind of physical limitation is recorded.
type ImpedimentCategory string

const (
	ImpedimentPregnancy   ImpedimentCategory = "pregnancy"
	ImpedimentPostpartum  ImpedimentCategory = "postpartum"
	ImpedimentAcuteInjury ImpedimentCategory = "acute_injury"
	ImpedimentChronic     ImpedimentCategory = "chronic_condition"
	ImpedimentRehab       ImpedimentCategory = "rehab"
	ImpedimentMobility    ImpedimentCategory = "mobility_limit"
	ImpedimentMedical     ImpedimentCategory = "medical_restriction"
	ImpedimentSoreness    ImpedimentCategory = "soreness"
)

// Severity grades an impediment.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Impediment is a recorded physical limitation on an athlete's profile
// (injury, pregnancy stage, medical restriction, …). The engine never
// mutates an impediment; it only derives a Constraint from it.
type Impediment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category    ImpedimentCategory `bson:"category" json:"category"`
	Severity    Severity           `bson:"severity" json:"severity"`
	Regions     []BodyRegion       `bson:"regions,omitempty" json:"regions,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// Category-specific detail.
	Trimester       int `bson:"trimester,omitempty" json:"trimester,omitempty"`             // pregnancy: 1–3
	WeeksPostpartum int `bson:"weeksPostpartum,omitempty" json:"weeksPostpartum,omitempty"` // postpartum

	// Optional active window. A nil bound is open-ended.
	StartDate *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ActiveAt reports whether the impediment is in effect at time t.
func (i *Impediment) ActiveAt(t time.Time) bool {
	if i.StartDate != nil && t.Before(*i.StartDate) {
		return false
	}
	if i.EndDate != nil && t.After(*i.EndDate) {
		return false
	}
	return true
}

// Constraint derives the movement constraint for this impediment from the
// fixed category/severity preset tables. The derivation is the only
// "physiology" in the system; everything downstream is mechanical.
func (i *Impediment) Constraint() *Constraint {
	c := unrestrictedConstraint()

	switch i.Category {
	case ImpedimentPregnancy:
		applyPregnancyPreset(c, i.Trimester)
	case ImpedimentPostpartum:
		applyPostpartumPreset(c, i.WeeksPostpartum)
	case ImpedimentAcuteInjury:
		for _, r := range i.Regions {
			c.addAvoidRegion(r)
		}
		if i.Severity != SeverityMild {
			applyRegionCuts(c, i.Regions)
		}
		switch i.Severity {
		case SeverityMild:
			c.capLoad(80)
		case SeverityModerate:
			c.capLoad(60)
		case SeveritySevere:
			c.capLoad(40)
		}
	case ImpedimentChronic:
		for _, r := range i.Regions {
			c.addAvoidRegion(r)
		}
		if i.Severity == SeveritySevere {
			applyRegionCuts(c, i.Regions)
		}
		switch i.Severity {
		case SeverityMild:
			c.capLoad(85)
		case SeverityModerate:
			c.capLoad(70)
		case SeveritySevere:
			c.capLoad(50)
		}
	case ImpedimentRehab:
		for _, r := range i.Regions {
			c.addAvoidRegion(r)
		}
		applyRegionCuts(c, i.Regions)
		switch i.Severity {
		case SeverityMild:
			c.capLoad(70)
		case SeverityModerate:
			c.capLoad(60)
		case SeveritySevere:
			c.capLoad(50)
		}
	case ImpedimentMobility:
		// Mobility limits restrict positions, not loading: cut the
		// permissions tied to the limited regions but avoid nothing
		// outright unless severe.
		applyRegionCuts(c, i.Regions)
		if i.Severity == SeveritySevere {
			for _, r := range i.Regions {
				c.addAvoidRegion(r)
			}
		}
	case ImpedimentMedical:
		for _, r := range i.Regions {
			c.addAvoidRegion(r)
		}
		c.AllowHighImpact = false
		switch i.Severity {
		case SeverityMild:
			c.capLoad(70)
		case SeverityModerate:
			c.capLoad(50)
		case SeveritySevere:
			c.capLoad(0) // all weighted loading restricted
		}
	case ImpedimentSoreness:
		switch i.Severity {
		case SeverityMild:
			c.capLoad(90)
		case SeverityModerate:
			c.capLoad(80)
			for _, r := range i.Regions {
				c.addAvoidRegion(r)
			}
		case SeveritySevere:
			c.capLoad(70)
			for _, r := range i.Regions {
				c.addAvoidRegion(r)
			}
		}
	}

	return c
}

// applyPregnancyPreset layers trimester restrictions. Each trimester keeps
// everything the previous one disallowed and tightens further.
func applyPregnancyPreset(c *Constraint, trimester int) {
	if trimester < 1 {
		trimester = 1
	}
	if trimester > 3 {
		trimester = 3
	}

	// Trimester 1.
	c.AllowInversion = false
	c.AllowKipping = false
	c.capLoad(85)

	if trimester >= 2 {
		c.AllowProne = false
		c.AllowHighImpact = false
		c.capLoad(70)
	}
	if trimester >= 3 {
		c.AllowOverhead = false
		c.AllowAxialLoad = false
		c.addAvoidRegion(RegionCore)
		c.capLoad(60)
	}
}

// applyPostpartumPreset relaxes restrictions as the weeks progress.
func applyPostpartumPreset(c *Constraint, weeks int) {
	switch {
	case weeks < 6:
		c.AllowHighImpact = false
		c.AllowKipping = false
		c.AllowAxialLoad = false
		c.addAvoidRegion(RegionCore)
		c.capLoad(50)
	case weeks < 12:
		c.AllowHighImpact = false
		c.AllowKipping = false
		c.capLoad(70)
	default:
		c.capLoad(85)
	}
}

// applyRegionCuts turns off the boolean permissions that load the given
// regions hardest. Kept separate so every category preset shares one
// region-to-permission mapping.
func applyRegionCuts(c *Constraint, regions []BodyRegion) {
	for _, region := range regions {
		switch region {
		case RegionShoulder, RegionNeck:
			c.AllowOverhead = false
			c.AllowKipping = false
			c.AllowInversion = false
		case RegionWrist, RegionForearm:
			c.AllowInversion = false
		case RegionLowerBack, RegionCore:
			c.AllowAxialLoad = false
			c.AllowKipping = false
		case RegionHip, RegionKnee, RegionAnkle, RegionCalf:
			c.AllowHighImpact = false
		}
	}
}
