// internal/domain/constraint.go
package domain

// Constraint is the derived, mergeable rule set produced from one or more
// impediments. A nil *Constraint means "unrestricted". It is a plain value
// object: it never references the impediments it was derived from, and
// nothing in the engine mutates it.
type Constraint struct {
	AvoidRegions []BodyRegion `bson:"avoidRegions,omitempty" json:"avoidRegions,omitempty"`
	AvoidTags    []string     `bson:"avoidTags,omitempty" json:"avoidTags,omitempty"`

	// Six independent permissions. False means the named movement property
	// is disallowed; merging ANDs them, so any single impediment that
	// disallows something disallows it overall.
	AllowHighImpact bool `bson:"allowHighImpact" json:"allowHighImpact"`
	AllowOverhead   bool `bson:"allowOverhead" json:"allowOverhead"`
	AllowInversion  bool `bson:"allowInversion" json:"allowInversion"`
	AllowProne      bool `bson:"allowProne" json:"allowProne"`
	AllowKipping    bool `bson:"allowKipping" json:"allowKipping"`
	AllowAxialLoad  bool `bson:"allowAxialLoad" json:"allowAxialLoad"`

	// MaxLoadPercent caps weighted loading at a percentage of the normal
	// prescription (0–100). Nil means unrestricted. Exactly 0 means all
	// weighted loading is off the table.
	MaxLoadPercent *float64 `bson:"maxLoadPercent,omitempty" json:"maxLoadPercent,omitempty"`
}

// unrestrictedConstraint returns a constraint with every permission granted
// and no avoid lists, the identity element for merging.
func unrestrictedConstraint() *Constraint {
	return &Constraint{
		AllowHighImpact: true,
		AllowOverhead:   true,
		AllowInversion:  true,
		AllowProne:      true,
		AllowKipping:    true,
		AllowAxialLoad:  true,
	}
}

// AvoidsRegion reports whether the constraint lists the given region.
func (c *Constraint) AvoidsRegion(region BodyRegion) bool {
	for _, r := range c.AvoidRegions {
		if r == region {
			return true
		}
	}
	return false
}

// AvoidsTag reports whether the constraint lists the given tag.
func (c *Constraint) AvoidsTag(tag string) bool {
	for _, t := range c.AvoidTags {
		if t == tag {
			return true
		}
	}
	return false
}

// addAvoidRegion appends region if not already present.
func (c *Constraint) addAvoidRegion(region BodyRegion) {
	if !c.AvoidsRegion(region) {
		c.AvoidRegions = append(c.AvoidRegions, region)
	}
}

// addAvoidTag appends tag if not already present.
func (c *Constraint) addAvoidTag(tag string) {
	if !c.AvoidsTag(tag) {
		c.AvoidTags = append(c.AvoidTags, tag)
	}
}

// capLoad lowers the load cap to percent if it is below the current cap.
func (c *Constraint) capLoad(percent float64) {
	if c.MaxLoadPercent == nil || percent < *c.MaxLoadPercent {
		p := percent
		c.MaxLoadPercent = &p
	}
}
