// internal/engine/check.go
package engine

import (
	"fmt"

	"alcyxob/wodadapt/internal/domain"
)

// MovementCheck is the result of evaluating one movement against an
// athlete's constraint and equipment inventory. Warnings never affect
// Allowed; they surface things the caller should mention to the athlete
// (secondary-region stress, reduced loading).
type MovementCheck struct {
	Allowed  bool     `json:"allowed"`
	Reasons  []string `json:"reasons,omitempty"`  // hard blocks
	Warnings []string `json:"warnings,omitempty"` // non-blocking

	// MaxLoadPercent echoes the constraint's load cap when it applies to
	// this movement (weighted load type, positive cap). Nil otherwise.
	MaxLoadPercent *float64 `json:"maxLoadPercent,omitempty"`
}

// LoadScale converts the check's load cap into a multiplier for the
// prescribed load: 1.0 when uncapped.
func (mc MovementCheck) LoadScale() float64 {
	if mc.MaxLoadPercent == nil {
		return 1.0
	}
	return *mc.MaxLoadPercent / 100.0
}

// MergeConstraints folds zero or more impediments into one effective
// constraint. Nil means unrestricted (empty input). Most restrictive wins:
// permissions AND together, avoid lists union, and the load cap is the
// minimum of all present caps. The fold is commutative and associative, so
// impediment order never matters.
func MergeConstraints(impediments []domain.Impediment) *domain.Constraint {
	if len(impediments) == 0 {
		return nil
	}

	merged := impediments[0].Constraint()
	for _, imp := range impediments[1:] {
		merged = mergeTwo(merged, imp.Constraint())
	}
	return merged
}

func mergeTwo(a, b *domain.Constraint) *domain.Constraint {
	out := &domain.Constraint{
		AllowHighImpact: a.AllowHighImpact && b.AllowHighImpact,
		AllowOverhead:   a.AllowOverhead && b.AllowOverhead,
		AllowInversion:  a.AllowInversion && b.AllowInversion,
		AllowProne:      a.AllowProne && b.AllowProne,
		AllowKipping:    a.AllowKipping && b.AllowKipping,
		AllowAxialLoad:  a.AllowAxialLoad && b.AllowAxialLoad,
	}

	for _, r := range a.AvoidRegions {
		if !regionIn(out.AvoidRegions, r) {
			out.AvoidRegions = append(out.AvoidRegions, r)
		}
	}
	for _, r := range b.AvoidRegions {
		if !regionIn(out.AvoidRegions, r) {
			out.AvoidRegions = append(out.AvoidRegions, r)
		}
	}
	for _, t := range a.AvoidTags {
		if !stringIn(out.AvoidTags, t) {
			out.AvoidTags = append(out.AvoidTags, t)
		}
	}
	for _, t := range b.AvoidTags {
		if !stringIn(out.AvoidTags, t) {
			out.AvoidTags = append(out.AvoidTags, t)
		}
	}

	switch {
	case a.MaxLoadPercent == nil:
		out.MaxLoadPercent = copyCap(b.MaxLoadPercent)
	case b.MaxLoadPercent == nil:
		out.MaxLoadPercent = copyCap(a.MaxLoadPercent)
	case *a.MaxLoadPercent < *b.MaxLoadPercent:
		out.MaxLoadPercent = copyCap(a.MaxLoadPercent)
	default:
		out.MaxLoadPercent = copyCap(b.MaxLoadPercent)
	}

	return out
}

// namedPropertyGates maps each boolean permission to the movement tag it
// governs. A false permission blocks any movement carrying the tag.
type namedPropertyGate struct {
	tag     string
	allowed func(c *domain.Constraint) bool
	reason  string
}

var namedPropertyGates = []namedPropertyGate{
	{domain.TagHighImpact, func(c *domain.Constraint) bool { return c.AllowHighImpact }, "High-impact movements restricted"},
	{domain.TagOverhead, func(c *domain.Constraint) bool { return c.AllowOverhead }, "Overhead movements restricted"},
	{domain.TagInverted, func(c *domain.Constraint) bool { return c.AllowInversion }, "Inverted movements restricted"},
	{domain.TagProne, func(c *domain.Constraint) bool { return c.AllowProne }, "Prone positioning restricted"},
	{domain.TagKipping, func(c *domain.Constraint) bool { return c.AllowKipping }, "Kipping movements restricted"},
	{domain.TagAxialLoad, func(c *domain.Constraint) bool { return c.AllowAxialLoad }, "Heavy axial loading restricted"},
}

// CheckMovement evaluates a single movement against the equipment inventory
// and, if present, the merged constraint. The equipment gate always applies;
// with a nil constraint the result is decided by equipment alone.
func CheckMovement(m *domain.Movement, c *domain.Constraint, inv domain.Inventory) MovementCheck {
	var check MovementCheck

	// 1. Equipment gate.
	for _, kind := range m.Equipment {
		if !inv.Has(kind) {
			check.Reasons = append(check.Reasons, fmt.Sprintf("Missing equipment: %s", kind))
		}
	}
	if c == nil {
		check.Allowed = len(check.Reasons) == 0
		return check
	}

	// 2. Region gate. A primary-region hit blocks; a hit confined to
	// secondary regions only warns.
	for _, region := range m.PrimaryRegions {
		if c.AvoidsRegion(region) {
			check.Reasons = append(check.Reasons, fmt.Sprintf("Stresses restricted region: %s", region))
		}
	}
	for _, region := range m.SecondaryRegions {
		if c.AvoidsRegion(region) {
			check.Warnings = append(check.Warnings, fmt.Sprintf("Secondary stress on restricted region: %s", region))
		}
	}

	// 3. Tag gate.
	for _, tag := range m.Tags {
		if c.AvoidsTag(tag) {
			check.Reasons = append(check.Reasons, fmt.Sprintf("Movement tag restricted: %s", tag))
		}
	}

	// 4. Named-property gates.
	for _, gate := range namedPropertyGates {
		if !gate.allowed(c) && m.HasTag(gate.tag) {
			check.Reasons = append(check.Reasons, gate.reason)
		}
	}

	// 5. Load cap. Only meaningful for weighted movements; a zero cap is a
	// hard block, any positive cap is surfaced for the caller to apply.
	if c.MaxLoadPercent != nil && m.LoadType == domain.LoadWeighted {
		if *c.MaxLoadPercent == 0 {
			check.Reasons = append(check.Reasons, "All weighted loading restricted")
		} else {
			check.MaxLoadPercent = copyCap(c.MaxLoadPercent)
			check.Warnings = append(check.Warnings, fmt.Sprintf("Load capped at %.0f%% of prescription", *c.MaxLoadPercent))
		}
	}

	check.Allowed = len(check.Reasons) == 0
	return check
}

// FilterAllowedMovements returns the movements that pass CheckMovement,
// preserving input order.
func FilterAllowedMovements(movements []domain.Movement, c *domain.Constraint, inv domain.Inventory) []domain.Movement {
	var allowed []domain.Movement
	for i := range movements {
		if CheckMovement(&movements[i], c, inv).Allowed {
			allowed = append(allowed, movements[i])
		}
	}
	return allowed
}

func regionIn(regions []domain.BodyRegion, r domain.BodyRegion) bool {
	for _, x := range regions {
		if x == r {
			return true
		}
	}
	return false
}

func stringIn(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func copyCap(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
