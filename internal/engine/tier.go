// internal/engine/tier.go
package engine

import (
	"fmt"
	"math"

	"alcyxob/wodadapt/internal/domain"
)

// tierFactors holds the fixed scaling table, relative to Rx. The table is
// monotonic in tier order, which is what makes loads non-decreasing across
// GenerateAllScalingTiers for any single weighted movement.
type scalingFactors struct {
	Load float64
	Reps float64
}

var tierFactors = map[domain.Tier]scalingFactors{
	domain.TierBeginner:     {Load: 0.45, Reps: 0.60},
	domain.TierIntermediate: {Load: 0.65, Reps: 0.80},
	domain.TierAdvanced:     {Load: 0.85, Reps: 1.00},
	domain.TierRx:           {Load: 1.00, Reps: 1.00},
	domain.TierRxPlus:       {Load: 1.10, Reps: 1.20},
}

// FactorsForTier exposes the scaling table for a tier (Rx factors for an
// unknown tier, matching Tier.Index's degradation).
func FactorsForTier(t domain.Tier) (load, reps float64) {
	f, ok := tierFactors[t]
	if !ok {
		f = tierFactors[domain.TierRx]
	}
	return f.Load, f.Reps
}

// FindTieredMovement picks the movement to prescribe at the target tier.
// A movement at or below the target stays as-is. Above it, the authored
// chain is searched first (first candidate at or below the target that the
// inventory supports), then the catalog at large. Tier scaling deliberately
// checks equipment only — medical constraints are a separate pass the
// caller layers on top. If nothing fits, the original is kept unchanged:
// a tier request never fails a workout.
func FindTieredMovement(cat Catalog, m *domain.Movement, target domain.Tier, inv domain.Inventory) *domain.Movement {
	if m.Difficulty.Index() <= target.Index() {
		return m
	}

	tried := map[string]bool{m.ID: true}
	for _, subID := range m.Substitutions {
		tried[subID] = true
		candidate, ok := cat.Get(subID)
		if !ok {
			continue
		}
		if candidate.Difficulty.Index() > target.Index() {
			continue
		}
		if CheckMovement(candidate, nil, inv).Allowed {
			return candidate
		}
	}

	if best, _ := fallbackSearch(cat, m, tried, func(cand *domain.Movement) MovementCheck {
		return CheckMovement(cand, nil, inv)
	}, target, true); best != nil {
		return best
	}

	return m
}

// ScalePrescription rewrites one prescription for the target tier: the
// movement is re-resolved toward the tier's difficulty ceiling, load and
// reps scale by the tier factors, and distance/duration/calories/notes pass
// through verbatim (tiering never alters volume measured in distance, time,
// or energy). The change notes are human-readable, one per changed
// dimension, or just "kept" when nothing moved.
func ScalePrescription(cat Catalog, p domain.Prescription, target domain.Tier, inv domain.Inventory) domain.ScaledPrescription {
	factors, ok := tierFactors[target]
	if !ok {
		factors = tierFactors[domain.TierRx]
	}

	scaled := domain.ScaledPrescription{Prescription: p}

	movement, found := cat.Get(p.MovementID)
	if !found {
		// Unknown movement reference: degrade to a changeless prescription
		// with the identifier standing in for a display name.
		scaled.Movement = nil
		scaled.Changes = []string{"kept"}
		return scaled
	}

	var changes []string

	tiered := FindTieredMovement(cat, movement, target, inv)
	scaled.Movement = tiered
	if tiered.ID != movement.ID {
		scaled.MovementID = tiered.ID
		changes = append(changes, fmt.Sprintf("%s → %s", movement.Name, tiered.Name))
	}

	if p.Load > 0 {
		newLoad := math.Round(p.Load * factors.Load)
		if newLoad != p.Load {
			scaled.Load = newLoad
			changes = append(changes, fmt.Sprintf("load %.0f → %.0f", p.Load, newLoad))
		}
	}

	if p.Reps > 0 {
		newReps := int(math.Round(float64(p.Reps) * factors.Reps))
		if newReps < 1 {
			newReps = 1
		}
		if newReps != p.Reps {
			scaled.Reps = newReps
			changes = append(changes, fmt.Sprintf("reps %d → %d", p.Reps, newReps))
		}
	}

	if len(changes) == 0 {
		changes = []string{"kept"}
	}
	scaled.Changes = changes
	return scaled
}

// ScaleWorkoutToTier rewrites a whole workout for one target tier, each
// prescription independently. The scaled workout gets a tier-suffixed
// identifier and a tier-labelled name so the five variants can sit side by
// side.
func ScaleWorkoutToTier(cat Catalog, w *domain.Workout, target domain.Tier, inv domain.Inventory) domain.ScaledWorkout {
	scaled := domain.ScaledWorkout{
		ID:            fmt.Sprintf("%s-%s", w.Slug, target),
		Name:          fmt.Sprintf("%s (%s)", w.Name, target.Label()),
		Tier:          target,
		Prescriptions: make([]domain.ScaledPrescription, 0, len(w.Prescriptions)),
	}
	for _, p := range w.Prescriptions {
		scaled.Prescriptions = append(scaled.Prescriptions, ScalePrescription(cat, p, target, inv))
	}
	return scaled
}

// GenerateAllScalingTiers produces all five tiers in ascending order for
// side-by-side comparison.
func GenerateAllScalingTiers(cat Catalog, w *domain.Workout, inv domain.Inventory) []domain.ScaledWorkout {
	out := make([]domain.ScaledWorkout, 0, len(domain.AllTiers))
	for _, tier := range domain.AllTiers {
		out = append(out, ScaleWorkoutToTier(cat, w, tier, inv))
	}
	return out
}
