// internal/engine/substitute.go
package engine

import (
	"fmt"

	"alcyxob/wodadapt/internal/domain"
)

// Catalog is the read-only view of the movement catalog the engine needs.
// All must return a stable order across calls (load order) — the scored
// fallback search breaks ties by iteration order, and results have to be
// reproducible.
type Catalog interface {
	Get(id string) (*domain.Movement, bool)
	All() []domain.Movement
}

// SubstitutionResult carries the outcome of a substitution search. A nil
// Replacement is a normal, expected outcome ("no safe alternative exists"),
// not an error; callers must branch on it.
type SubstitutionResult struct {
	// Replacement is the movement to use. It is the original itself when the
	// original passed the check unchanged.
	Replacement *domain.Movement `json:"replacement,omitempty"`

	// Reasons explain why the original was rejected (empty when it wasn't).
	Reasons []string `json:"reasons,omitempty"`

	Warnings []string `json:"warnings,omitempty"`

	// LoadScale is the multiplier to apply to the prescribed load for the
	// chosen replacement: (cap ?? 100)/100, or 0 when there is no
	// replacement at all.
	LoadScale float64 `json:"loadScale"`
}

// FindSubstitution resolves a movement for an athlete in three stages:
//
//  1. keep the original if it passes the check;
//  2. walk the authored substitution chain in order, first pass wins (the
//     chain is curated easiest-first, so no scoring is needed);
//  3. scored catalog-wide fallback over movements sharing at least one
//     muscle group with the original.
//
// If every stage comes up empty the result has a nil replacement, a zero
// load scale, and the original's rejection reasons.
func FindSubstitution(cat Catalog, m *domain.Movement, c *domain.Constraint, inv domain.Inventory) SubstitutionResult {
	original := CheckMovement(m, c, inv)
	if original.Allowed {
		return SubstitutionResult{
			Replacement: m,
			Warnings:    original.Warnings,
			LoadScale:   original.LoadScale(),
		}
	}

	// Stage 2: authored chain, in authored order.
	tried := map[string]bool{m.ID: true}
	for _, subID := range m.Substitutions {
		tried[subID] = true
		candidate, ok := cat.Get(subID)
		if !ok {
			continue // catalog-integrity defect, caught by startup validation
		}
		check := CheckMovement(candidate, c, inv)
		if !check.Allowed {
			continue
		}
		warnings := append([]string{fmt.Sprintf("Substituted %s for %s", candidate.Name, m.Name)}, check.Warnings...)
		return SubstitutionResult{
			Replacement: candidate,
			Reasons:     original.Reasons,
			Warnings:    warnings,
			LoadScale:   check.LoadScale(),
		}
	}

	// Stage 3: broad fallback across the whole catalog.
	if best, check := fallbackSearch(cat, m, tried, func(cand *domain.Movement) MovementCheck {
		return CheckMovement(cand, c, inv)
	}, m.Difficulty, false); best != nil {
		warnings := append([]string{
			fmt.Sprintf("No authored substitution available; %s selected by muscle-group match", best.Name),
		}, check.Warnings...)
		return SubstitutionResult{
			Replacement: best,
			Reasons:     original.Reasons,
			Warnings:    warnings,
			LoadScale:   check.LoadScale(),
		}
	}

	return SubstitutionResult{
		Reasons:   original.Reasons,
		Warnings:  original.Warnings,
		LoadScale: 0,
	}
}

// ScaleWorkoutMovements runs FindSubstitution over a list of movements,
// independently per movement.
func ScaleWorkoutMovements(cat Catalog, movements []domain.Movement, c *domain.Constraint, inv domain.Inventory) []SubstitutionResult {
	results := make([]SubstitutionResult, len(movements))
	for i := range movements {
		results[i] = FindSubstitution(cat, &movements[i], c, inv)
	}
	return results
}

// fallbackSearch scans the whole catalog for the best-scoring replacement
// for original, skipping everything in tried. Candidates must share at
// least one muscle group and pass the supplied check. Score:
//
//	10 × shared muscle groups
//	 5 × (candidate tier ≤ ceiling)
//	 1 × (same modality)
//
// Ties resolve to the first maximum in catalog order, which keeps repeated
// calls byte-for-byte reproducible.
//
// When enforceCeiling is set, candidates above the ceiling tier are excluded
// outright instead of merely losing the tier score term (the tier scaler's
// variant of the search).
func fallbackSearch(cat Catalog, original *domain.Movement, tried map[string]bool, check func(*domain.Movement) MovementCheck, ceiling domain.Tier, enforceCeiling bool) (*domain.Movement, MovementCheck) {
	var (
		best      *domain.Movement
		bestCheck MovementCheck
		bestScore = -1
	)

	all := cat.All()
	for i := range all {
		candidate := &all[i]
		if tried[candidate.ID] {
			continue
		}
		if enforceCeiling && candidate.Difficulty.Index() > ceiling.Index() {
			continue
		}
		shared := candidate.SharesMuscleGroup(original)
		if shared == 0 {
			continue
		}
		result := check(candidate)
		if !result.Allowed {
			continue
		}

		score := 10 * shared
		if candidate.Difficulty.Index() <= ceiling.Index() {
			score += 5
		}
		if candidate.Modality == original.Modality {
			score++
		}

		// Strictly greater: first maximum wins.
		if score > bestScore {
			best = candidate
			bestCheck = result
			bestScore = score
		}
	}

	return best, bestCheck
}
