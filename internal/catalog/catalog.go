// internal/catalog/catalog.go
package catalog

import (
	"fmt"

	"alcyxob/wodadapt/internal/domain"
)

// Catalog is an immutable, in-memory snapshot of the movement library.
// Iteration order is the load order and never changes for the lifetime of
// the snapshot — the engine's scored search relies on that for
// deterministic tie-breaking. Refreshing the library means building a new
// snapshot and swapping it wholesale, never mutating this one.
type Catalog struct {
	movements []domain.Movement
	index     map[string]int
}

// New builds a catalog snapshot from the given movements and runs the
// startup validation pass: IDs must be unique, every substitution-chain
// entry must resolve, no movement may substitute to itself, and enum/tag
// values must come from the fixed vocabularies. A broken catalog is a
// deployment defect, so this is the one place the system refuses bad data
// outright.
func New(movements []domain.Movement) (*Catalog, error) {
	c := &Catalog{
		movements: make([]domain.Movement, len(movements)),
		index:     make(map[string]int, len(movements)),
	}
	copy(c.movements, movements)

	for i := range c.movements {
		m := &c.movements[i]
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: movement %d has an empty id", i)
		}
		if _, dup := c.index[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate movement id %q", m.ID)
		}
		c.index[m.ID] = i
	}

	for i := range c.movements {
		m := &c.movements[i]
		if !m.Difficulty.Valid() {
			return nil, fmt.Errorf("catalog: movement %q has unknown difficulty %q", m.ID, m.Difficulty)
		}
		switch m.Modality {
		case domain.ModalityWeightlifting, domain.ModalityGymnastics, domain.ModalityMonostructural, domain.ModalityStrongman:
		default:
			return nil, fmt.Errorf("catalog: movement %q has unknown modality %q", m.ID, m.Modality)
		}
		switch m.LoadType {
		case domain.LoadBodyweight, domain.LoadWeighted, domain.LoadDistance, domain.LoadDuration, domain.LoadCalories:
		default:
			return nil, fmt.Errorf("catalog: movement %q has unknown load type %q", m.ID, m.LoadType)
		}
		for _, tag := range m.Tags {
			if !domain.TagVocabulary[tag] {
				return nil, fmt.Errorf("catalog: movement %q carries unknown tag %q", m.ID, tag)
			}
		}
		for _, subID := range m.Substitutions {
			if subID == m.ID {
				return nil, fmt.Errorf("catalog: movement %q substitutes to itself", m.ID)
			}
			if _, ok := c.index[subID]; !ok {
				return nil, fmt.Errorf("catalog: movement %q substitution %q does not exist", m.ID, subID)
			}
		}
	}

	return c, nil
}

// Get looks a movement up by identifier.
func (c *Catalog) Get(id string) (*domain.Movement, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.movements[i], true
}

// All returns every movement in stable load order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []domain.Movement {
	return c.movements
}

// Len returns the number of movements in the snapshot.
func (c *Catalog) Len() int {
	return len(c.movements)
}

// ByModality returns the movements of one training modality, in load order.
func (c *Catalog) ByModality(modality domain.Modality) []domain.Movement {
	var out []domain.Movement
	for _, m := range c.movements {
		if m.Modality == modality {
			out = append(out, m)
		}
	}
	return out
}

// ByMuscleGroup returns the movements classified under the given group.
func (c *Catalog) ByMuscleGroup(group domain.MuscleGroup) []domain.Movement {
	var out []domain.Movement
	for _, m := range c.movements {
		for _, g := range m.MuscleGroups {
			if g == group {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// ByEquipment returns the movements requiring the given equipment kind.
func (c *Catalog) ByEquipment(kind domain.Equipment) []domain.Movement {
	var out []domain.Movement
	for _, m := range c.movements {
		for _, e := range m.Equipment {
			if e == kind {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// ByTag returns the movements carrying the given descriptive tag.
func (c *Catalog) ByTag(tag string) []domain.Movement {
	var out []domain.Movement
	for i := range c.movements {
		if c.movements[i].HasTag(tag) {
			out = append(out, c.movements[i])
		}
	}
	return out
}
