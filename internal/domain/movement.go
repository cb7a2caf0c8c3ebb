// internal/domain/movement.go
package domain

import "time"

// Equipment identifies a kind of training equipment a movement needs.
type Equipment string

const (
	// EquipmentNone is the sentinel "no equipment" kind. It always satisfies
	// an inventory check, so bodyweight movements pass the equipment gate
	// against any inventory, including an empty one.
	EquipmentNone Equipment = "none"

	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentPullUpBar  Equipment = "pull_up_bar"
	EquipmentRings      Equipment = "rings"
	EquipmentJumpRope   Equipment = "jump_rope"
	EquipmentBox        Equipment = "box"
	EquipmentBench      Equipment = "bench"
	EquipmentRack       Equipment = "rack"
	EquipmentWall       Equipment = "wall"
	EquipmentMedBall    Equipment = "med_ball"
	EquipmentRower      Equipment = "rower"
	EquipmentBike       Equipment = "bike"
	EquipmentSled       Equipment = "sled"
)

// Inventory is the set of equipment kinds available to an athlete.
// Membership is tested by simple containment; EquipmentNone is always present.
type Inventory map[Equipment]bool

// NewInventory builds an Inventory from a list of equipment kinds.
func NewInventory(kinds ...Equipment) Inventory {
	inv := make(Inventory, len(kinds))
	for _, k := range kinds {
		inv[k] = true
	}
	return inv
}

// Has reports whether the inventory satisfies the given equipment kind.
func (inv Inventory) Has(kind Equipment) bool {
	if kind == EquipmentNone {
		return true
	}
	return inv[kind]
}

// Kinds returns the inventory contents as a slice (order unspecified).
func (inv Inventory) Kinds() []Equipment {
	kinds := make([]Equipment, 0, len(inv))
	for k, ok := range inv {
		if ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// BodyRegion is a coarse anatomical region stressed by a movement and
// referenced by impediments ("avoid anything loading the shoulder").
type BodyRegion string

const (
	RegionShoulder  BodyRegion = "shoulder"
	RegionChest     BodyRegion = "chest"
	RegionTriceps   BodyRegion = "triceps"
	RegionBiceps    BodyRegion = "biceps"
	RegionForearm   BodyRegion = "forearm"
	RegionWrist     BodyRegion = "wrist"
	RegionNeck      BodyRegion = "neck"
	RegionUpperBack BodyRegion = "upper_back"
	RegionLowerBack BodyRegion = "lower_back"
	RegionCore      BodyRegion = "core"
	RegionHip       BodyRegion = "hip"
	RegionGlute     BodyRegion = "glute"
	RegionHamstring BodyRegion = "hamstring"
	RegionQuad      BodyRegion = "quad"
	RegionKnee      BodyRegion = "knee"
	RegionCalf      BodyRegion = "calf"
	RegionAnkle     BodyRegion = "ankle"
)

// MuscleGroup is the functional movement classification used for
// substitution scoring (two movements sharing a group are interchangeable
// candidates).
type MuscleGroup string

const (
	GroupPush  MuscleGroup = "push"
	GroupPull  MuscleGroup = "pull"
	GroupSquat MuscleGroup = "squat"
	GroupHinge MuscleGroup = "hinge"
	GroupCore  MuscleGroup = "core"
	GroupCarry MuscleGroup = "carry"
)

// Modality is the broad training category of a movement.
type Modality string

const (
	ModalityWeightlifting  Modality = "weightlifting"
	ModalityGymnastics     Modality = "gymnastics"
	ModalityMonostructural Modality = "monostructural"
	ModalityStrongman      Modality = "strongman"
)

// LoadType describes how a movement's prescribed volume is measured.
type LoadType string

const (
	LoadBodyweight LoadType = "bodyweight"
	LoadWeighted   LoadType = "weighted"
	LoadDistance   LoadType = "distance"
	LoadDuration   LoadType = "duration"
	LoadCalories   LoadType = "calories"
)

// Sex selects a default prescribed load.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Descriptive movement tags. The six "named property" tags below each map to
// a boolean permission on Constraint; the vocabulary is the single source of
// truth for tag validation (new tags are added here, nowhere else).
const (
	TagHighImpact = "high_impact"
	TagOverhead   = "overhead"
	TagInverted   = "inverted"
	TagProne      = "prone"
	TagKipping    = "kipping"
	TagAxialLoad  = "axial_load"
	TagBallistic  = "ballistic"
	TagUnilateral = "unilateral"
)

// TagVocabulary is the closed set of valid movement tags.
var TagVocabulary = map[string]bool{
	TagHighImpact: true,
	TagOverhead:   true,
	TagInverted:   true,
	TagProne:      true,
	TagKipping:    true,
	TagAxialLoad:  true,
	TagBallistic:  true,
	TagUnilateral: true,
}

// Movement is a single entry in the movement catalog. Immutable after the
// catalog is loaded; the engine only ever reads these.
type Movement struct {
	ID   string `bson:"_id" json:"id"` // unique slug, e.g. "back-squat"
	Name string `bson:"name" json:"name"`

	// All listed equipment kinds must be available. EquipmentNone satisfies
	// the requirement unconditionally.
	Equipment []Equipment `bson:"equipment" json:"equipment"`

	PrimaryRegions   []BodyRegion `bson:"primaryRegions" json:"primaryRegions"`
	SecondaryRegions []BodyRegion `bson:"secondaryRegions,omitempty" json:"secondaryRegions,omitempty"`

	MuscleGroups []MuscleGroup `bson:"muscleGroups" json:"muscleGroups"`
	Modality     Modality      `bson:"modality" json:"modality"`
	Difficulty   Tier          `bson:"difficulty" json:"difficulty"`
	Tags         []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	LoadType     LoadType      `bson:"loadType" json:"loadType"`

	// Substitutions is the authored replacement chain, ordered easiest-first.
	// Every entry must resolve to another catalog movement; a movement never
	// substitutes to itself.
	Substitutions []string `bson:"substitutions,omitempty" json:"substitutions,omitempty"`

	// DefaultLoads holds optional default prescribed loads by sex (lbs).
	DefaultLoads map[Sex]float64 `bson:"defaultLoads,omitempty" json:"defaultLoads,omitempty"`

	// MediaObjectKey points at an uploaded demonstration video in object
	// storage, if one exists.
	MediaObjectKey string `bson:"mediaObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasTag reports whether the movement carries the given descriptive tag.
func (m *Movement) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesMuscleGroup counts how many muscle groups m has in common with other.
func (m *Movement) SharesMuscleGroup(other *Movement) int {
	shared := 0
	for _, g := range m.MuscleGroups {
		for _, og := range other.MuscleGroups {
			if g == og {
				shared++
				break
			}
		}
	}
	return shared
}

// StressedRegions returns the union of primary and secondary regions.
func (m *Movement) StressedRegions() []BodyRegion {
	regions := make([]BodyRegion, 0, len(m.PrimaryRegions)+len(m.SecondaryRegions))
	regions = append(regions, m.PrimaryRegions...)
	regions = append(regions, m.SecondaryRegions...)
	return regions
}
