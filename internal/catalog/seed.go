// internal/catalog/seed.go
package catalog

import "alcyxob/wodadapt/internal/domain"

// Seed returns the built-in starter catalog. It bootstraps an empty
// database on first run and doubles as the fixture for the engine tests.
// Substitution chains are authored easiest-first and never include the
// movement itself.
func Seed() []domain.Movement {
	lbs := func(male, female float64) map[domain.Sex]float64 {
		return map[domain.Sex]float64{domain.SexMale: male, domain.SexFemale: female}
	}

	return []domain.Movement{
		// --- Squat family ---
		{
			ID:               "air-squat",
			Name:             "Air Squat",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadBodyweight,
		},
		{
			ID:               "goblet-squat",
			Name:             "Goblet Squat",
			Equipment:        []domain.Equipment{domain.EquipmentDumbbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"air-squat"},
			DefaultLoads:     lbs(53, 35),
		},
		{
			ID:               "back-squat",
			Name:             "Back Squat",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionLowerBack, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagAxialLoad},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"air-squat", "goblet-squat"},
			DefaultLoads:     lbs(225, 155),
		},
		{
			ID:               "front-squat",
			Name:             "Front Squat",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore, domain.RegionWrist},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagAxialLoad},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"air-squat", "goblet-squat", "back-squat"},
			DefaultLoads:     lbs(185, 125),
		},
		{
			ID:               "overhead-squat",
			Name:             "Overhead Squat",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute, domain.RegionShoulder},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore, domain.RegionUpperBack},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierAdvanced,
			Tags:             []string{domain.TagOverhead, domain.TagAxialLoad},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"goblet-squat", "back-squat", "front-squat"},
			DefaultLoads:     lbs(135, 95),
		},
		{
			ID:               "box-step-up",
			Name:             "Box Step-Up",
			Equipment:        []domain.Equipment{domain.EquipmentBox},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionKnee},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagUnilateral},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"air-squat"},
		},
		{
			ID:               "walking-lunge",
			Name:             "Walking Lunge",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionKnee},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagUnilateral},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"air-squat"},
		},
		{
			ID:               "box-jump",
			Name:             "Box Jump",
			Equipment:        []domain.Equipment{domain.EquipmentBox},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionCalf},
			SecondaryRegions: []domain.BodyRegion{domain.RegionKnee, domain.RegionAnkle},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagHighImpact, domain.TagBallistic},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"box-step-up", "air-squat"},
		},
		{
			ID:               "wall-ball",
			Name:             "Wall-Ball Shot",
			Equipment:        []domain.Equipment{domain.EquipmentMedBall, domain.EquipmentWall},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat, domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagBallistic},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"air-squat", "goblet-squat"},
			DefaultLoads:     lbs(20, 14),
		},
		{
			ID:               "thruster",
			Name:             "Thruster",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionShoulder},
			SecondaryRegions: []domain.BodyRegion{domain.RegionGlute, domain.RegionTriceps, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat, domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagOverhead},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"goblet-squat", "wall-ball"},
			DefaultLoads:     lbs(95, 65),
		},

		// --- Hinge family ---
		{
			ID:               "glute-bridge",
			Name:             "Glute Bridge",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupHinge},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadBodyweight,
		},
		{
			ID:               "kettlebell-deadlift",
			Name:             "Kettlebell Deadlift",
			Equipment:        []domain.Equipment{domain.EquipmentKettlebell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionGlute, domain.RegionHamstring},
			SecondaryRegions: []domain.BodyRegion{domain.RegionLowerBack},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupHinge},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"glute-bridge"},
			DefaultLoads:     lbs(70, 53),
		},
		{
			ID:               "deadlift",
			Name:             "Deadlift",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionHamstring, domain.RegionGlute, domain.RegionLowerBack},
			SecondaryRegions: []domain.BodyRegion{domain.RegionForearm, domain.RegionQuad},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupHinge},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagAxialLoad},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"glute-bridge", "kettlebell-deadlift"},
			DefaultLoads:     lbs(225, 155),
		},
		{
			ID:               "kettlebell-swing",
			Name:             "Kettlebell Swing",
			Equipment:        []domain.Equipment{domain.EquipmentKettlebell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionGlute, domain.RegionHamstring},
			SecondaryRegions: []domain.BodyRegion{domain.RegionLowerBack, domain.RegionShoulder},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupHinge},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagBallistic},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"glute-bridge", "kettlebell-deadlift"},
			DefaultLoads:     lbs(53, 35),
		},
		{
			ID:               "good-morning",
			Name:             "Good Morning",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentRack},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionHamstring, domain.RegionLowerBack},
			SecondaryRegions: []domain.BodyRegion{domain.RegionGlute},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupHinge},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagAxialLoad},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"glute-bridge", "kettlebell-deadlift"},
			DefaultLoads:     lbs(95, 65),
		},

		// --- Push family ---
		{
			ID:               "knee-push-up",
			Name:             "Knee Push-Up",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagProne},
			LoadType:         domain.LoadBodyweight,
		},
		{
			ID:               "push-up",
			Name:             "Push-Up",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagProne},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"knee-push-up"},
		},
		{
			ID:               "dumbbell-bench-press",
			Name:             "Dumbbell Bench Press",
			Equipment:        []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentBench},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"knee-push-up", "push-up"},
			DefaultLoads:     lbs(50, 30),
		},
		{
			ID:               "bench-press",
			Name:             "Bench Press",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench, domain.EquipmentRack},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"knee-push-up", "push-up", "dumbbell-bench-press"},
			DefaultLoads:     lbs(135, 95),
		},
		{
			ID:               "dumbbell-press",
			Name:             "Dumbbell Press",
			Equipment:        []domain.Equipment{domain.EquipmentDumbbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagOverhead},
			LoadType:         domain.LoadWeighted,
			DefaultLoads:     lbs(35, 20),
		},
		{
			ID:               "strict-press",
			Name:             "Strict Press",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore, domain.RegionUpperBack},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagOverhead},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"dumbbell-press"},
			DefaultLoads:     lbs(95, 65),
		},
		{
			ID:               "push-press",
			Name:             "Push Press",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionQuad, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagOverhead, domain.TagBallistic},
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"dumbbell-press", "strict-press"},
			DefaultLoads:     lbs(115, 75),
		},
		{
			ID:               "pike-push-up",
			Name:             "Pike Push-Up",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionUpperBack, domain.RegionWrist},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagInverted},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"knee-push-up", "push-up"},
		},
		{
			ID:               "handstand-push-up",
			Name:             "Handstand Push-Up",
			Equipment:        []domain.Equipment{domain.EquipmentWall},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionShoulder, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionChest, domain.RegionWrist, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierAdvanced,
			Tags:             []string{domain.TagInverted, domain.TagOverhead},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"push-up", "dumbbell-press", "pike-push-up"},
		},
		{
			ID:               "ring-dip",
			Name:             "Ring Dip",
			Equipment:        []domain.Equipment{domain.EquipmentRings},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionTriceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierAdvanced,
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"knee-push-up", "push-up"},
		},
		{
			ID:               "burpee",
			Name:             "Burpee",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionChest, domain.RegionQuad},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPush, domain.GroupSquat},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagHighImpact, domain.TagProne, domain.TagBallistic},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"air-squat", "push-up"},
		},

		// --- Pull family ---
		{
			ID:               "ring-row",
			Name:             "Ring Row",
			Equipment:        []domain.Equipment{domain.EquipmentRings},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionBiceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadBodyweight,
		},
		{
			ID:               "bent-over-row",
			Name:             "Bent-Over Row",
			Equipment:        []domain.Equipment{domain.EquipmentBarbell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionBiceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionLowerBack, domain.RegionForearm},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull},
			Modality:         domain.ModalityWeightlifting,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"ring-row"},
			DefaultLoads:     lbs(95, 65),
		},
		{
			ID:               "pull-up",
			Name:             "Pull-Up",
			Equipment:        []domain.Equipment{domain.EquipmentPullUpBar},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionBiceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionForearm, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierIntermediate,
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"ring-row", "bent-over-row"},
		},
		{
			ID:               "chin-up",
			Name:             "Chin-Up",
			Equipment:        []domain.Equipment{domain.EquipmentPullUpBar},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionBiceps, domain.RegionUpperBack},
			SecondaryRegions: []domain.BodyRegion{domain.RegionForearm},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierIntermediate,
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"ring-row"},
		},
		{
			ID:               "kipping-pull-up",
			Name:             "Kipping Pull-Up",
			Equipment:        []domain.Equipment{domain.EquipmentPullUpBar},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionBiceps},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierAdvanced,
			Tags:             []string{domain.TagKipping, domain.TagBallistic},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"ring-row", "pull-up"},
		},
		{
			ID:               "muscle-up",
			Name:             "Muscle-Up",
			Equipment:        []domain.Equipment{domain.EquipmentRings},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionChest},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionBiceps, domain.RegionTriceps},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull, domain.GroupPush},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierRx,
			Tags:             []string{domain.TagKipping, domain.TagBallistic},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"ring-row", "pull-up", "ring-dip"},
		},

		// --- Core ---
		{
			ID:               "plank",
			Name:             "Plank Hold",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCore},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCore},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagProne},
			LoadType:         domain.LoadDuration,
		},
		{
			ID:               "sit-up",
			Name:             "Sit-Up",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCore},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHip},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCore},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"plank"},
		},
		{
			ID:               "hanging-knee-raise",
			Name:             "Hanging Knee Raise",
			Equipment:        []domain.Equipment{domain.EquipmentPullUpBar},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCore},
			SecondaryRegions: []domain.BodyRegion{domain.RegionForearm, domain.RegionHip},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCore},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierIntermediate,
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"sit-up"},
		},
		{
			ID:               "toes-to-bar",
			Name:             "Toes-to-Bar",
			Equipment:        []domain.Equipment{domain.EquipmentPullUpBar},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCore},
			SecondaryRegions: []domain.BodyRegion{domain.RegionForearm, domain.RegionHip},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCore},
			Modality:         domain.ModalityGymnastics,
			Difficulty:       domain.TierAdvanced,
			Tags:             []string{domain.TagKipping},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"sit-up", "hanging-knee-raise"},
		},

		// --- Monostructural ---
		{
			ID:               "run",
			Name:             "Run",
			Equipment:        []domain.Equipment{domain.EquipmentNone},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionCalf},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionKnee, domain.RegionAnkle},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityMonostructural,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagHighImpact},
			LoadType:         domain.LoadDistance,
			Substitutions:    []string{"bike", "row"},
		},
		{
			ID:               "row",
			Name:             "Row (Erg)",
			Equipment:        []domain.Equipment{domain.EquipmentRower},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionUpperBack, domain.RegionQuad},
			SecondaryRegions: []domain.BodyRegion{domain.RegionHamstring, domain.RegionLowerBack},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupPull, domain.GroupHinge},
			Modality:         domain.ModalityMonostructural,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadDistance,
			Substitutions:    []string{"bike"},
		},
		{
			ID:               "bike",
			Name:             "Bike (Erg)",
			Equipment:        []domain.Equipment{domain.EquipmentBike},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCalf, domain.RegionGlute},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupSquat},
			Modality:         domain.ModalityMonostructural,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadCalories,
		},
		{
			ID:               "single-under",
			Name:             "Single-Under",
			Equipment:        []domain.Equipment{domain.EquipmentJumpRope},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCalf},
			SecondaryRegions: []domain.BodyRegion{domain.RegionAnkle, domain.RegionForearm},
			MuscleGroups:     []domain.MuscleGroup{},
			Modality:         domain.ModalityMonostructural,
			Difficulty:       domain.TierBeginner,
			Tags:             []string{domain.TagHighImpact},
			LoadType:         domain.LoadBodyweight,
		},
		{
			ID:               "double-under",
			Name:             "Double-Under",
			Equipment:        []domain.Equipment{domain.EquipmentJumpRope},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionCalf},
			SecondaryRegions: []domain.BodyRegion{domain.RegionAnkle, domain.RegionForearm},
			MuscleGroups:     []domain.MuscleGroup{},
			Modality:         domain.ModalityMonostructural,
			Difficulty:       domain.TierIntermediate,
			Tags:             []string{domain.TagHighImpact, domain.TagBallistic},
			LoadType:         domain.LoadBodyweight,
			Substitutions:    []string{"single-under"},
		},

		// --- Strongman / carry ---
		{
			ID:               "farmers-carry",
			Name:             "Farmers Carry",
			Equipment:        []domain.Equipment{domain.EquipmentKettlebell},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionForearm, domain.RegionCore},
			SecondaryRegions: []domain.BodyRegion{domain.RegionShoulder, domain.RegionUpperBack},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCarry, domain.GroupCore},
			Modality:         domain.ModalityStrongman,
			Difficulty:       domain.TierBeginner,
			LoadType:         domain.LoadWeighted,
			DefaultLoads:     lbs(70, 53),
		},
		{
			ID:               "sled-push",
			Name:             "Sled Push",
			Equipment:        []domain.Equipment{domain.EquipmentSled},
			PrimaryRegions:   []domain.BodyRegion{domain.RegionQuad, domain.RegionGlute},
			SecondaryRegions: []domain.BodyRegion{domain.RegionCalf, domain.RegionCore},
			MuscleGroups:     []domain.MuscleGroup{domain.GroupCarry, domain.GroupSquat},
			Modality:         domain.ModalityStrongman,
			Difficulty:       domain.TierIntermediate,
			LoadType:         domain.LoadWeighted,
			Substitutions:    []string{"walking-lunge"},
			DefaultLoads:     lbs(180, 120),
		},
	}
}
