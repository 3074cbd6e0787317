package estimate

import "github.com/jonathan/buildwise/internal/types"

const (
	compactFloorMaxSqft = 700.0
	mediumFloorMaxSqft  = 1200.0

	groundFloorNote = "Reserve front setback for parking or garden"
)

type layoutBucket struct {
	rooms map[string]int
	notes []string
}

var (
	compactLayout = layoutBucket{
		rooms: map[string]int{"bedroom": 1, "bathroom": 1, "kitchen": 1, "living": 1},
		notes: []string{"Compact planning with multipurpose spaces", "Prefer open kitchen + dining"},
	}
	mediumLayout = layoutBucket{
		rooms: map[string]int{"bedroom": 2, "bathroom": 2, "kitchen": 1, "living": 1, "balcony": 1},
		notes: []string{"Suitable for nuclear family", "Allocate utility area near kitchen"},
	}
	largeLayout = layoutBucket{
		rooms: map[string]int{"bedroom": 3, "bathroom": 3, "kitchen": 1, "living": 1, "dining": 1, "balcony": 2},
		notes: []string{"Include ventilation shafts for tropical climate", "Use vastu-aligned orientation where applicable"},
	}
)

func bucketFor(perFloorSqft float64) layoutBucket {
	switch {
	case perFloorSqft <= compactFloorMaxSqft:
		return compactLayout
	case perFloorSqft <= mediumFloorMaxSqft:
		return mediumLayout
	default:
		return largeLayout
	}
}

// LayoutSuggestions suggests a room mix for every floor from the per-floor area.
// These are fixed rule lookups by area bucket; floor 1 also gets a setback note.
func LayoutSuggestions(project types.ProjectSpec) []types.LayoutSuggestion {
	perFloor := project.BuiltUpAreaSqft / float64(project.Floors)
	bucket := bucketFor(perFloor)

	suggestions := make([]types.LayoutSuggestion, 0, project.Floors)
	for floor := 1; floor <= project.Floors; floor++ {
		rooms := make(map[string]int, len(bucket.rooms))
		for name, count := range bucket.rooms {
			rooms[name] = count
		}
		notes := make([]string, 0, len(bucket.notes)+1)
		notes = append(notes, bucket.notes...)
		if floor == 1 {
			notes = append(notes, groundFloorNote)
		}

		suggestions = append(suggestions, types.LayoutSuggestion{
			Floor:               floor,
			ApproximateAreaSqft: Round2(perFloor),
			Rooms:               rooms,
			Notes:               notes,
		})
	}
	return suggestions
}
