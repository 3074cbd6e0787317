package estimate

import (
	"math"

	"github.com/jonathan/buildwise/internal/types"
)

// AreaFactor returns the number of baseline crew units the project's area needs (at least 1).
func AreaFactor(area float64) int {
	return max(1, ceilInt(area/areaPerCrewUnit))
}

// BaseCrew sizes the project-wide crew for each role before phase weighting.
func BaseCrew(project types.ProjectSpec) types.Manpower {
	af := AreaFactor(project.BuiltUpAreaSqft)
	floors := float64(project.Floors)
	return types.Manpower{
		types.RoleMason:       max(2, af),
		types.RoleHelper:      max(3, af+1),
		types.RoleCarpenter:   max(1, ceilInt(float64(af)*0.8)),
		types.RoleBarBender:   max(1, ceilInt(float64(af)*0.7)),
		types.RoleElectrician: max(1, ceilInt(floors*0.8)),
		types.RolePlumber:     max(1, ceilInt(floors*0.6)),
		types.RolePainter:     max(1, ceilInt(float64(af)*0.9)),
	}
}

// NominalPhaseWeeks is the rounded share of the timeline for a phase, at least one week.
// Halves round to even.
func NominalPhaseWeeks(timelineWeeks int, phase types.Phase) int {
	return max(1, int(math.RoundToEven(float64(timelineWeeks)*phaseWeights[phase])))
}

// AllocateWorkforce plans duration and crew for each phase, in phase order.
//
// Each phase's duration is rounded independently, so their sum can drift from
// the timeline. The whole drift, positive or negative, is put on the last phase
// (finishing). This is an intentional tie-break that downstream consumers rely
// on; do not replace it with a proportional spread.
func AllocateWorkforce(project types.ProjectSpec) []types.PhaseAllocation {
	base := BaseCrew(project)

	allocations := make([]types.PhaseAllocation, 0, len(types.Phases))
	allocated := 0
	for _, phase := range types.Phases {
		weeks := NominalPhaseWeeks(project.TimelineWeeks, phase)
		allocated += weeks

		multipliers := phaseCrewMultipliers[phase]
		crew := make(types.Manpower, len(types.Roles))
		for _, role := range types.Roles {
			crew[role] = max(0, ceilInt(float64(base[role])*multipliers[role]))
		}

		allocations = append(allocations, types.PhaseAllocation{
			Phase:    phase,
			Weeks:    weeks,
			Manpower: crew,
		})
	}

	allocations[len(allocations)-1].Weeks += project.TimelineWeeks - allocated
	return allocations
}

// PhasewisePlan reports each phase's nominal duration, before drift correction,
// and its share of the timeline as a percentage.
func PhasewisePlan(project types.ProjectSpec) map[types.Phase]types.PhasePlan {
	plan := make(map[types.Phase]types.PhasePlan, len(types.Phases))
	for _, phase := range types.Phases {
		plan[phase] = types.PhasePlan{
			DurationWeeks:     NominalPhaseWeeks(project.TimelineWeeks, phase),
			CompletionPercent: Round2(phaseWeights[phase] * 100),
		}
	}
	return plan
}

func ceilInt(x float64) int {
	return int(math.Ceil(x))
}
