// Package estimate implements the residential construction estimation engine:
// material quantities, phase-wise crew allocation, the weekly schedule, costing,
// timeline compression and per-floor layout advice. Every function here is pure.
package estimate

import "github.com/jonathan/buildwise/internal/types"

const (
	// workingDaysPerWeek is the site policy: six working days, not configurable.
	workingDaysPerWeek = 6

	// areaPerCrewUnit is the built-up area one baseline crew unit covers, in sqft.
	areaPerCrewUnit = 900.0

	// floorMaterialGrowth is the extra material share per floor above the first.
	floorMaterialGrowth = 0.08

	// compressionLaborPercent is the extra labor percent per unit of acceleration above 1.0.
	compressionLaborPercent = 60.0
)

// Material consumption per sqft of built-up area.
const (
	cementBagsPerSqft    = 0.42
	steelKgPerSqft       = 4.1
	sandCuftPerSqft      = 1.82
	aggregateCuftPerSqft = 1.5
	bricksPerSqft        = 8.8
)

// phaseWeights is the share of the timeline each phase takes. Sums to 1.0.
var phaseWeights = map[types.Phase]float64{
	types.PhaseFoundation: 0.20,
	types.PhaseStructure:  0.35,
	types.PhaseRoofing:    0.15,
	types.PhaseFinishing:  0.30,
}

var phaseTasks = map[types.Phase][]string{
	types.PhaseFoundation: {"Excavation", "PCC", "Footings", "Plinth beam"},
	types.PhaseStructure:  {"Columns", "Beams", "Slab casting", "Masonry"},
	types.PhaseRoofing:    {"Slab waterproofing", "Parapet", "Roof utilities"},
	types.PhaseFinishing:  {"Plaster", "Flooring", "Electrical", "Painting", "Fixtures"},
}

// phaseCrewMultipliers scales each role's baseline headcount per phase.
var phaseCrewMultipliers = map[types.Phase]map[types.Role]float64{
	types.PhaseFoundation: {
		types.RoleMason:       1.2,
		types.RoleHelper:      1.3,
		types.RoleCarpenter:   0.9,
		types.RoleBarBender:   1.1,
		types.RoleElectrician: 0.2,
		types.RolePlumber:     0.2,
		types.RolePainter:     0.0,
	},
	types.PhaseStructure: {
		types.RoleMason:       1.4,
		types.RoleHelper:      1.4,
		types.RoleCarpenter:   1.3,
		types.RoleBarBender:   1.4,
		types.RoleElectrician: 0.4,
		types.RolePlumber:     0.4,
		types.RolePainter:     0.0,
	},
	types.PhaseRoofing: {
		types.RoleMason:       1.0,
		types.RoleHelper:      1.0,
		types.RoleCarpenter:   0.8,
		types.RoleBarBender:   0.8,
		types.RoleElectrician: 0.3,
		types.RolePlumber:     0.3,
		types.RolePainter:     0.0,
	},
	types.PhaseFinishing: {
		types.RoleMason:       0.8,
		types.RoleHelper:      1.0,
		types.RoleCarpenter:   1.1,
		types.RoleBarBender:   0.2,
		types.RoleElectrician: 1.2,
		types.RolePlumber:     1.1,
		types.RolePainter:     1.5,
	},
}

// PhaseWeight returns the share of the timeline assigned to a phase.
func PhaseWeight(phase types.Phase) float64 {
	return phaseWeights[phase]
}

// PhaseTasks returns a copy of the fixed task list for a phase.
func PhaseTasks(phase types.Phase) []string {
	tasks := phaseTasks[phase]
	out := make([]string, len(tasks))
	copy(out, tasks)
	return out
}
