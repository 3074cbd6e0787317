package estimate

import (
	"testing"

	"github.com/jonathan/buildwise/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() types.ProjectSpec {
	return types.ProjectSpec{BuiltUpAreaSqft: 1800, Floors: 2, TimelineWeeks: 36}
}

func sumWeeks(allocations []types.PhaseAllocation) int {
	total := 0
	for _, a := range allocations {
		total += a.Weeks
	}
	return total
}

func TestAreaFactor(t *testing.T) {
	tests := []struct {
		area     float64
		expected int
	}{
		{0.5, 1},
		{900, 1},
		{900.01, 2},
		{1800, 2},
		{2700.5, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AreaFactor(tt.area), "area %v", tt.area)
	}
}

func TestBaseCrew_MinimumsForSmallProject(t *testing.T) {
	crew := BaseCrew(types.ProjectSpec{BuiltUpAreaSqft: 400, Floors: 1, TimelineWeeks: 10})

	assert.Equal(t, 2, crew[types.RoleMason])
	assert.Equal(t, 3, crew[types.RoleHelper])
	assert.Equal(t, 1, crew[types.RoleCarpenter])
	assert.Equal(t, 1, crew[types.RoleBarBender])
	assert.Equal(t, 1, crew[types.RoleElectrician])
	assert.Equal(t, 1, crew[types.RolePlumber])
	assert.Equal(t, 1, crew[types.RolePainter])
}

func TestBaseCrew_SampleProject(t *testing.T) {
	crew := BaseCrew(sampleProject())

	assert.Equal(t, types.Manpower{
		types.RoleMason:       2,
		types.RoleHelper:      3,
		types.RoleCarpenter:   2,
		types.RoleBarBender:   2,
		types.RoleElectrician: 2,
		types.RolePlumber:     2,
		types.RolePainter:     2,
	}, crew)
}

func TestAllocateWorkforce_SampleProject(t *testing.T) {
	allocations := AllocateWorkforce(sampleProject())
	require.Len(t, allocations, 4)

	expectedWeeks := []int{7, 13, 5, 11}
	for i, phase := range types.Phases {
		assert.Equal(t, phase, allocations[i].Phase)
		assert.Equal(t, expectedWeeks[i], allocations[i].Weeks, "phase %s", phase)
	}

	assert.Equal(t, types.Manpower{
		types.RoleMason:       3,
		types.RoleHelper:      4,
		types.RoleCarpenter:   2,
		types.RoleBarBender:   3,
		types.RoleElectrician: 1,
		types.RolePlumber:     1,
		types.RolePainter:     0,
	}, allocations[0].Manpower)

	assert.Equal(t, types.Manpower{
		types.RoleMason:       3,
		types.RoleHelper:      5,
		types.RoleCarpenter:   3,
		types.RoleBarBender:   3,
		types.RoleElectrician: 1,
		types.RolePlumber:     1,
		types.RolePainter:     0,
	}, allocations[1].Manpower)

	assert.Equal(t, types.Manpower{
		types.RoleMason:       2,
		types.RoleHelper:      3,
		types.RoleCarpenter:   3,
		types.RoleBarBender:   1,
		types.RoleElectrician: 3,
		types.RolePlumber:     3,
		types.RolePainter:     3,
	}, allocations[3].Manpower)
}

func TestAllocateWorkforce_PaintersOnlyInFinishing(t *testing.T) {
	allocations := AllocateWorkforce(types.ProjectSpec{BuiltUpAreaSqft: 5000, Floors: 3, TimelineWeeks: 60})

	for _, alloc := range allocations {
		if alloc.Phase == types.PhaseFinishing {
			assert.Positive(t, alloc.Manpower[types.RolePainter])
			continue
		}
		assert.Zero(t, alloc.Manpower[types.RolePainter], "phase %s", alloc.Phase)
	}
}

func TestAllocateWorkforce_DriftGoesToLastPhase(t *testing.T) {
	tests := []struct {
		name     string
		timeline int
		expected []int
	}{
		{name: "rounds up, correction removes a week", timeline: 10, expected: []int{2, 4, 2, 2}},
		{name: "exact", timeline: 36, expected: []int{7, 13, 5, 11}},
		{name: "year", timeline: 52, expected: []int{10, 18, 8, 16}},
		{name: "minimums push finishing to zero", timeline: 3, expected: []int{1, 1, 1, 0}},
		{name: "minimums push finishing negative", timeline: 1, expected: []int{1, 1, 1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocations := AllocateWorkforce(types.ProjectSpec{BuiltUpAreaSqft: 1000, Floors: 1, TimelineWeeks: tt.timeline})
			weeks := make([]int, len(allocations))
			for i, a := range allocations {
				weeks[i] = a.Weeks
			}
			assert.Equal(t, tt.expected, weeks)
		})
	}
}

func TestAllocateWorkforce_DurationSumMatchesTimeline(t *testing.T) {
	for timeline := 1; timeline <= 156; timeline++ {
		for _, floors := range []int{1, 2, 3, 5} {
			project := types.ProjectSpec{BuiltUpAreaSqft: 1450, Floors: floors, TimelineWeeks: timeline}
			require.Equal(t, timeline, sumWeeks(AllocateWorkforce(project)), "timeline %d floors %d", timeline, floors)
		}
	}
}

func TestAllocateWorkforce_NonNegativeHeadcounts(t *testing.T) {
	for _, area := range []float64{100, 899, 900, 2500, 12000} {
		for _, alloc := range AllocateWorkforce(types.ProjectSpec{BuiltUpAreaSqft: area, Floors: 4, TimelineWeeks: 40}) {
			require.Len(t, alloc.Manpower, len(types.Roles))
			for role, count := range alloc.Manpower {
				assert.GreaterOrEqual(t, count, 0, "area %v phase %s role %s", area, alloc.Phase, role)
			}
		}
	}
}

func TestAllocateWorkforce_Idempotent(t *testing.T) {
	project := types.ProjectSpec{BuiltUpAreaSqft: 2350.5, Floors: 3, TimelineWeeks: 47}
	assert.Equal(t, AllocateWorkforce(project), AllocateWorkforce(project))
}

func TestPhasewisePlan(t *testing.T) {
	plan := PhasewisePlan(sampleProject())
	require.Len(t, plan, 4)

	assert.Equal(t, types.PhasePlan{DurationWeeks: 7, CompletionPercent: 20}, plan[types.PhaseFoundation])
	assert.Equal(t, types.PhasePlan{DurationWeeks: 13, CompletionPercent: 35}, plan[types.PhaseStructure])
	assert.Equal(t, types.PhasePlan{DurationWeeks: 5, CompletionPercent: 15}, plan[types.PhaseRoofing])
	assert.Equal(t, types.PhasePlan{DurationWeeks: 11, CompletionPercent: 30}, plan[types.PhaseFinishing])
}

func TestPhasewisePlan_UsesUncorrectedDurations(t *testing.T) {
	plan := PhasewisePlan(types.ProjectSpec{BuiltUpAreaSqft: 1000, Floors: 1, TimelineWeeks: 1})

	for _, phase := range types.Phases {
		assert.Equal(t, 1, plan[phase].DurationWeeks, "phase %s", phase)
	}
}

func TestPhaseWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, phase := range types.Phases {
		total += PhaseWeight(phase)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
