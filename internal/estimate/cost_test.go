package estimate

import (
	"testing"

	"github.com/jonathan/buildwise/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFloorsFactor(t *testing.T) {
	assert.Equal(t, 1.0, FloorsFactor(1))
	assert.InDelta(t, 1.08, FloorsFactor(2), 1e-12)
	assert.InDelta(t, 1.32, FloorsFactor(5), 1e-12)
}

func TestEstimateMaterials_SampleProject(t *testing.T) {
	q := EstimateMaterials(sampleProject())

	assert.InDelta(t, 816.48, q.CementBags, 1e-6)
	assert.InDelta(t, 7970.4, q.SteelKg, 1e-6)
	assert.InDelta(t, 3538.08, q.SandCuft, 1e-6)
	assert.InDelta(t, 2916.0, q.AggregateCuft, 1e-6)
	assert.InDelta(t, 17107.2, q.Bricks, 1e-6)
}

func TestEstimateMaterials_SingleFloorIsLinearInArea(t *testing.T) {
	small := EstimateMaterials(types.ProjectSpec{BuiltUpAreaSqft: 1000, Floors: 1, TimelineWeeks: 20})
	large := EstimateMaterials(types.ProjectSpec{BuiltUpAreaSqft: 2000, Floors: 1, TimelineWeeks: 20})

	assert.InDelta(t, 420.0, small.CementBags, 1e-9)
	assert.InDelta(t, 8800.0, small.Bricks, 1e-9)
	assert.InDelta(t, 2*small.SteelKg, large.SteelKg, 1e-9)
}

func TestMaterialCost_SampleProject(t *testing.T) {
	cost := MaterialCost(EstimateMaterials(sampleProject()), types.DefaultMaterialRates())
	assert.InDelta(t, 1388016.0, cost, 1e-4)
	assert.Equal(t, 1388016.0, Round2(cost))
}

func TestMaterialCost_CustomRates(t *testing.T) {
	q := types.MaterialQuantities{CementBags: 10, SteelKg: 100, SandCuft: 20, AggregateCuft: 30, Bricks: 1000}
	rates := types.MaterialRates{CementBagINR: 400, SteelKgINR: 70, SandCuftINR: 50, AggregateCuftINR: 40, BrickPerPieceINR: 9}

	assert.InDelta(t, 4000.0+7000+1000+1200+9000, MaterialCost(q, rates), 1e-9)
}

func TestDailyCrewCost(t *testing.T) {
	crew := types.Manpower{types.RoleMason: 3, types.RoleHelper: 4, types.RoleCarpenter: 2, types.RoleBarBender: 3, types.RoleElectrician: 1, types.RolePlumber: 1}
	assert.Equal(t, 12450.0, DailyCrewCost(crew, types.DefaultWageRates()))
}

func TestLaborCost_SampleProject(t *testing.T) {
	labor := LaborCost(AllocateWorkforce(sampleProject()), types.DefaultWageRates())
	// foundation 12450*6*7 + structure 14100*6*13 + roofing 9900*6*5 + finishing 16900*6*11
	assert.Equal(t, 3035100.0, labor)
}

func TestLaborCost_SixDayWeek(t *testing.T) {
	allocations := []types.PhaseAllocation{
		{Phase: types.PhaseFoundation, Weeks: 2, Manpower: types.Manpower{types.RoleMason: 1}},
	}
	assert.Equal(t, 900.0*6*2, LaborCost(allocations, types.DefaultWageRates()))
}

func TestLaborCost_ShortTimelinesBillScheduledWeeks(t *testing.T) {
	wages := types.DefaultWageRates()
	wages.PainterDailyINR = 100000

	tests := []struct {
		timeline int
		weeks    []int
	}{
		{1, []int{1, 0, 0, 0}},
		{2, []int{1, 1, 0, 0}},
		{3, []int{1, 1, 1, 0}},
	}

	for _, tt := range tests {
		project := types.ProjectSpec{BuiltUpAreaSqft: 1000, Floors: 1, TimelineWeeks: tt.timeline}
		allocations := AllocateWorkforce(project)
		assert.Equal(t, tt.weeks, ScheduledWeeks(allocations), "timeline %d", tt.timeline)

		expected := 0.0
		for _, entry := range BuildWeeklySchedule(allocations) {
			expected += DailyCrewCost(entry.RequiredWorkers, wages) * 6
		}
		labor := LaborCost(allocations, wages)
		assert.InDelta(t, expected, labor, 1e-6, "timeline %d", tt.timeline)
		assert.Positive(t, labor, "timeline %d", tt.timeline)
	}
}

func TestBreakup_Additive(t *testing.T) {
	tests := []struct {
		name     string
		material float64
		labor    float64
	}{
		{"whole numbers", 1388016, 3035100},
		{"fractions", 1234.5678, 9876.5432},
		{"float noise", 0.1, 0.2},
		{"half cents", 10.005, 20.015},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Breakup(tt.material, tt.labor)
			assert.Equal(t, Round2(tt.material), b.MaterialCostINR)
			assert.Equal(t, Round2(tt.labor), b.LaborCostINR)
			assert.InDelta(t, Round2(tt.material)+Round2(tt.labor), b.TotalCostINR, 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.29, Round2(36.0/28.0))
	assert.Equal(t, 17.4, Round2((1.29-1)*60))
	assert.Equal(t, 900.0, Round2(900))
	assert.Equal(t, 333.33, Round2(1000.0/3))
}
