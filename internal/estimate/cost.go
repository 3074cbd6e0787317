package estimate

import (
	"math"

	"github.com/jonathan/buildwise/internal/types"
)

// Round2 rounds a monetary or ratio value to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// MaterialCost prices the material quantities at the given unit rates.
// The result is unrounded.
func MaterialCost(q types.MaterialQuantities, rates types.MaterialRates) float64 {
	return q.CementBags*rates.CementBagINR +
		q.SteelKg*rates.SteelKgINR +
		q.SandCuft*rates.SandCuftINR +
		q.AggregateCuft*rates.AggregateCuftINR +
		q.Bricks*rates.BrickPerPieceINR
}

// DailyCrewCost returns what one working day of the given crew costs.
func DailyCrewCost(crew types.Manpower, wages types.WageRates) float64 {
	total := 0.0
	// Fixed role order keeps the float accumulation deterministic.
	for _, role := range types.Roles {
		total += float64(crew[role]) * wages.Daily(role)
	}
	return total
}

// LaborCost prices every phase's crew at six working days per week, over the
// weeks the phase actually occupies in the schedule (see ScheduledWeeks).
// The result is unrounded and never negative for non-negative wages.
func LaborCost(allocations []types.PhaseAllocation, wages types.WageRates) float64 {
	weeks := ScheduledWeeks(allocations)
	total := 0.0
	for i, alloc := range allocations {
		total += DailyCrewCost(alloc.Manpower, wages) * workingDaysPerWeek * float64(weeks[i])
	}
	return total
}

// Breakup rounds the material and labor costs once and totals the rounded parts.
func Breakup(materialCost, laborCost float64) types.CostBreakup {
	labor := Round2(laborCost)
	material := Round2(materialCost)
	return types.CostBreakup{
		LaborCostINR:    labor,
		MaterialCostINR: material,
		TotalCostINR:    Round2(labor + material),
	}
}
