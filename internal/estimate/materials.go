package estimate

import "github.com/jonathan/buildwise/internal/types"

// FloorsFactor returns the material multiplier for a building's height.
// Each floor above the first adds 8% to every material.
func FloorsFactor(floors int) float64 {
	return 1 + float64(floors-1)*floorMaterialGrowth
}

// EstimateMaterials derives bulk material quantities from the project's area and floor count.
func EstimateMaterials(project types.ProjectSpec) types.MaterialQuantities {
	area := project.BuiltUpAreaSqft
	factor := FloorsFactor(project.Floors)
	return types.MaterialQuantities{
		CementBags:    area * cementBagsPerSqft * factor,
		SteelKg:       area * steelKgPerSqft * factor,
		SandCuft:      area * sandCuftPerSqft * factor,
		AggregateCuft: area * aggregateCuftPerSqft * factor,
		Bricks:        area * bricksPerSqft * factor,
	}
}
