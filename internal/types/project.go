// Package types provides type definitions for structured data used throughout the buildwise estimator.
package types

// Phase identifies one of the fixed construction stages that partition a project timeline.
type Phase string

// Construction phases in execution order.
const (
	PhaseFoundation Phase = "foundation"
	PhaseStructure  Phase = "structure"
	PhaseRoofing    Phase = "roofing"
	PhaseFinishing  Phase = "finishing"
)

// Phases lists every phase in the order work happens on site.
var Phases = []Phase{PhaseFoundation, PhaseStructure, PhaseRoofing, PhaseFinishing}

// Role identifies a worker trade.
type Role string

// Worker roles.
const (
	RoleMason       Role = "mason"
	RoleHelper      Role = "helper"
	RoleCarpenter   Role = "carpenter"
	RoleBarBender   Role = "bar_bender"
	RoleElectrician Role = "electrician"
	RolePlumber     Role = "plumber"
	RolePainter     Role = "painter"
)

// Roles lists every worker role in presentation order.
var Roles = []Role{
	RoleMason,
	RoleHelper,
	RoleCarpenter,
	RoleBarBender,
	RoleElectrician,
	RolePlumber,
	RolePainter,
}

// ProjectSpec describes the project being estimated.
type ProjectSpec struct {
	BuiltUpAreaSqft float64 `json:"built_up_area_sqft" yaml:"built_up_area_sqft" validate:"required,gt=0"`
	Floors          int     `json:"floors" yaml:"floors" validate:"required,gt=0"`
	TimelineWeeks   int     `json:"timeline_weeks" yaml:"timeline_weeks" validate:"required,gt=0"`
}

// Manpower maps a worker role to a headcount.
type Manpower map[Role]int

// Clone returns an independent copy of the mapping.
func (m Manpower) Clone() Manpower {
	out := make(Manpower, len(m))
	for role, count := range m {
		out[role] = count
	}
	return out
}

// Total returns the sum of all headcounts.
func (m Manpower) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// MaterialQuantities holds the estimated amount of each bulk material.
type MaterialQuantities struct {
	CementBags    float64 `json:"cement_bags"`
	SteelKg       float64 `json:"steel_kg"`
	SandCuft      float64 `json:"sand_cuft"`
	AggregateCuft float64 `json:"aggregate_cuft"`
	Bricks        float64 `json:"bricks"`
}

// PhaseAllocation is the crew and duration planned for a single phase.
type PhaseAllocation struct {
	Phase    Phase    `json:"phase"`
	Weeks    int      `json:"weeks"`
	Manpower Manpower `json:"manpower"`
}

// ScheduleEntry is one week of the project schedule.
type ScheduleEntry struct {
	Week            int      `json:"week"`
	Phase           Phase    `json:"phase"`
	KeyTasks        []string `json:"key_tasks"`
	RequiredWorkers Manpower `json:"required_workers"`
}

// PhasePlan is the nominal duration and share of the timeline for a phase.
type PhasePlan struct {
	DurationWeeks     int     `json:"duration_weeks"`
	CompletionPercent float64 `json:"completion_percent"`
}

// CostBreakup splits the estimate into labor and material cost.
type CostBreakup struct {
	LaborCostINR    float64 `json:"labor_cost_inr"`
	MaterialCostINR float64 `json:"material_cost_inr"`
	TotalCostINR    float64 `json:"total_cost_inr"`
}

// LayoutSuggestion is the suggested room mix for one floor.
type LayoutSuggestion struct {
	Floor               int            `json:"floor"`
	ApproximateAreaSqft float64        `json:"approximate_area_sqft"`
	Rooms               map[string]int `json:"rooms"`
	Notes               []string       `json:"notes"`
}
