package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CompressionRequest asks for the impact of finishing in fewer weeks than planned.
type CompressionRequest struct {
	TargetTimelineWeeks int `json:"target_timeline_weeks" yaml:"target_timeline_weeks" validate:"required,gt=0"`
}

// EstimationRequest is the full input to an estimate.
// Wages and Materials are decoded on top of a default table, so a caller may
// override any subset of rates.
type EstimationRequest struct {
	Project     ProjectSpec         `json:"project" yaml:"project"`
	Wages       WageRates           `json:"wages" yaml:"wages"`
	Materials   MaterialRates       `json:"materials" yaml:"materials"`
	Compression *CompressionRequest `json:"compression,omitempty" yaml:"compression,omitempty"`
}

// NewEstimationRequest returns a request pre-filled with the given rate tables,
// ready to be decoded into.
func NewEstimationRequest(wages WageRates, materials MaterialRates) EstimationRequest {
	return EstimationRequest{
		Wages:     wages,
		Materials: materials,
	}
}

// ErrTargetNotShorter is returned when a compression target does not shorten the timeline.
type ErrTargetNotShorter struct {
	TargetWeeks   int
	TimelineWeeks int
}

func (e *ErrTargetNotShorter) Error() string {
	return fmt.Sprintf("compression.target_timeline_weeks must be less than project.timeline_weeks (got %d, timeline %d)",
		e.TargetWeeks, e.TimelineWeeks)
}

// Validate validates the EstimationRequest using the validator, then checks
// that any compression target is strictly shorter than the project timeline.
func (r *EstimationRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Compression != nil && r.Compression.TargetTimelineWeeks >= r.Project.TimelineWeeks {
		return &ErrTargetNotShorter{
			TargetWeeks:   r.Compression.TargetTimelineWeeks,
			TimelineWeeks: r.Project.TimelineWeeks,
		}
	}
	return nil
}

// TargetWeeks returns the requested compression target, or nil when none was requested.
func (r *EstimationRequest) TargetWeeks() *int {
	if r.Compression == nil {
		return nil
	}
	target := r.Compression.TargetTimelineWeeks
	return &target
}

// EstimationResponse is the full output of an estimate.
type EstimationResponse struct {
	Project              ProjectSpec         `json:"project"`
	MaterialRequirements MaterialQuantities  `json:"material_requirements"`
	WorkforceAllocation  []PhaseAllocation   `json:"workforce_allocation"`
	PhasewisePlan        map[Phase]PhasePlan `json:"phasewise_plan"`
	WeeklySchedule       []ScheduleEntry     `json:"weekly_schedule"`
	Cost                 CostBreakup         `json:"cost"`
	CompressionImpact    Compression         `json:"compression_impact"`
	AILayoutSuggestions  []LayoutSuggestion  `json:"ai_layout_suggestions"`
}
