// Package pipeline provides the high-level orchestration for producing an estimate.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/buildwise/internal/estimate"
	"github.com/jonathan/buildwise/internal/pipeline/steps"
	"github.com/jonathan/buildwise/internal/types"
)

// Stage names reported through ProgressEvent.Step.
const (
	StageMaterials    = steps.Materials
	StageMaterialCost = steps.MaterialCost
	StageWorkforce    = steps.Workforce
	StageSchedule     = steps.Schedule
	StageLaborCost    = steps.LaborCost
	StageCost         = steps.Cost
	StageCompression  = steps.Compression
	StageLayout       = steps.Layout
)

// Stage categories reported through ProgressEvent.Category.
const (
	CategoryMaterials = steps.CategoryMaterials
	CategoryLabor     = steps.CategoryLabor
	CategoryAnalysis  = steps.CategoryAnalysis
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
// Calls are serialized even though branches run concurrently.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	OnProgress ProgressCallback
	// IncludeContent attaches each stage's output to its progress event.
	IncludeContent bool
}

type progress struct {
	mu      sync.Mutex
	opts    *RunOptions
	tracker *steps.Tracker
}

// begin fails if a stage the step depends on has not completed.
func (p *progress) begin(step string) error {
	return p.tracker.Begin(step)
}

// emit marks step complete and calls the progress callback if configured
func (p *progress) emit(step, category, message string, content any) {
	p.tracker.Complete(step)
	if p.opts.OnProgress == nil {
		return
	}
	if !p.opts.IncludeContent {
		content = nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		Content:  content,
	})
}

// materialsResult holds the outputs from the materials branch
type materialsResult struct {
	quantities types.MaterialQuantities
	cost       float64
}

// laborResult holds the outputs from the labor branch
type laborResult struct {
	allocations []types.PhaseAllocation
	schedule    []types.ScheduleEntry
	cost        float64
}

// Run produces a complete estimate for an already validated request.
//
// The materials branch (quantities, then material cost) and the labor branch
// (crew allocation, weekly schedule, then labor cost) share no data and run
// concurrently. Their costs then feed the cost breakup and compression analysis.
// Stage ordering follows steps.StepRegistry; a stage that starts before its
// dependencies completed is an error. Otherwise the only error is cancellation of ctx.
func Run(ctx context.Context, req types.EstimationRequest, opts RunOptions) (*types.EstimationResponse, error) {
	p := &progress{opts: &opts, tracker: steps.NewTracker()}
	project := req.Project

	g, gCtx := errgroup.WithContext(ctx)

	var materials materialsResult
	var labor laborResult

	// Materials Branch
	g.Go(func() error {
		if err := p.begin(StageMaterials); err != nil {
			return err
		}
		quantities := estimate.EstimateMaterials(project)
		p.emit(StageMaterials, CategoryMaterials, "Estimated material quantities", quantities)
		if err := gCtx.Err(); err != nil {
			return fmt.Errorf("materials branch cancelled: %w", err)
		}
		if err := p.begin(StageMaterialCost); err != nil {
			return err
		}

		cost := estimate.MaterialCost(quantities, req.Materials)
		p.emit(StageMaterialCost, CategoryMaterials, fmt.Sprintf("Material cost %.2f INR", cost), nil)

		materials = materialsResult{quantities: quantities, cost: cost}
		return nil
	})

	// Labor Branch
	g.Go(func() error {
		if err := p.begin(StageWorkforce); err != nil {
			return err
		}
		allocations := estimate.AllocateWorkforce(project)
		p.emit(StageWorkforce, CategoryLabor, fmt.Sprintf("Allocated crews for %d phases", len(allocations)), allocations)
		if err := gCtx.Err(); err != nil {
			return fmt.Errorf("labor branch cancelled: %w", err)
		}
		if err := p.begin(StageSchedule); err != nil {
			return err
		}

		schedule := estimate.BuildWeeklySchedule(allocations)
		p.emit(StageSchedule, CategoryLabor, fmt.Sprintf("Built %d-week schedule", len(schedule)), nil)
		if err := gCtx.Err(); err != nil {
			return fmt.Errorf("labor branch cancelled: %w", err)
		}
		if err := p.begin(StageLaborCost); err != nil {
			return err
		}

		cost := estimate.LaborCost(allocations, req.Wages)
		p.emit(StageLaborCost, CategoryLabor, fmt.Sprintf("Labor cost %.2f INR", cost), nil)

		labor = laborResult{allocations: allocations, schedule: schedule, cost: cost}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("estimate cancelled: %w", err)
	}

	if err := p.begin(StageCost); err != nil {
		return nil, err
	}
	breakup := estimate.Breakup(materials.cost, labor.cost)
	p.emit(StageCost, CategoryAnalysis, fmt.Sprintf("Total cost %.2f INR", breakup.TotalCostINR), breakup)

	if err := p.begin(StageCompression); err != nil {
		return nil, err
	}
	compression := estimate.AnalyzeCompression(project.TimelineWeeks, req.TargetWeeks(), breakup.TotalCostINR, labor.cost)
	if impact, ok := types.ImpactOf(compression); ok {
		p.emit(StageCompression, CategoryAnalysis,
			fmt.Sprintf("Compressing to %d weeks adds %.2f INR", impact.CompressedTimelineWeeks, impact.AdditionalLaborCostINR), impact)
	} else {
		p.emit(StageCompression, CategoryAnalysis, "No compression requested", nil)
	}

	if err := p.begin(StageLayout); err != nil {
		return nil, err
	}
	layouts := estimate.LayoutSuggestions(project)
	p.emit(StageLayout, CategoryAnalysis, fmt.Sprintf("Suggested layouts for %d floors", len(layouts)), layouts)

	return &types.EstimationResponse{
		Project:              project,
		MaterialRequirements: materials.quantities,
		WorkforceAllocation:  labor.allocations,
		PhasewisePlan:        estimate.PhasewisePlan(project),
		WeeklySchedule:       labor.schedule,
		Cost:                 breakup,
		CompressionImpact:    compression,
		AILayoutSuggestions:  layouts,
	}, nil
}
