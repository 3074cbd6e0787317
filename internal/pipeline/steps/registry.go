// Package steps provides stage definitions and dependency validation
// for the estimation pipeline.
package steps

import (
	"fmt"
	"slices"
	"sync"
)

// Stage names
const (
	Materials    = "materials"
	MaterialCost = "material_cost"
	Workforce    = "workforce"
	Schedule     = "schedule"
	LaborCost    = "labor_cost"
	Cost         = "cost"
	Compression  = "compression"
	Layout       = "layout"
)

// Stages lists every stage in the order a sequential run would complete them.
var Stages = []string{
	Materials, MaterialCost, Workforce, Schedule,
	LaborCost, Cost, Compression, Layout,
}

// Stage categories
const (
	CategoryMaterials = "materials"
	CategoryLabor     = "labor"
	CategoryAnalysis  = "analysis"
)

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all stage definitions
var StepRegistry = map[string]StepDefinition{
	Materials: {
		Name:         Materials,
		Category:     CategoryMaterials,
		Dependencies: []string{},
	},
	MaterialCost: {
		Name:         MaterialCost,
		Category:     CategoryMaterials,
		Dependencies: []string{Materials},
	},
	Workforce: {
		Name:         Workforce,
		Category:     CategoryLabor,
		Dependencies: []string{},
	},
	Schedule: {
		Name:         Schedule,
		Category:     CategoryLabor,
		Dependencies: []string{Workforce},
	},
	LaborCost: {
		Name:         LaborCost,
		Category:     CategoryLabor,
		Dependencies: []string{Workforce},
	},
	Cost: {
		Name:         Cost,
		Category:     CategoryAnalysis,
		Dependencies: []string{MaterialCost, LaborCost},
	},
	Compression: {
		Name:         Compression,
		Category:     CategoryAnalysis,
		Dependencies: []string{Cost, LaborCost},
	},
	Layout: {
		Name:         Layout,
		Category:     CategoryAnalysis,
		Dependencies: []string{},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("stage %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a stage are completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// GetAvailableSteps returns stages that are not completed and whose dependencies are met, sorted by name.
func GetAvailableSteps(completed map[string]bool) []string {
	var available []string
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if ValidateDependencies(completed, stepName) != nil {
			continue
		}
		available = append(available, stepName)
	}
	slices.Sort(available)
	return available
}

// GetBlockedSteps returns stages whose dependencies are not met, sorted by name.
func GetBlockedSteps(completed map[string]bool) []string {
	var blocked []string
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if ValidateDependencies(completed, stepName) != nil {
			blocked = append(blocked, stepName)
		}
	}
	slices.Sort(blocked)
	return blocked
}

// Tracker records completed stages of one run. It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	completed map[string]bool
}

// NewTracker returns a tracker with no completed stages.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// Begin reports whether stepName may run now.
func (t *Tracker) Begin(stepName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ValidateDependencies(t.completed, stepName)
}

// Complete marks stepName as done.
func (t *Tracker) Complete(stepName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[stepName] = true
}
