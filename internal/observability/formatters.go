// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/jonathan/buildwise/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStage outputs a one-line progress message for a pipeline stage.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStage(category, step, message string) {
	fmt.Fprintf(p.out, "[%s/%s] %s\n", category, step, message)
}

// PrintEstimate outputs every section of an estimate as a series of boxes.
func (p *Printer) PrintEstimate(resp *types.EstimationResponse) {
	if resp == nil {
		return
	}
	p.PrintCost(resp.Project, resp.Cost)
	p.PrintMaterials(resp.MaterialRequirements)
	p.PrintWorkforce(resp.WorkforceAllocation)
	p.PrintSchedule(resp.WeeklySchedule)
	p.PrintCompression(resp.CompressionImpact)
	p.PrintLayouts(resp.AILayoutSuggestions)
}

// PrintCost outputs the project summary with its cost breakup.
func (p *Printer) PrintCost(project types.ProjectSpec, cost types.CostBreakup) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Area:      %.2f sqft\n", project.BuiltUpAreaSqft))
	sb.WriteString(fmt.Sprintf("Floors:    %d\n", project.Floors))
	sb.WriteString(fmt.Sprintf("Timeline:  %d weeks\n\n", project.TimelineWeeks))
	sb.WriteString(fmt.Sprintf("Labor:     %14.2f INR\n", cost.LaborCostINR))
	sb.WriteString(fmt.Sprintf("Material:  %14.2f INR\n", cost.MaterialCostINR))
	sb.WriteString(fmt.Sprintf("Total:     %14.2f INR", cost.TotalCostINR))

	p.printBox("ESTIMATE SUMMARY", sb.String())
}

// PrintMaterials outputs the estimated material quantities.
func (p *Printer) PrintMaterials(q types.MaterialQuantities) {
	lines := []string{
		fmt.Sprintf("Cement:     %12.2f bags", q.CementBags),
		fmt.Sprintf("Steel:      %12.2f kg", q.SteelKg),
		fmt.Sprintf("Sand:       %12.2f cuft", q.SandCuft),
		fmt.Sprintf("Aggregate:  %12.2f cuft", q.AggregateCuft),
		fmt.Sprintf("Bricks:     %12.2f pcs", q.Bricks),
	}
	p.printBox("MATERIAL REQUIREMENTS", strings.Join(lines, "\n"))
}

// PrintWorkforce outputs each phase's duration and crew size.
func (p *Printer) PrintWorkforce(allocations []types.PhaseAllocation) {
	if len(allocations) == 0 {
		return
	}

	var sb strings.Builder
	for i, alloc := range allocations {
		sb.WriteString(fmt.Sprintf("%-11s %3d weeks  %3d workers\n", alloc.Phase, alloc.Weeks, alloc.Manpower.Total()))
		crew := make([]string, 0, len(types.Roles))
		for _, role := range types.Roles {
			if n := alloc.Manpower[role]; n > 0 {
				crew = append(crew, fmt.Sprintf("%s %d", role, n))
			}
		}
		sb.WriteString("  " + strings.Join(crew, ", "))
		if i < len(allocations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WORKFORCE ALLOCATION", sb.String())
}

// PrintSchedule outputs the first weeks of the schedule and a per-phase span list.
func (p *Printer) PrintSchedule(entries []types.ScheduleEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total weeks: %d\n\n", len(entries)))

	start := 0
	for i := 1; i <= len(entries); i++ {
		if i < len(entries) && entries[i].Phase == entries[start].Phase {
			continue
		}
		sb.WriteString(fmt.Sprintf("Weeks %2d-%-2d  %s\n", entries[start].Week, entries[i-1].Week, entries[start].Phase))
		start = i
	}

	sb.WriteString("\n")
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("Week %d: %s\n", e.Week, strings.Join(e.KeyTasks, ", ")))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more weeks", len(entries)-maxItemsToShow))
	}

	p.printBox("WEEKLY SCHEDULE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompression outputs the compression impact, if one was requested.
func (p *Printer) PrintCompression(c types.Compression) {
	impact, ok := types.ImpactOf(c)
	if !ok {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Timeline:           %d -> %d weeks\n", impact.BaselineTimelineWeeks, impact.CompressedTimelineWeeks))
	sb.WriteString(fmt.Sprintf("Acceleration:       %.2fx\n", impact.AccelerationFactor))
	sb.WriteString(fmt.Sprintf("Extra workers:      %.2f%%\n", impact.AdditionalWorkersPercent))
	sb.WriteString(fmt.Sprintf("Extra labor cost:   %.2f INR\n", impact.AdditionalLaborCostINR))
	sb.WriteString(fmt.Sprintf("Compressed total:   %.2f INR", impact.CompressedTotalCostINR))

	p.printBox("COMPRESSION IMPACT", sb.String())
}

// PrintLayouts outputs the room mix suggested for each floor.
func (p *Printer) PrintLayouts(suggestions []types.LayoutSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("Floor %d (%.2f sqft)\n", s.Floor, s.ApproximateAreaSqft))
		rooms := make([]string, 0, len(s.Rooms))
		for _, name := range slices.Sorted(maps.Keys(s.Rooms)) {
			rooms = append(rooms, fmt.Sprintf("%s %d", name, s.Rooms[name]))
		}
		sb.WriteString("  " + strings.Join(rooms, ", ") + "\n")
		for _, note := range s.Notes {
			sb.WriteString("  - " + note + "\n")
		}
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LAYOUT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
