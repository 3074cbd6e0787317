package estimate

import "github.com/jonathan/buildwise/internal/types"

// ScheduledWeeks returns how many weeks of each allocation make it onto the
// weekly schedule: the phase's duration, clamped at zero and at the weeks left
// of the timeline once earlier phases are placed.
//
// For normal timelines this equals each allocation's Weeks. For very short ones
// the drift correction can leave finishing negative; the earlier phases then
// use up the whole timeline and the later ones get nothing.
func ScheduledWeeks(allocations []types.PhaseAllocation) []int {
	remaining := 0
	for _, alloc := range allocations {
		remaining += alloc.Weeks
	}

	weeks := make([]int, len(allocations))
	for i, alloc := range allocations {
		n := min(max(alloc.Weeks, 0), max(remaining, 0))
		weeks[i] = n
		remaining -= n
	}
	return weeks
}

// BuildWeeklySchedule expands phase allocations into one entry per week,
// numbering weeks from 1 across phase boundaries.
//
// Each phase contributes its ScheduledWeeks, so the schedule length is the sum
// of all durations even when the last phase carries a negative correction.
func BuildWeeklySchedule(allocations []types.PhaseAllocation) []types.ScheduleEntry {
	weeks := ScheduledWeeks(allocations)
	total := 0
	for _, n := range weeks {
		total += n
	}

	schedule := make([]types.ScheduleEntry, 0, total)
	week := 1
	for i, alloc := range allocations {
		for range weeks[i] {
			schedule = append(schedule, types.ScheduleEntry{
				Week:            week,
				Phase:           alloc.Phase,
				KeyTasks:        PhaseTasks(alloc.Phase),
				RequiredWorkers: alloc.Manpower.Clone(),
			})
			week++
		}
	}
	return schedule
}
