package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/buildwise/internal/types"
)

// Sheet names in workbook order.
const (
	SheetSummary   = "Summary"
	SheetMaterials = "Materials"
	SheetWorkforce = "Workforce"
	SheetSchedule  = "Schedule"
	SheetLayout    = "Layout"
)

// Sheets lists the workbook sheets in order.
var Sheets = []string{SheetSummary, SheetMaterials, SheetWorkforce, SheetSchedule, SheetLayout}

// WriteXLSX renders resp as an Excel workbook with one sheet per section of the estimate.
func WriteXLSX(w io.Writer, resp *types.EstimationResponse) error {
	if resp == nil {
		return fmt.Errorf("estimate is nil")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory file

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	for _, name := range Sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create %s sheet: %w", strings.ToLower(name), err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sw := &sheetWriter{f: f, headerStyle: headerStyle}
	sw.summary(resp)
	sw.materials(resp.MaterialRequirements)
	sw.workforce(resp.WorkforceAllocation)
	sw.schedule(resp.WeeklySchedule)
	sw.layout(resp.AILayoutSuggestions)
	if sw.err != nil {
		return sw.err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error so rows can be written without checks at each call.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (sw *sheetWriter) row(sheet string, rowNum int, values ...any) {
	if sw.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		sw.err = err
		return
	}
	if err := sw.f.SetSheetRow(sheet, cell, &values); err != nil {
		sw.err = fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
}

func (sw *sheetWriter) header(sheet string, rowNum int, titles ...any) {
	sw.row(sheet, rowNum, titles...)
	if sw.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, rowNum)
	last, _ := excelize.CoordinatesToCellName(len(titles), rowNum)
	if err := sw.f.SetCellStyle(sheet, first, last, sw.headerStyle); err != nil {
		sw.err = err
		return
	}
	lastCol, _ := excelize.ColumnNumberToName(len(titles))
	if err := sw.f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		sw.err = err
	}
}

func (sw *sheetWriter) summary(resp *types.EstimationResponse) {
	p := resp.Project
	sw.header(SheetSummary, 1, "Item", "Value")
	sw.row(SheetSummary, 2, "Built-up area (sqft)", p.BuiltUpAreaSqft)
	sw.row(SheetSummary, 3, "Floors", p.Floors)
	sw.row(SheetSummary, 4, "Timeline (weeks)", p.TimelineWeeks)
	sw.row(SheetSummary, 5, "Labor cost (INR)", resp.Cost.LaborCostINR)
	sw.row(SheetSummary, 6, "Material cost (INR)", resp.Cost.MaterialCostINR)
	sw.row(SheetSummary, 7, "Total cost (INR)", resp.Cost.TotalCostINR)

	impact, ok := types.ImpactOf(resp.CompressionImpact)
	if !ok {
		sw.row(SheetSummary, 9, "Compression", "not requested")
		return
	}
	sw.row(SheetSummary, 9, "Compressed timeline (weeks)", impact.CompressedTimelineWeeks)
	sw.row(SheetSummary, 10, "Acceleration factor", impact.AccelerationFactor)
	sw.row(SheetSummary, 11, "Additional workers (%)", impact.AdditionalWorkersPercent)
	sw.row(SheetSummary, 12, "Additional labor cost (INR)", impact.AdditionalLaborCostINR)
	sw.row(SheetSummary, 13, "Compressed total cost (INR)", impact.CompressedTotalCostINR)
}

func (sw *sheetWriter) materials(q types.MaterialQuantities) {
	sw.header(SheetMaterials, 1, "Material", "Unit", "Quantity")
	for i, line := range materialLines(q) {
		sw.row(SheetMaterials, i+2, line.Name, line.Unit, line.Quantity)
	}
}

func roleHeaders(leading ...any) []any {
	titles := append([]any{}, leading...)
	for _, role := range types.Roles {
		titles = append(titles, roleTitle(role))
	}
	return titles
}

func roleCounts(m types.Manpower, leading ...any) []any {
	values := append([]any{}, leading...)
	for _, role := range types.Roles {
		values = append(values, m[role])
	}
	return values
}

func (sw *sheetWriter) workforce(allocations []types.PhaseAllocation) {
	sw.header(SheetWorkforce, 1, roleHeaders("Phase", "Weeks")...)
	for i, alloc := range allocations {
		sw.row(SheetWorkforce, i+2, roleCounts(alloc.Manpower, string(alloc.Phase), alloc.Weeks)...)
	}
}

func (sw *sheetWriter) schedule(entries []types.ScheduleEntry) {
	sw.header(SheetSchedule, 1, roleHeaders("Week", "Phase", "Key tasks")...)
	for i, entry := range entries {
		sw.row(SheetSchedule, i+2,
			roleCounts(entry.RequiredWorkers, entry.Week, string(entry.Phase), strings.Join(entry.KeyTasks, "; "))...)
	}
}

func (sw *sheetWriter) layout(suggestions []types.LayoutSuggestion) {
	sw.header(SheetLayout, 1, "Floor", "Area (sqft)", "Rooms", "Notes")
	for i, s := range suggestions {
		sw.row(SheetLayout, i+2, s.Floor, s.ApproximateAreaSqft, roomsSummary(s.Rooms), strings.Join(s.Notes, "; "))
	}
}
