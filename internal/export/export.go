// Package export renders estimates as spreadsheet and PDF documents.
package export

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/buildwise/internal/types"
)

// Content types of the rendered documents.
const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDFContentType  = "application/pdf"
)

// FileName returns a descriptive file name for an estimate, e.g.
// "estimate-1800sqft-2fl-36wk.xlsx".
func FileName(project types.ProjectSpec, ext string) string {
	return fmt.Sprintf("estimate-%ssqft-%dfl-%dwk.%s",
		strconv.FormatFloat(project.BuiltUpAreaSqft, 'f', -1, 64),
		project.Floors, project.TimelineWeeks, ext)
}

// materialLine is one row of the material table.
type materialLine struct {
	Name     string
	Unit     string
	Quantity float64
}

func materialLines(q types.MaterialQuantities) []materialLine {
	return []materialLine{
		{"Cement", "bags", q.CementBags},
		{"Steel", "kg", q.SteelKg},
		{"Sand", "cuft", q.SandCuft},
		{"Aggregate", "cuft", q.AggregateCuft},
		{"Bricks", "pcs", q.Bricks},
	}
}

// roomsSummary renders a room mix as "bathroom: 2, bedroom: 2, ..." in key order.
func roomsSummary(rooms map[string]int) string {
	parts := make([]string, 0, len(rooms))
	for _, name := range slices.Sorted(maps.Keys(rooms)) {
		parts = append(parts, fmt.Sprintf("%s: %d", name, rooms[name]))
	}
	return strings.Join(parts, ", ")
}

// roleTitle turns "bar_bender" into "Bar Bender".
func roleTitle(role types.Role) string {
	words := strings.Split(string(role), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
