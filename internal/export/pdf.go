package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/buildwise/internal/types"
)

const (
	pageWidth = 190.0 // A4 width minus 10mm margins
	rowHeight = 7.0
)

// WritePDF renders a one-document summary of resp: cost, materials, crews,
// compression impact and layouts. The weekly schedule is left to the workbook.
func WritePDF(w io.Writer, resp *types.EstimationResponse) error {
	if resp == nil {
		return fmt.Errorf("estimate is nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	p := resp.Project
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(pageWidth, 10, "Construction Estimate")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(pageWidth, 6, fmt.Sprintf("Built-up area: %.2f sqft | Floors: %d | Timeline: %d weeks",
		p.BuiltUpAreaSqft, p.Floors, p.TimelineWeeks))
	pdf.Ln(10)

	section(pdf, "Cost")
	keyValueRow(pdf, "Labor cost (INR)", formatINR(resp.Cost.LaborCostINR))
	keyValueRow(pdf, "Material cost (INR)", formatINR(resp.Cost.MaterialCostINR))
	pdf.SetFont("Arial", "B", 10)
	keyValueRow(pdf, "Total cost (INR)", formatINR(resp.Cost.TotalCostINR))
	pdf.Ln(4)

	section(pdf, "Materials")
	tableHeader(pdf, []string{"Material", "Unit", "Quantity"}, []float64{80, 40, 70})
	pdf.SetFont("Arial", "", 10)
	for _, line := range materialLines(resp.MaterialRequirements) {
		pdf.CellFormat(80, rowHeight, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, rowHeight, line.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, rowHeight, fmt.Sprintf("%.2f", line.Quantity), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Workforce")
	widths := []float64{26, 14}
	titles := []string{"Phase", "Weeks"}
	for _, role := range types.Roles {
		titles = append(titles, roleTitle(role))
		widths = append(widths, 150.0/float64(len(types.Roles)))
	}
	pdf.SetFont("Arial", "B", 8)
	tableHeader(pdf, titles, widths)
	pdf.SetFont("Arial", "", 9)
	for _, alloc := range resp.WorkforceAllocation {
		pdf.CellFormat(widths[0], rowHeight, string(alloc.Phase), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%d", alloc.Weeks), "1", 0, "C", false, 0, "")
		for i, role := range types.Roles {
			ln := 0
			if i == len(types.Roles)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i+2], rowHeight, fmt.Sprintf("%d", alloc.Manpower[role]), "1", ln, "C", false, 0, "")
		}
	}
	pdf.Ln(4)

	if impact, ok := types.ImpactOf(resp.CompressionImpact); ok {
		section(pdf, "Compression")
		pdf.SetFont("Arial", "", 10)
		keyValueRow(pdf, "Compressed timeline (weeks)", fmt.Sprintf("%d", impact.CompressedTimelineWeeks))
		keyValueRow(pdf, "Acceleration factor", fmt.Sprintf("%.2f", impact.AccelerationFactor))
		keyValueRow(pdf, "Additional workers (%)", fmt.Sprintf("%.2f", impact.AdditionalWorkersPercent))
		keyValueRow(pdf, "Additional labor cost (INR)", formatINR(impact.AdditionalLaborCostINR))
		keyValueRow(pdf, "Compressed total cost (INR)", formatINR(impact.CompressedTotalCostINR))
		pdf.Ln(4)
	}

	section(pdf, "Layout suggestions")
	for _, s := range resp.AILayoutSuggestions {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(pageWidth, 6, fmt.Sprintf("Floor %d (%.2f sqft)", s.Floor, s.ApproximateAreaSqft))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pageWidth, 5, "Rooms: "+roomsSummary(s.Rooms), "", "L", false)
		pdf.MultiCell(pageWidth, 5, "Notes: "+strings.Join(s.Notes, "; "), "", "L", false)
		pdf.Ln(2)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(pageWidth, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
}

func keyValueRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(120, rowHeight, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, rowHeight, value, "1", 1, "R", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, titles []string, widths []float64) {
	pdf.SetFillColor(240, 240, 240)
	for i, title := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], rowHeight, title, "1", ln, "C", true, 0, "")
	}
}

// formatINR formats an amount with two decimals and thousands separators.
func formatINR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	return sign + sb.String() + "." + frac
}
