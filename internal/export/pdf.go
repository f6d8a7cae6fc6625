// Package export renders cutlists, quotations and shop-floor documents
// to portable file formats.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mistrywoodworks/panelquote/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 6.0
)

var cutlistColWidths = []float64{10, 45, 28, 30, 24, 24, 20, 36, 50}
var cutlistHeaders = []string{"#", "Unit", "Panel", "Type", "Width", "Height", "Sqft", "Laminate", "Remarks"}

// roomGroup collects the contiguous run of panels belonging to one room.
type roomGroup struct {
	name   string
	panels []model.PanelItem
}

// WriteCutlistPDF generates the production cutlist document: one table
// section per room with final panel dimensions, followed by totals and
// the edge banding summary. The quotation's panel adjustments are
// applied first, so deleted panels do not appear and laminate overrides
// take effect.
func WriteCutlistPDF(path string, q model.Quotation, panels []model.PanelItem) error {
	panels = q.Adjustments.Apply(panels)
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	y := renderCutlistTitle(pdf, q, len(panels))
	for _, group := range groupByRoom(panels) {
		y = renderRoomSection(pdf, q, group, y)
	}
	y = renderCutlistTotals(pdf, panels, y)
	renderBandingSummary(pdf, panels, y)
	renderFooter(pdf, pageWidth, pageHeight)

	return pdf.OutputFileAndClose(path)
}

// groupByRoom splits the cutlist into per-room runs, preserving order.
func groupByRoom(panels []model.PanelItem) []roomGroup {
	var groups []roomGroup
	lastIndex := -1
	for _, p := range panels {
		if len(groups) == 0 || p.RoomIndex != lastIndex {
			groups = append(groups, roomGroup{name: p.RoomName})
			lastIndex = p.RoomIndex
		}
		groups[len(groups)-1].panels = append(groups[len(groups)-1].panels, p)
	}
	return groups
}

func renderCutlistTitle(pdf *fpdf.Fpdf, q model.Quotation, panelCount int) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := "Cutlist"
	if q.Name != "" {
		title = fmt.Sprintf("Cutlist - %s", q.Name)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	sub := fmt.Sprintf("%d panels | %s", panelCount, time.Now().Format("02 Jan 2006"))
	if q.Customer != "" {
		sub = fmt.Sprintf("%s | %s", q.Customer, sub)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, sub, "", 0, "L", false, 0, "")

	return marginTop + headerHeight + 8
}

// ensureSpace starts a new page when fewer than needed millimeters
// remain below y on a page of the given height.
func ensureSpace(pdf *fpdf.Fpdf, y, needed, pageH float64) float64 {
	if y+needed > pageH-marginBottom {
		pdf.AddPage()
		return marginTop
	}
	return y
}

func renderRoomSection(pdf *fpdf.Fpdf, q model.Quotation, group roomGroup, y float64) float64 {
	y = ensureSpace(pdf, y, rowHeight*3, pageHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, rowHeight+1, " "+group.name, "1", 0, "L", true, 0, "")
	y += rowHeight + 1

	y = renderCutlistTableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range group.panels {
		prevY := y
		y = ensureSpace(pdf, y, rowHeight, pageHeight)
		if y != prevY {
			// New page: repeat the column header
			y = renderCutlistTableHeader(pdf, y)
			pdf.SetFont("Helvetica", "", 9)
		}

		values := []string{
			fmt.Sprintf("%d", i+1),
			unitDisplay(p),
			p.PanelLabel,
			string(p.PanelType),
			fmt.Sprintf("%.0f", p.WidthMm),
			fmt.Sprintf("%.0f", p.HeightMm),
			fmt.Sprintf("%.2f", p.AreaSqft()),
			p.LaminateCode,
			panelRemarks(q, p),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		x := marginLeft
		for j, v := range values {
			align := "C"
			if j == 1 || j == 8 {
				align = "L"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(cutlistColWidths[j], rowHeight, v, "1", 0, align, true, 0, "")
			x += cutlistColWidths[j]
		}
		y += rowHeight
	}

	return y + 3
}

func renderCutlistTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for j, h := range cutlistHeaders {
		pdf.SetXY(x, y)
		pdf.CellFormat(cutlistColWidths[j], rowHeight, h, "1", 0, "C", true, 0, "")
		x += cutlistColWidths[j]
	}
	return y + rowHeight
}

func renderCutlistTotals(pdf *fpdf.Fpdf, panels []model.PanelItem, y float64) float64 {
	var totalSqft float64
	for _, p := range panels {
		totalSqft += p.AreaSqft()
	}

	y = ensureSpace(pdf, y, rowHeight+2, pageHeight)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(120, rowHeight, fmt.Sprintf("Total: %d panels, %.2f sqft", len(panels), totalSqft), "", 0, "L", false, 0, "")
	return y + rowHeight + 2
}

func renderBandingSummary(pdf *fpdf.Fpdf, panels []model.PanelItem, y float64) {
	banding := model.CalculateEdgeBanding(panels, model.DefaultBandingWastePercent)

	y = ensureSpace(pdf, y, rowHeight+5*float64(1+len(banding.PerLaminate)), pageHeight)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(150, rowHeight, "Edge banding", "", 0, "L", false, 0, "")
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, y)
	line := fmt.Sprintf("%.1f m plus %.0f%% waste = %.1f m", banding.TotalLinearM, banding.WastePercent, banding.TotalWithWasteM)
	pdf.CellFormat(150, 5, line, "", 0, "L", false, 0, "")
	y += 5

	for _, lb := range banding.PerLaminate {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(150, 5, fmt.Sprintf("%s: %d panels, %.1f m", laminateDisplay(lb.LaminateCode), lb.PanelCount, lb.TotalM), "", 0, "L", false, 0, "")
		y += 5
	}
}

// renderFooter draws the generator line at the bottom of the current page.
func renderFooter(pdf *fpdf.Fpdf, pageW, pageH float64) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageH-marginBottom)
	pdf.CellFormat(pageW-marginLeft-marginRight, 4, "Generated by PanelQuote", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// unitDisplay returns the drawn unit's label, falling back to its type.
func unitDisplay(p model.PanelItem) string {
	if p.UnitLabel != "" {
		return p.UnitLabel
	}
	return p.UnitType
}

func laminateDisplay(code string) string {
	if code == "" {
		return "Unspecified"
	}
	return code
}

// panelRemarks builds the remarks cell from the quotation's adjustment
// marks and the panel's grain constraint.
func panelRemarks(q model.Quotation, p model.PanelItem) string {
	var notes []string
	if q.Adjustments.GaddiFor(p.ID) {
		notes = append(notes, "Gaddi")
	}
	if !p.GrainLocked {
		notes = append(notes, "Grain free")
	}
	return strings.Join(notes, ", ")
}
