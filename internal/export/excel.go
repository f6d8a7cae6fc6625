package export

import (
	"fmt"
	"math"

	"github.com/mistrywoodworks/panelquote/internal/model"
	"github.com/xuri/excelize/v2"
)

var xlsxCutlistHeaders = []string{
	"#", "Room", "Unit", "Panel", "Type", "Width (mm)", "Height (mm)",
	"Area (sqft)", "Laminate", "Grain", "Remarks",
}

var xlsxPricingHeaders = []string{
	"#", "Unit", "Carcass (sqft)", "Shutter (sqft)", "Loft (sqft)",
	"Carcass", "Shutter", "Loft", "Add-ons", "Total",
}

// WriteCutlistXLSX writes the cutlist and the pricing breakdown to an
// xlsx workbook, one sheet each. Panel adjustments are applied to the
// cutlist sheet the same way as in the PDF export.
func WriteCutlistXLSX(path string, q model.Quotation, panels []model.PanelItem, pricing model.PricingResult) error {
	panels = q.Adjustments.Apply(panels)
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	cutSheet := "Cutlist"
	f.SetSheetName("Sheet1", cutSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create bold style: %w", err)
	}

	writeHeaderRow(f, cutSheet, xlsxCutlistHeaders, headerStyle)

	var totalSqft float64
	for i, p := range panels {
		row := i + 2
		setRow(f, cutSheet, row, []interface{}{
			i + 1,
			p.RoomName,
			unitDisplay(p),
			p.PanelLabel,
			string(p.PanelType),
			p.WidthMm,
			p.HeightMm,
			math.Round(p.AreaSqft()*100) / 100,
			p.LaminateCode,
			grainCell(p),
			panelRemarks(q, p),
		})
		totalSqft += p.AreaSqft()
	}

	summaryRow := len(panels) + 2
	f.SetCellValue(cutSheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(cutSheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d panels", len(panels)))
	f.SetCellValue(cutSheet, fmt.Sprintf("H%d", summaryRow), math.Round(totalSqft*100)/100)
	f.SetCellStyle(cutSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("K%d", summaryRow), boldStyle)

	banding := model.CalculateEdgeBanding(panels, model.DefaultBandingWastePercent)
	bandingRow := summaryRow + 2
	f.SetCellValue(cutSheet, fmt.Sprintf("A%d", bandingRow), "Edge banding")
	f.SetCellValue(cutSheet, fmt.Sprintf("B%d", bandingRow),
		fmt.Sprintf("%.1f m (incl. %.0f%% waste)", banding.TotalWithWasteM, banding.WastePercent))
	f.SetCellStyle(cutSheet, fmt.Sprintf("A%d", bandingRow), fmt.Sprintf("B%d", bandingRow), boldStyle)
	for i, lb := range banding.PerLaminate {
		row := bandingRow + 1 + i
		f.SetCellValue(cutSheet, fmt.Sprintf("B%d", row), laminateDisplay(lb.LaminateCode))
		f.SetCellValue(cutSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.1f m", lb.TotalM))
		f.SetCellValue(cutSheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%d panels", lb.PanelCount))
	}

	cutWidths := []float64{5, 14, 18, 14, 15, 12, 12, 12, 14, 10, 20}
	for i, w := range cutWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(cutSheet, col, col, w)
	}

	priceSheet := "Pricing"
	if _, err := f.NewSheet(priceSheet); err != nil {
		return fmt.Errorf("create pricing sheet: %w", err)
	}
	writeHeaderRow(f, priceSheet, xlsxPricingHeaders, headerStyle)

	for i, up := range pricing.Units {
		row := i + 2
		setRow(f, priceSheet, row, []interface{}{
			i + 1,
			quoteLineDescription(up),
			up.CarcassSqft,
			up.ShutterSqft,
			up.LoftSqft,
			up.CarcassPrice,
			up.ShutterPrice,
			up.LoftPrice,
			up.AddOnPrice,
			up.Total(),
		})
	}

	totalsStart := len(pricing.Units) + 3
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", pricing.Subtotal},
		{"Add-ons", pricing.AddOnTotal},
		{fmt.Sprintf("GST (%.0f%%)", model.GSTRate*100), pricing.GST},
		{"Grand Total", pricing.GrandTotal},
	}
	for i, t := range totals {
		row := totalsStart + i
		f.SetCellValue(priceSheet, fmt.Sprintf("I%d", row), t.label)
		f.SetCellValue(priceSheet, fmt.Sprintf("J%d", row), t.value)
	}
	grandRow := totalsStart + len(totals) - 1
	f.SetCellStyle(priceSheet, fmt.Sprintf("I%d", grandRow), fmt.Sprintf("J%d", grandRow), boldStyle)

	priceWidths := []float64{5, 24, 13, 13, 13, 12, 12, 12, 12, 12}
	for i, w := range priceWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(priceSheet, col, col, w)
	}

	if idx, err := f.GetSheetIndex(cutSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}
}

func grainCell(p model.PanelItem) string {
	if p.GrainLocked {
		return "Locked"
	}
	return "Free"
}
