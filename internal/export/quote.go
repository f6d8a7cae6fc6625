package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mistrywoodworks/panelquote/internal/model"
)

// Quotation page layout constants (A4 portrait in mm).
const (
	quotePageWidth  = 210.0
	quotePageHeight = 297.0
)

var quoteColWidths = []float64{10, 65, 25, 25, 25, 30}
var quoteHeaders = []string{"#", "Description", "Carcass sqft", "Shutter sqft", "Loft sqft", "Amount"}

// WriteQuotationPDF generates the customer-facing quotation document:
// one pricing line per unit, then the add-on, tax and grand totals, and
// the payment terms. The per-unit amount is the body work only; add-ons
// appear as a single line in the totals block.
func WriteQuotationPDF(path string, q model.Quotation, pricing model.PricingResult, currency string) error {
	if len(pricing.Units) == 0 {
		return fmt.Errorf("no priced units to export")
	}
	if currency == "" {
		currency = "Rs."
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	y := renderQuoteHeader(pdf, q)
	y = renderQuoteTable(pdf, pricing, currency, y)
	y = renderQuoteTotals(pdf, pricing, currency, y)
	renderQuoteTerms(pdf, y)
	renderFooter(pdf, quotePageWidth, quotePageHeight)

	return pdf.OutputFileAndClose(path)
}

func renderQuoteHeader(pdf *fpdf.Fpdf, q model.Quotation) float64 {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(quotePageWidth-marginLeft-marginRight, 10, "QUOTATION", "", 0, "L", false, 0, "")

	date := q.UpdatedAt
	if date.IsZero() {
		date = time.Now()
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(marginLeft, marginTop+10)
	ref := fmt.Sprintf("Ref %s | %s", q.ID, date.Format("02 Jan 2006"))
	if q.Name != "" {
		ref = q.Name + " | " + ref
	}
	pdf.CellFormat(quotePageWidth-marginLeft-marginRight, 5, ref, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginTop + 18
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y, quotePageWidth-marginRight, y)
	y += 6

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(40, 5, "Customer", "", 0, "L", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "", 10)
	for _, detail := range []string{q.Customer, q.Phone, q.SiteAddress} {
		if detail == "" {
			continue
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(quotePageWidth-marginLeft-marginRight, 5, detail, "", 0, "L", false, 0, "")
		y += 5
	}
	return y + 5
}

func renderQuoteTable(pdf *fpdf.Fpdf, pricing model.PricingResult, currency string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for j, h := range quoteHeaders {
		pdf.SetXY(x, y)
		pdf.CellFormat(quoteColWidths[j], rowHeight, h, "1", 0, "C", true, 0, "")
		x += quoteColWidths[j]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, up := range pricing.Units {
		y = ensureSpace(pdf, y, rowHeight, quotePageHeight)

		bodyPrice := up.CarcassPrice + up.ShutterPrice + up.LoftPrice
		values := []string{
			fmt.Sprintf("%d", i+1),
			quoteLineDescription(up),
			sqftCell(up.CarcassSqft),
			sqftCell(up.ShutterSqft),
			sqftCell(up.LoftSqft),
			fmt.Sprintf("%s %.0f", currency, bodyPrice),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		x = marginLeft
		for j, v := range values {
			align := "C"
			if j == 1 {
				align = "L"
			} else if j == 5 {
				align = "R"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(quoteColWidths[j], rowHeight, v, "1", 0, align, true, 0, "")
			x += quoteColWidths[j]
		}
		y += rowHeight
	}
	return y + 4
}

func renderQuoteTotals(pdf *fpdf.Fpdf, pricing model.PricingResult, currency string, y float64) float64 {
	y = ensureSpace(pdf, y, 30, quotePageHeight)
	labelX := quotePageWidth - marginRight - 80

	rows := []struct {
		label string
		value float64
		grand bool
	}{
		{"Subtotal", pricing.Subtotal, false},
		{"Add-ons", pricing.AddOnTotal, false},
		{fmt.Sprintf("GST (%.0f%%)", model.GSTRate*100), pricing.GST, false},
		{"Grand Total", pricing.GrandTotal, true},
	}

	for _, row := range rows {
		if row.label == "Add-ons" && row.value == 0 {
			continue
		}
		if row.grand {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetDrawColor(0, 0, 0)
			pdf.SetLineWidth(0.3)
			pdf.Line(labelX, y, quotePageWidth-marginRight, y)
			y += 1
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(labelX, y)
		pdf.CellFormat(45, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%s %.0f", currency, row.value), "", 0, "R", false, 0, "")
		y += 6
	}
	return y + 6
}

func renderQuoteTerms(pdf *fpdf.Fpdf, y float64) {
	terms := []string{
		"50% advance with order, 45% before installation, 5% on handover.",
		"Prices valid for 15 days from the quotation date.",
		"Final billing follows measured site dimensions.",
		"Hardware carries the manufacturer's warranty.",
	}

	y = ensureSpace(pdf, y, float64(8+5*len(terms)), quotePageHeight)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 6, "Terms", "", 0, "L", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	for i, term := range terms {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(quotePageWidth-marginLeft-marginRight, 5, fmt.Sprintf("%d. %s", i+1, term), "", 0, "L", false, 0, "")
		y += 5
	}
}

// quoteLineDescription prefers the drawn unit's label and falls back to
// a customer-friendly name for the unit type.
func quoteLineDescription(up model.UnitPricing) string {
	if up.UnitLabel != "" {
		return up.UnitLabel
	}
	switch up.UnitType {
	case model.UnitKitchen:
		return "Modular kitchen"
	case model.UnitWardrobe, model.UnitWardrobeCarcass:
		return "Wardrobe"
	case model.UnitTV:
		return "TV unit"
	default:
		return "Unit"
	}
}

func sqftCell(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
