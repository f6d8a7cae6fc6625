package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/mistrywoodworks/panelquote/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelEntry holds the data printed and QR-encoded on each panel label.
type LabelEntry struct {
	PanelID    string  `json:"id"`
	PanelLabel string  `json:"label"`
	UnitLabel  string  `json:"unit,omitempty"`
	RoomName   string  `json:"room,omitempty"`
	Width      float64 `json:"width_mm"`
	Height     float64 `json:"height_mm"`
	Laminate   string  `json:"laminate,omitempty"`
	Gaddi      bool    `json:"gaddi,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelEntries turns a cutlist into printable label data, applying
// the panel adjustments first so deleted panels get no sticker and
// laminate overrides and gaddi marks come through.
func CollectLabelEntries(panels []model.PanelItem, adj model.PanelAdjustments) []LabelEntry {
	panels = adj.Apply(panels)
	entries := make([]LabelEntry, 0, len(panels))
	for _, p := range panels {
		entries = append(entries, LabelEntry{
			PanelID:    p.ID,
			PanelLabel: p.PanelLabel,
			UnitLabel:  unitDisplay(p),
			RoomName:   p.RoomName,
			Width:      p.WidthMm,
			Height:     p.HeightMm,
			Laminate:   p.LaminateCode,
			Gaddi:      adj.GaddiFor(p.ID),
		})
	}
	return entries
}

// WritePanelLabels generates a PDF of QR-coded stickers for every panel
// in the cutlist, laid out on a standard label sheet format (Avery 5160,
// 3 columns x 10 rows on US Letter). The QR payload carries the panel id
// so a scan at the saw or the edge bander identifies the piece.
func WritePanelLabels(path string, q model.Quotation, panels []model.PanelItem) error {
	entries := CollectLabelEntries(panels, q.Adjustments)
	if len(entries) == 0 {
		return fmt.Errorf("no panels to label")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, entry := range entries {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, entry); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", entry.PanelLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, entry LabelEntry) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + entry.PanelID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	title := entry.PanelLabel
	if entry.UnitLabel != "" {
		title = fmt.Sprintf("%s - %s", entry.UnitLabel, entry.PanelLabel)
	}
	pdf.CellFormat(textW, 4.5, truncateToWidth(pdf, title, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm", entry.Width, entry.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := entry.RoomName
	if entry.Laminate != "" {
		if detail != "" {
			detail += " | "
		}
		detail += entry.Laminate
	}
	pdf.CellFormat(textW, 3, truncateToWidth(pdf, detail, textW), "", 1, "L", false, 0, "")

	if entry.Gaddi {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "GADDI", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncateToWidth shortens s with an ellipsis until it fits the cell.
func truncateToWidth(pdf *fpdf.Fpdf, s string, maxW float64) string {
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > maxW {
		s = s[:len(s)-1]
	}
	return s + "..."
}
