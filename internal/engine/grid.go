package engine

import (
	"fmt"
	"math"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

// GridConfig describes one rows-by-columns panel grid to expand: the
// pixel box it was drawn in, the real-world size that box represents,
// and the identifying context stamped on every emitted panel.
type GridConfig struct {
	Box           model.Box
	TotalWidthMm  float64
	TotalHeightMm float64
	Cols          int
	Rows          int
	ColDividers   []float64
	RowDividers   []float64

	PanelType    model.PanelType
	LabelPrefix  string
	LaminateCode string
	Settings     model.ProductionSettings

	RoomIndex int
	RoomName  string
	UnitIndex int
	UnitID    string
	UnitType  string
	UnitLabel string
}

// ApplyProductionSizing converts a raw panel dimension into its cutting
// size: subtract the manufacturing clearance, floor at 1mm, then snap to
// the rounding step (step 0 rounds to the nearest whole mm). Reduction
// happens before rounding so the clearance is not swallowed by the snap.
// The result never drops below 1mm, even when the snap step exceeds the
// floored value.
func ApplyProductionSizing(valueMm, reductionMm, roundingMm float64) float64 {
	v := math.Max(1, valueMm-reductionMm)
	if roundingMm > 0 {
		v = math.Round(v/roundingMm) * roundingMm
	} else {
		v = math.Round(v)
	}
	return math.Max(1, v)
}

// GeneratePanelGrid expands one grid into its panels, row-major. A box
// with zero width or height yields no panels.
func GeneratePanelGrid(cfg GridConfig) []model.PanelItem {
	mmPerPxX := cfg.TotalWidthMm / cfg.Box.Width
	mmPerPxY := cfg.TotalHeightMm / cfg.Box.Height
	if !isFinite(mmPerPxX) || !isFinite(mmPerPxY) {
		return nil
	}

	colEdges := BuildEdges(cfg.Box.X, cfg.Box.Width, cfg.ColDividers, cfg.Cols)
	rowEdges := BuildEdges(cfg.Box.Y, cfg.Box.Height, cfg.RowDividers, cfg.Rows)
	rowCount := len(rowEdges) - 1
	colCount := len(colEdges) - 1

	items := make([]model.PanelItem, 0, rowCount*colCount)
	for r := 0; r < rowCount; r++ {
		for c := 0; c < colCount; c++ {
			rawW := (colEdges[c+1] - colEdges[c]) * mmPerPxX
			rawH := (rowEdges[r+1] - rowEdges[r]) * mmPerPxY
			row, col := r+1, c+1
			items = append(items, model.PanelItem{
				ID:           model.PanelID(cfg.RoomIndex, cfg.UnitID, cfg.PanelType, row, col),
				RoomIndex:    cfg.RoomIndex,
				RoomName:     cfg.RoomName,
				UnitIndex:    cfg.UnitIndex,
				UnitID:       cfg.UnitID,
				UnitType:     cfg.UnitType,
				UnitLabel:    cfg.UnitLabel,
				PanelType:    cfg.PanelType,
				Row:          row,
				Col:          col,
				PanelLabel:   panelLabel(cfg.PanelType, cfg.LabelPrefix, row, col, rowCount),
				WidthMm:      ApplyProductionSizing(rawW, cfg.Settings.WidthReductionMm, cfg.Settings.RoundingMm),
				HeightMm:     ApplyProductionSizing(rawH, cfg.Settings.HeightReductionMm, cfg.Settings.RoundingMm),
				LaminateCode: cfg.LaminateCode,
				GrainLocked:  true,
			})
		}
	}
	return items
}

// panelLabel derives the position label printed on the cutlist and the
// panel sticker.
func panelLabel(t model.PanelType, prefix string, row, col, rowCount int) string {
	switch t {
	case model.PanelLoft:
		return fmt.Sprintf("%s%d", prefix, col)
	case model.PanelKitchenBase, model.PanelKitchenWall:
		return fmt.Sprintf("%s %d", prefix, col)
	default:
		if rowCount > 1 {
			return fmt.Sprintf("R%dC%d", row, col)
		}
		return fmt.Sprintf("C%d", col)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
