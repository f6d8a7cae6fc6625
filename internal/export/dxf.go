package export

import (
	"fmt"

	"github.com/mistrywoodworks/panelquote/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// Cutting diagram layout constants (mm).
const (
	dxfRowWidth   = 5000.0 // wrap into a new row past this width
	dxfGap        = 50.0   // spacing between panel rectangles
	dxfTextHeight = 60.0
)

// panelPlacement positions one panel rectangle in the cutting diagram.
type panelPlacement struct {
	X, Y  float64
	Panel model.PanelItem
}

// layoutPanelRows arranges panels left to right in horizontal rows,
// wrapping into a new row when the current one passes rowWidth. This is
// a reference drawing for the saw operator, not a nested sheet layout.
func layoutPanelRows(panels []model.PanelItem, rowWidth, gap float64) []panelPlacement {
	placements := make([]panelPlacement, 0, len(panels))
	x, y := gap, gap
	rowH := 0.0
	for _, p := range panels {
		if x > gap && x+p.WidthMm > rowWidth {
			x = gap
			y += rowH + gap
			rowH = 0
		}
		placements = append(placements, panelPlacement{X: x, Y: y, Panel: p})
		x += p.WidthMm + gap
		if p.HeightMm > rowH {
			rowH = p.HeightMm
		}
	}
	return placements
}

// WriteCutlistDXF writes every panel as a closed LWPOLYLINE rectangle
// with a text annotation, grouped onto one layer per panel type. CAD and
// nesting tools downstream take it from there.
func WriteCutlistDXF(path string, q model.Quotation, panels []model.PanelItem) error {
	panels = q.Adjustments.Apply(panels)
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	placements := layoutPanelRows(panels, dxfRowWidth, dxfGap)

	byType := make(map[model.PanelType][]panelPlacement)
	var typeOrder []model.PanelType
	for _, pl := range placements {
		t := pl.Panel.PanelType
		if _, ok := byType[t]; !ok {
			typeOrder = append(typeOrder, t)
		}
		byType[t] = append(byType[t], pl)
	}

	d := dxf.NewDrawing()
	for _, t := range typeOrder {
		if _, err := d.AddLayer(string(t), layerColor(t), dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("add layer %s: %w", t, err)
		}
		for _, pl := range byType[t] {
			w, h := pl.Panel.WidthMm, pl.Panel.HeightMm
			_, err := d.LwPolyline(true,
				[]float64{pl.X, pl.Y},
				[]float64{pl.X + w, pl.Y},
				[]float64{pl.X + w, pl.Y + h},
				[]float64{pl.X, pl.Y + h},
			)
			if err != nil {
				return fmt.Errorf("draw panel %s: %w", pl.Panel.ID, err)
			}
			note := fmt.Sprintf("%s %.0fx%.0f", pl.Panel.PanelLabel, w, h)
			if _, err := d.Text(note, pl.X+dxfGap/2, pl.Y+dxfGap/2, 0.0, dxfTextHeight); err != nil {
				return fmt.Errorf("annotate panel %s: %w", pl.Panel.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}

// layerColor assigns the AutoCAD color index for a panel type's layer.
func layerColor(t model.PanelType) color.ColorNumber {
	switch t {
	case model.PanelLoft:
		return color.Cyan
	case model.PanelKitchenBase:
		return color.Yellow
	case model.PanelKitchenWall:
		return color.Magenta
	default:
		return color.Green
	}
}
