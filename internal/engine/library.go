package engine

import (
	"fmt"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

// LibraryPanel is one row of a catalog module's saved panel breakdown.
type LibraryPanel struct {
	Kind        string // "carcass", "shutter", "back", "loft_shutter"
	Name        string
	WidthMm     float64
	HeightMm    float64
	Qty         int
	GrainLocked bool
}

// kindLoftShutter is the only kind the cutlist maps specially; every
// other kind becomes a SHUTTER row.
const kindLoftShutter = "loft_shutter"

// PanelSource resolves a catalog configuration into its saved panel
// breakdown. The cutlist treats implementations as a black box.
type PanelSource interface {
	Generate(cfg model.LibraryConfig) []LibraryPanel
}

// catalogLibrary is the built-in PanelSource: parametric breakdowns for
// the stock carcass modules sold from the catalog.
type catalogLibrary struct{}

// DefaultLibrary returns the built-in catalog panel source.
func DefaultLibrary() PanelSource { return catalogLibrary{} }

func (catalogLibrary) Generate(cfg model.LibraryConfig) []LibraryPanel {
	build, ok := catalogModels[cfg.ModelCode]
	if !ok {
		return nil
	}
	return build(cfg)
}

// catalogModels maps a model code to its parametric panel breakdown.
var catalogModels = map[string]func(model.LibraryConfig) []LibraryPanel{
	"WRD-CLASSIC": classicWardrobePanels,
	"WRD-SLIDE":   slidingWardrobePanels,
}

// Carcass boards are 18mm prelam; backs are 6mm thin board.
const carcassBoardMm = 18.0

// classicWardrobePanels is the hinged-door wardrobe carcass: two sides,
// top, bottom, back, the configured shelves, and one hinged shutter per
// configured column, plus matching loft shutters when a loft is fitted.
func classicWardrobePanels(cfg model.LibraryConfig) []LibraryPanel {
	if cfg.WidthMm <= 0 || cfg.HeightMm <= 0 || cfg.DepthMm <= 0 {
		return nil
	}
	innerWidth := cfg.WidthMm - 2*carcassBoardMm

	panels := []LibraryPanel{
		{Kind: "carcass", Name: "Side Panel", WidthMm: cfg.DepthMm, HeightMm: cfg.HeightMm, Qty: 2, GrainLocked: true},
		{Kind: "carcass", Name: "Top Panel", WidthMm: innerWidth, HeightMm: cfg.DepthMm, Qty: 1, GrainLocked: true},
		{Kind: "carcass", Name: "Bottom Panel", WidthMm: innerWidth, HeightMm: cfg.DepthMm, Qty: 1, GrainLocked: true},
		{Kind: "back", Name: "Back Panel", WidthMm: cfg.WidthMm, HeightMm: cfg.HeightMm, Qty: 1, GrainLocked: false},
	}
	if cfg.ShelfCount > 0 {
		panels = append(panels, LibraryPanel{
			Kind: "carcass", Name: "Shelf",
			WidthMm: innerWidth, HeightMm: cfg.DepthMm - carcassBoardMm,
			Qty: cfg.ShelfCount, GrainLocked: true,
		})
	}
	shutters := cfg.ShutterCount
	if shutters < 1 {
		shutters = 2
	}
	panels = append(panels, LibraryPanel{
		Kind: "shutter", Name: "Shutter",
		WidthMm: cfg.WidthMm / float64(shutters), HeightMm: cfg.HeightMm,
		Qty: shutters, GrainLocked: true,
	})
	if cfg.WithLoft && cfg.LoftHeightMm > 0 {
		panels = append(panels, LibraryPanel{
			Kind: kindLoftShutter, Name: "Loft Shutter",
			WidthMm: cfg.WidthMm / float64(shutters), HeightMm: cfg.LoftHeightMm,
			Qty: shutters, GrainLocked: true,
		})
	}
	return panels
}

// slidingWardrobePanels is the sliding-door variant: always two door
// leaves overlapping 30mm at the center channel.
func slidingWardrobePanels(cfg model.LibraryConfig) []LibraryPanel {
	if cfg.WidthMm <= 0 || cfg.HeightMm <= 0 || cfg.DepthMm <= 0 {
		return nil
	}
	innerWidth := cfg.WidthMm - 2*carcassBoardMm

	panels := []LibraryPanel{
		{Kind: "carcass", Name: "Side Panel", WidthMm: cfg.DepthMm, HeightMm: cfg.HeightMm, Qty: 2, GrainLocked: true},
		{Kind: "carcass", Name: "Top Panel", WidthMm: innerWidth, HeightMm: cfg.DepthMm, Qty: 1, GrainLocked: true},
		{Kind: "carcass", Name: "Bottom Panel", WidthMm: innerWidth, HeightMm: cfg.DepthMm, Qty: 1, GrainLocked: true},
		{Kind: "back", Name: "Back Panel", WidthMm: cfg.WidthMm, HeightMm: cfg.HeightMm, Qty: 1, GrainLocked: false},
		{Kind: "shutter", Name: "Sliding Door", WidthMm: cfg.WidthMm/2 + 30, HeightMm: cfg.HeightMm, Qty: 2, GrainLocked: true},
	}
	if cfg.ShelfCount > 0 {
		panels = append(panels, LibraryPanel{
			Kind: "carcass", Name: "Shelf",
			WidthMm: innerWidth, HeightMm: cfg.DepthMm - carcassBoardMm,
			Qty: cfg.ShelfCount, GrainLocked: true,
		})
	}
	if cfg.WithLoft && cfg.LoftHeightMm > 0 {
		panels = append(panels, LibraryPanel{
			Kind: kindLoftShutter, Name: "Loft Shutter",
			WidthMm: cfg.WidthMm / 2, HeightMm: cfg.LoftHeightMm,
			Qty: 2, GrainLocked: true,
		})
	}
	return panels
}

// libraryPanels relabels a catalog breakdown into cutlist rows, giving
// each counted piece its own numbered row. Saved dimensions pass through
// untouched: catalog modules cut exactly as configured, with no
// reduction or rounding applied on top.
func libraryPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput, library PanelSource) []model.PanelItem {
	var items []model.PanelItem
	seq := 0
	for _, lp := range library.Generate(*unit.LibraryConfig) {
		qty := lp.Qty
		if qty < 1 {
			qty = 1
		}
		panelType := model.PanelShutter
		laminate := in.ShutterLaminate
		if lp.Kind == kindLoftShutter {
			panelType = model.PanelLoft
			laminate = in.LoftLaminate
		}
		for n := 1; n <= qty; n++ {
			seq++
			label := lp.Name
			if qty > 1 {
				label = fmt.Sprintf("%s %d", lp.Name, n)
			}
			items = append(items, model.PanelItem{
				ID:           model.PanelID(ctx.roomIndex, unit.ID, panelType, 1, seq),
				RoomIndex:    ctx.roomIndex,
				RoomName:     ctx.roomName,
				UnitIndex:    ctx.unitIndex,
				UnitID:       unit.ID,
				UnitType:     unit.UnitType,
				UnitLabel:    unit.Label,
				PanelType:    panelType,
				Row:          1,
				Col:          seq,
				PanelLabel:   label,
				WidthMm:      lp.WidthMm,
				HeightMm:     lp.HeightMm,
				LaminateCode: laminate,
				GrainLocked:  lp.GrainLocked,
			})
		}
	}
	return items
}
