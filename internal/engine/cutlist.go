package engine

import "github.com/mistrywoodworks/panelquote/internal/model"

// Fixed costing heights for kitchen runs. Base and wall cabinets are cut
// and priced at standard heights regardless of how tall the unit was
// drawn on the canvas.
const (
	kitchenBaseHeightMm = 850
	kitchenWallHeightMm = 720
)

// implicitRoomName labels the synthetic room used when a quotation has
// no rooms yet.
const implicitRoomName = "Quotation"

// CutlistInput carries the full drawn state the cutlist derives from.
type CutlistInput struct {
	Rooms           []model.Room
	CurrentUnits    []model.DrawnUnit
	ActiveRoomIndex int
	Settings        model.ProductionSettings

	ShutterLaminate string
	LoftLaminate    string

	// Library resolves catalog-configured carcass units. Nil uses the
	// built-in catalog.
	Library PanelSource
}

// BuildCutlistItems walks every room and every unit and produces the
// flat production cutlist. The active room reads from CurrentUnits so
// in-progress canvas edits are reflected without an explicit save; other
// rooms use their stored snapshots. Units without usable geometry are
// skipped silently.
func BuildCutlistItems(in CutlistInput) []model.PanelItem {
	library := in.Library
	if library == nil {
		library = DefaultLibrary()
	}

	type workingRoom struct {
		name  string
		units []model.DrawnUnit
	}
	var rooms []workingRoom
	if len(in.Rooms) == 0 {
		rooms = []workingRoom{{name: implicitRoomName, units: in.CurrentUnits}}
	} else {
		for i, room := range in.Rooms {
			units := room.DrawnUnits
			if i == in.ActiveRoomIndex {
				units = in.CurrentUnits
			}
			rooms = append(rooms, workingRoom{name: room.Name, units: units})
		}
	}

	var items []model.PanelItem
	for roomIndex, room := range rooms {
		for unitIndex, unit := range room.units {
			if unit.Box == nil {
				continue
			}
			ctx := unitContext{
				roomIndex: roomIndex,
				roomName:  room.name,
				unitIndex: unitIndex,
			}
			items = append(items, unitPanels(unit, ctx, in, library)...)
		}
	}
	return items
}

// unitContext identifies where in the quotation a unit sits, stamped on
// every panel the unit produces.
type unitContext struct {
	roomIndex int
	roomName  string
	unitIndex int
}

func (c unitContext) gridConfig(unit model.DrawnUnit, settings model.ProductionSettings) GridConfig {
	return GridConfig{
		Settings:  settings,
		RoomIndex: c.roomIndex,
		RoomName:  c.roomName,
		UnitIndex: c.unitIndex,
		UnitID:    unit.ID,
		UnitType:  unit.UnitType,
		UnitLabel: unit.Label,
	}
}

func unitPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput, library PanelSource) []model.PanelItem {
	switch {
	case unit.UnitType == model.UnitKitchen:
		return kitchenPanels(unit, ctx, in)
	case unit.LibraryConfig != nil && unit.UnitType == model.UnitWardrobeCarcass:
		return libraryPanels(unit, ctx, in, library)
	case unit.LoftOnly:
		return loftOnlyPanels(unit, ctx, in)
	default:
		if !unit.HasBody() {
			return nil
		}
		items := shutterPanels(unit, ctx, in)
		return append(items, loftAddendumPanels(unit, ctx, in)...)
	}
}

// kitchenPanels emits two independent single-row grids sharing the
// drawn column dividers: base cabinets and wall cabinets.
func kitchenPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput) []model.PanelItem {
	if !unit.HasBody() {
		return nil
	}
	base := ctx.gridConfig(unit, in.Settings)
	base.Box = *unit.Box
	base.TotalWidthMm = unit.WidthMm
	base.TotalHeightMm = kitchenBaseHeightMm
	base.Cols = unit.ShutterCount
	base.Rows = 1
	base.ColDividers = unit.ShutterDividerXs
	base.PanelType = model.PanelKitchenBase
	base.LabelPrefix = "Base"
	base.LaminateCode = in.ShutterLaminate

	wall := base
	wall.TotalHeightMm = kitchenWallHeightMm
	wall.PanelType = model.PanelKitchenWall
	wall.LabelPrefix = "Wall"

	return append(GeneratePanelGrid(base), GeneratePanelGrid(wall)...)
}

// shutterPanels emits the main body grid of a regular unit.
func shutterPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput) []model.PanelItem {
	cfg := ctx.gridConfig(unit, in.Settings)
	cfg.Box = *unit.Box
	cfg.TotalWidthMm = unit.WidthMm
	cfg.TotalHeightMm = unit.HeightMm
	cfg.Cols = unit.ShutterCount
	cfg.Rows = unit.SectionCount
	cfg.ColDividers = unit.ShutterDividerXs
	cfg.RowDividers = unit.HorizontalDividerYs
	cfg.PanelType = model.PanelShutter
	cfg.LaminateCode = in.ShutterLaminate
	return GeneratePanelGrid(cfg)
}

// loftOnlyPanels treats the unit's main box as bounding a single loft
// row. The shutter dividers win over the loft dividers because the loft
// row is what the user was dragging on.
func loftOnlyPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput) []model.PanelItem {
	if !unit.HasLoftDims() {
		return nil
	}
	dividers := unit.ShutterDividerXs
	if len(dividers) == 0 {
		dividers = unit.LoftDividerXs
	}
	cfg := ctx.gridConfig(unit, in.Settings)
	cfg.Box = *unit.Box
	cfg.TotalWidthMm = unit.LoftWidthMm
	cfg.TotalHeightMm = unit.LoftHeightMm
	cfg.Cols = unit.LoftShutterCount
	cfg.Rows = 1
	cfg.ColDividers = dividers
	cfg.PanelType = model.PanelLoft
	cfg.LabelPrefix = "L"
	cfg.LaminateCode = in.LoftLaminate
	return GeneratePanelGrid(cfg)
}

// loftAddendumPanels emits the loft row drawn above a regular unit. A
// loft drawn but never dimensioned inherits the main body's mm-per-pixel
// scale.
func loftAddendumPanels(unit model.DrawnUnit, ctx unitContext, in CutlistInput) []model.PanelItem {
	if !unit.LoftEnabled || !in.Settings.IncludeLoft || unit.LoftBox == nil {
		return nil
	}
	widthMm := unit.LoftWidthMm
	heightMm := unit.LoftHeightMm
	if widthMm <= 0 && unit.Box.Width > 0 {
		widthMm = unit.LoftBox.Width * (unit.WidthMm / unit.Box.Width)
	}
	if heightMm <= 0 && unit.Box.Height > 0 {
		heightMm = unit.LoftBox.Height * (unit.HeightMm / unit.Box.Height)
	}
	if widthMm <= 0 || heightMm <= 0 {
		return nil
	}
	cfg := ctx.gridConfig(unit, in.Settings)
	cfg.Box = *unit.LoftBox
	cfg.TotalWidthMm = widthMm
	cfg.TotalHeightMm = heightMm
	cfg.Cols = unit.LoftShutterCount
	cfg.Rows = 1
	cfg.ColDividers = unit.LoftDividerXs
	cfg.PanelType = model.PanelLoft
	cfg.LabelPrefix = "L"
	cfg.LaminateCode = in.LoftLaminate
	return GeneratePanelGrid(cfg)
}
