// Package model defines the drawn-state data structures shared by the
// cutlist and pricing engines, and the pure calculators derived from them.
package model

import "github.com/google/uuid"

// Box represents a rectangle in canvas pixel space.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Unit type tags with special cutlist handling. Any other string is
// treated as a regular shutter unit.
const (
	UnitKitchen         = "kitchen"
	UnitWardrobe        = "wardrobe"
	UnitWardrobeCarcass = "wardrobe_carcass"
	UnitTV              = "tv_unit"
)

// DrawnUnit represents one cabinet placed on a room canvas. It carries
// both the pixel geometry as drawn (the source of truth for divider
// positions) and the real-world millimeter dimensions entered by the
// salesperson. Zero millimeter dimensions mean the unit has not been
// dimensioned yet; such units produce no panels and no price.
type DrawnUnit struct {
	ID       string `json:"id"`
	UnitType string `json:"unit_type"`
	Label    string `json:"label"`

	Box *Box `json:"box,omitempty"`

	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
	DepthMm  float64 `json:"depth_mm"`

	ShutterCount int `json:"shutter_count"` // columns of the main grid
	SectionCount int `json:"section_count"` // rows of the main grid

	// User-dragged divider positions in canvas pixels. Empty means even
	// distribution.
	ShutterDividerXs    []float64 `json:"shutter_divider_xs,omitempty"`
	HorizontalDividerYs []float64 `json:"horizontal_divider_ys,omitempty"`

	LoftEnabled      bool      `json:"loft_enabled"`
	LoftOnly         bool      `json:"loft_only"`
	LoftWidthMm      float64   `json:"loft_width_mm"`
	LoftHeightMm     float64   `json:"loft_height_mm"`
	LoftBox          *Box      `json:"loft_box,omitempty"`
	LoftShutterCount int       `json:"loft_shutter_count"`
	LoftDividerXs    []float64 `json:"loft_divider_xs,omitempty"`

	// LibraryConfig switches a wardrobe_carcass unit to its saved
	// catalog panel breakdown, bypassing the grid engine.
	LibraryConfig *LibraryConfig `json:"library_config,omitempty"`

	// RateOverride takes precedence over the quotation-level rate
	// configuration when pricing this unit.
	RateOverride *RateConfig `json:"rate_override,omitempty"`

	AddOns []AddOn `json:"add_ons,omitempty"`
}

func NewDrawnUnit(unitType, label string) DrawnUnit {
	return DrawnUnit{
		ID:               uuid.New().String()[:8],
		UnitType:         unitType,
		Label:            label,
		ShutterCount:     2,
		SectionCount:     1,
		LoftShutterCount: 2,
	}
}

// HasBody reports whether the main shutter body has usable dimensions.
func (u DrawnUnit) HasBody() bool {
	return u.WidthMm > 0 && u.HeightMm > 0
}

// HasLoftDims reports whether explicit loft dimensions are usable.
func (u DrawnUnit) HasLoftDims() bool {
	return u.LoftWidthMm > 0 && u.LoftHeightMm > 0
}

// Room groups the units drawn on one canvas.
type Room struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	DrawnUnits []DrawnUnit `json:"drawn_units"`
}

func NewRoom(name string) Room {
	return Room{ID: uuid.New().String()[:8], Name: name}
}

// LibraryConfig identifies a pre-built carcass module from the catalog
// together with the dimensions and options it was saved at.
type LibraryConfig struct {
	ModelCode    string  `json:"model_code"`
	WidthMm      float64 `json:"width_mm"`
	HeightMm     float64 `json:"height_mm"`
	DepthMm      float64 `json:"depth_mm"`
	ShelfCount   int     `json:"shelf_count"`
	ShutterCount int     `json:"shutter_count"`
	WithLoft     bool    `json:"with_loft"`
	LoftHeightMm float64 `json:"loft_height_mm"`
}
