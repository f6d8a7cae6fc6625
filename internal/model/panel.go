package model

import "fmt"

// PanelType categorises a cutlist panel by the unit region it came from.
type PanelType string

const (
	PanelShutter     PanelType = "SHUTTER"
	PanelLoft        PanelType = "LOFT"
	PanelKitchenBase PanelType = "KITCHEN_BASE"
	PanelKitchenWall PanelType = "KITCHEN_WALL"
)

// PanelItem is one row of the production cutlist: a single board to cut,
// with final manufacturing dimensions and the context it came from. The
// list is recomputed from the drawn state on demand and never mutated or
// persisted on its own.
type PanelItem struct {
	ID string `json:"id"`

	RoomIndex int    `json:"room_index"`
	RoomName  string `json:"room_name"`
	UnitIndex int    `json:"unit_index"`
	UnitID    string `json:"unit_id"`
	UnitType  string `json:"unit_type"`
	UnitLabel string `json:"unit_label"`

	PanelType  PanelType `json:"panel_type"`
	Row        int       `json:"row"` // 1-based
	Col        int       `json:"col"` // 1-based
	PanelLabel string    `json:"panel_label"`

	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`

	LaminateCode string `json:"laminate_code,omitempty"`
	GrainLocked  bool   `json:"grain_locked"` // must not be rotated during cutting
}

// PanelID builds the stable synthetic identifier for a panel. Override
// caches in the drawing application are keyed by these ids, so the
// composite must come out identical on every recomputation of an
// unchanged drawn state.
func PanelID(roomIndex int, unitID string, panelType PanelType, row, col int) string {
	return fmt.Sprintf("r%d-%s-%s-%d-%d", roomIndex, unitID, panelType, row, col)
}

// AreaSqft returns the panel face area in square feet.
func (p PanelItem) AreaSqft() float64 {
	return p.WidthMm * p.HeightMm / sqmmPerSqft
}

// PanelAdjustments is the per-quotation override cache keyed by panel
// id: panels the user deleted from the cutlist, laminate substitutions,
// and gaddi finishing marks. The engines never consult it; callers apply
// it to engine output before rendering documents.
type PanelAdjustments struct {
	Deleted  map[string]bool   `json:"deleted,omitempty"`
	Laminate map[string]string `json:"laminate,omitempty"`
	Gaddi    map[string]bool   `json:"gaddi,omitempty"`
}

// IsDeleted reports whether the user removed this panel id.
func (a PanelAdjustments) IsDeleted(id string) bool { return a.Deleted[id] }

// GaddiFor reports whether the gaddi finishing mark applies to a panel id.
func (a PanelAdjustments) GaddiFor(id string) bool { return a.Gaddi[id] }

// Apply returns a new panel list with deleted panels dropped and
// laminate overrides substituted. The input list is left untouched.
func (a PanelAdjustments) Apply(items []PanelItem) []PanelItem {
	result := make([]PanelItem, 0, len(items))
	for _, item := range items {
		if a.IsDeleted(item.ID) {
			continue
		}
		if code, ok := a.Laminate[item.ID]; ok && code != "" {
			item.LaminateCode = code
		}
		result = append(result, item)
	}
	return result
}
