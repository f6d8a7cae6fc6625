package engine

import (
	"testing"

	"github.com/mistrywoodworks/panelquote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLibrary_ClassicWardrobe(t *testing.T) {
	cfg := model.LibraryConfig{
		ModelCode:    "WRD-CLASSIC",
		WidthMm:      1800,
		HeightMm:     2100,
		DepthMm:      600,
		ShelfCount:   2,
		ShutterCount: 3,
	}

	panels := DefaultLibrary().Generate(cfg)

	require.NotEmpty(t, panels)
	byName := map[string]LibraryPanel{}
	total := 0
	for _, p := range panels {
		byName[p.Name] = p
		total += p.Qty
	}

	// 2 sides + top + bottom + back + 2 shelves + 3 shutters
	assert.Equal(t, 10, total)

	side := byName["Side Panel"]
	assert.Equal(t, 2, side.Qty)
	assert.InDelta(t, 600.0, side.WidthMm, 1e-9, "sides are depth x height")
	assert.InDelta(t, 2100.0, side.HeightMm, 1e-9)

	top := byName["Top Panel"]
	assert.InDelta(t, 1764.0, top.WidthMm, 1e-9, "top sits between the 18mm sides")

	shutter := byName["Shutter"]
	assert.Equal(t, 3, shutter.Qty)
	assert.InDelta(t, 600.0, shutter.WidthMm, 1e-9)

	back := byName["Back Panel"]
	assert.False(t, back.GrainLocked, "thin backs may be rotated")
}

func TestCatalogLibrary_ClassicWardrobeWithLoft(t *testing.T) {
	cfg := model.LibraryConfig{
		ModelCode:    "WRD-CLASSIC",
		WidthMm:      1200,
		HeightMm:     2100,
		DepthMm:      600,
		ShutterCount: 2,
		WithLoft:     true,
		LoftHeightMm: 450,
	}

	panels := DefaultLibrary().Generate(cfg)

	var loft *LibraryPanel
	for i := range panels {
		if panels[i].Kind == kindLoftShutter {
			loft = &panels[i]
		}
	}
	require.NotNil(t, loft, "a loft-fitted module carries loft shutters")
	assert.Equal(t, 2, loft.Qty)
	assert.InDelta(t, 600.0, loft.WidthMm, 1e-9)
	assert.InDelta(t, 450.0, loft.HeightMm, 1e-9)
}

func TestCatalogLibrary_SlidingWardrobe(t *testing.T) {
	cfg := model.LibraryConfig{
		ModelCode: "WRD-SLIDE",
		WidthMm:   1800,
		HeightMm:  2400,
		DepthMm:   650,
	}

	panels := DefaultLibrary().Generate(cfg)

	var doors *LibraryPanel
	for i := range panels {
		if panels[i].Name == "Sliding Door" {
			doors = &panels[i]
		}
	}
	require.NotNil(t, doors)
	assert.Equal(t, 2, doors.Qty)
	assert.InDelta(t, 930.0, doors.WidthMm, 1e-9, "half width plus the 30mm center overlap")
}

func TestCatalogLibrary_UnknownModel(t *testing.T) {
	panels := DefaultLibrary().Generate(model.LibraryConfig{ModelCode: "NOPE", WidthMm: 1000, HeightMm: 2000, DepthMm: 500})

	assert.Empty(t, panels, "unknown model codes contribute nothing")
}

func TestCatalogLibrary_DegenerateDimensions(t *testing.T) {
	panels := DefaultLibrary().Generate(model.LibraryConfig{ModelCode: "WRD-CLASSIC"})

	assert.Empty(t, panels)
}
