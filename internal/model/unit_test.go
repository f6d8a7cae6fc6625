package model

import "testing"

func TestNewDrawnUnitDefaults(t *testing.T) {
	u := NewDrawnUnit(UnitWardrobe, "Wardrobe 1")

	if len(u.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", u.ID)
	}
	if u.ShutterCount != 2 || u.SectionCount != 1 {
		t.Errorf("unexpected grid defaults: %d x %d", u.ShutterCount, u.SectionCount)
	}
	if u.LoftShutterCount != 2 {
		t.Errorf("expected 2 loft shutters, got %d", u.LoftShutterCount)
	}
	if u.Box != nil {
		t.Error("a fresh unit has not been drawn yet")
	}
}

func TestHasBody(t *testing.T) {
	cases := []struct {
		name   string
		width  float64
		height float64
		want   bool
	}{
		{"both set", 1200, 2100, true},
		{"missing height", 1200, 0, false},
		{"missing width", 0, 2100, false},
		{"negative", -10, 2100, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := DrawnUnit{WidthMm: tc.width, HeightMm: tc.height}
			if u.HasBody() != tc.want {
				t.Errorf("HasBody() = %v, want %v", u.HasBody(), tc.want)
			}
		})
	}
}

func TestHasLoftDims(t *testing.T) {
	u := DrawnUnit{LoftWidthMm: 1200, LoftHeightMm: 450}
	if !u.HasLoftDims() {
		t.Error("expected usable loft dims")
	}
	u.LoftHeightMm = 0
	if u.HasLoftDims() {
		t.Error("zero loft height is not usable")
	}
}

func TestNewRoom(t *testing.T) {
	r := NewRoom("Master Bedroom")

	if r.Name != "Master Bedroom" {
		t.Errorf("expected name, got %q", r.Name)
	}
	if len(r.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", r.ID)
	}
	if len(r.DrawnUnits) != 0 {
		t.Error("a new room starts empty")
	}
}
