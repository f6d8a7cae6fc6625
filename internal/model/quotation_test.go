package model

import "testing"

func TestNewQuotation(t *testing.T) {
	q := NewQuotation("Sharma Residence", "A. Sharma")

	if len(q.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", q.ID)
	}
	if !q.Settings.IncludeLoft {
		t.Error("new quotations start with lofts included")
	}
	if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestQuotationAllUnits(t *testing.T) {
	q := Quotation{Rooms: []Room{
		{Name: "Bedroom", DrawnUnits: []DrawnUnit{{ID: "a"}, {ID: "b"}}},
		{Name: "Kitchen", DrawnUnits: []DrawnUnit{{ID: "c"}}},
	}}

	units := q.AllUnits()

	if len(units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(units))
	}
	if units[0].ID != "a" || units[2].ID != "c" {
		t.Error("expected room order preserved")
	}
}

func TestQuotationActiveUnits(t *testing.T) {
	q := Quotation{
		Rooms: []Room{
			{DrawnUnits: []DrawnUnit{{ID: "a"}}},
			{DrawnUnits: []DrawnUnit{{ID: "b"}}},
		},
		ActiveRoomIndex: 1,
	}

	units := q.ActiveUnits()
	if len(units) != 1 || units[0].ID != "b" {
		t.Errorf("expected the second room's units, got %+v", units)
	}

	q.ActiveRoomIndex = 5
	if q.ActiveUnits() != nil {
		t.Error("out-of-range index must yield nil")
	}
}
