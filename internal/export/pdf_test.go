package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

// buildTestQuotation creates a quotation shell for exercising the
// document writers.
func buildTestQuotation() model.Quotation {
	q := model.NewQuotation("3BHK Kharadi", "Asha Patil")
	q.Phone = "98220 00000"
	q.SiteAddress = "14 Lake Road, Pune"
	return q
}

// buildTestPanels creates a realistic cutlist spanning two rooms.
func buildTestPanels() []model.PanelItem {
	return []model.PanelItem{
		{
			ID: "r0-u1-SHUTTER-1-1", RoomIndex: 0, RoomName: "Bedroom",
			UnitID: "u1", UnitType: model.UnitWardrobe, UnitLabel: "Wardrobe A",
			PanelType: model.PanelShutter, Row: 1, Col: 1, PanelLabel: "C1",
			WidthMm: 597, HeightMm: 2085, LaminateCode: "SF-101", GrainLocked: true,
		},
		{
			ID: "r0-u1-SHUTTER-1-2", RoomIndex: 0, RoomName: "Bedroom",
			UnitID: "u1", UnitType: model.UnitWardrobe, UnitLabel: "Wardrobe A",
			PanelType: model.PanelShutter, Row: 1, Col: 2, PanelLabel: "C2",
			WidthMm: 597, HeightMm: 2085, LaminateCode: "SF-101", GrainLocked: true,
		},
		{
			ID: "r0-u1-LOFT-1-1", RoomIndex: 0, RoomName: "Bedroom",
			UnitID: "u1", UnitType: model.UnitWardrobe, UnitLabel: "Wardrobe A",
			PanelType: model.PanelLoft, Row: 1, Col: 1, PanelLabel: "L1",
			WidthMm: 597, HeightMm: 445, LaminateCode: "SF-204", GrainLocked: true,
		},
		{
			ID: "r1-u2-KITCHEN_BASE-1-1", RoomIndex: 1, RoomName: "Kitchen",
			UnitID: "u2", UnitType: model.UnitKitchen,
			PanelType: model.PanelKitchenBase, Row: 1, Col: 1, PanelLabel: "Base 1",
			WidthMm: 448, HeightMm: 845, LaminateCode: "KT-330", GrainLocked: true,
		},
	}
}

func TestWriteCutlistPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutlist.pdf")

	err := WriteCutlistPDF(path, buildTestQuotation(), buildTestPanels())
	if err != nil {
		t.Fatalf("WriteCutlistPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestWriteCutlistPDF_NoPanels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := WriteCutlistPDF(path, buildTestQuotation(), nil)
	if err == nil {
		t.Fatal("expected error for empty cutlist, got nil")
	}
}

func TestWriteCutlistPDF_AllPanelsDeleted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deleted.pdf")

	q := buildTestQuotation()
	q.Adjustments.Deleted = map[string]bool{}
	for _, p := range buildTestPanels() {
		q.Adjustments.Deleted[p.ID] = true
	}

	err := WriteCutlistPDF(path, q, buildTestPanels())
	if err == nil {
		t.Fatal("expected error when every panel is deleted, got nil")
	}
}

func TestWriteCutlistPDF_WithAdjustments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adjusted.pdf")

	q := buildTestQuotation()
	q.Adjustments.Deleted = map[string]bool{"r0-u1-SHUTTER-1-2": true}
	q.Adjustments.Laminate = map[string]string{"r0-u1-SHUTTER-1-1": "OV-999"}
	q.Adjustments.Gaddi = map[string]bool{"r0-u1-LOFT-1-1": true}

	err := WriteCutlistPDF(path, q, buildTestPanels())
	if err != nil {
		t.Fatalf("WriteCutlistPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestWriteCutlistPDF_ManyPanels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	// More rows than fit on one page to exercise the page break
	panels := make([]model.PanelItem, 80)
	for i := range panels {
		panels[i] = model.PanelItem{
			ID: fmt.Sprintf("r0-u1-SHUTTER-1-%d", i+1), RoomIndex: 0, RoomName: "Hall",
			UnitID: "u1", UnitType: model.UnitWardrobe, UnitLabel: "Wall unit",
			PanelType: model.PanelShutter, Row: 1, Col: i + 1,
			PanelLabel: fmt.Sprintf("C%d", i+1),
			WidthMm:    450, HeightMm: 2100, LaminateCode: "SF-101", GrainLocked: true,
		}
	}

	err := WriteCutlistPDF(path, buildTestQuotation(), panels)
	if err != nil {
		t.Fatalf("WriteCutlistPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestGroupByRoom(t *testing.T) {
	groups := groupByRoom(buildTestPanels())

	if len(groups) != 2 {
		t.Fatalf("expected 2 room groups, got %d", len(groups))
	}
	if groups[0].name != "Bedroom" || len(groups[0].panels) != 3 {
		t.Errorf("first group: got %s with %d panels, want Bedroom with 3", groups[0].name, len(groups[0].panels))
	}
	if groups[1].name != "Kitchen" || len(groups[1].panels) != 1 {
		t.Errorf("second group: got %s with %d panels, want Kitchen with 1", groups[1].name, len(groups[1].panels))
	}
}

func TestPanelRemarks(t *testing.T) {
	q := buildTestQuotation()
	q.Adjustments.Gaddi = map[string]bool{"p1": true}

	gaddi := model.PanelItem{ID: "p1", GrainLocked: true}
	if got := panelRemarks(q, gaddi); got != "Gaddi" {
		t.Errorf("panelRemarks() = %q, want Gaddi", got)
	}

	free := model.PanelItem{ID: "p2", GrainLocked: false}
	if got := panelRemarks(q, free); got != "Grain free" {
		t.Errorf("panelRemarks() = %q, want Grain free", got)
	}

	both := model.PanelItem{ID: "p1", GrainLocked: false}
	if got := panelRemarks(q, both); got != "Gaddi, Grain free" {
		t.Errorf("panelRemarks() = %q, want both notes", got)
	}
}
