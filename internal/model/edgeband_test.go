package model

import (
	"math"
	"testing"
)

func TestCalculateEdgeBandingShutterPerimeter(t *testing.T) {
	panels := []PanelItem{
		{PanelType: PanelShutter, WidthMm: 500, HeightMm: 2000, LaminateCode: "SF-101"},
	}
	summary := CalculateEdgeBanding(panels, 0)

	// Four banded edges: 2 x (500 + 2000) = 5000 mm.
	if math.Abs(summary.TotalLinearMM-5000) > 1e-9 {
		t.Errorf("expected 5000 mm, got %v", summary.TotalLinearMM)
	}
	if summary.EdgeCount != 4 {
		t.Errorf("expected 4 edges, got %d", summary.EdgeCount)
	}
	if summary.PanelCount != 1 {
		t.Errorf("expected 1 panel, got %d", summary.PanelCount)
	}
}

func TestCalculateEdgeBandingLoftSkipsTopEdge(t *testing.T) {
	panels := []PanelItem{
		{PanelType: PanelLoft, WidthMm: 600, HeightMm: 450},
	}
	summary := CalculateEdgeBanding(panels, 0)

	// Width once plus both heights: 600 + 900 = 1500 mm.
	if math.Abs(summary.TotalLinearMM-1500) > 1e-9 {
		t.Errorf("expected 1500 mm, got %v", summary.TotalLinearMM)
	}
	if summary.EdgeCount != 3 {
		t.Errorf("expected 3 edges, got %d", summary.EdgeCount)
	}
}

func TestCalculateEdgeBandingKitchenSidesOnly(t *testing.T) {
	panels := []PanelItem{
		{PanelType: PanelKitchenBase, WidthMm: 450, HeightMm: 850},
		{PanelType: PanelKitchenWall, WidthMm: 450, HeightMm: 720},
	}
	summary := CalculateEdgeBanding(panels, 0)

	// 2x850 + 2x720 = 3140 mm.
	if math.Abs(summary.TotalLinearMM-3140) > 1e-9 {
		t.Errorf("expected 3140 mm, got %v", summary.TotalLinearMM)
	}
	if summary.EdgeCount != 4 {
		t.Errorf("expected 4 edges, got %d", summary.EdgeCount)
	}
}

func TestCalculateEdgeBandingWaste(t *testing.T) {
	panels := []PanelItem{
		{PanelType: PanelShutter, WidthMm: 500, HeightMm: 500},
	}
	summary := CalculateEdgeBanding(panels, 10)

	if summary.WastePercent != 10 {
		t.Errorf("expected waste percent recorded, got %v", summary.WastePercent)
	}
	// 2000 mm + 10% = 2200, ceil stays 2200.
	if summary.TotalWithWasteMM != 2200 {
		t.Errorf("expected 2200 mm with waste, got %v", summary.TotalWithWasteMM)
	}
	if math.Abs(summary.TotalWithWasteM-2.2) > 1e-9 {
		t.Errorf("expected 2.2 m with waste, got %v", summary.TotalWithWasteM)
	}
}

func TestCalculateEdgeBandingGroupsByLaminate(t *testing.T) {
	panels := []PanelItem{
		{PanelType: PanelShutter, WidthMm: 500, HeightMm: 500, LaminateCode: "SF-101"},
		{PanelType: PanelShutter, WidthMm: 500, HeightMm: 500, LaminateCode: "SF-102"},
		{PanelType: PanelShutter, WidthMm: 250, HeightMm: 250, LaminateCode: "SF-101"},
	}
	summary := CalculateEdgeBanding(panels, 0)

	if len(summary.PerLaminate) != 2 {
		t.Fatalf("expected 2 laminate groups, got %d", len(summary.PerLaminate))
	}
	first := summary.PerLaminate[0]
	if first.LaminateCode != "SF-101" {
		t.Errorf("expected first-seen laminate first, got %s", first.LaminateCode)
	}
	if first.PanelCount != 2 {
		t.Errorf("expected 2 panels in SF-101, got %d", first.PanelCount)
	}
	if math.Abs(first.TotalMM-3000) > 1e-9 {
		t.Errorf("expected 2000 + 1000 = 3000 mm, got %v", first.TotalMM)
	}
}

func TestCalculateEdgeBandingEmpty(t *testing.T) {
	summary := CalculateEdgeBanding(nil, 10)

	if summary.TotalLinearMM != 0 || summary.PanelCount != 0 || len(summary.PerLaminate) != 0 {
		t.Errorf("expected an empty summary, got %+v", summary)
	}
}
