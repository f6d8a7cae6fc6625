package model

import "math"

// DefaultBandingWastePercent is the waste margin the export surfaces
// apply on top of the measured banding length, so the PDF, workbook and
// CLI summary always quote the same tape requirement.
const DefaultBandingWastePercent = 5.0

// EdgeBandingSummary holds the banding tape requirements derived from a
// cutlist, overall and per laminate code.
type EdgeBandingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // banding length in mm, no waste
	TotalLinearM     float64 `json:"total_linear_m"`      // banding length in meters, no waste
	WastePercent     float64 `json:"waste_percent"`       // waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // total with waste in meters
	PanelCount       int     `json:"panel_count"`         // panels needing banding
	EdgeCount        int     `json:"edge_count"`          // individual edges banded

	PerLaminate []LaminateBanding `json:"per_laminate,omitempty"`
}

// LaminateBanding is the banding requirement for one laminate code, used
// to order tape rolls per finish.
type LaminateBanding struct {
	LaminateCode string  `json:"laminate_code"`
	PanelCount   int     `json:"panel_count"`
	TotalMM      float64 `json:"total_mm"`
	TotalM       float64 `json:"total_m"`
}

// bandedEdges returns how many edges of a panel receive banding tape.
// Shutters show all four edges; loft shutters sit under the ceiling line
// and skip the top edge; kitchen shutters hide top and bottom behind
// counter and cornice.
func bandedEdges(t PanelType) int {
	switch t {
	case PanelLoft:
		return 3
	case PanelKitchenBase, PanelKitchenWall:
		return 2
	default:
		return 4
	}
}

func bandingLength(p PanelItem) float64 {
	switch bandedEdges(p.PanelType) {
	case 2:
		return 2 * p.HeightMm
	case 3:
		return p.WidthMm + 2*p.HeightMm
	default:
		return 2 * (p.WidthMm + p.HeightMm)
	}
}

// CalculateEdgeBanding computes the banding tape needed for a cutlist.
// wastePercent is the additional percentage to add for waste (e.g. 10
// for 10%). Panels are grouped by laminate code; panels without a code
// group under the empty string.
func CalculateEdgeBanding(panels []PanelItem, wastePercent float64) EdgeBandingSummary {
	var totalMM float64
	var edgeCount int
	byLaminate := map[string]*LaminateBanding{}
	var order []string

	for _, p := range panels {
		length := bandingLength(p)
		totalMM += length
		edgeCount += bandedEdges(p.PanelType)

		lb, ok := byLaminate[p.LaminateCode]
		if !ok {
			lb = &LaminateBanding{LaminateCode: p.LaminateCode}
			byLaminate[p.LaminateCode] = lb
			order = append(order, p.LaminateCode)
		}
		lb.PanelCount++
		lb.TotalMM += length
	}

	summary := EdgeBandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: math.Ceil(totalMM * (1.0 + wastePercent/100.0)),
		PanelCount:       len(panels),
		EdgeCount:        edgeCount,
	}
	summary.TotalWithWasteM = summary.TotalWithWasteMM / 1000.0

	for _, code := range order {
		lb := byLaminate[code]
		lb.TotalM = lb.TotalMM / 1000.0
		summary.PerLaminate = append(summary.PerLaminate, *lb)
	}
	return summary
}
