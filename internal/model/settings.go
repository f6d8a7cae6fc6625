package model

// ProductionSettings controls how raw panel dimensions become
// manufacturable cutting sizes, applied quotation-wide.
type ProductionSettings struct {
	WidthReductionMm  float64 `json:"width_reduction_mm"`  // clearance subtracted before rounding
	HeightReductionMm float64 `json:"height_reduction_mm"` // clearance subtracted before rounding
	RoundingMm        float64 `json:"rounding_mm"`         // snap step; 0 = nearest whole mm
	IncludeLoft       bool    `json:"include_loft"`        // false suppresses every loft grid
}

// DefaultProductionSettings returns the settings applied to a new
// quotation: exact sizes, whole-millimeter rounding, lofts included.
func DefaultProductionSettings() ProductionSettings {
	return ProductionSettings{
		WidthReductionMm:  0,
		HeightReductionMm: 0,
		RoundingMm:        0,
		IncludeLoft:       true,
	}
}
