package model

import "math"

// 1 sqft = 12" x 12" = 144 sq inches = 144 * 645.16 sq mm = 92903.04 sq mm.
const sqmmPerSqft = 92903.04

// mm in one running foot.
const mmPerFoot = 304.8

// GSTRate is the tax fraction applied to furniture quotations.
const GSTRate = 0.18

// UnitPricing is the priced breakdown for one drawn unit. Areas are in
// square feet at two decimals; prices are whole currency units.
type UnitPricing struct {
	UnitID    string `json:"unit_id"`
	UnitLabel string `json:"unit_label"`
	UnitType  string `json:"unit_type"`

	CarcassSqft float64 `json:"carcass_sqft"`
	ShutterSqft float64 `json:"shutter_sqft"`
	LoftSqft    float64 `json:"loft_sqft"`

	CarcassPrice float64 `json:"carcass_price"`
	ShutterPrice float64 `json:"shutter_price"`
	LoftPrice    float64 `json:"loft_price"`
	AddOnPrice   float64 `json:"add_on_price"`
}

// Total returns the unit's price including add-ons, before tax.
func (u UnitPricing) Total() float64 {
	return u.CarcassPrice + u.ShutterPrice + u.LoftPrice + u.AddOnPrice
}

// PricingResult aggregates the pricing of every unit in scope.
type PricingResult struct {
	Units      []UnitPricing `json:"units"`
	Subtotal   float64       `json:"subtotal"`
	AddOnTotal float64       `json:"add_on_total"`
	GST        float64       `json:"gst"`
	GrandTotal float64       `json:"grand_total"`
}

// CalculatePricing prices every dimensioned unit in the list. Rate
// precedence per unit: the unit's own override, then the passed
// configuration, then the hardcoded defaults. Monetary figures are
// rounded to whole currency units at each stage; undimensioned units
// contribute nothing and are omitted.
func CalculatePricing(units []DrawnUnit, rates *RateConfig) PricingResult {
	base := DefaultRateConfig()
	if rates != nil {
		base = *rates
	}

	var result PricingResult
	for _, unit := range units {
		up, ok := priceUnit(unit, base)
		if !ok {
			continue
		}
		result.Units = append(result.Units, up)
		result.Subtotal += up.CarcassPrice + up.ShutterPrice + up.LoftPrice
		result.AddOnTotal += up.AddOnPrice
	}

	result.GST = math.Round((result.Subtotal + result.AddOnTotal) * GSTRate)
	result.GrandTotal = result.Subtotal + result.AddOnTotal + result.GST
	return result
}

func priceUnit(unit DrawnUnit, base RateConfig) (UnitPricing, bool) {
	effective := base
	if unit.RateOverride != nil {
		effective = *unit.RateOverride
	}
	carcassRate := effective.Carcass.Total()
	shutterRate := effective.Shutter.Total()

	// Loft panels are visible and load-bearing, so they are billed as
	// carcass and shutter at once.
	loftRate := carcassRate + shutterRate

	var carcassSqft, shutterSqft float64
	if !unit.LoftOnly && unit.HasBody() {
		carcassSqft = unit.WidthMm * unit.HeightMm / sqmmPerSqft
		shutterSqft = carcassSqft
	}
	loftSqft := loftAreaSqft(unit)

	var addOnPrice float64
	for _, addOn := range unit.AddOns {
		addOnPrice += priceAddOn(addOn, effective)
	}

	up := UnitPricing{
		UnitID:       unit.ID,
		UnitLabel:    unit.Label,
		UnitType:     unit.UnitType,
		CarcassSqft:  round2(carcassSqft),
		ShutterSqft:  round2(shutterSqft),
		LoftSqft:     round2(loftSqft),
		CarcassPrice: math.Round(carcassSqft * carcassRate),
		ShutterPrice: math.Round(shutterSqft * shutterRate),
		LoftPrice:    math.Round(loftSqft * loftRate),
		AddOnPrice:   math.Round(addOnPrice),
	}
	if up.CarcassSqft == 0 && up.LoftSqft == 0 && up.AddOnPrice == 0 {
		return UnitPricing{}, false
	}
	return up, true
}

func loftAreaSqft(unit DrawnUnit) float64 {
	if !unit.LoftEnabled && !unit.LoftOnly {
		return 0
	}
	if unit.HasLoftDims() {
		return unit.LoftWidthMm * unit.LoftHeightMm / sqmmPerSqft
	}
	// Old saved quotations carry only the drawn loft box. Its pixel
	// values were billed as millimeters and stored totals depend on
	// reproducing that figure, so no pixel-to-mm conversion here.
	if unit.LoftBox != nil {
		return unit.LoftBox.Width * unit.LoftBox.Height / sqmmPerSqft
	}
	return 0
}

func priceAddOn(addOn AddOn, rates RateConfig) float64 {
	rule, ok := rates.RuleFor(addOn.Type)
	if !ok {
		return 0
	}
	switch rule.Unit {
	case PerSqft:
		return addOn.WidthMm * addOn.HeightMm / sqmmPerSqft * rule.Rate
	case PerRft:
		return addOn.WidthMm / mmPerFoot * rule.Rate
	case PerPiece:
		return float64(addOn.Quantity) * rule.Rate
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
