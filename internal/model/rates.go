package model

import (
	"strings"

	"github.com/google/uuid"
)

// RateComponents breaks a per-square-foot rate into the three components
// quoted to the customer. The effective rate is their plain sum.
type RateComponents struct {
	Material float64 `json:"material"`
	Finish   float64 `json:"finish"`
	Hardware float64 `json:"hardware"`
}

// Total returns the effective per-square-foot rate.
func (r RateComponents) Total() float64 {
	return r.Material + r.Finish + r.Hardware
}

// AddOnUnit declares how an add-on rule charges.
type AddOnUnit string

const (
	PerSqft  AddOnUnit = "sqft"  // width x height area
	PerRft   AddOnUnit = "rft"   // running feet along the width
	PerPiece AddOnUnit = "piece" // flat rate per counted piece
)

// AddOnRule prices one add-on type.
type AddOnRule struct {
	Type    string    `json:"type"`
	Unit    AddOnUnit `json:"unit"`
	Rate    float64   `json:"rate"`
	Enabled bool      `json:"enabled"`
}

// AddOn is one drawn accessory attached to a unit.
type AddOn struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
	Quantity int     `json:"quantity"`
}

func NewAddOn(addOnType string, widthMm, heightMm float64, qty int) AddOn {
	return AddOn{
		ID:       uuid.New().String()[:8],
		Type:     addOnType,
		WidthMm:  widthMm,
		HeightMm: heightMm,
		Quantity: qty,
	}
}

// RateConfig holds the carcass and shutter rate components plus the
// add-on price list for one quotation, or for one unit as an override.
type RateConfig struct {
	Carcass    RateComponents `json:"carcass"`
	Shutter    RateComponents `json:"shutter"`
	AddOnRules []AddOnRule    `json:"add_on_rules,omitempty"`
}

// RuleFor returns the enabled pricing rule for an add-on type.
func (c RateConfig) RuleFor(addOnType string) (AddOnRule, bool) {
	for _, rule := range c.AddOnRules {
		if rule.Type == addOnType && rule.Enabled {
			return rule, true
		}
	}
	return AddOnRule{}, false
}

// DefaultRateConfig returns the hardcoded fallback rates used when a
// quotation carries no rate configuration of its own.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		Carcass: RateComponents{Material: 800, Finish: 250, Hardware: 150},
		Shutter: RateComponents{Material: 450, Finish: 300, Hardware: 100},
		AddOnRules: []AddOnRule{
			{Type: "drawer", Unit: PerPiece, Rate: 1500, Enabled: true},
			{Type: "shelf", Unit: PerPiece, Rate: 350, Enabled: true},
			{Type: "hanger_rod", Unit: PerRft, Rate: 120, Enabled: true},
			{Type: "mirror", Unit: PerSqft, Rate: 280, Enabled: true},
			{Type: "pullout_basket", Unit: PerPiece, Rate: 950, Enabled: true},
		},
	}
}

// RatePreset is a named rate configuration, typically one finish package
// offered to customers.
type RatePreset struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Rates RateConfig `json:"rates"`
}

func NewRatePreset(name string, rates RateConfig) RatePreset {
	return RatePreset{ID: uuid.New().String()[:8], Name: name, Rates: rates}
}

// RateBook is the persisted collection of rate presets.
type RateBook struct {
	Presets []RatePreset `json:"presets"`
}

// FindPreset returns the preset with the given name, case-insensitive.
func (b RateBook) FindPreset(name string) (RatePreset, bool) {
	for _, p := range b.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return RatePreset{}, false
}

// PresetNames returns the preset names in book order, for selection lists.
func (b RateBook) PresetNames() []string {
	names := make([]string, len(b.Presets))
	for i, p := range b.Presets {
		names[i] = p.Name
	}
	return names
}

// Add appends a preset, replacing any existing preset with the same name.
func (b *RateBook) Add(preset RatePreset) {
	for i, p := range b.Presets {
		if strings.EqualFold(p.Name, preset.Name) {
			b.Presets[i] = preset
			return
		}
	}
	b.Presets = append(b.Presets, preset)
}

// DefaultRateBook returns the built-in finish packages a fresh install
// starts with.
func DefaultRateBook() RateBook {
	matte := DefaultRateConfig()

	gloss := DefaultRateConfig()
	gloss.Shutter.Finish = 450

	acrylic := DefaultRateConfig()
	acrylic.Shutter.Material = 600
	acrylic.Shutter.Finish = 650

	return RateBook{Presets: []RatePreset{
		NewRatePreset("Matte", matte),
		NewRatePreset("Gloss", gloss),
		NewRatePreset("Acrylic", acrylic),
	}}
}
