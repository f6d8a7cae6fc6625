package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new quotations
	DefaultShutterLaminate string  `json:"default_shutter_laminate"`
	DefaultLoftLaminate    string  `json:"default_loft_laminate"`
	DefaultWidthReduction  float64 `json:"default_width_reduction"`
	DefaultHeightReduction float64 `json:"default_height_reduction"`
	DefaultRounding        float64 `json:"default_rounding"`
	DefaultIncludeLoft     bool    `json:"default_include_loft"`
	DefaultRatePreset      string  `json:"default_rate_preset"`

	// Application preferences
	CurrencySymbol   string   `json:"currency_symbol"`
	ExportDir        string   `json:"export_dir"`
	RecentQuotations []string `json:"recent_quotations"`
}

// maxRecentQuotations bounds the recent-files list.
const maxRecentQuotations = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultProductionSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultProductionSettings()
	return AppConfig{
		DefaultShutterLaminate: "",
		DefaultLoftLaminate:    "",
		DefaultWidthReduction:  defaults.WidthReductionMm,
		DefaultHeightReduction: defaults.HeightReductionMm,
		DefaultRounding:        defaults.RoundingMm,
		DefaultIncludeLoft:     defaults.IncludeLoft,
		DefaultRatePreset:      "Matte",
		CurrencySymbol:         "Rs.",
		ExportDir:              "",
		RecentQuotations:       []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// ProductionSettings struct. This is used when creating a new quotation
// so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *ProductionSettings) {
	s.WidthReductionMm = c.DefaultWidthReduction
	s.HeightReductionMm = c.DefaultHeightReduction
	s.RoundingMm = c.DefaultRounding
	s.IncludeLoft = c.DefaultIncludeLoft
}

// AddRecentQuotation puts path at the front of the recent list, removing
// duplicates and keeping the list bounded.
func (c *AppConfig) AddRecentQuotation(path string) {
	recent := []string{path}
	for _, p := range c.RecentQuotations {
		if p != path && len(recent) < maxRecentQuotations {
			recent = append(recent, p)
		}
	}
	c.RecentQuotations = recent
}
