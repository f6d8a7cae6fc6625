package model

import (
	"fmt"
	"testing"
)

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultProductionSettings()

	if cfg.DefaultWidthReduction != defaults.WidthReductionMm {
		t.Errorf("WidthReduction mismatch: config=%f settings=%f", cfg.DefaultWidthReduction, defaults.WidthReductionMm)
	}
	if cfg.DefaultHeightReduction != defaults.HeightReductionMm {
		t.Errorf("HeightReduction mismatch: config=%f settings=%f", cfg.DefaultHeightReduction, defaults.HeightReductionMm)
	}
	if cfg.DefaultRounding != defaults.RoundingMm {
		t.Errorf("Rounding mismatch: config=%f settings=%f", cfg.DefaultRounding, defaults.RoundingMm)
	}
	if cfg.DefaultIncludeLoft != defaults.IncludeLoft {
		t.Errorf("IncludeLoft mismatch: config=%v settings=%v", cfg.DefaultIncludeLoft, defaults.IncludeLoft)
	}
	if cfg.DefaultRatePreset != "Matte" {
		t.Errorf("expected default rate preset=Matte, got %s", cfg.DefaultRatePreset)
	}
	if cfg.CurrencySymbol != "Rs." {
		t.Errorf("expected currency symbol=Rs., got %s", cfg.CurrencySymbol)
	}
	if cfg.RecentQuotations == nil {
		t.Error("RecentQuotations should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultWidthReduction = 5.0
	cfg.DefaultHeightReduction = 3.0
	cfg.DefaultRounding = 10.0
	cfg.DefaultIncludeLoft = false

	s := DefaultProductionSettings()
	cfg.ApplyToSettings(&s)

	if s.WidthReductionMm != 5.0 {
		t.Errorf("expected WidthReductionMm=5.0, got %f", s.WidthReductionMm)
	}
	if s.HeightReductionMm != 3.0 {
		t.Errorf("expected HeightReductionMm=3.0, got %f", s.HeightReductionMm)
	}
	if s.RoundingMm != 10.0 {
		t.Errorf("expected RoundingMm=10.0, got %f", s.RoundingMm)
	}
	if s.IncludeLoft {
		t.Error("expected IncludeLoft=false after apply")
	}
}

func TestAddRecentQuotation(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.AddRecentQuotation("/tmp/a.json")
	cfg.AddRecentQuotation("/tmp/b.json")
	cfg.AddRecentQuotation("/tmp/a.json")

	if len(cfg.RecentQuotations) != 2 {
		t.Fatalf("expected 2 entries after re-adding a duplicate, got %d", len(cfg.RecentQuotations))
	}
	if cfg.RecentQuotations[0] != "/tmp/a.json" {
		t.Errorf("expected most recent first, got %s", cfg.RecentQuotations[0])
	}
	if cfg.RecentQuotations[1] != "/tmp/b.json" {
		t.Errorf("expected older entry second, got %s", cfg.RecentQuotations[1])
	}
}

func TestAddRecentQuotationBounded(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentQuotation(fmt.Sprintf("/tmp/q%d.json", i))
	}

	if len(cfg.RecentQuotations) != maxRecentQuotations {
		t.Fatalf("expected list bounded at %d, got %d", maxRecentQuotations, len(cfg.RecentQuotations))
	}
	if cfg.RecentQuotations[0] != "/tmp/q14.json" {
		t.Errorf("expected newest entry first, got %s", cfg.RecentQuotations[0])
	}
}
