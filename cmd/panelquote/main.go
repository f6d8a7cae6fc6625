// PanelQuote - Visual Quotation Tool for Modular Furniture
//
// A headless command line front end to the cutlist and pricing engines:
// point it at a saved quotation to print a costing summary or render the
// customer and shop-floor documents.
//
// Build:
//   go build -o panelquote ./cmd/panelquote
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o panelquote.exe ./cmd/panelquote
//   GOOS=darwin  GOARCH=amd64 go build -o panelquote-darwin ./cmd/panelquote

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mistrywoodworks/panelquote/internal/engine"
	"github.com/mistrywoodworks/panelquote/internal/export"
	"github.com/mistrywoodworks/panelquote/internal/importer"
	"github.com/mistrywoodworks/panelquote/internal/model"
	"github.com/mistrywoodworks/panelquote/internal/project"
)

func main() {
	quotationPath := flag.String("quotation", "", "saved quotation JSON file")
	presetName := flag.String("preset", "", "price with the named rate preset from the rate book")
	outDir := flag.String("out", "", "output directory for rendered documents (default: configured export dir, else current dir)")
	writePDF := flag.Bool("pdf", false, "render the cutlist PDF")
	writeQuote := flag.Bool("quote", false, "render the customer quotation PDF")
	writeXLSX := flag.Bool("xlsx", false, "render the cutlist and pricing workbook")
	writeDXF := flag.Bool("dxf", false, "render the panel layout DXF")
	writeLabels := flag.Bool("labels", false, "render the QR panel label sheet")
	writeAll := flag.Bool("all", false, "render every document type")
	showSummary := flag.Bool("summary", false, "print the costing summary even when rendering documents")
	importRates := flag.String("import-rates", "", "import a rate card (CSV or Excel) into the rate book and exit")
	flag.Parse()

	if *importRates != "" {
		if err := runImportRates(*importRates); err != nil {
			fail(err)
		}
		return
	}

	if *quotationPath == "" {
		fmt.Fprintln(os.Stderr, "panelquote: -quotation is required (or -import-rates)")
		flag.Usage()
		os.Exit(2)
	}

	q, err := project.LoadQuotation(*quotationPath)
	if err != nil {
		fail(err)
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "panelquote: ignoring unreadable config:", err)
		cfg = model.DefaultAppConfig()
	}
	if abs, err := filepath.Abs(*quotationPath); err == nil {
		cfg.AddRecentQuotation(abs)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			fmt.Fprintln(os.Stderr, "panelquote: could not update recent list:", err)
		}
	}

	if *presetName != "" {
		book, _, err := project.LoadOrCreateRateBook()
		if err != nil {
			fail(err)
		}
		preset, ok := book.FindPreset(*presetName)
		if !ok {
			fail(fmt.Errorf("unknown rate preset %q (have: %s)", *presetName, strings.Join(book.PresetNames(), ", ")))
		}
		rates := preset.Rates
		q.Rates = &rates
	}

	panels := engine.BuildCutlistItems(engine.CutlistInput{
		Rooms:           q.Rooms,
		CurrentUnits:    q.ActiveUnits(),
		ActiveRoomIndex: q.ActiveRoomIndex,
		Settings:        q.Settings,
		ShutterLaminate: q.ShutterLaminate,
		LoftLaminate:    q.LoftLaminate,
	})
	pricing := model.CalculatePricing(q.AllUnits(), q.Rates)

	dir := *outDir
	if dir == "" {
		dir = cfg.ExportDir
	}
	if dir == "" {
		dir = "."
	}
	base := fileSlug(q.Name)

	type job struct {
		enabled bool
		suffix  string
		write   func(path string) error
	}
	jobs := []job{
		{*writePDF || *writeAll, "-cutlist.pdf", func(p string) error { return export.WriteCutlistPDF(p, q, panels) }},
		{*writeQuote || *writeAll, "-quotation.pdf", func(p string) error { return export.WriteQuotationPDF(p, q, pricing, cfg.CurrencySymbol) }},
		{*writeXLSX || *writeAll, "-cutlist.xlsx", func(p string) error { return export.WriteCutlistXLSX(p, q, panels, pricing) }},
		{*writeDXF || *writeAll, "-panels.dxf", func(p string) error { return export.WriteCutlistDXF(p, q, panels) }},
		{*writeLabels || *writeAll, "-labels.pdf", func(p string) error { return export.WritePanelLabels(p, q, panels) }},
	}

	wrote := 0
	for _, j := range jobs {
		if !j.enabled {
			continue
		}
		path := filepath.Join(dir, base+j.suffix)
		if err := j.write(path); err != nil {
			fail(err)
		}
		fmt.Println("wrote", path)
		wrote++
	}

	if wrote == 0 || *showSummary {
		printSummary(os.Stdout, q, panels, pricing, cfg.CurrencySymbol)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "panelquote:", err)
	os.Exit(1)
}

// runImportRates merges the presets from a rate card file into the rate
// book on disk. A card with any invalid row is rejected whole so a typo
// cannot half-update the book.
func runImportRates(path string) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		return fmt.Errorf("rate card import failed with %d error(s)", len(result.Errors))
	}
	if len(result.Presets) == 0 {
		return fmt.Errorf("rate card has no presets")
	}

	book, bookPath, err := project.LoadOrCreateRateBook()
	if err != nil {
		return err
	}
	for _, p := range result.Presets {
		book.Add(p)
	}
	if err := project.SaveRateBook(bookPath, book); err != nil {
		return err
	}
	fmt.Printf("imported %d preset(s) into %s\n", len(result.Presets), bookPath)
	return nil
}

// printSummary writes the costing summary a salesperson reads back over
// the phone: panel counts, per-unit pricing, and the tax breakup.
func printSummary(w io.Writer, q model.Quotation, panels []model.PanelItem, pricing model.PricingResult, currency string) {
	if currency == "" {
		currency = "Rs."
	}
	panels = q.Adjustments.Apply(panels)

	var totalSqft float64
	for _, p := range panels {
		totalSqft += p.AreaSqft()
	}

	fmt.Fprintf(w, "%s", q.Name)
	if q.Customer != "" {
		fmt.Fprintf(w, " (%s)", q.Customer)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rooms: %d  Units: %d  Panels: %d  Area: %.2f sqft\n\n", len(q.Rooms), len(q.AllUnits()), len(panels), totalSqft)

	if len(pricing.Units) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "UNIT\tCARCASS\tSHUTTER\tLOFT\tAMOUNT")
		for _, up := range pricing.Units {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %.0f\n",
				unitName(up), sqftText(up.CarcassSqft), sqftText(up.ShutterSqft), sqftText(up.LoftSqft), currency, up.Total())
		}
		tw.Flush()
		fmt.Fprintln(w)

		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Subtotal\t%s %.0f\n", currency, pricing.Subtotal)
		if pricing.AddOnTotal > 0 {
			fmt.Fprintf(tw, "Add-ons\t%s %.0f\n", currency, pricing.AddOnTotal)
		}
		fmt.Fprintf(tw, "GST (%.0f%%)\t%s %.0f\n", model.GSTRate*100, currency, pricing.GST)
		fmt.Fprintf(tw, "Grand total\t%s %.0f\n", currency, pricing.GrandTotal)
		tw.Flush()
	} else {
		fmt.Fprintln(w, "No priced units.")
	}

	if len(panels) > 0 {
		banding := model.CalculateEdgeBanding(panels, model.DefaultBandingWastePercent)
		fmt.Fprintf(w, "\nEdge banding: %.1f m (incl. %.0f%% waste)\n", banding.TotalWithWasteM, banding.WastePercent)
	}
}

func unitName(up model.UnitPricing) string {
	if up.UnitLabel != "" {
		return up.UnitLabel
	}
	switch up.UnitType {
	case model.UnitKitchen:
		return "Modular kitchen"
	case model.UnitWardrobe, model.UnitWardrobeCarcass:
		return "Wardrobe"
	case model.UnitTV:
		return "TV unit"
	}
	return "Unit"
}

func sqftText(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// fileSlug turns a quotation name into a safe file name stem.
func fileSlug(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	var b strings.Builder
	dash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "quotation"
	}
	return slug
}
