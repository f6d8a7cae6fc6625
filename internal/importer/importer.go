// Package importer provides CSV and Excel import functionality for rate cards.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mistrywoodworks/panelquote/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a rate card import.
type ImportResult struct {
	Presets  []model.RatePreset
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name            int
	CarcassMaterial int
	CarcassFinish   int
	CarcassHardware int
	ShutterMaterial int
	ShutterFinish   int
	ShutterHardware int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
// Lump-sum rate cards that carry a single "Carcass" or "Shutter" column land the
// whole rate in the material component; the effective rate is unchanged.
var headerAliases = map[string][]string{
	"name":             {"preset", "name", "preset name", "finish", "package", "rate card", "card"},
	"carcass_material": {"carcass material", "carcass mat", "carcass board", "carcass", "carcass rate"},
	"carcass_finish":   {"carcass finish", "carcass fin", "carcass laminate", "carcass lam"},
	"carcass_hardware": {"carcass hardware", "carcass hw", "carcass fittings"},
	"shutter_material": {"shutter material", "shutter mat", "shutter board", "shutter", "shutter rate"},
	"shutter_finish":   {"shutter finish", "shutter fin", "shutter laminate", "shutter lam"},
	"shutter_hardware": {"shutter hardware", "shutter hw", "shutter fittings"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:            -1,
		CarcassMaterial: -1,
		CarcassFinish:   -1,
		CarcassHardware: -1,
		ShutterMaterial: -1,
		ShutterFinish:   -1,
		ShutterHardware: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "carcass_material":
						if mapping.CarcassMaterial == -1 {
							mapping.CarcassMaterial = i
						}
					case "carcass_finish":
						if mapping.CarcassFinish == -1 {
							mapping.CarcassFinish = i
						}
					case "carcass_hardware":
						if mapping.CarcassHardware == -1 {
							mapping.CarcassHardware = i
						}
					case "shutter_material":
						if mapping.ShutterMaterial == -1 {
							mapping.ShutterMaterial = i
						}
					case "shutter_finish":
						if mapping.ShutterFinish == -1 {
							mapping.ShutterFinish = i
						}
					case "shutter_hardware":
						if mapping.ShutterHardware == -1 {
							mapping.ShutterHardware = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Carcass M/F/H, Shutter M/F/H
		return ColumnMapping{
			Name:            0,
			CarcassMaterial: 1,
			CarcassFinish:   2,
			CarcassHardware: 3,
			ShutterMaterial: 4,
			ShutterFinish:   5,
			ShutterHardware: 6,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRate reads one rate cell. A required cell must be present and parse;
// an optional cell defaults to zero when empty or unmapped.
func parseRate(row []string, idx int, field, rowLabel string, required bool) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		if required {
			return 0, fmt.Sprintf("%s: Missing %s rate", rowLabel, field)
		}
		return 0, ""
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s rate '%s'", rowLabel, field, s)
	}
	if rate < 0 {
		return 0, fmt.Sprintf("%s: Negative %s rate", rowLabel, field)
	}
	return rate, ""
}

// parseRow extracts a RatePreset from a row using the given column mapping.
// Imported presets keep the default add-on price list; rate cards cover the
// per-square-foot components only.
// Returns the preset, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, presetCount int) (model.RatePreset, string, string) {
	var warning string
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Preset %d", presetCount+1)
		warning = fmt.Sprintf("%s: Missing preset name, using '%s'", rowLabel, name)
	}

	carcassMat, errMsg := parseRate(row, mapping.CarcassMaterial, "carcass material", rowLabel, true)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}
	shutterMat, errMsg := parseRate(row, mapping.ShutterMaterial, "shutter material", rowLabel, true)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}
	if carcassMat == 0 || shutterMat == 0 {
		return model.RatePreset{}, fmt.Sprintf("%s: Material rates must be positive", rowLabel), ""
	}

	carcassFin, errMsg := parseRate(row, mapping.CarcassFinish, "carcass finish", rowLabel, false)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}
	carcassHw, errMsg := parseRate(row, mapping.CarcassHardware, "carcass hardware", rowLabel, false)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}
	shutterFin, errMsg := parseRate(row, mapping.ShutterFinish, "shutter finish", rowLabel, false)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}
	shutterHw, errMsg := parseRate(row, mapping.ShutterHardware, "shutter hardware", rowLabel, false)
	if errMsg != "" {
		return model.RatePreset{}, errMsg, ""
	}

	rates := model.DefaultRateConfig()
	rates.Carcass = model.RateComponents{Material: carcassMat, Finish: carcassFin, Hardware: carcassHw}
	rates.Shutter = model.RateComponents{Material: shutterMat, Finish: shutterFin, Hardware: shutterHw}

	return model.NewRatePreset(name, rates), "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports rate presets from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports rate presets from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports rate presets from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into presets. A row
// repeating an earlier preset name replaces it, matching RateBook.Add.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.CarcassMaterial == -1 {
			missing = append(missing, "Carcass material")
		}
		if mapping.ShutterMaterial == -1 {
			missing = append(missing, "Shutter material")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after the name is not numeric - might be an
				// unrecognized header. Skip it but use positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		preset, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Presets))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		replaced := false
		for j, p := range result.Presets {
			if strings.EqualFold(p.Name, preset.Name) {
				result.Presets[j] = preset
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate preset '%s', replacing earlier definition", rowLabel, preset.Name))
				replaced = true
				break
			}
		}
		if !replaced {
			result.Presets = append(result.Presets, preset)
		}
	}

	return result
}
