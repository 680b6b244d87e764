// Package importer provides CSV, Excel, and DXF import functionality for
// section requests and room outlines. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a section list import operation.
type ImportResult struct {
	Specs    []model.SectionSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label   int
	Width   int
	Shelves int
	Wall    int
	Mode    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":   {"label", "name", "section", "section name", "description", "desc", "cabinet", "item"},
	"width":   {"width", "w", "span", "size", "x"},
	"shelves": {"shelves", "shelf", "shelf count", "shelfcount", "num shelves"},
	"wall":    {"wall", "wall name", "wall index", "side", "location"},
	"mode":    {"mode", "height", "height mode", "type", "kind"},
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
		Label:   -1,
		Width:   -1,
		Shelves: -1,
		Wall:    -1,
		Mode:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "shelves":
						if mapping.Shelves == -1 {
							mapping.Shelves = i
						}
					case "wall":
						if mapping.Wall == -1 {
							mapping.Wall = i
						}
					case "mode":
						if mapping.Mode == -1 {
							mapping.Mode = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, Width, Shelves, Wall, Mode
		return ColumnMapping{
			Label:   0,
			Width:   1,
			Shelves: 2,
			Wall:    3,
			Mode:    4,
		}, false
	}

	return mapping, true
}

// parseSpan converts a width cell to a Span. The literal "fill" (in any case)
// requests the flexible share of the wall; anything else must be a positive number.
func parseSpan(s string) (model.Span, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "fill" || trimmed == "flex" || trimmed == "*" {
		return model.Fill(), true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v <= 0 {
		return model.Span{}, false
	}
	return model.Fixed(v), true
}

// parseWall converts a wall cell to a WallRef. Plain digits select a wall by
// zero-based index; any other non-empty text selects a wall by name. Empty
// cells leave the reference unset, which assigns the section to the first wall.
func parseWall(s string) model.WallRef {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return model.WallRef{}
	}
	if idx, err := strconv.Atoi(trimmed); err == nil && idx >= 0 {
		return model.WallByIndex(idx)
	}
	return model.WallByName(trimmed)
}

// parseMode converts a height mode string to a model.HeightMode value.
// It returns the mode and a boolean indicating whether the string was recognized.
func parseMode(s string) (model.HeightMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "any":
		return model.ModeAuto, true
	case "full", "tall", "pantry":
		return model.ModeFull, true
	case "lower", "base":
		return model.ModeLower, true
	case "upper", "wall":
		return model.ModeUpper, true
	default:
		return model.ModeAuto, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a SectionSpec from a row using the given column mapping.
// Returns the spec, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, specCount int) (model.SectionSpec, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Section %d", specCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.SectionSpec{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, ok := parseSpan(widthStr)
	if !ok {
		return model.SectionSpec{}, fmt.Sprintf("%s: Invalid width '%s' (expected a positive number or 'fill')", rowLabel, widthStr), ""
	}

	spec := model.NewSectionSpec(label, width)

	var warnings []string

	// Optional shelf count
	shelvesStr := getCell(row, mapping.Shelves)
	if shelvesStr != "" {
		shelves, err := strconv.Atoi(shelvesStr)
		if err != nil || shelves < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid shelf count '%s', defaulting to 0", rowLabel, shelvesStr))
		} else {
			spec.ShelfCount = shelves
		}
	}

	// Optional wall reference
	spec.Wall = parseWall(getCell(row, mapping.Wall))

	// Optional height mode
	modeStr := getCell(row, mapping.Mode)
	if modeStr != "" {
		mode, ok := parseMode(modeStr)
		if ok {
			spec.Mode = mode
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown height mode '%s', defaulting to auto", rowLabel, modeStr))
		}
	}

	return spec, "", strings.Join(warnings, "; ")
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

// ImportCSV imports section requests from a CSV file.
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

// ImportCSVFromReader imports section requests from a CSV reader with a specific
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

// ImportExcel imports section requests from an Excel (.xlsx, .xls) file.
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
// It detects headers, maps columns, and parses each row into section requests.
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

		// Validate that the required column was found
		if mapping.Width == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Width")
			return result
		}
	} else {
		// No header: check if the width cell parses (positional mapping)
		if len(rows[0]) >= 2 {
			if _, ok := parseSpan(rows[0][1]); !ok {
				// Width column is neither numeric nor "fill" - might be an
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
		spec, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Specs))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Specs = append(result.Specs, spec)
	}

	return result
}
