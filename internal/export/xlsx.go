package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/cutlist"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// Workbook sheet names.
const (
	sheetCutList  = "Cut List"
	sheetPurchase = "Purchase"
	sheetBanding  = "Edge Banding"
)

// ExportXLSX writes the cut-list summary as a spreadsheet workbook with
// separate sheets for the cut list, sheet purchasing, and edge banding.
func ExportXLSX(path string, summary cutlist.Summary, settings model.LayoutSettings) error {
	if len(summary.Items) == 0 {
		return fmt.Errorf("no cut items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetCutList); err != nil {
		return fmt.Errorf("failed to name cut list sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeCutListSheet(f, summary, headerStyle); err != nil {
		return fmt.Errorf("failed to write cut list sheet: %w", err)
	}
	if err := writePurchaseSheet(f, summary.Purchase, settings, headerStyle); err != nil {
		return fmt.Errorf("failed to write purchase sheet: %w", err)
	}
	if err := writeBandingSheet(f, summary, headerStyle); err != nil {
		return fmt.Errorf("failed to write edge banding sheet: %w", err)
	}

	return f.SaveAs(path)
}

// writeRow sets one spreadsheet row from a value slice, column A onward.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeCutListSheet(f *excelize.File, summary cutlist.Summary, headerStyle int) error {
	headers := []interface{}{"Qty", "Part", "Type", "Width (in)", "Height (in)", "Thickness (in)", "Material", "Banding", "Area (sq in)"}
	if err := writeRow(f, sheetCutList, 1, headers); err != nil {
		return err
	}

	for i, it := range summary.Items {
		values := []interface{}{
			it.Quantity,
			it.Label,
			string(it.Type),
			it.Width,
			it.Height,
			it.Thickness,
			it.Material,
			it.EdgeBanding.String(),
			it.Area() * float64(it.Quantity),
		}
		if err := writeRow(f, sheetCutList, i+2, values); err != nil {
			return err
		}
	}

	// Totals below the table
	totalRow := len(summary.Items) + 3
	if err := writeRow(f, sheetCutList, totalRow, []interface{}{"", "Total panels", summary.PanelCount}); err != nil {
		return err
	}
	if err := writeRow(f, sheetCutList, totalRow+1, []interface{}{"", "Total area (sq in)", summary.TotalArea}); err != nil {
		return err
	}

	endHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCutList, "A1", endHeader, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetCutList, "B", "B", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheetCutList, "C", "I", 14)
}

func writePurchaseSheet(f *excelize.File, est model.PurchaseEstimate, settings model.LayoutSettings, headerStyle int) error {
	if _, err := f.NewSheet(sheetPurchase); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total panel area (sq in)", est.TotalPanelArea},
		{"Total board feet", est.TotalBoardFeet},
		{"Sheet size", fmt.Sprintf("%g x %g in", settings.SheetWidth, settings.SheetHeight)},
		{"Sheet area (sq in)", est.SheetArea},
		{"Sheets needed (exact)", est.SheetsNeededExact},
		{"Sheets needed (minimum)", est.SheetsNeededMin},
		{fmt.Sprintf("Sheets with %g%% waste", est.WastePercent), est.SheetsWithWaste},
	}
	if est.PricePerSheet > 0 {
		rows = append(rows,
			[]interface{}{"Price per sheet", est.PricePerSheet},
			[]interface{}{"Estimated cost", est.EstimatedCost})
	}

	for i, row := range rows {
		if err := writeRow(f, sheetPurchase, i+1, row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetPurchase, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetPurchase, "A", "A", 30)
}

func writeBandingSheet(f *excelize.File, summary cutlist.Summary, headerStyle int) error {
	if _, err := f.NewSheet(sheetBanding); err != nil {
		return err
	}

	headers := []interface{}{"Part", "Width (in)", "Height (in)", "Qty", "Edges", "Per Piece (in)", "Total (in)"}
	if err := writeRow(f, sheetBanding, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, b := range summary.PerItemBanding {
		values := []interface{}{b.Label, b.Width, b.Height, b.Quantity, b.Edges, b.LengthPerUnit, b.TotalLength}
		if err := writeRow(f, sheetBanding, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	totals := summary.EdgeBanding
	totalRows := [][]interface{}{
		{"Total (in)", totals.TotalLinearInches},
		{"Total (ft)", totals.TotalLinearFeet},
		{fmt.Sprintf("With %g%% waste (ft)", totals.WastePercent), totals.TotalWithWasteFt},
		{"Banded panels", totals.PanelCount},
		{"Banded edges", totals.EdgeCount},
	}
	for _, tr := range totalRows {
		if err := writeRow(f, sheetBanding, row, tr); err != nil {
			return err
		}
		row++
	}

	endHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetBanding, "A1", endHeader, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetBanding, "A", "A", 28)
}
