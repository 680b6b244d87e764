package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutlist.dxf")

	err := ExportDXF(path, buildTestItems())
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "LINE") {
		t.Error("expected LINE entities in DXF output")
	}
	if !strings.Contains(content, "TEXT") {
		t.Error("expected TEXT entities in DXF output")
	}
	if !strings.Contains(content, "Side 34.5 x 24") {
		t.Error("expected piece labels in DXF output")
	}
	if !strings.Contains(content, "side") {
		t.Error("expected a side layer in DXF output")
	}
	if !strings.Contains(content, "EOF") {
		t.Error("expected DXF end-of-file marker")
	}
}

func TestExportDXF_NoItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	err := ExportDXF(path, nil)
	if err == nil {
		t.Fatal("expected error for empty cut list, got nil")
	}
}

func TestExportDXF_QuantityExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pieces.dxf")

	items := []model.CutItem{
		{Label: "Shelf 22.5 x 21", Type: model.PanelShelf, Width: 22.5, Height: 21, Thickness: 0.75, Quantity: 3},
	}

	if err := ExportDXF(path, items); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}

	// Each physical piece gets its own outline and label.
	if got := strings.Count(string(data), "Shelf 22.5 x 21"); got != 3 {
		t.Errorf("expected 3 labeled pieces, got %d", got)
	}
}
