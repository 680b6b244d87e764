package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func buildTestItems() []model.CutItem {
	return []model.CutItem{
		{
			Label:       "Side 34.5 x 24",
			Type:        model.PanelSide,
			Width:       34.5,
			Height:      24,
			Thickness:   0.75,
			Material:    "3/4 plywood",
			Quantity:    2,
			EdgeBanding: model.EdgeBanding{Right: true},
		},
		{
			Label:     "Pantry back",
			Type:      model.PanelBack,
			Width:     29.75,
			Height:    28.5,
			Thickness: 0.25,
			Quantity:  1,
		},
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestItems())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, nil)
	if err == nil {
		t.Fatal("expected error for empty cut list, got nil")
	}
}

func TestExportLabels_ManyPieces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 pieces spill onto a second sheet
	items := []model.CutItem{
		{Label: "Shelf 22.5 x 11", Type: model.PanelShelf, Width: 22.5, Height: 11, Thickness: 0.75, Quantity: 35},
	}

	err := ExportLabels(path, items)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestItems())

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	if labels[0].PanelLabel != "Side 34.5 x 24" {
		t.Errorf("expected first label to be the side, got %q", labels[0].PanelLabel)
	}
	if labels[0].Piece != 1 || labels[0].Of != 2 {
		t.Errorf("expected piece 1 of 2, got %d of %d", labels[0].Piece, labels[0].Of)
	}
	if labels[0].Edges != "R" {
		t.Errorf("expected edges R, got %q", labels[0].Edges)
	}

	if labels[1].Piece != 2 || labels[1].Of != 2 {
		t.Errorf("expected piece 2 of 2, got %d of %d", labels[1].Piece, labels[1].Of)
	}

	if labels[2].PanelLabel != "Pantry back" {
		t.Errorf("expected third label to be the back, got %q", labels[2].PanelLabel)
	}
	if labels[2].Edges != "none" {
		t.Errorf("expected no banded edges, got %q", labels[2].Edges)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		PanelLabel: "Shelf 22.5 x 21.75",
		Type:       "shelf",
		Width:      22.5,
		Height:     21.75,
		Thickness:  0.75,
		Material:   "3/4 plywood",
		Edges:      "T",
		Piece:      2,
		Of:         6,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded != info {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info)
	}
}
