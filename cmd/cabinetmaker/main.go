// CabinetMaker — built-in cabinet layout planner
//
// Loads a project JSON (room outline, obstacles, section requests),
// resolves the cabinet layout, and exports shop drawings, cut lists,
// and 3D models.
//
// Build:
//   go build -o cabinetmaker ./cmd/cabinetmaker
//
// Typical use:
//   cabinetmaker -project kitchen.json -pdf -xlsx
//   cabinetmaker -project kitchen.json -validate
//   cabinetmaker -room outline.dxf -sections runs.csv -png -save kitchen.json

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/assign"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/cutlist"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/export"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/importer"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/project"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/render"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/room"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/solid"
)

const renderWidthPx = 1200

func main() {
	projectPath := flag.String("project", "", "project JSON file")
	sectionsPath := flag.String("sections", "", "CSV or XLSX file of section requests to add")
	roomPath := flag.String("room", "", "DXF file with the room outline (replaces the project room)")
	wallHeight := flag.Float64("wall-height", 96, "wall height for -room import, inches")
	wallDepth := flag.Float64("wall-depth", 4, "wall thickness for -room import, inches")
	materialName := flag.String("material", "", "material preset from the catalog")
	styleName := flag.String("style", "", "construction style preset from the catalog")
	clearances := flag.String("clearances", "", "clearance profile applied to obstacles")
	outDir := flag.String("out", "", "output directory (default: config output dir, else project dir)")
	savePath := flag.String("save", "", "write the planned project JSON to this path")
	validate := flag.Bool("validate", false, "check room geometry and section fit, then exit")
	pdfOut := flag.Bool("pdf", false, "export the plan PDF")
	xlsxOut := flag.Bool("xlsx", false, "export the cut list workbook")
	dxfOut := flag.Bool("dxf", false, "export the panel outline DXF")
	stlOut := flag.Bool("stl", false, "export the 3D STL model")
	pngOut := flag.Bool("png", false, "render plan and elevation PNGs")
	labelsOut := flag.Bool("labels", false, "export the QR label sheet")
	cells := flag.Int("cells", 0, "STL mesh resolution, 0 for the default")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cabinetmaker -project <file> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cabinetmaker: ")

	if *projectPath == "" && *roomPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if custom, err := project.LoadCustomProfilesFromDefault(); err == nil {
		model.CustomClearanceProfiles = custom
	}

	p := loadOrNewProject(*projectPath, cfg)

	if *roomPath != "" {
		res := importer.ImportRoomDXF(*roomPath, *wallHeight, *wallDepth)
		for _, w := range res.Warnings {
			log.Printf("room import: %s", w)
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				log.Printf("room import: %s", e)
			}
			os.Exit(1)
		}
		p.Room = res.Room
	}

	if *sectionsPath != "" {
		res := importSections(*sectionsPath)
		for _, w := range res.Warnings {
			log.Printf("sections import: %s", w)
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				log.Printf("sections import: %s", e)
			}
			os.Exit(1)
		}
		p.Sections = append(p.Sections, res.Specs...)
	}

	applyPresets(&p, *materialName, *styleName)

	if *clearances != "" {
		applyClearanceProfile(&p, *clearances)
	}

	if *validate {
		os.Exit(runValidate(p))
	}

	plan, err := layout.Build(p)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}
	p.Plan = &plan

	printSummary(p, plan)

	wantExports := *pdfOut || *xlsxOut || *dxfOut || *stlOut || *pngOut || *labelsOut
	if wantExports {
		dir := resolveOutDir(*outDir, cfg, *projectPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
		base := outputBase(*projectPath, p)
		summary := cutlist.Build(plan.Panels, p.Settings)

		if *pdfOut {
			writeExport("pdf", filepath.Join(dir, base+".pdf"), func(path string) error {
				return export.ExportPDF(path, p, summary)
			})
		}
		if *xlsxOut {
			writeExport("xlsx", filepath.Join(dir, base+".xlsx"), func(path string) error {
				return export.ExportXLSX(path, summary, p.Settings)
			})
		}
		if *dxfOut {
			writeExport("dxf", filepath.Join(dir, base+".dxf"), func(path string) error {
				return export.ExportDXF(path, summary.Items)
			})
		}
		if *labelsOut {
			writeExport("labels", filepath.Join(dir, base+"-labels.pdf"), func(path string) error {
				return export.ExportLabels(path, summary.Items)
			})
		}
		if *stlOut {
			writeExport("stl", filepath.Join(dir, base+".stl"), func(path string) error {
				return solid.ExportSTL(path, plan, *cells)
			})
		}
		if *pngOut {
			writeExport("plan png", filepath.Join(dir, base+"-plan.png"), func(path string) error {
				return render.Plan(path, p, renderWidthPx)
			})
			for i := range p.Room.Walls {
				writeExport("elevation png", filepath.Join(dir, fmt.Sprintf("%s-wall%d.png", base, i)), func(path string) error {
					return render.Elevation(path, p, i, renderWidthPx)
				})
			}
		}
	}

	if *savePath != "" {
		if err := project.SaveProject(*savePath, p); err != nil {
			log.Fatalf("save project: %v", err)
		}
		fmt.Printf("wrote %s\n", *savePath)
		cfg.RememberRecent(*savePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			log.Printf("save config: %v", err)
		}
	}
}

// loadOrNewProject reads the project file when given, otherwise starts a
// fresh project seeded from the saved defaults.
func loadOrNewProject(path string, cfg model.AppConfig) model.Project {
	if path == "" {
		p := model.NewProject()
		cfg.ApplyToSettings(&p.Settings)
		return p
	}
	p, err := project.LoadProject(path)
	if err != nil {
		log.Fatalf("load project: %v", err)
	}
	return p
}

// importSections parses a section request file, picking the reader by
// extension.
func importSections(path string) importer.ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return importer.ImportExcel(path)
	default:
		return importer.ImportCSV(path)
	}
}

// applyPresets resolves -material and -style against the catalog.
func applyPresets(p *model.Project, materialName, styleName string) {
	if materialName == "" && styleName == "" {
		return
	}
	cat, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	if materialName != "" {
		m := cat.FindMaterialByName(materialName)
		if m == nil {
			log.Fatalf("unknown material %q (have: %s)", materialName, strings.Join(cat.MaterialNames(), ", "))
		}
		m.ApplyToSettings(&p.Settings)
	}
	if styleName != "" {
		s := cat.FindConstructionByName(styleName)
		if s == nil {
			log.Fatalf("unknown construction style %q (have: %s)", styleName, strings.Join(cat.ConstructionNames(), ", "))
		}
		s.ApplyToSettings(&p.Settings)
	}
}

// applyClearanceProfile sets a named profile's margins as clearance
// overrides on the project's obstacles.
func applyClearanceProfile(p *model.Project, name string) {
	for _, prof := range model.AllClearanceProfiles() {
		if prof.Name == name {
			p.Obstacles = prof.Apply(p.Obstacles)
			return
		}
	}
	log.Fatalf("unknown clearance profile %q (have: %s)", name, strings.Join(model.ClearanceProfileNames(), ", "))
}

// runValidate reports geometry and fit problems without planning.
func runValidate(p model.Project) int {
	geomErrs := room.ValidateGeometry(p.Room)
	fitErrs := assign.ValidateFit(p.Sections, p.Room)

	for _, e := range geomErrs {
		fmt.Printf("geometry: %s\n", e.Message)
	}
	for _, e := range fitErrs {
		fmt.Printf("fit: %s\n", e.Message)
	}
	if len(geomErrs)+len(fitErrs) > 0 {
		return 1
	}
	fmt.Printf("ok: %d walls, %d sections\n", len(p.Room.Walls), len(p.Sections))
	return 0
}

// printSummary writes the plan outcome to stdout.
func printSummary(p model.Project, plan model.Plan) {
	fmt.Printf("%s: %d walls, %d section requests, %d placed, %d skipped\n",
		p.Name, len(p.Room.Walls), len(p.Sections), plan.PlacedCount(), plan.SkippedCount())

	for _, w := range plan.Walls {
		if w.WallIndex < 0 || w.WallIndex >= len(p.Room.Walls) {
			continue
		}
		fmt.Printf("  %s: %d placed, %.1f of %.1f in used\n",
			wallLabel(p.Room, w.WallIndex), len(w.Placements), w.UsedWidth(), p.Room.Walls[w.WallIndex].Length)
		for _, s := range w.Skipped {
			fmt.Printf("    skipped %s: %s\n", sectionLabel(p, s.SectionIndex), s.Reason)
		}
	}
	for _, c := range plan.Corners {
		fmt.Printf("  corner %s across walls %d/%d\n", c.Corner, c.LeftWall, c.RightWall)
	}
	fmt.Printf("  %d panels\n", len(plan.Panels))
	for _, w := range plan.Warnings {
		fmt.Printf("  warning: %s\n", w.Message)
	}
}

func wallLabel(r model.Room, idx int) string {
	if name := r.Walls[idx].Name; name != "" {
		return fmt.Sprintf("wall %d (%s)", idx, name)
	}
	return fmt.Sprintf("wall %d", idx)
}

func sectionLabel(p model.Project, idx int) string {
	if idx >= 0 && idx < len(p.Sections) && p.Sections[idx].Label != "" {
		return fmt.Sprintf("%q", p.Sections[idx].Label)
	}
	return fmt.Sprintf("section %d", idx)
}

// resolveOutDir picks the export directory: flag, then config, then
// alongside the project file.
func resolveOutDir(flagDir string, cfg model.AppConfig, projectPath string) string {
	if flagDir != "" {
		return flagDir
	}
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	if projectPath != "" {
		return filepath.Dir(projectPath)
	}
	return "."
}

// outputBase derives the shared filename stem for exports.
func outputBase(projectPath string, p model.Project) string {
	if projectPath != "" {
		base := filepath.Base(projectPath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "cabinet-plan"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func writeExport(kind, path string, fn func(string) error) {
	if err := fn(path); err != nil {
		log.Fatalf("%s export: %v", kind, err)
	}
	fmt.Printf("wrote %s\n", path)
}
