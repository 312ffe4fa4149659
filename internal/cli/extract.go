package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cachar666/PluginRevit-V1/internal/export"
	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/pipeline"
	"github.com/cachar666/PluginRevit-V1/internal/source"
	"github.com/cachar666/PluginRevit-V1/internal/tree"
	"github.com/spf13/cobra"
)

var (
	viewName    string
	filterArg   string
	outPath     string
	propNames   []string
	deselectArg []string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <snapshot>",
	Short: "Extract quantities from a model snapshot into an Excel workbook",
	Long: `Extract loads a model snapshot, builds the category/family selection
tree, resolves the selected properties for every included element,
aggregates face area and approximate volume per material, and writes
one styled .xlsx workbook.

Families and materials qualify through the Keynote/Assembly Code
filter; categories left without qualifying families are dropped. All
surviving entries start selected; use --deselect to exclude whole
categories or single families.

Example:
  takeoff extract model.json
  takeoff extract model.yaml --view "Planta Nivel 1" --filter either
  takeoff extract model.json --deselect "Puertas" --deselect "Muros/Muro Cortina"
  takeoff extract model.json --props "Nombre del Elemento,Volumen" -o cantidades.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&viewName, "view", "", "restrict extraction to one view (default: whole model)")
	extractCmd.Flags().StringVar(&filterArg, "filter", "", "family/material filter: keynote, assembly or either (default from config)")
	extractCmd.Flags().StringVarP(&outPath, "out", "o", "", "output .xlsx path (default: generated name in output dir)")
	extractCmd.Flags().StringSliceVar(&propNames, "props", nil, "properties to export (default: full catalog)")
	extractCmd.Flags().StringSliceVar(&deselectArg, "deselect", nil, `tree entries to exclude: "Category" or "Category/Family"`)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	mode, err := resolveFilter(cfg)
	if err != nil {
		return err
	}

	doc, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	scope := source.Scope{View: viewName}
	forest, status := tree.NewLoader(doc).Load(scope, mode)
	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Project: %s\n", doc.ProjectName)
		fmt.Fprintf(os.Stderr, "%s\n", status)
	}
	if len(forest) == 0 {
		return fmt.Errorf("no categories pass the %s filter (%s)", mode, status)
	}

	if err := applyDeselections(forest, deselectArg); err != nil {
		return err
	}

	props := chooseProperties(propNames)
	records, err := pipeline.New(doc).Extract(forest, props, mode, scope)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = filepath.Join(cfg.Output.Dir, export.FileName(doc.ProjectName, doc.Location, time.Now()))
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	exporter := export.NewExporter(cfg.Export.SheetName, cfg.Export.Title)
	if err := exporter.Export(records, model.SelectedNames(props), out, doc.ProjectName); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s (%d records)\n", out, len(records))
	return nil
}

// resolveFilter picks the filter mode from the flag, falling back to
// the configured default.
func resolveFilter(cfg *model.Config) (model.FilterMode, error) {
	name := filterArg
	if name == "" {
		name = cfg.Filter
	}
	return model.ParseFilterMode(name)
}

// chooseProperties returns the catalog restricted to the requested
// names, in catalog order; names outside the catalog become custom
// parameter properties appended in request order. An empty request
// keeps the full catalog selected.
func chooseProperties(names []string) []model.Property {
	props := model.Properties()
	if len(names) == 0 {
		return props
	}

	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}
	for i := range props {
		props[i].Selected = requested[props[i].Name]
		delete(requested, props[i].Name)
	}
	for _, n := range names {
		if requested[n] {
			props = append(props, model.Property{
				Name:     n,
				Kind:     model.KindProjectParameter,
				Selected: true,
			})
		}
	}
	return props
}

// applyDeselections toggles off the named tree entries. Entries are
// "Category" or "Category/Family"; unknown names are an error so typos
// do not silently export everything.
func applyDeselections(forest []*tree.Node, entries []string) error {
	for _, entry := range entries {
		category, family := splitEntry(entry)
		node := findNode(forest, category, family)
		if node == nil {
			return fmt.Errorf("no tree entry named %q", entry)
		}
		node.SetSelected(false)
	}
	return nil
}

func splitEntry(entry string) (category, family string) {
	for i, r := range entry {
		if r == '/' {
			return entry[:i], entry[i+1:]
		}
	}
	return entry, ""
}

func findNode(forest []*tree.Node, category, family string) *tree.Node {
	for _, cat := range forest {
		if cat.Name != category {
			continue
		}
		if family == "" {
			return cat
		}
		for _, child := range cat.Children {
			if child.Name == family {
				return child
			}
		}
	}
	return nil
}
