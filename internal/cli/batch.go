package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cachar666/PluginRevit-V1/internal/export"
	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/pipeline"
	"github.com/cachar666/PluginRevit-V1/internal/source"
	"github.com/cachar666/PluginRevit-V1/internal/tree"
	"github.com/spf13/cobra"
)

var batchOutputDir string

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract quantities from multiple snapshots listed in a file",
	Long: `Batch processes several model snapshots in one run:
- Read snapshot paths from the input file (one per line, # comments)
- Extract each snapshot sequentially with the configured filter
- Write one generated workbook per snapshot into the output directory

A snapshot that fails does not stop the batch; it is reported and the
run continues.

Example:
  takeoff batch models.txt
  takeoff batch models.txt --output-dir ./cantidades --filter either`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./cantidades", "output directory for workbooks")
	batchCmd.Flags().StringVar(&filterArg, "filter", "", "family/material filter: keynote, assembly or either (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	mode, err := resolveFilter(cfg)
	if err != nil {
		return err
	}

	paths, err := readSnapshotList(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no snapshot paths in %s", args[0])
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch: %d snapshots, filter %s, output %s\n", len(paths), mode, batchOutputDir)

	failed := 0
	for _, path := range paths {
		out, count, err := extractOne(cfg, path, mode)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%d records)\n", path, out, count)
	}

	fmt.Fprintf(os.Stderr, "Done: %d ok, %d failed\n", len(paths)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed", failed, len(paths))
	}
	return nil
}

// extractOne runs a whole-model extraction for a single snapshot with
// the full property catalog and writes the workbook under the batch
// output directory.
func extractOne(cfg *model.Config, path string, mode model.FilterMode) (string, int, error) {
	doc, err := source.Load(path)
	if err != nil {
		return "", 0, err
	}

	scope := source.Scope{}
	forest, status := tree.NewLoader(doc).Load(scope, mode)
	if len(forest) == 0 {
		return "", 0, fmt.Errorf("no categories pass the filter (%s)", status)
	}

	props := model.Properties()
	records, err := pipeline.New(doc).Extract(forest, props, mode, scope)
	if err != nil {
		return "", 0, err
	}

	out := filepath.Join(batchOutputDir, export.FileName(doc.ProjectName, doc.Location, time.Now()))
	exporter := export.NewExporter(cfg.Export.SheetName, cfg.Export.Title)
	if err := exporter.Export(records, model.SelectedNames(props), out, doc.ProjectName); err != nil {
		return "", 0, err
	}
	return out, len(records), nil
}

func readSnapshotList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot list: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot list: %w", err)
	}
	return paths, nil
}
