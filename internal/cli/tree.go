package cli

import (
	"fmt"

	"github.com/cachar666/PluginRevit-V1/internal/source"
	"github.com/cachar666/PluginRevit-V1/internal/tree"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree <snapshot>",
	Short: "Show the category/family selection tree for a snapshot",
	Long: `Tree loads a model snapshot and prints the category/family forest
the extract command would offer for selection, with each family's
Keynote and Assembly Code annotations.

Example:
  takeoff tree model.json
  takeoff tree model.json --view "Planta Nivel 1" --filter either`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVar(&viewName, "view", "", "restrict to one view (default: whole model)")
	treeCmd.Flags().StringVar(&filterArg, "filter", "", "family filter: keynote, assembly or either (default from config)")
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	mode, err := resolveFilter(cfg)
	if err != nil {
		return err
	}

	doc, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	forest, status := tree.NewLoader(doc).Load(source.Scope{View: viewName}, mode)
	fmt.Println(status)
	for _, category := range forest {
		fmt.Printf("%s (%d families)\n", category.Name, len(category.Children))
		for _, family := range category.Children {
			fmt.Printf("  - %s%s\n", family.Name, familyTags(family))
		}
	}
	return nil
}

func familyTags(n *tree.Node) string {
	switch {
	case n.HasKeynote && n.HasAssemblyCode:
		return fmt.Sprintf("  [keynote %s] [assembly %s]", n.Keynote, n.AssemblyCode)
	case n.HasKeynote:
		return fmt.Sprintf("  [keynote %s]", n.Keynote)
	case n.HasAssemblyCode:
		return fmt.Sprintf("  [assembly %s]", n.AssemblyCode)
	default:
		return ""
	}
}
