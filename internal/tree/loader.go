package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/source"
)

// Loader builds the selection forest from a snapshot document.
type Loader struct {
	doc *source.Document
}

// NewLoader creates a loader over the given document.
func NewLoader(doc *source.Document) *Loader {
	return &Loader{doc: doc}
}

// Load groups the scoped elements by category then family, annotates
// each family node with keynote/assembly-code presence sampled from the
// first resolved type in the group, prunes families failing the filter
// and categories left without children, and returns the surviving
// forest together with a human-readable status line. Load never fails:
// scope problems surface through the status, with an empty forest.
func (l *Loader) Load(scope source.Scope, mode model.FilterMode) ([]*Node, string) {
	elements, err := l.doc.ElementsIn(scope)
	if err != nil {
		return nil, fmt.Sprintf("Error loading categories: %v", err)
	}

	byCategory := make(map[string][]*model.Element)
	for _, el := range elements {
		if el.Category == "" {
			continue
		}
		byCategory[el.Category] = append(byCategory[el.Category], el)
	}

	categories := make([]string, 0, len(byCategory))
	for name := range byCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var forest []*Node
	totalFamilies := 0
	for _, categoryName := range categories {
		categoryNode := &Node{
			Name:        categoryName,
			CategoryKey: categoryName,
			IsCategory:  true,
			state:       On,
		}

		byFamily := make(map[string]*model.ElementType)
		var families []string
		for _, el := range byCategory[categoryName] {
			typ := l.doc.Type(el.TypeID)
			if typ == nil || typ.FamilyName == "" {
				continue
			}
			if _, seen := byFamily[typ.FamilyName]; !seen {
				// First type in the group is the representative sample
				// for the filter annotations.
				byFamily[typ.FamilyName] = typ
				families = append(families, typ.FamilyName)
			}
		}
		sort.Strings(families)

		for _, familyName := range families {
			typ := byFamily[familyName]
			keynote := typ.BuiltInValue(model.ParamKeynote)
			assemblyCode := typ.BuiltInValue(model.ParamAssemblyCode)
			hasKeynote := strings.TrimSpace(keynote) != ""
			hasAssemblyCode := strings.TrimSpace(assemblyCode) != ""

			if !mode.Passes(hasKeynote, hasAssemblyCode) {
				continue
			}

			categoryNode.Children = append(categoryNode.Children, &Node{
				Name:            familyName,
				CategoryKey:     categoryNode.CategoryKey,
				Parent:          categoryNode,
				state:           On,
				HasKeynote:      hasKeynote,
				HasAssemblyCode: hasAssemblyCode,
				Keynote:         keynote,
				AssemblyCode:    assemblyCode,
			})
		}

		if len(categoryNode.Children) == 0 {
			continue
		}
		forest = append(forest, categoryNode)
		totalFamilies += len(categoryNode.Children)
	}

	status := fmt.Sprintf("%d categories with %d families", len(forest), totalFamilies)
	if scope.View != "" {
		status = fmt.Sprintf("Active view: %s - %s", scope.View, status)
	}
	return forest, status
}
