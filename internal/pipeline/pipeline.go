// Package pipeline orchestrates a quantity-extraction run: it walks the
// scoped elements, emits one record per element covered by the selection
// tree, folds every element's geometry into the material aggregator, and
// appends one record per qualifying material.
package pipeline

import (
	"fmt"
	"strconv"

	"github.com/cachar666/PluginRevit-V1/internal/cache"
	"github.com/cachar666/PluginRevit-V1/internal/material"
	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/properties"
	"github.com/cachar666/PluginRevit-V1/internal/source"
	"github.com/cachar666/PluginRevit-V1/internal/tree"
)

// Pipeline runs extractions over one document. The run itself is a
// single sequential pass with no shared mutable state.
type Pipeline struct {
	doc      *source.Document
	resolver *properties.Resolver
}

// New creates a pipeline over the given document.
func New(doc *source.Document) *Pipeline {
	return &Pipeline{
		doc:      doc,
		resolver: properties.NewResolver(doc, cache.NewMemoryCache()),
	}
}

// Extract produces the ordered record list for one run: element records
// in scope-iteration order, then material records in first-seen order.
// Individual property and geometry absences are absorbed locally; scope
// failures abort the whole run.
func (p *Pipeline) Extract(forest []*tree.Node, props []model.Property, mode model.FilterMode, scope source.Scope) ([]model.Record, error) {
	elements, err := p.doc.ElementsIn(scope)
	if err != nil {
		return nil, fmt.Errorf("extract quantities: %w", err)
	}

	props = selectedProperties(props)
	selected := newInclusionSet(forest)
	agg := material.NewAggregator(p.doc)

	var records []model.Record
	for _, el := range elements {
		if el.Category == "" {
			continue
		}
		typ := p.doc.Type(el.TypeID)
		if typ == nil {
			continue
		}

		// Accumulation runs for every element whose type resolves,
		// whether or not the element itself is recorded.
		agg.Accumulate(el)

		if !selected.includes(el.Category, typ.FamilyName) {
			continue
		}
		records = append(records, p.elementRecord(el, props))
	}

	for _, q := range agg.Passing(mode) {
		records = append(records, materialRecord(q, props))
	}
	return records, nil
}

func selectedProperties(props []model.Property) []model.Property {
	out := props[:0:0]
	for _, p := range props {
		if p.Selected {
			out = append(out, p)
		}
	}
	return out
}

// inclusionSet is the resolved selection: (category, family) pairs for
// selected families, plus bare category names for categories selected
// with no selected children, which stand for every element of that
// category regardless of family.
type inclusionSet struct {
	families   map[string]bool
	categories map[string]bool
}

func newInclusionSet(forest []*tree.Node) *inclusionSet {
	s := &inclusionSet{
		families:   make(map[string]bool),
		categories: make(map[string]bool),
	}
	for _, cat := range forest {
		if !cat.IsCategory {
			continue
		}
		anySelected := false
		for _, child := range cat.Children {
			if !child.Selected() {
				continue
			}
			anySelected = true
			if !child.IsMaterial {
				s.families[familyKey(cat.Name, child.Name)] = true
			}
		}
		// Whole-category inclusion is reserved for a definitely-selected
		// category with no selected children; a Mixed category is
		// represented by its selected families alone.
		if cat.Selected() && !anySelected {
			s.categories[cat.Name] = true
		}
	}
	return s
}

func (s *inclusionSet) includes(category, family string) bool {
	return s.families[familyKey(category, family)] || s.categories[category]
}

func familyKey(category, family string) string {
	return category + "\x00" + family
}

func (p *Pipeline) elementRecord(el *model.Element, props []model.Property) model.Record {
	rec := make(model.Record, len(props))
	for _, prop := range props {
		rec[prop.Name] = p.resolver.Resolve(el, prop.Name)
	}
	return rec
}

// materialFields is the dispatch table for material records, parallel to
// the element property table. Properties with no material counterpart
// render empty.
var materialFields = map[string]func(q material.Quantity) string{
	model.PropElementID: func(q material.Quantity) string {
		return strconv.FormatInt(q.Material.ID, 10)
	},
	model.PropElementName: func(q material.Quantity) string {
		return q.Material.Name
	},
	model.PropCategory: func(material.Quantity) string {
		return "Materiales"
	},
	model.PropFamilyAndType: func(material.Quantity) string {
		return "Materiales"
	},
	model.PropAssemblyCode: func(q material.Quantity) string {
		return q.Material.AssemblyCode
	},
	model.PropKeynote: func(q material.Quantity) string {
		return q.Material.Keynote
	},
	model.PropArea: func(q material.Quantity) string {
		return material.FormatArea(q.Area)
	},
	model.PropVolume: func(q material.Quantity) string {
		return material.FormatVolume(q.Volume)
	},
}

func materialRecord(q material.Quantity, props []model.Property) model.Record {
	rec := make(model.Record, len(props))
	for _, prop := range props {
		if field, ok := materialFields[prop.Name]; ok {
			rec[prop.Name] = field(q)
		} else {
			rec[prop.Name] = ""
		}
	}
	return rec
}
