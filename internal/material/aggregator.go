// Package material accumulates per-material geometric quantities across
// element geometry: total painted face area, and an approximate volume
// obtained by splitting each solid's volume evenly across its faces.
package material

import (
	"fmt"
	"strings"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/source"
)

// Totals carries the running quantities for one material.
type Totals struct {
	MaterialID  int64
	TotalArea   float64
	TotalVolume float64
}

// Quantity is one qualifying material with its accumulated totals.
type Quantity struct {
	Material *model.Material
	Area     float64
	Volume   float64
}

// Aggregator accumulates quantities keyed by material identity. Created
// fresh per extraction run; mutated additively during the element pass;
// read once at the end.
type Aggregator struct {
	doc    *source.Document
	totals map[int64]*Totals
	order  []int64 // first-seen order, for deterministic emission
}

// NewAggregator creates an empty aggregator over the given document.
func NewAggregator(doc *source.Document) *Aggregator {
	return &Aggregator{
		doc:    doc,
		totals: make(map[int64]*Totals),
	}
}

// Accumulate folds one element's geometry into the running totals.
// Elements without geometry contribute nothing; a malformed geometry
// node is skipped rather than aborting the traversal.
func (a *Aggregator) Accumulate(el *model.Element) {
	for _, g := range el.Geometry {
		a.walk(g)
	}
}

func (a *Aggregator) walk(g model.GeometryObject) {
	switch {
	case g.Solid != nil:
		a.addSolid(g.Solid)
	case g.Instance != nil:
		for _, child := range g.Instance.Geometry {
			a.walk(child)
		}
	}
}

// addSolid adds each face's area to its material, and the solid's
// volume divided evenly across its face count to each painted face's
// material. The even split is an approximation: true per-material
// volume decomposition is not attempted.
func (a *Aggregator) addSolid(solid *model.Solid) {
	if solid.Volume <= 0 || len(solid.Faces) == 0 {
		return
	}
	share := solid.Volume / float64(len(solid.Faces))
	for _, face := range solid.Faces {
		if face.MaterialID == 0 {
			continue
		}
		t := a.get(face.MaterialID)
		t.TotalArea += face.Area
		t.TotalVolume += share
	}
}

func (a *Aggregator) get(materialID int64) *Totals {
	t, ok := a.totals[materialID]
	if !ok {
		t = &Totals{MaterialID: materialID}
		a.totals[materialID] = t
		a.order = append(a.order, materialID)
	}
	return t
}

// Passing resolves each accumulated material, applies the filter to its
// keynote/assembly-code tags, and returns the qualifying entries in
// first-seen order. Materials the document cannot resolve are skipped.
func (a *Aggregator) Passing(mode model.FilterMode) []Quantity {
	var out []Quantity
	for _, id := range a.order {
		mat := a.doc.Material(id)
		if mat == nil {
			continue
		}
		hasKeynote := strings.TrimSpace(mat.Keynote) != ""
		hasAssemblyCode := strings.TrimSpace(mat.AssemblyCode) != ""
		if !mode.Passes(hasKeynote, hasAssemblyCode) {
			continue
		}
		t := a.totals[id]
		out = append(out, Quantity{Material: mat, Area: t.TotalArea, Volume: t.TotalVolume})
	}
	return out
}

// FormatArea renders an accumulated area for export; zero renders empty.
func FormatArea(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f ft²", v)
}

// FormatVolume renders an accumulated volume for export; zero renders empty.
func FormatVolume(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f ft³", v)
}
