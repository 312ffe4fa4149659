// Package source provides the element source backing an extraction run:
// a snapshot of a model's element graph loaded from a JSON or YAML dump,
// exposing scoped element enumeration and type/material/level lookups.
package source

import (
	"fmt"

	"github.com/cachar666/PluginRevit-V1/internal/model"
)

// Scope selects the subset of the model visible to an extraction:
// the whole model, or a single named view.
type Scope struct {
	View string // empty selects the whole model
}

func (s Scope) String() string {
	if s.View == "" {
		return "whole model"
	}
	return "view " + s.View
}

// Document is a loaded model snapshot. Lookups never fail for absent
// ids; they return nil or "" instead.
type Document struct {
	ProjectName string
	Location    string

	elements  []model.Element
	types     map[int64]*model.ElementType
	materials map[int64]*model.Material
	levels    map[int64]string
	views     map[string][]int // element indices per view name
}

// ElementsIn enumerates the elements visible in the given scope, in
// source order. An unknown view is a scope error and aborts extraction.
func (d *Document) ElementsIn(scope Scope) ([]*model.Element, error) {
	if scope.View == "" {
		out := make([]*model.Element, len(d.elements))
		for i := range d.elements {
			out[i] = &d.elements[i]
		}
		return out, nil
	}

	idxs, ok := d.views[scope.View]
	if !ok {
		return nil, fmt.Errorf("no view named %q", scope.View)
	}
	out := make([]*model.Element, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, &d.elements[i])
	}
	return out, nil
}

// Views returns the names of the views present in the snapshot.
func (d *Document) Views() []string {
	names := make([]string, 0, len(d.views))
	for name := range d.views {
		names = append(names, name)
	}
	return names
}

// Type resolves a type id, or nil when the id is absent or zero.
func (d *Document) Type(id int64) *model.ElementType {
	if id == 0 {
		return nil
	}
	return d.types[id]
}

// Material resolves a material id, or nil when the id is absent or zero.
func (d *Document) Material(id int64) *model.Material {
	if id == 0 {
		return nil
	}
	return d.materials[id]
}

// LevelName resolves a level id to its display name, or "" when absent.
func (d *Document) LevelName(id int64) string {
	return d.levels[id]
}
