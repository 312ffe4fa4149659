package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"gopkg.in/yaml.v3"
)

// snapshot is the serialized form of a model dump. JSON and YAML carry
// the same schema.
type snapshot struct {
	Project   string              `json:"project" yaml:"project"`
	Location  string              `json:"location,omitempty" yaml:"location,omitempty"`
	Levels    []levelRecord       `json:"levels,omitempty" yaml:"levels,omitempty"`
	Types     []model.ElementType `json:"types,omitempty" yaml:"types,omitempty"`
	Materials []model.Material    `json:"materials,omitempty" yaml:"materials,omitempty"`
	Elements  []model.Element     `json:"elements,omitempty" yaml:"elements,omitempty"`
	Views     []viewRecord        `json:"views,omitempty" yaml:"views,omitempty"`
}

type levelRecord struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type viewRecord struct {
	Name     string  `json:"name" yaml:"name"`
	Elements []int64 `json:"elements,omitempty" yaml:"elements,omitempty"` // element ids visible in the view
}

// Load reads a model snapshot from a .json, .yaml or .yml file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
		}
	}

	levels := make(map[int64]string, len(snap.Levels))
	for _, l := range snap.Levels {
		levels[l.ID] = l.Name
	}
	views := make(map[string][]int64, len(snap.Views))
	for _, v := range snap.Views {
		views[v.Name] = v.Elements
	}

	return NewDocument(snap.Project, snap.Location, snap.Types, snap.Materials, levels, snap.Elements, views), nil
}

// NewDocument assembles a document from already-decoded parts. Views are
// given as element id lists; ids that match no element are dropped.
func NewDocument(
	project, location string,
	types []model.ElementType,
	materials []model.Material,
	levels map[int64]string,
	elements []model.Element,
	views map[string][]int64,
) *Document {
	doc := &Document{
		ProjectName: project,
		Location:    location,
		elements:    elements,
		types:       make(map[int64]*model.ElementType, len(types)),
		materials:   make(map[int64]*model.Material, len(materials)),
		levels:      levels,
		views:       make(map[string][]int, len(views)),
	}
	if doc.levels == nil {
		doc.levels = map[int64]string{}
	}
	for i := range types {
		doc.types[types[i].ID] = &types[i]
	}
	for i := range materials {
		doc.materials[materials[i].ID] = &materials[i]
	}

	byID := make(map[int64]int, len(elements))
	for i := range elements {
		byID[elements[i].ID] = i
	}
	for name, ids := range views {
		idxs := make([]int, 0, len(ids))
		for _, id := range ids {
			if i, ok := byID[id]; ok {
				idxs = append(idxs, i)
			}
		}
		doc.views[name] = idxs
	}
	return doc
}
