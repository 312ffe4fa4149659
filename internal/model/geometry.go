package model

// GeometryObject is one node of an element's geometry graph. At most one
// field is set; a node with neither is ignored by traversal.
type GeometryObject struct {
	Solid    *Solid    `json:"solid,omitempty" yaml:"solid,omitempty"`
	Instance *Instance `json:"instance,omitempty" yaml:"instance,omitempty"`
}

// Solid is a closed volume bounded by faces.
type Solid struct {
	Volume float64 `json:"volume" yaml:"volume"`
	Faces  []Face  `json:"faces,omitempty" yaml:"faces,omitempty"`
}

// Face is one bounding face of a solid, optionally painted with a material.
type Face struct {
	Area       float64 `json:"area" yaml:"area"`
	MaterialID int64   `json:"material,omitempty" yaml:"material,omitempty"` // 0 when the face carries no material
}

// Instance is a nested placement resolved to its own geometry.
type Instance struct {
	Geometry []GeometryObject `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}
