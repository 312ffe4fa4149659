package model

// Element is one model element enumerated by the element source
type Element struct {
	ID       int64                   `json:"id" yaml:"id"`
	Name     string                  `json:"name" yaml:"name"`
	Category string                  `json:"category,omitempty" yaml:"category,omitempty"` // empty when the element has no category
	TypeID   int64                   `json:"type,omitempty" yaml:"type,omitempty"`         // 0 when the type cannot be resolved
	BuiltIn  map[BuiltInParam]string `json:"built_in,omitempty" yaml:"built_in,omitempty"` // well-known parameter values
	Params   map[string]string       `json:"params,omitempty" yaml:"params,omitempty"`     // free-text instance parameters
	Geometry []GeometryObject        `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

// BuiltInValue returns the value of a well-known parameter, or "" when absent.
func (e *Element) BuiltInValue(p BuiltInParam) string {
	return e.BuiltIn[p]
}

// Param returns a free-text instance parameter value and whether it is present.
func (e *Element) Param(name string) (string, bool) {
	v, ok := e.Params[name]
	return v, ok
}

// ElementType is a resolved type reference exposing the family name and
// type-level parameters
type ElementType struct {
	ID         int64                   `json:"id" yaml:"id"`
	Name       string                  `json:"name" yaml:"name"`
	FamilyName string                  `json:"family,omitempty" yaml:"family,omitempty"`
	MaterialID int64                   `json:"material,omitempty" yaml:"material,omitempty"` // type's assigned material, 0 when unassigned
	BuiltIn    map[BuiltInParam]string `json:"built_in,omitempty" yaml:"built_in,omitempty"`
	Params     map[string]string       `json:"params,omitempty" yaml:"params,omitempty"`
}

// BuiltInValue returns the value of a well-known type parameter, or "" when absent.
func (t *ElementType) BuiltInValue(p BuiltInParam) string {
	return t.BuiltIn[p]
}

// Param returns a free-text type parameter value and whether it is present.
func (t *ElementType) Param(name string) (string, bool) {
	v, ok := t.Params[name]
	return v, ok
}

// Material is a substance reference attached to geometry faces. Its
// keynote and assembly code act purely as filter-eligibility signals.
type Material struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Keynote      string `json:"keynote,omitempty" yaml:"keynote,omitempty"`
	AssemblyCode string `json:"assembly_code,omitempty" yaml:"assembly_code,omitempty"`
}
