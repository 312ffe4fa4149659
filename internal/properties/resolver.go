// Package properties resolves exportable property names to display
// strings for model elements. Dispatch is a registered-handler table
// keyed by exact property name; unmatched names fall through to a
// generic custom-parameter lookup. Missing parameters are expected and
// common, so every path degrades to the empty string.
package properties

import (
	"strconv"

	"github.com/cachar666/PluginRevit-V1/internal/cache"
	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/source"
)

// handler resolves one property. typ is nil when the element's type
// cannot be resolved.
type handler func(r *Resolver, el *model.Element, typ *model.ElementType) string

// Resolver resolves property values against a document. Type-level
// lookups are memoized because elements sharing a type repeat them.
type Resolver struct {
	doc      *source.Document
	cache    cache.Cache
	handlers map[string]handler
}

// NewResolver creates a resolver over the given document. A nil cache
// gets an in-memory one.
func NewResolver(doc *source.Document, c cache.Cache) *Resolver {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	r := &Resolver{doc: doc, cache: c}
	r.handlers = map[string]handler{
		model.PropElementID:     resolveElementID,
		model.PropElementName:   resolveElementName,
		model.PropCategory:      resolveCategory,
		model.PropFamilyAndType: resolveFamilyAndType,
		model.PropAssemblyCode:  typeParam(model.ParamAssemblyCode),
		model.PropKeynote:       typeParam(model.ParamKeynote),
		model.PropTypeMark:      typeParam(model.ParamTypeMark),
		model.PropDescription:   typeParam(model.ParamDescription),
		model.PropTypeComments:  typeParam(model.ParamTypeComments),
		model.PropLevel:         resolveLevel,
		model.PropArea:          builtIn(model.ParamAreaComputed),
		model.PropHeight:        resolveHeight,
		model.PropLength:        resolveLength,
		model.PropVolume:        builtIn(model.ParamVolumeComputed),
		model.PropDensity:       resolveDensity,
	}
	return r
}

// Resolve returns the value of the named property for the element, or
// "" when it cannot be resolved.
func (r *Resolver) Resolve(el *model.Element, name string) string {
	typ := r.doc.Type(el.TypeID)
	if h, ok := r.handlers[name]; ok {
		return h(r, el, typ)
	}
	return r.customParam(el, typ, name)
}

func resolveElementID(_ *Resolver, el *model.Element, _ *model.ElementType) string {
	return strconv.FormatInt(el.ID, 10)
}

func resolveElementName(_ *Resolver, el *model.Element, _ *model.ElementType) string {
	return el.Name
}

func resolveCategory(_ *Resolver, el *model.Element, _ *model.ElementType) string {
	return el.Category
}

func resolveFamilyAndType(_ *Resolver, _ *model.Element, typ *model.ElementType) string {
	if typ == nil {
		return ""
	}
	return typ.FamilyName + " - " + typ.Name
}

// typeParam builds a handler reading one well-known type parameter.
func typeParam(p model.BuiltInParam) handler {
	return func(r *Resolver, _ *model.Element, typ *model.ElementType) string {
		return r.typeBuiltIn(typ, p)
	}
}

// builtIn builds a handler reading one well-known instance parameter.
func builtIn(p model.BuiltInParam) handler {
	return func(_ *Resolver, el *model.Element, _ *model.ElementType) string {
		return el.BuiltInValue(p)
	}
}

func resolveLevel(r *Resolver, el *model.Element, _ *model.ElementType) string {
	raw := el.BuiltInValue(model.ParamLevel)
	if raw == "" {
		return ""
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ""
	}
	return r.doc.LevelName(id)
}

// resolveHeight falls back through the generic height parameter, then
// the "Altura" and "Height" custom lookups.
func resolveHeight(r *Resolver, el *model.Element, typ *model.ElementType) string {
	if v := el.BuiltInValue(model.ParamHeight); v != "" {
		return v
	}
	if v := r.customParam(el, typ, "Altura"); v != "" {
		return v
	}
	return r.customParam(el, typ, "Height")
}

// resolveLength falls back through length, then width, then the
// "Longitud" and "Length" custom lookups.
func resolveLength(r *Resolver, el *model.Element, typ *model.ElementType) string {
	if v := el.BuiltInValue(model.ParamLength); v != "" {
		return v
	}
	if v := el.BuiltInValue(model.ParamWidth); v != "" {
		return v
	}
	if v := r.customParam(el, typ, "Longitud"); v != "" {
		return v
	}
	return r.customParam(el, typ, "Length")
}

// resolveDensity is not a numeric field: it resolves to the name of the
// type's assigned material. Density itself is not computed.
func resolveDensity(r *Resolver, _ *model.Element, typ *model.ElementType) string {
	if typ == nil {
		return ""
	}
	mat := r.doc.Material(typ.MaterialID)
	if mat == nil {
		return ""
	}
	return mat.Name
}

// typeBuiltIn reads a well-known type parameter through the cache.
func (r *Resolver) typeBuiltIn(typ *model.ElementType, p model.BuiltInParam) string {
	if typ == nil {
		return ""
	}
	key := cache.TypeKey(typ.ID, string(p))
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	v := typ.BuiltInValue(p)
	r.cache.Set(key, v)
	return v
}

// customParam looks up a free-text parameter on the instance, then on
// the element's type.
func (r *Resolver) customParam(el *model.Element, typ *model.ElementType, name string) string {
	if v, ok := el.Param(name); ok {
		return v
	}
	if typ == nil {
		return ""
	}
	key := cache.TypeKey(typ.ID, "custom:"+name)
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	v, _ := typ.Param(name)
	r.cache.Set(key, v)
	return v
}
