package model

// PropertyKind categorizes where a property's value comes from
type PropertyKind string

const (
	KindBuiltIn          PropertyKind = "built-in" // fixed resolution rule against well-known parameters
	KindSharedParameter  PropertyKind = "shared"   // shared parameter lookup by name
	KindProjectParameter PropertyKind = "project"  // project parameter lookup by name
	KindFamilyParameter  PropertyKind = "family"   // family parameter lookup by name
)

// Display names of the built-in property catalog. The resolver's dispatch
// table and the material record table are keyed by these exact strings.
const (
	PropElementID     = "ID Elemento"
	PropElementName   = "Nombre del Elemento"
	PropCategory      = "Categoría"
	PropFamilyAndType = "Familia y Tipo"
	PropAssemblyCode  = "Assembly Code"
	PropKeynote       = "Keynote"
	PropTypeMark      = "Type Mark"
	PropDescription   = "Descripción"
	PropTypeComments  = "Comentarios Tipo"
	PropLevel         = "Nivel"
	PropArea          = "Área"
	PropHeight        = "Altura"
	PropLength        = "Longitud"
	PropVolume        = "Volumen"
	PropDensity       = "Densidad"
)

// Property describes one exportable property. Immutable except for the
// selection flag.
type Property struct {
	Name        string
	Description string
	Kind        PropertyKind
	Selected    bool
}

// Properties returns the fixed catalog of exportable properties, every
// entry selected by default. One catalog is built per session.
func Properties() []Property {
	return []Property{
		{PropElementID, "ID único del elemento", KindBuiltIn, true},
		{PropElementName, "Nombre del elemento", KindBuiltIn, true},
		{PropCategory, "Categoría del elemento", KindBuiltIn, true},
		{PropFamilyAndType, "Familia y tipo del elemento", KindBuiltIn, true},
		{PropAssemblyCode, "Código de ensamblaje", KindBuiltIn, true},
		{PropKeynote, "Nota clave", KindBuiltIn, true},
		{PropTypeMark, "Marca de tipo", KindBuiltIn, true},
		{PropDescription, "Descripción del elemento", KindBuiltIn, true},
		{PropTypeComments, "Comentarios del tipo", KindBuiltIn, true},
		{PropLevel, "Nivel del elemento", KindBuiltIn, true},
		{PropArea, "Área del elemento", KindBuiltIn, true},
		{PropHeight, "Altura del elemento", KindBuiltIn, true},
		{PropLength, "Longitud del elemento", KindBuiltIn, true},
		{PropVolume, "Volumen del elemento", KindBuiltIn, true},
		{PropDensity, "Densidad del material", KindBuiltIn, true},
		{"SubCapítulo", "Subcapítulo", KindProjectParameter, true},
		{"Avance", "Estado de avance", KindProjectParameter, true},
		{"Ubicación", "Ubicación del elemento", KindProjectParameter, true},
		{"Objeto", "Tipo de objeto", KindProjectParameter, true},
	}
}

// SelectedNames returns the names of the selected properties, preserving
// catalog order. This is the export column list.
func SelectedNames(props []Property) []string {
	var names []string
	for _, p := range props {
		if p.Selected {
			names = append(names, p.Name)
		}
	}
	return names
}
