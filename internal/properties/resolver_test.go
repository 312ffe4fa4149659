package properties

import (
	"testing"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/source"
)

func testDoc() *source.Document {
	types := []model.ElementType{
		{
			ID:         1,
			Name:       "Genérico 200mm",
			FamilyName: "Muro Básico",
			MaterialID: 7,
			BuiltIn: map[model.BuiltInParam]string{
				model.ParamKeynote:      "03.01",
				model.ParamAssemblyCode: "B2010",
				model.ParamDescription:  "Muro portante",
			},
			Params: map[string]string{
				"SubCapítulo": "Estructura",
			},
		},
	}
	materials := []model.Material{
		{ID: 7, Name: "Hormigón", Keynote: "03.30"},
	}
	levels := map[int64]string{3: "Nivel 1"}
	elements := []model.Element{
		{
			ID:       100,
			Name:     "Muro A",
			Category: "Muros",
			TypeID:   1,
			BuiltIn: map[model.BuiltInParam]string{
				model.ParamLevel:          "3",
				model.ParamAreaComputed:   "12.50 m²",
				model.ParamVolumeComputed: "2.50 m³",
			},
			Params: map[string]string{
				"Avance": "80%",
			},
		},
	}
	return source.NewDocument("Torre Norte", "", types, materials, levels, elements, nil)
}

func resolveFirst(t *testing.T, doc *source.Document, name string) string {
	t.Helper()
	elements, err := doc.ElementsIn(source.Scope{})
	if err != nil {
		t.Fatalf("ElementsIn: %v", err)
	}
	return NewResolver(doc, nil).Resolve(elements[0], name)
}

func TestResolver_BuiltInProperties(t *testing.T) {
	doc := testDoc()
	tests := []struct {
		property string
		want     string
	}{
		{model.PropElementID, "100"},
		{model.PropElementName, "Muro A"},
		{model.PropCategory, "Muros"},
		{model.PropFamilyAndType, "Muro Básico - Genérico 200mm"},
		{model.PropKeynote, "03.01"},
		{model.PropAssemblyCode, "B2010"},
		{model.PropDescription, "Muro portante"},
		{model.PropTypeMark, ""}, // absent type parameter degrades to empty
		{model.PropLevel, "Nivel 1"},
		{model.PropArea, "12.50 m²"},
		{model.PropVolume, "2.50 m³"},
		{model.PropDensity, "Hormigón"}, // material name, not a number
	}

	for _, tt := range tests {
		if got := resolveFirst(t, doc, tt.property); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.property, got, tt.want)
		}
	}
}

func TestResolver_CustomParameterFallsBackToType(t *testing.T) {
	doc := testDoc()

	// Instance parameter wins.
	if got := resolveFirst(t, doc, "Avance"); got != "80%" {
		t.Errorf("instance parameter: got %q, want %q", got, "80%")
	}
	// Absent on the instance, present on the type.
	if got := resolveFirst(t, doc, "SubCapítulo"); got != "Estructura" {
		t.Errorf("type fallback: got %q, want %q", got, "Estructura")
	}
	// Absent on both.
	if got := resolveFirst(t, doc, "Ubicación"); got != "" {
		t.Errorf("absent parameter: got %q, want empty", got)
	}
}

func TestResolver_HeightFallbackChain(t *testing.T) {
	tests := []struct {
		name    string
		builtIn map[model.BuiltInParam]string
		params  map[string]string
		want    string
	}{
		{"well-known first", map[model.BuiltInParam]string{model.ParamHeight: "3.00 m"}, map[string]string{"Altura": "9.99"}, "3.00 m"},
		{"Altura fallback", nil, map[string]string{"Altura": "2.80 m"}, "2.80 m"},
		{"Height fallback", nil, map[string]string{"Height": "2.60 m"}, "2.60 m"},
		{"nothing", nil, nil, ""},
	}

	for _, tt := range tests {
		elements := []model.Element{{ID: 1, Category: "Muros", BuiltIn: tt.builtIn, Params: tt.params}}
		doc := source.NewDocument("P", "", nil, nil, nil, elements, nil)
		if got := resolveFirst(t, doc, model.PropHeight); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_LengthFallbackChain(t *testing.T) {
	tests := []struct {
		name    string
		builtIn map[model.BuiltInParam]string
		params  map[string]string
		want    string
	}{
		{"length first", map[model.BuiltInParam]string{model.ParamLength: "5.00 m", model.ParamWidth: "0.20 m"}, nil, "5.00 m"},
		{"width fallback", map[model.BuiltInParam]string{model.ParamWidth: "0.20 m"}, nil, "0.20 m"},
		{"Longitud fallback", nil, map[string]string{"Longitud": "4.00 m"}, "4.00 m"},
		{"Length fallback", nil, map[string]string{"Length": "3.00 m"}, "3.00 m"},
		{"nothing", nil, nil, ""},
	}

	for _, tt := range tests {
		elements := []model.Element{{ID: 1, Category: "Muros", BuiltIn: tt.builtIn, Params: tt.params}}
		doc := source.NewDocument("P", "", nil, nil, nil, elements, nil)
		if got := resolveFirst(t, doc, model.PropLength); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_UnresolvedTypeDegradesToEmpty(t *testing.T) {
	elements := []model.Element{{ID: 1, Name: "Huérfano", Category: "Varios", TypeID: 99}}
	doc := source.NewDocument("P", "", nil, nil, nil, elements, nil)

	for _, prop := range []string{model.PropFamilyAndType, model.PropKeynote, model.PropDensity, "SubCapítulo"} {
		if got := resolveFirst(t, doc, prop); got != "" {
			t.Errorf("Resolve(%q) with unresolved type = %q, want empty", prop, got)
		}
	}
}

func TestResolver_LevelWithBadReference(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"missing", ""},
		{"non-numeric", "abc"},
		{"unknown id", "77"},
	}

	for _, tt := range tests {
		builtIn := map[model.BuiltInParam]string{}
		if tt.level != "" {
			builtIn[model.ParamLevel] = tt.level
		}
		elements := []model.Element{{ID: 1, Category: "Muros", BuiltIn: builtIn}}
		doc := source.NewDocument("P", "", nil, nil, nil, elements, nil)
		if got := resolveFirst(t, doc, model.PropLevel); got != "" {
			t.Errorf("%s: got %q, want empty", tt.name, got)
		}
	}
}
