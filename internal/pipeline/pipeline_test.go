package pipeline

import (
	"strings"
	"testing"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/cachar666/PluginRevit-V1/internal/source"
	"github.com/cachar666/PluginRevit-V1/internal/tree"
)

// wallsDoc is the end-to-end scenario: one element in category "Walls",
// family "Basic Wall", one solid of volume 10 with two faces of area 5,
// both painted "Concrete" which carries neither tag.
func wallsDoc() *source.Document {
	types := []model.ElementType{
		{ID: 1, Name: "Generic 200mm", FamilyName: "Basic Wall",
			BuiltIn: map[model.BuiltInParam]string{model.ParamKeynote: "03.01"}},
	}
	materials := []model.Material{
		{ID: 5, Name: "Concrete"},
	}
	elements := []model.Element{
		{
			ID:       100,
			Name:     "Wall A",
			Category: "Walls",
			TypeID:   1,
			BuiltIn:  map[model.BuiltInParam]string{model.ParamVolumeComputed: "10.00 ft³"},
			Geometry: []model.GeometryObject{{Solid: &model.Solid{
				Volume: 10,
				Faces: []model.Face{
					{Area: 5, MaterialID: 5},
					{Area: 5, MaterialID: 5},
				},
			}}},
		},
	}
	return source.NewDocument("Proyecto Demo", "", types, materials, nil, elements, nil)
}

func loadForest(t *testing.T, doc *source.Document, mode model.FilterMode) []*tree.Node {
	t.Helper()
	forest, status := tree.NewLoader(doc).Load(source.Scope{}, mode)
	if len(forest) == 0 {
		t.Fatalf("empty forest: %s", status)
	}
	return forest
}

func pickProps(names ...string) []model.Property {
	props := model.Properties()
	chosen := make(map[string]bool, len(names))
	for _, n := range names {
		chosen[n] = true
	}
	for i := range props {
		props[i].Selected = chosen[props[i].Name]
	}
	return props
}

func TestExtract_EndToEndWallsScenario(t *testing.T) {
	doc := wallsDoc()
	forest := loadForest(t, doc, model.FilterKeynoteOrAssemblyCode)
	props := pickProps(model.PropElementName, model.PropVolume)

	records, err := New(doc).Extract(forest, props, model.FilterKeynoteOrAssemblyCode, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	// One element record; Concrete has neither tag, so no material record.
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec[model.PropElementName] != "Wall A" {
		t.Errorf("element name = %q", rec[model.PropElementName])
	}
	if rec[model.PropVolume] != "10.00 ft³" {
		t.Errorf("volume = %q", rec[model.PropVolume])
	}
	if _, ok := rec[model.PropCategory]; ok {
		t.Error("unselected properties must not appear in records")
	}
}

func TestExtract_MaterialRecordAppendedWhenQualifying(t *testing.T) {
	doc := wallsDoc()
	// Tag the material so it passes the keynote filter.
	doc.Material(5).Keynote = "03.30"

	forest := loadForest(t, doc, model.FilterKeynote)
	props := pickProps(model.PropElementName, model.PropCategory, model.PropFamilyAndType,
		model.PropKeynote, model.PropArea, model.PropVolume, "SubCapítulo")

	records, err := New(doc).Extract(forest, props, model.FilterKeynote, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected element + material records, got %d", len(records))
	}

	mat := records[1]
	if mat[model.PropElementName] != "Concrete" {
		t.Errorf("material name = %q", mat[model.PropElementName])
	}
	if mat[model.PropCategory] != "Materiales" || mat[model.PropFamilyAndType] != "Materiales" {
		t.Errorf("material category/family = %q/%q, want Materiales",
			mat[model.PropCategory], mat[model.PropFamilyAndType])
	}
	if mat[model.PropKeynote] != "03.30" {
		t.Errorf("material keynote = %q", mat[model.PropKeynote])
	}
	if mat[model.PropArea] != "10.00 ft²" {
		t.Errorf("material area = %q", mat[model.PropArea])
	}
	if mat[model.PropVolume] != "10.00 ft³" {
		t.Errorf("material volume = %q", mat[model.PropVolume])
	}
	if mat["SubCapítulo"] != "" {
		t.Errorf("properties without material counterpart must render empty, got %q", mat["SubCapítulo"])
	}
}

func TestExtract_DeselectedFamilyStillFeedsAccumulator(t *testing.T) {
	doc := wallsDoc()
	doc.Material(5).Keynote = "03.30"

	forest := loadForest(t, doc, model.FilterKeynote)
	// Deselect the only family; its category follows.
	forest[0].Children[0].SetSelected(false)

	records, err := New(doc).Extract(forest, pickProps(model.PropElementName), model.FilterKeynote, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	// No element record, but accumulation is unconditional, so the
	// qualifying material still reports its quantities.
	if len(records) != 1 {
		t.Fatalf("expected only the material record, got %d records", len(records))
	}
	if records[0][model.PropElementName] != "Concrete" {
		t.Errorf("record name = %q, want Concrete", records[0][model.PropElementName])
	}
}

func TestExtract_UnresolvableTypeExcludedEntirely(t *testing.T) {
	// Second element with the same painted geometry but a dangling type.
	elements := []model.Element{
		{ID: 200, Name: "Ghost", Category: "Walls", TypeID: 99,
			Geometry: []model.GeometryObject{{Solid: &model.Solid{
				Volume: 100,
				Faces:  []model.Face{{Area: 50, MaterialID: 5}},
			}}}},
	}
	types := []model.ElementType{
		{ID: 1, Name: "Generic 200mm", FamilyName: "Basic Wall",
			BuiltIn: map[model.BuiltInParam]string{model.ParamKeynote: "03.01"}},
	}
	materials := []model.Material{{ID: 5, Name: "Concrete", Keynote: "03.30"}}
	wall := wallsDoc()
	base, err := wall.ElementsIn(source.Scope{})
	if err != nil {
		t.Fatalf("ElementsIn: %v", err)
	}
	all := append([]model.Element{*base[0]}, elements...)
	doc := source.NewDocument("Proyecto Demo", "", types, materials, nil, all, nil)

	forest := loadForest(t, doc, model.FilterKeynote)
	props := pickProps(model.PropElementName, model.PropArea)
	records, err := New(doc).Extract(forest, props, model.FilterKeynote, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected wall + material records, got %d", len(records))
	}
	for _, rec := range records {
		if rec[model.PropElementName] == "Ghost" {
			t.Error("element with unresolvable type must not produce a record")
		}
	}
	// Ghost's 50 ft² face must not have contributed either.
	if got := records[1][model.PropArea]; got != "10.00 ft²" {
		t.Errorf("material area = %q, want 10.00 ft² (excluded element must not accumulate)", got)
	}
}

func TestExtract_WholeCategoryInclusion(t *testing.T) {
	// A category node selected with no children stands for every element
	// of the category, regardless of family.
	doc := wallsDoc()
	category := &tree.Node{Name: "Walls", CategoryKey: "Walls", IsCategory: true}
	category.SetSelected(true)

	records, err := New(doc).Extract([]*tree.Node{category}, pickProps(model.PropElementName),
		model.FilterKeynote, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 1 || records[0][model.PropElementName] != "Wall A" {
		t.Fatalf("whole-category inclusion should cover Wall A, got %d records", len(records))
	}
}

func TestExtract_MixedCategoryRepresentedByFamilies(t *testing.T) {
	// Two families under one category; deselecting one leaves the
	// category Mixed, which must not act as a whole-category inclusion.
	types := []model.ElementType{
		{ID: 1, Name: "T1", FamilyName: "Fam A",
			BuiltIn: map[model.BuiltInParam]string{model.ParamKeynote: "01"}},
		{ID: 2, Name: "T2", FamilyName: "Fam B",
			BuiltIn: map[model.BuiltInParam]string{model.ParamKeynote: "02"}},
	}
	elements := []model.Element{
		{ID: 1, Name: "A", Category: "Cat", TypeID: 1},
		{ID: 2, Name: "B", Category: "Cat", TypeID: 2},
	}
	doc := source.NewDocument("P", "", types, nil, nil, elements, nil)

	forest := loadForest(t, doc, model.FilterKeynote)
	forest[0].Children[1].SetSelected(false)
	if forest[0].State() != tree.Mixed {
		t.Fatalf("category state = %v, want Mixed", forest[0].State())
	}

	records, err := New(doc).Extract(forest, pickProps(model.PropElementName), model.FilterKeynote, source.Scope{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 1 || records[0][model.PropElementName] != "A" {
		t.Fatalf("only Fam A should export, got %d records", len(records))
	}
}

func TestExtract_UnknownViewAbortsRun(t *testing.T) {
	doc := wallsDoc()
	forest := loadForest(t, doc, model.FilterKeynote)

	_, err := New(doc).Extract(forest, pickProps(model.PropElementName),
		model.FilterKeynote, source.Scope{View: "Missing"})
	if err == nil {
		t.Fatal("expected scope error")
	}
	if !strings.Contains(err.Error(), "Missing") {
		t.Errorf("error should name the view: %v", err)
	}
}
