package model

// BuiltInParam identifies a well-known parameter exposed by the element
// source. Values for these are already formatted display strings; absence
// from an element's or type's parameter map means the parameter has no value.
type BuiltInParam string

const (
	ParamKeynote        BuiltInParam = "KEYNOTE"         // classification keynote (type-level)
	ParamAssemblyCode   BuiltInParam = "ASSEMBLY_CODE"   // uniformat assembly code (type-level)
	ParamTypeMark       BuiltInParam = "TYPE_MARK"       // type mark (type-level)
	ParamDescription    BuiltInParam = "DESCRIPTION"     // description (type-level)
	ParamTypeComments   BuiltInParam = "TYPE_COMMENTS"   // type comments (type-level)
	ParamLevel          BuiltInParam = "LEVEL"           // owning level id, as a decimal string
	ParamAreaComputed   BuiltInParam = "AREA_COMPUTED"   // host-computed area
	ParamVolumeComputed BuiltInParam = "VOLUME_COMPUTED" // host-computed volume
	ParamHeight         BuiltInParam = "HEIGHT"          // generic height
	ParamLength         BuiltInParam = "LENGTH"          // curve element length
	ParamWidth          BuiltInParam = "WIDTH"           // generic width, length fallback
)
