package model

// Record is one extracted row: property name to resolved string value.
// Records have no identity beyond their position in the output list;
// column order is carried separately by the caller.
type Record map[string]string
