package model

import "testing"

func TestFilterMode_Passes_TruthTable(t *testing.T) {
	combos := []struct {
		hasKeynote, hasAssemblyCode bool
	}{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}

	for _, c := range combos {
		keynote := FilterKeynote.Passes(c.hasKeynote, c.hasAssemblyCode)
		assembly := FilterAssemblyCode.Passes(c.hasKeynote, c.hasAssemblyCode)
		either := FilterKeynoteOrAssemblyCode.Passes(c.hasKeynote, c.hasAssemblyCode)

		if keynote != c.hasKeynote {
			t.Errorf("FilterKeynote(%v, %v) = %v", c.hasKeynote, c.hasAssemblyCode, keynote)
		}
		if assembly != c.hasAssemblyCode {
			t.Errorf("FilterAssemblyCode(%v, %v) = %v", c.hasKeynote, c.hasAssemblyCode, assembly)
		}
		// The either mode is exactly the OR of the other two.
		if either != (keynote || assembly) {
			t.Errorf("FilterKeynoteOrAssemblyCode(%v, %v) = %v, want %v",
				c.hasKeynote, c.hasAssemblyCode, either, keynote || assembly)
		}
	}
}

func TestFilterMode_UnknownFailsClosed(t *testing.T) {
	unknown := FilterMode(42)
	if unknown.Passes(true, true) {
		t.Error("unrecognized mode must fail closed")
	}
}

func TestParseFilterMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterMode
		wantErr bool
	}{
		{"keynote", FilterKeynote, false},
		{"assembly", FilterAssemblyCode, false},
		{"assembly-code", FilterAssemblyCode, false},
		{"either", FilterKeynoteOrAssemblyCode, false},
		{"Either", FilterKeynoteOrAssemblyCode, false},
		{" keynote ", FilterKeynote, false},
		{"bogus", FilterKeynote, true},
		{"", FilterKeynote, true},
	}

	for _, tt := range tests {
		got, err := ParseFilterMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilterMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFilterMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
