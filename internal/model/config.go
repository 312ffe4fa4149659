package model

// Config holds the tool configuration, loaded from defaults, the config
// file and flags (highest priority last).
type Config struct {
	Filter string       `yaml:"filter" mapstructure:"filter"` // keynote | assembly | either
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`         // directory for generated workbooks
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"` // progress output to stderr
}

// ExportConfig controls the workbook layout.
type ExportConfig struct {
	SheetName string `yaml:"sheet_name" mapstructure:"sheet_name"`
	Title     string `yaml:"title" mapstructure:"title"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Filter: "keynote",
		Output: OutputConfig{
			Dir: ".",
		},
		Export: ExportConfig{
			SheetName: "Cantidades",
			Title:     "EXTRACCIÓN DE CANTIDADES - SINCO ADPRO",
		},
	}
}
