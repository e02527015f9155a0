// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// IDConfig holds settings for generated identifiers.
type IDConfig struct {
	// Prefix is prepended to generated identifiers (default "DOC").
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
}

// CitationConfig holds settings for citation generation.
type CitationConfig struct {
	// Style is the default citation style: APA or MLA.
	Style CitationStyle `json:"style" yaml:"style" mapstructure:"style"`
}

// SearchConfig holds settings for the search command.
type SearchConfig struct {
	// Fields restricts matching to these fields. Empty means every field
	// present on each record.
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty" mapstructure:"fields"`
}

// ExportConfig holds settings for the export command.
type ExportConfig struct {
	// Format selects json, yaml, or sqlite (default json).
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LibraryConfig groups all settings for the researchlib CLI.
type LibraryConfig struct {
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	IDs      IDConfig       `json:"ids" yaml:"ids" mapstructure:"ids"`
	Citation CitationConfig `json:"citation" yaml:"citation" mapstructure:"citation"`
	Search   SearchConfig   `json:"search" yaml:"search" mapstructure:"search"`
	Export   ExportConfig   `json:"export" yaml:"export" mapstructure:"export"`
}

// DefaultLibraryConfig returns the settings used when no config file is found.
func DefaultLibraryConfig() LibraryConfig {
	return LibraryConfig{
		Log:      LogConfig{Level: "info", Format: "text"},
		IDs:      IDConfig{Prefix: "DOC"},
		Citation: CitationConfig{Style: StyleAPA},
		Export:   ExportConfig{Format: ExportJSON},
	}
}
