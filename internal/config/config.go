// Package config holds the options of a sizeof run and decodes them from the command line.
package config

// OutputFormat selects how sizes are written.
type OutputFormat string

const (
	// FormatText is the aligned column layout (default).
	FormatText OutputFormat = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes one YAML document per entry.
	FormatYAML OutputFormat = "yaml"
)

// Options is the configuration of one run. It is built once and not modified afterwards.
type Options struct {
	// BytesOnly prints raw byte counts with no unit.
	BytesOnly bool
	// ShowName prints each target path before its size.
	ShowName bool
	// Binary uses 1024-based units instead of 1000-based ones.
	Binary bool
	// Sum adds all targets into a single total.
	Sum bool
	// Verbose logs skipped entries and per-target totals to stderr.
	Verbose bool
	Format  OutputFormat
}

// Default returns the options used when no flags are given.
func Default() Options {
	return Options{
		ShowName: true,
		Binary:   true,
		Format:   FormatText,
	}
}

// Named reports whether the filename column is printed. Sum mode prints a
// single total, so it never has one.
func (o Options) Named() bool {
	return o.ShowName && !o.Sum
}
