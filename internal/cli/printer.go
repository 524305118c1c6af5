// Package cli writes sizes for the sizeof command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/sizeof/internal/config"
	"github.com/hyperjump/sizeof/internal/sizefmt"
	"gopkg.in/yaml.v3"
)

// Entry is the machine-readable form of one printed size.
// Path is empty for a summed total.
type Entry struct {
	Path  string  `json:"path,omitempty" yaml:"path,omitempty"`
	Bytes uint64  `json:"bytes" yaml:"bytes"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// NewEntry builds the Entry for a formatted size.
func NewEntry(path string, s sizefmt.Size) Entry {
	return Entry{
		Path:  path,
		Bytes: s.Bytes,
		Value: s.Value,
		Unit:  s.UnitLabel(),
	}
}

// Printer writes one line (or record) per size in the configured format.
type Printer struct {
	w         io.Writer
	opts      config.Options
	nameWidth int
	json      *json.Encoder
	yaml      *yaml.Encoder
}

// NewPrinter returns a Printer for w. targets are all the paths that will be
// printed; the filename column is sized to fit the longest.
func NewPrinter(w io.Writer, opts config.Options, targets []string) *Printer {
	p := &Printer{w: w, opts: opts}
	if opts.Named() {
		for _, t := range targets {
			if len(t) > p.nameWidth {
				p.nameWidth = len(t)
			}
		}
		p.nameWidth += 2
	}
	switch opts.Format {
	case config.FormatJSON:
		p.json = json.NewEncoder(w)
	case config.FormatYAML:
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	}
	return p
}

// Print writes s. path is ignored in sum mode.
func (p *Printer) Print(path string, s sizefmt.Size) error {
	if p.opts.Sum {
		path = ""
	}
	switch {
	case p.json != nil:
		return p.json.Encode(NewEntry(path, s))
	case p.yaml != nil:
		return p.yaml.Encode(NewEntry(path, s))
	}
	_, err := io.WriteString(p.w, p.line(path, s))
	return err
}

// line renders the text layout: an optional padded filename, the number
// right-aligned in a fixed column, then the unit column.
func (p *Printer) line(path string, s sizefmt.Size) string {
	var b strings.Builder
	if p.opts.Named() {
		b.WriteString(path)
		if pad := p.nameWidth - len(path); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		switch {
		case s.Raw:
			fmt.Fprintf(&b, "%14d", s.Bytes)
		case s.Scaled():
			fmt.Fprintf(&b, "%8.2f", s.Value)
		default:
			fmt.Fprintf(&b, "%8d", s.Bytes)
		}
	} else {
		b.WriteString(s.Number())
	}
	b.WriteString(s.Suffix())
	b.WriteByte('\n')
	return b.String()
}

// Close flushes any buffered output.
func (p *Printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
