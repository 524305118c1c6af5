package config

import (
	"io"
	"strconv"

	flag "github.com/spf13/pflag"
)

// Letters lists the accepted short flags, setters first then their negations.
const Letters = "bfijsvyBFIJSVY"

// toggle writes a fixed value into target each time its flag appears, so a
// flag and its negation apply in command-line order.
type toggle struct {
	target *bool
	value  bool
}

func (t *toggle) String() string {
	if t.target == nil {
		return "false"
	}
	return strconv.FormatBool(*t.target == t.value)
}

func (t *toggle) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*t.target = t.value
	}
	return nil
}

func (t *toggle) Type() string { return "bool" }

// formatToggle selects an output format, or drops back to text if its format
// is the one currently selected.
type formatToggle struct {
	target *OutputFormat
	format OutputFormat
	clear  bool
}

func (f *formatToggle) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool((*f.target == f.format) != f.clear)
}

func (f *formatToggle) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	switch {
	case !f.clear:
		*f.target = f.format
	case *f.target == f.format:
		*f.target = FormatText
	}
	return nil
}

func (f *formatToggle) Type() string { return "bool" }

func addToggle(fs *flag.FlagSet, v flag.Value, name, short, usage string) {
	fs.VarPF(v, name, short, usage).NoOptDefVal = "true"
}

// NewFlagSet returns a flag set that writes into opts. Parse errors are
// returned, never printed.
func NewFlagSet(name string, opts *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	addToggle(fs, &toggle{&opts.BytesOnly, true}, "bytes", "b", "print bytes (no K, M, G, or T)")
	addToggle(fs, &toggle{&opts.BytesOnly, false}, "no-bytes", "B", "scale to K, M, G or T units (default)")
	addToggle(fs, &toggle{&opts.ShowName, true}, "name", "f", "print file name (default)")
	addToggle(fs, &toggle{&opts.ShowName, false}, "no-name", "F", "omit file name")
	addToggle(fs, &toggle{&opts.Binary, true}, "binary", "i", "print with base 2 units (default)")
	addToggle(fs, &toggle{&opts.Binary, false}, "decimal", "I", "print with base 10 units")
	addToggle(fs, &toggle{&opts.Sum, true}, "sum", "s", "sum all sizes together")
	addToggle(fs, &toggle{&opts.Sum, false}, "no-sum", "S", "print one size per file (default)")
	addToggle(fs, &toggle{&opts.Verbose, true}, "verbose", "v", "report unreadable entries on stderr")
	addToggle(fs, &toggle{&opts.Verbose, false}, "quiet", "V", "skip unreadable entries silently (default)")
	addToggle(fs, &formatToggle{target: &opts.Format, format: FormatJSON}, "json", "j", "write JSON lines")
	addToggle(fs, &formatToggle{target: &opts.Format, format: FormatJSON, clear: true}, "no-json", "J", "do not write JSON")
	addToggle(fs, &formatToggle{target: &opts.Format, format: FormatYAML}, "yaml", "y", "write YAML documents")
	addToggle(fs, &formatToggle{target: &opts.Format, format: FormatYAML, clear: true}, "no-yaml", "Y", "do not write YAML")
	return fs
}

// Parse decodes args, which exclude the program name, into Options and the
// target paths. Flags may be clustered and may follow targets; "--" ends them.
// A request for help returns flag.ErrHelp.
func Parse(args []string) (Options, []string, error) {
	opts := Default()
	fs := NewFlagSet("sizeof", &opts)
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}
