package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	srvErrors "github.com/dreibh/atlasmns-trace-TESTONLY/pkg/errors"
)

// CommandLine is the result of parsing argv.
type CommandLine struct {
	// Layer holds only the options the user typed, never flag defaults.
	Layer         Layer
	HelpRequested bool
	ConfigFile    string
	HasConfigFile bool
}

// RegisterFlags declares the command-line options of DefaultSchema on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	DefaultSchema.RegisterFlags(fs)
}

// RegisterFlags declares every option with the command-line scope on fs. The
// flag defaults are only shown in usage; CommandLineLayer never reads them.
// Every flag accepts a single occurrence per command line.
func (s Schema) RegisterFlags(fs *pflag.FlagSet) {
	d := defaultOptions()
	for _, o := range s {
		if !o.Scopes.Has(ScopeCommandLine) {
			continue
		}
		var def any
		if v, ok := o.Default(&d); ok {
			def = v
		}
		switch o.Kind {
		case KindString:
			v, _ := def.(string)
			fs.StringP(o.Name, o.Shorthand, v, o.Usage)
		case KindUint16:
			v, _ := def.(uint16)
			fs.Uint16P(o.Name, o.Shorthand, v, o.Usage)
		case KindUint:
			v, _ := def.(uint)
			fs.UintP(o.Name, o.Shorthand, v, o.Usage)
		case KindBool:
			v, _ := def.(bool)
			fs.BoolP(o.Name, o.Shorthand, v, o.Usage)
		default:
			continue
		}
		f := fs.Lookup(o.Name)
		f.Value = &singleValue{Value: f.Value, name: o.Name}
	}
}

// singleValue fails on the second Set of the same flag.
type singleValue struct {
	pflag.Value
	name string
	set  bool
}

func (v *singleValue) Set(s string) error {
	if v.set {
		return fmt.Errorf("option '--%s' cannot be specified more than once", v.name)
	}
	v.set = true
	return v.Value.Set(s)
}

// ParseCommandLine parses args (without the program name) against
// DefaultSchema. A help request wins over every other argument, valid or not.
func ParseCommandLine(args []string) (CommandLine, error) {
	if HelpRequested(args) {
		return CommandLine{Layer: NewLayer(SourceCommandLine), HelpRequested: true}, nil
	}

	fs := pflag.NewFlagSet("atlasmns-trace-agent", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return CommandLine{}, srvErrors.NewBadCommandLineArgumentError(err)
	}
	return CommandLineLayer(fs, fs.Args())
}

// CommandLineLayer builds the command-line layer from an already parsed flag
// set and its positional arguments. Only flags marked Changed are taken.
func CommandLineLayer(fs *pflag.FlagSet, args []string) (CommandLine, error) {
	cl := CommandLine{Layer: NewLayer(SourceCommandLine)}

	var visitErr error
	fs.Visit(func(f *pflag.Flag) {
		if visitErr != nil {
			return
		}
		o, ok := DefaultSchema.LookupIn(ScopeCommandLine, f.Name)
		if !ok {
			return
		}
		v, err := flagValue(fs, o)
		if err != nil {
			visitErr = err
			return
		}
		switch o.Name {
		case KeyHelp:
			cl.HelpRequested, _ = v.(bool)
		case KeyConfigFile:
			cl.ConfigFile, _ = v.(string)
			cl.HasConfigFile = true
			cl.Layer.Set(o.Name, v)
		default:
			cl.Layer.Set(o.Name, v)
		}
	})
	if visitErr != nil {
		return CommandLine{}, srvErrors.NewBadCommandLineArgumentError(visitErr)
	}

	switch {
	case len(args) > 1:
		return CommandLine{}, srvErrors.NewBadCommandLineArgumentError(
			fmt.Errorf("too many positional arguments: %s", strings.Join(args, " ")))
	case len(args) == 1 && cl.HasConfigFile:
		return CommandLine{}, srvErrors.NewBadCommandLineArgumentError(
			fmt.Errorf("option '--%s' cannot be specified more than once", KeyConfigFile))
	case len(args) == 1:
		cl.ConfigFile = args[0]
		cl.HasConfigFile = true
		cl.Layer.Set(KeyConfigFile, args[0])
	}
	return cl, nil
}

// HelpRequested reports whether argv asks for help anywhere before the "--"
// terminator. Flag values are skipped the way pflag consumes them, and -h is
// found inside shorthand groups such as -hx.
func HelpRequested(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return false
		case strings.HasPrefix(a, "--"):
			name, value, hasValue := strings.Cut(a[2:], "=")
			o, ok := DefaultSchema.LookupIn(ScopeCommandLine, name)
			switch {
			case !ok:
			case o.Name == KeyHelp:
				if !hasValue || isTrue(value) {
					return true
				}
			case o.Kind != KindBool && !hasValue:
				i++
			}
		case len(a) > 1 && a[0] == '-':
			help, valueFollows := scanShorthands(a[1:])
			if help {
				return true
			}
			if valueFollows {
				i++
			}
		}
	}
	return false
}

// scanShorthands walks a group of single-letter flags. A non-boolean flag
// takes the rest of the group as its value, or the next argument when it is
// the last letter.
func scanShorthands(group string) (help, valueFollows bool) {
	for j := 0; j < len(group); j++ {
		o, ok := DefaultSchema.lookupShorthand(group[j : j+1])
		switch {
		case !ok:
		case o.Name == KeyHelp:
			if rest := group[j+1:]; strings.HasPrefix(rest, "=") {
				return isTrue(rest[1:]), false
			}
			return true, false
		case o.Kind != KindBool:
			return false, j == len(group)-1
		}
	}
	return false, false
}

func (s Schema) lookupShorthand(shorthand string) (Option, bool) {
	for _, o := range s {
		if o.Shorthand == shorthand && o.Scopes.Has(ScopeCommandLine) {
			return o, true
		}
	}
	return Option{}, false
}

func isTrue(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func flagValue(fs *pflag.FlagSet, o Option) (any, error) {
	switch o.Kind {
	case KindString:
		return fs.GetString(o.Name)
	case KindUint16:
		return fs.GetUint16(o.Name)
	case KindUint:
		return fs.GetUint(o.Name)
	case KindBool:
		return fs.GetBool(o.Name)
	default:
		return nil, errors.New("unsupported flag kind " + o.Kind.String())
	}
}
