package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
)

type Kind int

const (
	KindString Kind = iota
	KindUint16
	KindUint
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUint16:
		return "uint16"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Scope is the set of frontends that accept an option.
type Scope uint8

const (
	ScopeCommandLine Scope = 1 << iota
	ScopeConfigFile
)

func (s Scope) Has(other Scope) bool {
	return s&other != 0
}

// Option describes one recognized configuration key.
type Option struct {
	Name      string
	Shorthand string
	Kind      Kind
	Usage     string
	Scopes    Scope
	// NoDefault marks options that stay unset unless a source supplies them.
	NoDefault bool
	// field returns a pointer to the backing field of ConfigurationOptions.
	// It is nil for options that only steer parsing (help).
	field func(c *ConfigurationOptions) any
}

// Schema is the ordered list of recognized options. Both the command line and
// the configuration file frontends are driven by it.
type Schema []Option

var DefaultSchema = Schema{
	{
		Name:      KeyHelp,
		Shorthand: "h",
		Kind:      KindBool,
		Usage:     "Print help message",
		Scopes:    ScopeCommandLine,
	},
	{
		Name:   KeyLogLevel,
		Kind:   KindUint,
		Usage:  "Set logging level",
		Scopes: ScopeCommandLine | ScopeConfigFile,
		field:  func(c *ConfigurationOptions) any { return &c.LogLevel },
	},
	{
		Name:      KeyConfigFile,
		Shorthand: "c",
		Kind:      KindString,
		Usage:     "Configuration file",
		Scopes:    ScopeCommandLine,
		NoDefault: true,
		field:     func(c *ConfigurationOptions) any { return &c.ConfigFile },
	},
	{
		Name:   KeySchedulerDBServer,
		Kind:   KindString,
		Usage:  "Scheduler database server name",
		Scopes: ScopeCommandLine | ScopeConfigFile,
		field:  func(c *ConfigurationOptions) any { return &c.SchedulerDBServer },
	},
	{
		Name:   KeySchedulerDBPort,
		Kind:   KindUint16,
		Usage:  "Scheduler database server port",
		Scopes: ScopeCommandLine | ScopeConfigFile,
		field:  func(c *ConfigurationOptions) any { return &c.SchedulerDBPort },
	},
	{
		Name:   KeySchedulerDBUser,
		Kind:   KindString,
		Usage:  "Scheduler database user name",
		Scopes: ScopeCommandLine | ScopeConfigFile,
		field:  func(c *ConfigurationOptions) any { return &c.SchedulerDBUser },
	},
	{
		Name:      KeySchedulerDBPassword,
		Kind:      KindString,
		Usage:     "Scheduler database password",
		Scopes:    ScopeCommandLine | ScopeConfigFile,
		NoDefault: true,
		field:     func(c *ConfigurationOptions) any { return &c.SchedulerDBPassword },
	},
	{
		Name:   KeySchedulerDatabase,
		Kind:   KindString,
		Usage:  "Scheduler database name",
		Scopes: ScopeCommandLine | ScopeConfigFile,
		field:  func(c *ConfigurationOptions) any { return &c.SchedulerDatabase },
	},
	{
		Name:      KeySchedulerCAFile,
		Kind:      KindString,
		Usage:     "Scheduler server CA file",
		Scopes:    ScopeCommandLine | ScopeConfigFile,
		NoDefault: true,
		field:     func(c *ConfigurationOptions) any { return &c.SchedulerCAFile },
	},
}

// Lookup returns the option with the given name.
func (s Schema) Lookup(name string) (Option, bool) {
	for _, o := range s {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// LookupIn returns the option with the given name if the scope accepts it.
func (s Schema) LookupIn(scope Scope, name string) (Option, bool) {
	o, ok := s.Lookup(name)
	if !ok || !o.Scopes.Has(scope) {
		return Option{}, false
	}
	return o, true
}

// Defaults returns the Default layer: every option that has a default value.
func (s Schema) Defaults() Layer {
	d := defaultOptions()
	l := NewLayer(SourceDefault)
	for _, o := range s {
		if v, ok := o.Default(&d); ok {
			l.Set(o.Name, v)
		}
	}
	return l
}

// Default reads the option's default from a defaults-filled record.
func (o Option) Default(d *ConfigurationOptions) (any, bool) {
	if o.NoDefault || o.field == nil {
		return nil, false
	}
	return o.value(d), true
}

// Parse converts a raw textual value to the option's Kind.
func (o Option) Parse(raw string) (any, error) {
	var (
		v   any
		err error
	)
	switch o.Kind {
	case KindString:
		return raw, nil
	case KindUint16:
		var n uint64
		n, err = strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
		v = uint16(n)
	case KindUint:
		var n uint64
		n, err = strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize)
		v = uint(n)
	case KindBool:
		v, err = strconv.ParseBool(strings.TrimSpace(raw))
	default:
		return nil, fmt.Errorf("option %s has unsupported kind %s", o.Name, o.Kind)
	}
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return nil, fmt.Errorf("invalid value %q for option %s: %w", raw, o.Name, err)
	}
	return v, nil
}

func (o Option) value(c *ConfigurationOptions) any {
	switch p := o.field(c).(type) {
	case *string:
		return *p
	case *uint16:
		return *p
	case *uint:
		return *p
	case *bool:
		return *p
	default:
		return nil
	}
}

func (o Option) assign(c *ConfigurationOptions, v any) error {
	if o.field == nil {
		return nil
	}
	ok := false
	switch p := o.field(c).(type) {
	case *string:
		var s string
		if s, ok = v.(string); ok {
			*p = s
		}
	case *uint16:
		var n uint16
		if n, ok = v.(uint16); ok {
			*p = n
		}
	case *uint:
		var n uint
		if n, ok = v.(uint); ok {
			*p = n
		}
	case *bool:
		var b bool
		if b, ok = v.(bool); ok {
			*p = b
		}
	}
	if !ok {
		return fmt.Errorf("option %s expects a %s value, got %T", o.Name, o.Kind, v)
	}
	return nil
}

// Usage renders the help text: command-line options first, then the keys
// accepted in a configuration file.
func (s Schema) Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options] [config-file]\n\nCommand-line options:\n", program)

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SortFlags = false
	s.RegisterFlags(fs)
	b.WriteString(fs.FlagUsages())

	b.WriteString("\nConfiguration file options (key = value):\n")
	d := defaultOptions()
	tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)
	for _, o := range s {
		if !o.Scopes.Has(ScopeConfigFile) {
			continue
		}
		line := fmt.Sprintf("      %s %s\t%s", o.Name, o.Kind, o.Usage)
		if v, ok := o.Default(&d); ok {
			line += fmt.Sprintf(" (default %v)", v)
		}
		fmt.Fprintln(tw, line)
	}
	tw.Flush()
	return b.String()
}

func defaultOptions() ConfigurationOptions {
	var d ConfigurationOptions
	defaults.MustSet(&d)
	return d
}
