package config

import (
	"fmt"
	"sort"
)

// Source is the precedence layer a value came from. Higher sources win.
type Source int

const (
	SourceDefault Source = iota
	SourceConfigFile
	SourceCommandLine
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceConfigFile:
		return "config-file"
	case SourceCommandLine:
		return "command-line"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Layer holds the values one source explicitly supplied, keyed by option name.
// Values are already converted to the option's Kind.
type Layer struct {
	Source Source
	values map[string]any
}

func NewLayer(source Source) Layer {
	return Layer{Source: source, values: map[string]any{}}
}

func (l Layer) Set(key string, value any) {
	l.values[key] = value
}

func (l Layer) Get(key string) (any, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Keys returns the supplied option names in sorted order.
func (l Layer) Keys() []string {
	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l Layer) Len() int {
	return len(l.values)
}
