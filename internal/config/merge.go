package config

import (
	"fmt"
	"sort"
	"strings"

	srvErrors "github.com/dreibh/atlasmns-trace-TESTONLY/pkg/errors"
)

// Resolved is the final configuration with the source of every value.
type Resolved struct {
	Options    ConfigurationOptions
	Provenance map[string]Source
}

// SourceOf returns the layer that supplied key. Keys that no layer supplied
// (optional options left empty) report SourceDefault.
func (r Resolved) SourceOf(key string) Source {
	return r.Provenance[key]
}

// Merge combines layers into one record. Layers are applied from the lowest
// to the highest Source whatever order they are passed in, and a layer only
// overrides the keys it explicitly holds.
func Merge(layers ...Layer) (Resolved, error) {
	ordered := make([]Layer, 0, len(layers))
	for _, l := range layers {
		if l.values != nil {
			ordered = append(ordered, l)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Source < ordered[j].Source
	})

	r := Resolved{Provenance: map[string]Source{}}
	for _, l := range ordered {
		for _, key := range l.Keys() {
			o, ok := DefaultSchema.Lookup(key)
			if !ok {
				return Resolved{}, fmt.Errorf("%s layer holds unknown option %s", l.Source, key)
			}
			v, _ := l.Get(key)
			if err := o.assign(&r.Options, v); err != nil {
				return Resolved{}, err
			}
			r.Provenance[key] = l.Source
		}
	}
	return r, nil
}

// Validate checks the invariants of a merged record. The port is only bound
// by its uint16 type, which the frontends already enforce.
func Validate(opts ConfigurationOptions) error {
	required := []struct {
		key   string
		value string
	}{
		{KeySchedulerDBServer, opts.SchedulerDBServer},
		{KeySchedulerDBUser, opts.SchedulerDBUser},
		{KeySchedulerDatabase, opts.SchedulerDatabase},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return srvErrors.NewMissingRequiredOptionError(r.key)
		}
	}
	return nil
}

// Resolve merges defaults, the optional configuration file and the command
// line, then validates the result.
func Resolve(cl CommandLine, file *FileLayer) (Resolved, error) {
	layers := []Layer{DefaultSchema.Defaults(), cl.Layer}
	if file != nil {
		layers = append(layers, file.Layer)
	}

	r, err := Merge(layers...)
	if err != nil {
		return Resolved{}, err
	}
	if err := Validate(r.Options); err != nil {
		return Resolved{}, err
	}
	return r, nil
}
