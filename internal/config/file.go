package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"

	srvErrors "github.com/dreibh/atlasmns-trace-TESTONLY/pkg/errors"
)

// FileLayer is the configuration-file layer together with the keys that were
// present in the file but are not part of the schema.
type FileLayer struct {
	Layer   Layer
	Path    string
	Ignored []string
}

// structuredFormats are decoded by viper; every other file name uses the
// classic "key = value" syntax.
var structuredFormats = map[string]string{
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
	".toml": "toml",
}

// LoadFile reads the configuration file at path and converts every key known
// to the configuration-file scope of DefaultSchema.
func LoadFile(path string) (FileLayer, error) {
	data, err := readFile(path)
	if err != nil {
		return FileLayer{}, srvErrors.NewConfigFileNotFoundError(path, err)
	}

	var entries map[string][]any
	if format, ok := structuredFormats[strings.ToLower(filepath.Ext(path))]; ok {
		entries, err = decodeStructured(format, data)
	} else {
		entries, err = decodeKeyValue(data)
	}
	if err != nil {
		return FileLayer{}, srvErrors.NewBadConfigFileSyntaxError(path, err)
	}

	fl := FileLayer{Layer: NewLayer(SourceConfigFile), Path: path}
	for key, values := range entries {
		o, ok := DefaultSchema.LookupIn(ScopeConfigFile, key)
		if !ok {
			fl.Ignored = append(fl.Ignored, key)
			continue
		}
		if len(values) > 1 {
			return FileLayer{}, srvErrors.NewBadConfigFileSyntaxError(path,
				fmt.Errorf("option '%s' cannot be specified more than once", key))
		}
		v, err := parseFileValue(o, values[0])
		if err != nil {
			return FileLayer{}, srvErrors.NewBadConfigFileSyntaxError(path, err)
		}
		fl.Layer.Set(key, v)
	}
	sort.Strings(fl.Ignored)
	return fl, nil
}

// parseFileValue converts one decoded value. Structured formats hand over
// typed scalars; a string option only accepts a string so that YAML or TOML
// never reinterprets text such as 0x1F or 1e3.
func parseFileValue(o Option, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return o.Parse("")
	case string:
		return o.Parse(v)
	}
	if o.Kind == KindString {
		return nil, fmt.Errorf("option %s expects a string value, got %T %v (quote the value)", o.Name, raw, raw)
	}
	return o.Parse(fmt.Sprint(raw))
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// decodeKeyValue parses "key = value" lines. Keys outside any section keep
// their name; keys inside a [section] are reported as "section.key".
func decodeKeyValue(data []byte) (map[string][]any, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:             true,
		SpaceBeforeInlineComment: true,
	}, data)
	if err != nil {
		return nil, err
	}

	entries := map[string][]any{}
	for _, section := range f.Sections() {
		for _, key := range section.Keys() {
			name := key.Name()
			if section.Name() != ini.DefaultSection {
				name = section.Name() + "." + name
			}
			values := key.ValueWithShadows()
			if len(values) == 0 {
				values = []string{""}
			}
			for _, v := range values {
				entries[name] = append(entries[name], v)
			}
		}
	}
	return entries, nil
}

// decodeStructured keeps the scalars as the decoder typed them. viper folds
// key names to lower case, so these formats match keys case-insensitively.
func decodeStructured(format string, data []byte) (map[string][]any, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	entries := map[string][]any{}
	for _, key := range v.AllKeys() {
		entries[key] = []any{v.Get(key)}
	}
	return entries, nil
}
