package config

import (
	"bytes"
	"sort"
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// rawBytesProvider feeds an in-memory document to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

// Marshal renders cfg as a YAML document with two-space indentation. Absent
// optional fields are omitted.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// Flatten loads cfg into a koanf instance keyed by dotted paths, such as
// "style.tag.color".
func Flatten(cfg *Config) (*koanf.Koanf, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, kyaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to flatten configuration")
	}
	return k, nil
}

// Keys lists every leaf key of the schema, including optional fields that
// are absent in a given configuration.
func Keys() []string {
	keys := make([]string, 0, len(schemaKeys))
	for key := range schemaKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the value at a dotted key. Section keys return a nested
// map. A known optional field that is absent yields (nil, nil); a key
// outside the schema is ErrNotFound.
func Lookup(cfg *Config, key string) (interface{}, error) {
	if !isSchemaKey(key) {
		return nil, errors.Newf(errors.ErrNotFound, "unknown configuration key %q", key).
			WithDetail("key", key)
	}

	k, err := Flatten(cfg)
	if err != nil {
		return nil, err
	}
	if !k.Exists(key) {
		return nil, nil
	}
	return k.Get(key), nil
}

var schemaKeys = func() map[string]bool {
	full := Default()
	empty := ""
	full.Finder.Overrides = &empty
	full.Finder.OverridesVar = &empty
	full.Cheats.Path = &empty
	full.Search.Tags = &empty

	k, err := Flatten(full)
	if err != nil {
		panic(err)
	}
	keys := make(map[string]bool)
	for _, key := range k.Keys() {
		keys[key] = true
	}
	return keys
}()

func isSchemaKey(key string) bool {
	if schemaKeys[key] {
		return true
	}
	prefix := key + "."
	for leaf := range schemaKeys {
		if strings.HasPrefix(leaf, prefix) {
			return true
		}
	}
	return false
}
