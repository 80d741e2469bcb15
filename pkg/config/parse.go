package config

import (
	"bytes"
	stderrors "errors"
	"io"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/arthur-debert/cheatnav/pkg/filesystem"
	"gopkg.in/yaml.v3"
)

// FromString parses a YAML document onto the defaults. An empty document
// yields Default().
func FromString(text string) (*Config, error) {
	return decode([]byte(text))
}

// FromReader reads r to the end and parses it like FromString.
func FromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read configuration")
	}
	return decode(data)
}

// FromPath opens path on fsys and parses its contents. A file that cannot
// be opened is reported as ErrSourceUnavailable.
func FromPath(fsys filesystem.FS, path string) (*Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceUnavailable,
			"cannot open config file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := FromReader(f)
	if err != nil {
		return nil, withDetail(err, errors.DetailPath, path)
	}
	return cfg, nil
}

// decode accepts at most one YAML document. A stream with no document
// yields Default().
func decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil {
		if stderrors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, classify(err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case stderrors.Is(err, io.EOF):
		return cfg, nil
	case err != nil:
		return nil, classify(err)
	default:
		return nil, errors.New(errors.ErrConfigParse, "multiple YAML documents in configuration").
			WithDetail("line", extra.Line)
	}
}

// classify maps a yaml.v3 decode failure onto an error code. Errors raised
// by field validators already carry a code and pass through.
func classify(err error) error {
	var coded *errors.CheatnavError
	if stderrors.As(err, &coded) {
		return err
	}

	var typeErr *yaml.TypeError
	if stderrors.As(err, &typeErr) {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid configuration value")
	}

	return errors.Wrap(err, errors.ErrConfigParse, "invalid configuration YAML")
}

func withDetail(err error, key string, value interface{}) error {
	var coded *errors.CheatnavError
	if stderrors.As(err, &coded) {
		coded.WithDetail(key, value)
	}
	return err
}
