package config

import (
	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/arthur-debert/cheatnav/pkg/filesystem"
	"github.com/arthur-debert/cheatnav/pkg/logging"
	"github.com/arthur-debert/cheatnav/pkg/paths"
	"github.com/rs/zerolog"
)

// LoaderOptions configures a Loader. Zero values select the process
// defaults: the OS filesystem and paths.DefaultConfigPath.
type LoaderOptions struct {
	Env         Env
	FS          filesystem.FS
	DefaultPath func() (string, error)
}

// Loader picks one configuration source and decodes it.
type Loader struct {
	env         Env
	fs          filesystem.FS
	defaultPath func() (string, error)
	logger      zerolog.Logger
}

// Resolved is a loaded configuration together with where it came from.
// Path is empty for SourceInline and SourceDefaults.
type Resolved struct {
	Config *Config
	Source Source
	Path   string
}

func NewLoader(opts LoaderOptions) *Loader {
	l := &Loader{
		env:         opts.Env,
		fs:          opts.FS,
		defaultPath: opts.DefaultPath,
		logger:      logging.GetLogger("config"),
	}
	if l.fs == nil {
		l.fs = filesystem.NewOS()
	}
	if l.defaultPath == nil {
		l.defaultPath = paths.DefaultConfigPath
	}
	return l
}

// Resolve consults exactly one source, the first present in precedence
// order. Failure of the chosen source is returned as is.
func (l *Loader) Resolve() (*Resolved, error) {
	done := logging.LogOperationStart(l.logger, "resolve-config")
	defer done()

	if l.env.ConfigYAML != nil {
		l.logger.Debug().
			Str("source", SourceInline.String()).
			Int("bytes", len(*l.env.ConfigYAML)).
			Msg("Using inline configuration")

		cfg, err := FromString(*l.env.ConfigYAML)
		if err != nil {
			return nil, withDetail(err, errors.DetailSource, SourceInline.String())
		}
		return &Resolved{Config: cfg, Source: SourceInline}, nil
	}

	if l.env.ConfigPath != nil {
		path := paths.ExpandHome(*l.env.ConfigPath)
		l.logger.Debug().
			Str("source", SourceExplicitPath.String()).
			Str("path", path).
			Msg("Using explicit configuration file")

		cfg, err := FromPath(l.fs, path)
		if err != nil {
			return nil, withDetail(err, errors.DetailSource, SourceExplicitPath.String())
		}
		return &Resolved{Config: cfg, Source: SourceExplicitPath, Path: path}, nil
	}

	path, err := l.defaultPath()
	if err != nil {
		l.logger.Debug().Err(err).Msg("Default config path unavailable, using defaults")
		return l.defaults(), nil
	}

	if !l.fs.Exists(path) {
		l.logger.Debug().Str("path", path).Msg("No config file at default path, using defaults")
		return l.defaults(), nil
	}

	l.logger.Debug().
		Str("source", SourceDefaultPath.String()).
		Str("path", path).
		Msg("Using default configuration file")

	cfg, err := FromPath(l.fs, path)
	if err != nil {
		return nil, withDetail(err, errors.DetailSource, SourceDefaultPath.String())
	}
	return &Resolved{Config: cfg, Source: SourceDefaultPath, Path: path}, nil
}

// Load is Resolve without the provenance.
func (l *Loader) Load() (*Config, error) {
	r, err := l.Resolve()
	if err != nil {
		return nil, err
	}
	return r.Config, nil
}

func (l *Loader) defaults() *Resolved {
	return &Resolved{Config: Default(), Source: SourceDefaults}
}

// Load resolves the configuration for env against the OS filesystem and
// the conventional default path.
func Load(env Env) (*Config, error) {
	return NewLoader(LoaderOptions{Env: env}).Load()
}
