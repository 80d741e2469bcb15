package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cheatnav/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for cheatnav
	EnvConfigDir = "CHEATNAV_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for cheatnav
	EnvDataDir = "CHEATNAV_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "cheatnav"

	// ConfigFileName is the name of the configuration document
	ConfigFileName = "config.yaml"

	// CheatsDirName is the subdirectory of the data dir holding cheat sheets
	CheatsDirName = "cheats"

	// LogFileName is the name of the log file
	LogFileName = "cheatnav.log"
)

// Paths provides centralized path management for cheatnav
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	DataDir() string
	CheatsDir() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgData   string
	xdgState  string
}

// New resolves the cheatnav directories from the XDG base directories and
// the CHEATNAV_* overrides. Directories that cannot be made absolute are
// reported as ErrDefaultPathUnavailable.
func New() (Paths, error) {
	p := &paths{}

	configDir, err := resolveDir(EnvConfigDir, xdg.ConfigHome)
	if err != nil {
		return nil, err
	}
	p.xdgConfig = configDir

	dataDir, err := resolveDir(EnvDataDir, xdg.DataHome)
	if err != nil {
		return nil, err
	}
	p.xdgData = dataDir

	// State only feeds the log file; fall back to the data dir rather than fail.
	if filepath.IsAbs(xdg.StateHome) {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	} else {
		p.xdgState = p.xdgData
	}

	return p, nil
}

// resolveDir returns the override from envVar when set, otherwise base/cheatnav.
func resolveDir(envVar, base string) (string, error) {
	if override := os.Getenv(envVar); override != "" {
		dir := ExpandHome(override)
		if !filepath.IsAbs(dir) {
			return "", errors.Newf(errors.ErrDefaultPathUnavailable,
				"%s must be an absolute path", envVar).
				WithDetail("value", override)
		}
		return filepath.Clean(dir), nil
	}

	if base == "" || !filepath.IsAbs(base) {
		return "", errors.New(errors.ErrDefaultPathUnavailable,
			"cannot determine XDG base directory").
			WithDetail("base", base)
	}
	return filepath.Join(base, AppDirName), nil
}

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) DataDir() string { return p.xdgData }

func (p *paths) CheatsDir() string {
	return filepath.Join(p.xdgData, CheatsDirName)
}

func (p *paths) StateDir() string { return p.xdgState }

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// DefaultConfigPath returns the conventional location of the configuration
// document. The file is not required to exist.
func DefaultConfigPath() (string, error) {
	p, err := New()
	if err != nil {
		return "", err
	}
	return p.ConfigFilePath(), nil
}

// DefaultCheatsPath returns the cheat repository location used when the
// configuration leaves cheats.path unset.
func DefaultCheatsPath() (string, error) {
	p, err := New()
	if err != nil {
		return "", err
	}
	return p.CheatsDir(), nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is not supported
	return path
}
