package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cheatnav/pkg/paths"
)

// cheatnavVars are cleared by NewEnvironment so the host shell cannot leak
// into a test.
var cheatnavVars = []string{
	"CHEATNAV_CONFIG_YAML",
	"CHEATNAV_CONFIG",
	paths.EnvConfigDir,
	paths.EnvDataDir,
	"NO_COLOR",
}

// Environment is an isolated set of real directories with HOME and the XDG
// base directories pointing into a temp dir.
type Environment struct {
	Root       string
	HomeDir    string
	ConfigHome string
	DataHome   string
	StateHome  string

	t *testing.T
}

// NewEnvironment isolates HOME and XDG_* under t.TempDir. The previous
// environment and the xdg package state are restored on cleanup.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:       root,
		HomeDir:    filepath.Join(root, "home"),
		ConfigHome: filepath.Join(root, "config"),
		DataHome:   filepath.Join(root, "data"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}

	// Registered before Setenv so it runs after the variables are restored.
	t.Cleanup(xdg.Reload)

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	for _, name := range cheatnavVars {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("failed to unset %s: %v", name, err)
		}
	}
	xdg.Reload()

	return env
}

// Setenv sets a variable for the rest of the test.
func (e *Environment) Setenv(name, value string) {
	e.t.Setenv(name, value)
	xdg.Reload()
}

// ConfigFilePath is the default config file location in this environment.
func (e *Environment) ConfigFilePath() string {
	return filepath.Join(e.ConfigHome, paths.AppDirName, paths.ConfigFileName)
}

// WriteConfig writes content to the default config file location.
func (e *Environment) WriteConfig(content string) string {
	return e.WriteFile(e.ConfigFilePath(), content)
}

// WriteFile writes content to an absolute path or a path relative to Root.
func (e *Environment) WriteFile(path, content string) string {
	e.t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.Root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// StrPtr returns a pointer to s, for optional string fields.
func StrPtr(s string) *string {
	return &s
}
