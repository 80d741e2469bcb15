// Package paths provides centralized path handling for cheatnav.
//
// It implements XDG Base Directory specification compliance through
// github.com/adrg/xdg and is the only place that knows where cheatnav
// keeps its files:
//
//   - Config: $XDG_CONFIG_HOME/cheatnav/config.yaml (the conventional
//     default configuration path)
//   - Data: $XDG_DATA_HOME/cheatnav/cheats (default cheat repository)
//   - State: $XDG_STATE_HOME/cheatnav/cheatnav.log (log file)
//
// # Environment Variables
//
//   - CHEATNAV_CONFIG_DIR: override the config directory
//   - CHEATNAV_DATA_DIR: override the data directory
//
// Overrides may start with ~ and must resolve to an absolute path. A
// directory that cannot be resolved to an absolute path is reported as
// ErrDefaultPathUnavailable; the config loader treats that as "no default
// document" rather than a failure.
package paths
