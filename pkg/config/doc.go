// Package config resolves the cheatnav configuration.
//
// Exactly one YAML document is consulted per load, chosen in this order:
//
//  1. inline YAML text (CHEATNAV_CONFIG_YAML or --config-yaml)
//  2. an explicit file path (CHEATNAV_CONFIG or --config)
//  3. the conventional default path, $XDG_CONFIG_HOME/cheatnav/config.yaml,
//     only if it exists
//  4. no document: every field takes its default
//
// The first source that is present wins. A present source that fails to
// read or parse fails the load; there is no fallback to a lower source and
// documents are never merged.
//
// Documents are decoded onto Default(), so any key missing at any depth
// keeps its default value. Color names and the finder command are
// validated while decoding and reject the whole document when unknown.
package config
