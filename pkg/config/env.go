package config

import (
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is shared by every cheatnav environment variable.
	EnvPrefix = "CHEATNAV_"
	// EnvConfigYAML carries a complete inline YAML document.
	EnvConfigYAML = EnvPrefix + "CONFIG_YAML"
	// EnvConfigPath names an explicit configuration file.
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Env holds the optional source inputs. A nil field is absent.
type Env struct {
	ConfigYAML *string
	ConfigPath *string
}

// LoadEnv reads the source inputs from the process environment. Variables
// set to the empty string count as absent.
func LoadEnv() (Env, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Env{}, errors.Wrap(err, errors.ErrInternal, "failed to read environment")
	}

	var e Env
	if v := k.String("config_yaml"); v != "" {
		e.ConfigYAML = &v
	}
	if v := k.String("config"); v != "" {
		e.ConfigPath = &v
	}
	return e, nil
}

// Override returns a copy of e with non-empty values replacing the
// corresponding fields. Command-line flags use it to take precedence over
// the environment.
func (e Env) Override(configYAML, configPath string) Env {
	if configYAML != "" {
		e.ConfigYAML = &configYAML
	}
	if configPath != "" {
		e.ConfigPath = &configPath
	}
	return e
}
