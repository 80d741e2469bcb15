// Package finder is the registry of interactive selection tools cheatnav can
// shell out to. The set is closed: configuration naming any other tool is
// rejected rather than passed through.
package finder

import (
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Choice identifies a supported finder.
type Choice int

const (
	// Fzf is the primary supported finder and the default.
	Fzf Choice = iota
	// Skim is the Rust fzf clone, invoked as `sk`.
	Skim
)

type choiceInfo struct {
	name   string
	binary string
}

var registry = map[Choice]choiceInfo{
	Fzf:  {name: "fzf", binary: "fzf"},
	Skim: {name: "skim", binary: "sk"},
}

// Choices returns all supported finders in declaration order.
func Choices() []Choice {
	return []Choice{Fzf, Skim}
}

// ParseChoice maps an identifier to a Choice. Identifiers match exactly.
func ParseChoice(name string) (Choice, error) {
	for _, c := range Choices() {
		if registry[c].name == name {
			return c, nil
		}
	}
	return 0, errors.Newf(errors.ErrConfigInvalid, "unknown finder %q (supported: %s)",
		name, strings.Join(names(), ", ")).
		WithDetail("finder", name)
}

func names() []string {
	out := make([]string, 0, len(registry))
	for _, c := range Choices() {
		out = append(out, registry[c].name)
	}
	return out
}

func (c Choice) String() string {
	if info, ok := registry[c]; ok {
		return info.name
	}
	return "unknown"
}

// Binary is the executable name looked up on PATH.
func (c Choice) Binary() string {
	return registry[c].binary
}

// UnmarshalYAML decodes a finder identifier; unknown identifiers are errors.
func (c *Choice) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseChoice(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the finder identifier.
func (c Choice) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
