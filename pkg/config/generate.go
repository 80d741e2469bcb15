package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/finder"
	"github.com/arthur-debert/cheatnav/pkg/paths"
	"github.com/arthur-debert/cheatnav/pkg/style"
)

// GenerateConfigContent returns a starter config.yaml. Every value is
// commented out, so the document parses to Default() until edited.
func GenerateConfigContent() (string, error) {
	sample := Default()
	overrides := "--height 40%"
	overridesVar := "CHEATNAV_FINDER_OVERRIDES"
	tags := "git,docker"
	sample.Finder.Overrides = &overrides
	sample.Finder.OverridesVar = &overridesVar
	sample.Search.Tags = &tags
	if cheats, err := paths.DefaultCheatsPath(); err == nil {
		sample.Cheats.Path = &cheats
	}

	body, err := Marshal(sample)
	if err != nil {
		return "", err
	}

	return header() + commentOutConfigValues(string(body)), nil
}

func header() string {
	colors := make([]string, 0, len(style.Colors()))
	for _, c := range style.Colors() {
		colors = append(colors, c.String())
	}
	finders := make([]string, 0, len(finder.Choices()))
	for _, c := range finder.Choices() {
		finders = append(finders, c.String())
	}

	var b strings.Builder
	b.WriteString("# cheatnav configuration\n")
	b.WriteString("#\n")
	b.WriteString("# Uncomment and edit any value. Missing keys keep their defaults.\n")
	fmt.Fprintf(&b, "# Colors: %s\n", strings.Join(colors, ", "))
	fmt.Fprintf(&b, "# Finders: %s\n", strings.Join(finders, ", "))
	b.WriteString("\n")
	return b.String()
}

// commentOutConfigValues comments every key/value line of a YAML document,
// keeping section headers so the structure stays readable.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Section header, e.g. "style:" or "  tag:"
		if strings.HasSuffix(trimmed, ":") {
			result = append(result, line)
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		result = append(result, indent+"# "+trimmed)
	}

	return strings.Join(result, "\n")
}
