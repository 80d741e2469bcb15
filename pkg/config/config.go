package config

import (
	"github.com/arthur-debert/cheatnav/pkg/finder"
	"github.com/arthur-debert/cheatnav/pkg/style"
)

// Config is the resolved cheatnav configuration.
type Config struct {
	Style  Style  `yaml:"style"`
	Finder Finder `yaml:"finder"`
	Cheats Cheats `yaml:"cheats"`
	Search Search `yaml:"search"`
	Shell  Shell  `yaml:"shell"`
}

// Style holds the color and sizing of each column in the cheat list.
type Style struct {
	Tag     ColorWidth `yaml:"tag"`
	Comment ColorWidth `yaml:"comment"`
	Snippet ColorWidth `yaml:"snippet"`
}

// ColorWidth styles one column. WidthPercentage is a share of the available
// width and MinWidth a floor in cells; neither is range-checked here.
type ColorWidth struct {
	Color           style.Color `yaml:"color"`
	WidthPercentage uint16      `yaml:"width_percentage"`
	MinWidth        uint16      `yaml:"min_width"`
}

// Finder selects the external selection tool and its extra arguments.
type Finder struct {
	Command      finder.Choice `yaml:"command"`
	Overrides    *string       `yaml:"overrides,omitempty"`
	OverridesVar *string       `yaml:"overrides_var,omitempty"`
}

// Cheats locates the cheat-sheet repository. A nil Path means the default
// repository location (see paths.DefaultCheatsPath).
type Cheats struct {
	Path *string `yaml:"path,omitempty"`
}

// Search holds default search filters.
type Search struct {
	Tags *string `yaml:"tags,omitempty"`
}

// Shell is the shell used to run selected snippets.
type Shell struct {
	Command string `yaml:"command"`
}
