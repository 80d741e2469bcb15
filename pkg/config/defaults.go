package config

import (
	"github.com/arthur-debert/cheatnav/pkg/finder"
	"github.com/arthur-debert/cheatnav/pkg/style"
)

// DefaultColorWidth is the generic column style. The snippet column uses it
// as is; tag and comment have their own values in DefaultStyle.
func DefaultColorWidth() ColorWidth {
	return ColorWidth{
		Color:           style.Blue,
		WidthPercentage: 26,
		MinWidth:        20,
	}
}

func DefaultStyle() Style {
	return Style{
		Tag: ColorWidth{
			Color:           style.Cyan,
			WidthPercentage: 26,
			MinWidth:        20,
		},
		Comment: ColorWidth{
			Color:           style.Blue,
			WidthPercentage: 42,
			MinWidth:        45,
		},
		Snippet: DefaultColorWidth(),
	}
}

func DefaultFinder() Finder {
	return Finder{Command: finder.Fzf}
}

func DefaultCheats() Cheats { return Cheats{} }

func DefaultSearch() Search { return Search{} }

func DefaultShell() Shell {
	return Shell{Command: "bash"}
}

// Default returns a fresh all-defaults configuration.
func Default() *Config {
	return &Config{
		Style:  DefaultStyle(),
		Finder: DefaultFinder(),
		Cheats: DefaultCheats(),
		Search: DefaultSearch(),
		Shell:  DefaultShell(),
	}
}
