package cheatnav

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Browse cheat sheets and run the chosen snippet"
	MsgConfigShort        = "Inspect and scaffold the configuration"
	MsgConfigShowShort    = "Print the effective configuration as YAML"
	MsgConfigGetShort     = "Print one configuration value by dotted key"
	MsgConfigPathShort    = "Print the default configuration file path"
	MsgConfigInitShort    = "Write a commented starter configuration file"
	MsgConfigPreviewShort = "Preview the column styles with sample cheats"
	MsgConfigColorsShort  = "List accepted color names"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"
	MsgManShort           = "Generate man page"

	// Status messages
	MsgSourceLine      = "# source: %s\n"
	MsgSourcePathLine  = "# source: %s (%s)\n"
	MsgConfigWritten   = "Wrote %s\n"
	MsgPathExists      = "%s (exists)\n"
	MsgPathMissing     = "%s (not found, defaults apply)\n"
	MsgPreviewFinder   = "finder: %s (runs %s)\n"
	MsgPreviewShell    = "shell:  %s\n"
	MsgVersionFormat   = "cheatnav version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCommandError  = "no command specified"
	MsgErrConfigExists = "config file %s already exists (use --force to overwrite)"
	MsgErrOrigin       = "configuration source: %s"
	MsgErrOriginPath   = "configuration source: %s (%s)"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to a configuration file (overrides CHEATNAV_CONFIG)"
	MsgFlagConfigYAML = "Inline YAML configuration (overrides CHEATNAV_CONFIG_YAML)"
	MsgFlagSource     = "Prefix the output with the source the configuration came from"
	MsgFlagForce      = "Overwrite an existing configuration file"
	MsgFlagStdout     = "Print the starter file instead of writing it"
	MsgFlagWidth      = "Total width to lay out columns in (default: terminal width)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
