package cheatnav

import (
	"embed"

	"github.com/arthur-debert/cheatnav/internal/version"
	"github.com/arthur-debert/cheatnav/pkg/cobrax/topics"
	"github.com/arthur-debert/cheatnav/pkg/config"
	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/arthur-debert/cheatnav/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	verbosity  int
	configPath string
	configYAML string
}

// env returns the configuration inputs: the environment, with non-empty
// flags taking precedence.
func (o *rootOptions) env() (config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, err
	}
	return env.Override(o.configYAML, o.configPath), nil
}

func (o *rootOptions) resolve() (*config.Resolved, error) {
	env, err := o.env()
	if err != nil {
		return nil, err
	}
	return config.NewLoader(config.LoaderOptions{Env: env}).Resolve()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "cheatnav",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandError)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.configYAML, "config-yaml", "", MsgFlagConfigYAML)

	// Replaced by the topics help command below
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	_, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
