package cheatnav

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/cheatnav/pkg/config"
	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/arthur-debert/cheatnav/pkg/filesystem"
	"github.com/arthur-debert/cheatnav/pkg/logging"
	"github.com/arthur-debert/cheatnav/pkg/paths"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "core",
	}

	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigGetCmd(opts))
	cmd.AddCommand(newConfigPathCmd(opts))
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigPreviewCmd(opts))
	cmd.AddCommand(newConfigColorsCmd())

	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var withSource bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := opts.resolve()
			if err != nil {
				return err
			}

			out, err := config.Marshal(resolved.Config)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if withSource {
				if resolved.Path != "" {
					_, _ = fmt.Fprintf(w, MsgSourcePathLine, resolved.Source, resolved.Path)
				} else {
					_, _ = fmt.Fprintf(w, MsgSourceLine, resolved.Source)
				}
			}
			_, err = w.Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&withSource, "source", "s", false, MsgFlagSource)
	return cmd
}

func newConfigGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: MsgConfigGetShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			value, err := config.Lookup(cfg.Config, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch v := value.(type) {
			case nil:
				// Known optional key that is not set
				return nil
			case map[string]interface{}:
				out, err := yaml.Marshal(v)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode value")
				}
				_, err = w.Write(out)
				return err
			default:
				_, err = fmt.Fprintln(w, v)
				return err
			}
		},
	}
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(opts)
			if err != nil {
				return err
			}

			format := MsgPathMissing
			if filesystem.NewOS().Exists(path) {
				format = MsgPathExists
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), format, path)
			return err
		},
	}
}

// targetPath is the file the config commands act on: the explicit path when
// one is given, the default path otherwise.
func targetPath(opts *rootOptions) (string, error) {
	env, err := opts.env()
	if err != nil {
		return "", err
	}
	if env.ConfigPath != nil {
		return paths.ExpandHome(*env.ConfigPath), nil
	}
	return paths.DefaultConfigPath()
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var (
		force    bool
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if toStdout {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, err := targetPath(opts)
			if err != nil {
				return err
			}

			if err := writeConfigFile(filesystem.NewOS(), path, content, force); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, MsgFlagStdout)
	return cmd
}

func writeConfigFile(fsys filesystem.FS, path, content string, force bool) error {
	logger := logging.GetLogger("cmd.config")

	if fsys.Exists(path) && !force {
		return errors.Newf(errors.ErrFileWrite, MsgErrConfigExists, path).
			WithDetail("path", path)
	}

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Bool("force", force).Msg("Wrote starter configuration")
	return nil
}
