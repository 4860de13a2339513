package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/minecorg/internal/config"
	"github.com/gorewood/minecorg/internal/output"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change user settings",
		Long: `Show or change the defaults used by init and template lookup.

Settings live in config.yaml under the minecorg config directory
(MINECORG_CONFIG_HOME, else $XDG_CONFIG_HOME/minecorg, else
~/.config/minecorg). MINECORG_<KEY> environment variables override the file.

Keys: ` + strings.Join(config.Keys, ", ") + `

Examples:
  minecorg config show
  minecorg config set namespace myns
  minecorg config get min_engine_version`,
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if a.printer.IsJSON() {
				return a.printer.WriteJSON(map[string]any{
					"path":     a.store.Path(),
					"settings": a.settings,
				})
			}

			data, err := yaml.Marshal(a.settings)
			if err != nil {
				return fail(a.printer, output.NewSystemErrorWithCause("encoding settings", err))
			}
			a.printer.Stderr("# %s\n", a.store.Path())
			a.printer.Print("%s", data)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			value, err := a.store.Get(args[0])
			if err != nil {
				return fail(a.printer, configError(err))
			}
			if a.printer.IsJSON() {
				return a.printer.WriteJSON(map[string]any{"key": args[0], "value": value})
			}
			a.printer.Println(value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if err := a.store.Set(args[0], args[1]); err != nil {
				return fail(a.printer, configError(err))
			}
			value, _ := a.store.Get(args[0])
			if a.printer.IsJSON() {
				return a.printer.WriteJSON(map[string]any{"key": args[0], "value": value, "path": a.store.Path()})
			}
			return a.printer.Success(map[string]any{"message": "Set " + args[0] + " = " + value})
		},
	}
}

// configError maps settings failures to exit errors. Bad keys and values
// are the user's; anything else is a file problem.
func configError(err error) *output.ExitError {
	if errors.Is(err, config.ErrUnknownKey) || errors.Is(err, config.ErrInvalidEngineVersion) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}
