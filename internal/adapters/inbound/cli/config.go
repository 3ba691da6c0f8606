package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/ftf/internal/adapters/outbound/config"
	"github.com/abdidvp/ftf/internal/domain"
)

func newConfigCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the ftf configuration",
	}
	cmd.AddCommand(newConfigExampleCmd())
	cmd.AddCommand(newConfigPathCmd(global))
	cmd.AddCommand(newConfigInitCmd(global))
	return cmd
}

func newConfigExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a documented example configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), domain.ExampleConfig())
		},
	}
}

func newConfigPathCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path ftf reads its configuration from",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(global)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd(global *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the example configuration to the config path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := configPath(global)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
				}
			}

			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(dest, []byte(domain.ExampleConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func configPath(global *globalOptions) (string, error) {
	if global.configPath != "" {
		return global.configPath, nil
	}
	return config.DefaultPath()
}
