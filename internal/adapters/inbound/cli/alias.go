package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/ftf/internal/adapters/outbound/shell"
)

func newAliasCmd() *cobra.Command {
	var (
		name      string
		shellName string
	)

	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Print a shell function that corrects the previous command",
		Long:  "Print a shell function to add to your shell rc file, e.g. eval \"$(ftf alias)\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name must not be empty")
			}
			sh := shellName
			if sh == "" {
				sh = filepath.Base(os.Getenv("SHELL"))
			}
			fmt.Fprint(cmd.OutOrStdout(), shell.Alias(sh, name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "fuck", "Name of the shell function")
	cmd.Flags().StringVar(&shellName, "shell", "", "Target shell (bash, zsh, fish); defaults to $SHELL")

	return cmd
}
