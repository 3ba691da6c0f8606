package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}
	opts := &correctOptions{global: global}

	cmd := &cobra.Command{
		Use:   "ftf",
		Short: "Fix the failure: suggest a corrected command",
		Long: "ftf takes a failed shell command, its output and exit status, and proposes corrected " +
			"commands ranked by priority. Use `ftf alias` to install a shell function that runs it on the previous command.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// a missing .env is the common case
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("command") {
				return cmd.Help()
			}
			return runCorrect(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Config file (defaults to $FTF_CONFIG or the user config dir)")
	cmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "Log rule evaluation to stderr")
	bindCorrectFlags(cmd, opts)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRulesCmd(global))
	cmd.AddCommand(newConfigCmd(global))
	cmd.AddCommand(newAliasCmd())
	cmd.AddCommand(newMCPCmd(global))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Errors other than exit statuses are printed to
// stderr.
func Execute() error {
	err := newRootCmd().Execute()
	var exit *ExitError
	if err != nil && !errors.As(err, &exit) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// ExitError carries a process exit status without an error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return 1
}
