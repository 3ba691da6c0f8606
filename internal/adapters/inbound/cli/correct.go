package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/ftf/internal/adapters/outbound/config"
	"github.com/abdidvp/ftf/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/ftf/internal/adapters/outbound/shell"
	"github.com/abdidvp/ftf/internal/adapters/outbound/tui"
	"github.com/abdidvp/ftf/internal/application"
	"github.com/abdidvp/ftf/internal/domain"
)

type correctOptions struct {
	global        *globalOptions
	command       string
	output        string
	exitCode      int
	noInteraction bool
	jsonOutput    bool
	limit         int
	run           bool
}

func bindCorrectFlags(cmd *cobra.Command, opts *correctOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.command, "command", "c", "", "The command that failed")
	f.StringVarP(&opts.output, "output", "o", "", "Output of the failed command")
	f.IntVarP(&opts.exitCode, "exit-code", "e", 1, "Exit status of the failed command")
	f.BoolVarP(&opts.noInteraction, "no-interaction", "y", false, "Print the best correction without prompting")
	f.BoolVar(&opts.jsonOutput, "json", false, "Print every correction as JSON")
	f.IntVar(&opts.limit, "limit", 0, "Maximum number of corrections (0 uses the config)")
	f.BoolVar(&opts.run, "run", false, "Run the chosen correction instead of printing it")
}

// newService wires the correction service with the default adapters.
func newService(global *globalOptions) (*application.CorrectService, domain.Config, *zap.Logger, error) {
	loader := config.New()
	cfg, err := loader.Load(global.configPath)
	if err != nil {
		return nil, domain.Config{}, nil, err
	}
	logger, err := newLogger(global.debug || cfg.Global.Debug)
	if err != nil {
		return nil, domain.Config{}, nil, fmt.Errorf("creating logger: %w", err)
	}
	return application.NewCorrectService(loader, gitinfo.New(), logger), cfg, logger, nil
}

func runCorrect(cmd *cobra.Command, opts *correctOptions) error {
	if opts.limit < 0 {
		return fmt.Errorf("--limit must be >= 0, got %d", opts.limit)
	}

	svc, cfg, logger, err := newService(opts.global)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir, _ := os.Getwd()
	corrections, err := svc.Correct(cmd.Context(), application.CorrectRequest{
		Command: domain.NewCommand(strings.TrimSpace(opts.command), opts.output, opts.exitCode),
		Config:  &cfg,
		Dir:     dir,
		Limit:   opts.limit,
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		if corrections == nil {
			corrections = []domain.CorrectedCommand{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(corrections); err != nil {
			return fmt.Errorf("encoding corrections: %w", err)
		}
		if len(corrections) == 0 {
			return &ExitError{Code: 1}
		}
		return nil
	}

	if len(corrections) == 0 {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderNoCorrections())
		return &ExitError{Code: 1}
	}

	chosen := corrections[0]
	if len(corrections) > 1 && !opts.noInteraction && cfg.Global.Interactive {
		var ok bool
		chosen, ok, err = tui.Select(corrections, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if !ok {
			return &ExitError{Code: 1}
		}
	}

	script := chosen.Script
	if chosen.SideEffect != "" {
		script += " && " + chosen.SideEffect
	}

	if !opts.run {
		fmt.Fprintln(cmd.OutOrStdout(), script)
		return nil
	}

	runner := shell.New()
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()
	code, err := runner.Run(cmd.Context(), script)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
