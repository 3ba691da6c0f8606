package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/ftf/internal/adapters/outbound/tui"
)

func newRulesCmd(global *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the correction rules",
		Long:  "List every built-in rule with its effective priority and whether the configuration enables it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := newService(global)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			infos := svc.ListRules(cfg)
			if jsonOutput {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding rules: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(infos))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
