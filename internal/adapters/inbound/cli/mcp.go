package cli

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpadapter "github.com/abdidvp/ftf/internal/adapters/inbound/mcp"
	"github.com/abdidvp/ftf/internal/adapters/outbound/config"
)

func newMCPCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ftf MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(global))
	return cmd
}

func newMCPServeCmd(global *globalOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ftf MCP server (stdio)",
		Long:  "Start the ftf MCP server using stdio transport. This lets AI coding assistants ask for corrections to failed commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := newService(global)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			tools := mcpadapter.NewTools(svc, cfg)
			if watch {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				w, err := config.NewWatcher(global.configPath, config.New(), logger)
				if err != nil {
					logger.Warn("config reload disabled", zap.Error(err))
				} else {
					go func() { _ = w.Run(ctx, tools.SetConfig) }()
				}
			}

			s := mcpadapter.NewFTFMCPServer(tools, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "Reload the config file when it changes")

	return cmd
}
