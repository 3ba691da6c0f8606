package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/ftf/internal/adapters/outbound/cache"
	"github.com/abdidvp/ftf/internal/application"
	"github.com/abdidvp/ftf/internal/domain"
)

// Tools holds the state behind the ftf MCP tools. Corrections are memoized
// per command until the config changes.
type Tools struct {
	svc   *application.CorrectService
	cache *cache.Store

	mu  sync.RWMutex
	cfg domain.Config
}

// NewTools serves corrections for cfg until SetConfig replaces it.
func NewTools(svc *application.CorrectService, cfg domain.Config) *Tools {
	return &Tools{svc: svc, cfg: cfg, cache: cache.New(cache.DefaultSize)}
}

// SetConfig swaps the config used by later calls and drops cached results.
func (h *Tools) SetConfig(cfg domain.Config) {
	h.mu.Lock()
	h.cfg = cfg
	h.cache.Invalidate()
	h.mu.Unlock()
}

func (h *Tools) config() domain.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// correctResponse is the JSON payload of ftf_correct.
type correctResponse struct {
	Command     domain.Command            `json:"command"`
	Corrections []domain.CorrectedCommand `json:"corrections"`
	Cached      bool                      `json:"cached"`
}

// registerTools registers all ftf MCP tools on the given server.
func registerTools(s *server.MCPServer, h *Tools) {
	s.AddTool(
		mcplib.NewTool("ftf_correct",
			mcplib.WithDescription("Suggest corrected commands for a failed shell command, best first, as JSON"),
			mcplib.WithString("script",
				mcplib.Required(),
				mcplib.Description("The command line that failed"),
			),
			mcplib.WithString("output",
				mcplib.Description("Combined stdout and stderr of the failed command"),
			),
			mcplib.WithNumber("exit_code",
				mcplib.Description("Exit status of the failed command (default 1)"),
			),
		),
		h.handleCorrect,
	)

	s.AddTool(
		mcplib.NewTool("ftf_list_rules",
			mcplib.WithDescription("Returns every correction rule with its priority and whether it is enabled"),
		),
		h.handleListRules,
	)
}

func (h *Tools) handleCorrect(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	script, err := request.RequireString("script")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	cmd := domain.NewCommand(strings.TrimSpace(script),
		request.GetString("output", ""),
		request.GetInt("exit_code", 1))

	// held across evaluation so a result is never cached under a stale config
	h.mu.RLock()
	defer h.mu.RUnlock()

	if cached, ok := h.cache.Load(cmd); ok {
		return jsonResult(correctResponse{Command: cmd, Corrections: nonNil(cached), Cached: true})
	}

	cfg := h.cfg
	corrections, err := h.svc.Correct(ctx, application.CorrectRequest{Command: cmd, Config: &cfg})
	if err != nil {
		return errorResult(fmt.Sprintf("correction failed: %v", err)), nil
	}
	h.cache.Save(cmd, corrections)
	return jsonResult(correctResponse{Command: cmd, Corrections: nonNil(corrections)})
}

func (h *Tools) handleListRules(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return jsonResult(h.svc.ListRules(h.config()))
}

func nonNil(c []domain.CorrectedCommand) []domain.CorrectedCommand {
	if c == nil {
		return []domain.CorrectedCommand{}
	}
	return c
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
