package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ftf dev")
}

func TestRulesCmd(t *testing.T) {
	cfg := writeConfig(t, "rules:\n  git_branch_delete:\n    enabled: false\n  mkdir_p:\n    priority: 150\n")
	out, _, err := execute(t, "--config", cfg, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "mkdir_p")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "disabled")
}

func TestRulesCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "--config", emptyConfig(t), "rules", "--json")
	require.NoError(t, err)

	var infos []domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)
	assert.Equal(t, "git_branch_delete", infos[0].Name)
}

func TestConfigExampleCmd(t *testing.T) {
	out, _, err := execute(t, "config", "example")
	require.NoError(t, err)
	assert.Equal(t, domain.ExampleConfig(), out)
}

func TestConfigPathCmd(t *testing.T) {
	path := emptyConfig(t)
	out, _, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	t.Setenv("FTF_CONFIG", "/tmp/from-env.yaml")
	out, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.yaml\n", out)
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ExampleConfig(), string(data))

	_, _, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestAliasCmd(t *testing.T) {
	out, _, err := execute(t, "alias", "--shell", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "fuck() {")

	out, _, err = execute(t, "alias", "--shell", "zsh", "--name", "oops")
	require.NoError(t, err)
	assert.Contains(t, out, "oops() {")

	_, _, err = execute(t, "alias", "--name", "")
	assert.Error(t, err)
}

func TestMCPCommandExists(t *testing.T) {
	_, _, err := execute(t, "mcp", "--help")
	assert.NoError(t, err)
}

func TestMCPServeCommandExists(t *testing.T) {
	_, _, err := execute(t, "mcp", "serve", "--help")
	assert.NoError(t, err)
}
