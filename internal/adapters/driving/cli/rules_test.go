package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

func TestRulesCmd_HasSubcommands(t *testing.T) {
	commands := rulesCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "init")
}

func TestRulesListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "rules", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Rules from built-in defaults")
	assert.Contains(t, out, "TitleLength")
	assert.Contains(t, out, "min_length=2")
	assert.Contains(t, out, "max_date=2023-01-01T00:00:00Z")
	assert.Contains(t, out, "max_sum=5220")
}

func TestRulesListCmd_NoRules(t *testing.T) {
	SetServices(nil)

	out, err := execute(t, "rules", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No rules configured.")
}

func TestRulesInitCmd_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rules.toml")

	out, err := execute(t, "rules", "init", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Default rule set written to "+path)

	configs, err := file.Parse(mustRead(t, path))
	require.NoError(t, err)
	require.Len(t, configs, 3)
	assert.Equal(t, rules.TitleLengthName, configs[0].Name)

	built, err := rules.DefaultRegistry().BuildAll(configs)
	require.NoError(t, err)
	assert.Len(t, built, 3)
}

func TestRulesInitCmd_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")

	_, err := execute(t, "rules", "init", path)
	require.NoError(t, err)

	_, err = execute(t, "rules", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRulesInitCmd_Force(t *testing.T) {
	defer func() { rulesInitForce = false }()
	path := filepath.Join(t.TempDir(), "rules.toml")

	_, err := execute(t, "rules", "init", path)
	require.NoError(t, err)

	_, err = execute(t, "rules", "init", "--force", path)
	assert.NoError(t, err)
}

func TestRulesInitCmd_UsesRulesFlag(t *testing.T) {
	defer func() { rulesFileFlag = "" }()
	path := filepath.Join(t.TempDir(), "from-flag.toml")

	out, err := execute(t, "--rules", path, "rules", "init")

	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}
