package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discrepancy-finder/internal/logger"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "discrepancy-finder", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "run")
	assert.Contains(t, commandNames, "validate")
	assert.Contains(t, commandNames, "watch")
	assert.Contains(t, commandNames, "document")
	assert.Contains(t, commandNames, "discrepancies")
	assert.Contains(t, commandNames, "rules")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("rules"))
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	defer func() {
		verboseFlag = false
		logger.SetVerbose(false)
	}()

	_, err := execute(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetServices_Nil(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.Nil(t, pipelineService)
	assert.Nil(t, documentService)
	assert.Nil(t, discrepancyService)
	assert.Empty(t, ruleSet)
}

func TestBootstrap_ReceivesFlags(t *testing.T) {
	defer func() {
		bootstrap = nil
		closeServices = nil
		rulesFileFlag = ""
		SetServices(nil)
	}()

	var got Options
	bootstrap = func(_ context.Context, opts Options) (*Services, func() error, error) {
		got = opts
		return &Services{Rules: rules.DefaultRuleSet()}, nil, nil
	}

	out, err := execute(t, "--rules", "custom.toml", "rules", "list")

	require.NoError(t, err)
	assert.Equal(t, "custom.toml", got.RulesFile)
	assert.Contains(t, out, rules.TitleLengthName)
}

func TestBootstrap_SkippedForVersion(t *testing.T) {
	defer func() { bootstrap = nil }()

	called := false
	bootstrap = func(context.Context, Options) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	}

	_, err := execute(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestBootstrap_Error(t *testing.T) {
	defer func() { bootstrap = nil }()

	bootstrap = func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("database down")
	}

	_, err := execute(t, "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise")
	assert.Contains(t, err.Error(), "database down")
}

func TestExecute_ClosesServices(t *testing.T) {
	defer func() {
		rootCmd.SetArgs(nil)
		SetServices(nil)
	}()

	closed := false
	boot := func(context.Context, Options) (*Services, func() error, error) {
		return &Services{}, func() error {
			closed = true
			return nil
		}, nil
	}

	rootCmd.SetArgs([]string{"rules", "list"})
	err := Execute(context.Background(), boot)

	require.NoError(t, err)
	assert.True(t, closed)
	assert.Nil(t, bootstrap)
	assert.Nil(t, closeServices)
}
