package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate [document-id...]", validateCmd.Use)
}

func TestValidateCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline service not configured")
}

func TestValidateCmd_AllDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	captureLog(t)

	out, err := execute(t, "validate")

	require.NoError(t, err)
	assert.Contains(t, out, "Documents validated:  1")
	assert.Contains(t, out, "DateRecency: 1")
	assert.NotContains(t, out, "Documents parsed")
}

func TestValidateCmd_UnknownID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	captureLog(t)

	out, err := execute(t, "validate", "missing")

	require.NoError(t, err)
	assert.Contains(t, out, "Documents validated:  0")
}
