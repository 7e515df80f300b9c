package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

func TestWriteTable_PlainWhenNotTerminal(t *testing.T) {
	buf := new(bytes.Buffer)

	err := writeTable(buf, []string{"ID", "TITLE"}, [][]string{
		{"doc-1", "First"},
		{"document-22", "Second"},
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID           TITLE", lines[0])
	assert.Equal(t, "doc-1        First", lines[1])
	assert.Equal(t, "document-22  Second", lines[2])
}

func TestRenderTable_ContainsCells(t *testing.T) {
	out := renderTable(DefaultStyles(), []string{"NAME", "PARAMETERS"}, [][]string{
		{"TitleLength", "min_length=2"},
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "TitleLength")
	assert.Contains(t, out, "min_length=2")
}

func TestOrEmpty(t *testing.T) {
	value := "Germany"

	assert.Equal(t, "Germany", orEmpty(&value))
	assert.Equal(t, "-", orEmpty(nil))
}

func TestFormatParams(t *testing.T) {
	params := map[string]any{
		"max_sum":    5220.5,
		"min_length": 2,
		"max_date":   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "max_date=2023-01-01T00:00:00Z max_sum=5220.5 min_length=2", formatParams(params))
	assert.Empty(t, formatParams(nil))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2023-01-15", formatDate(&date))
	assert.Equal(t, "-", formatDate(nil))
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, []string{"2000", "0.12", "-3.5"}, formatValues([]float64{2000, 0.12, -3.5}))
}
