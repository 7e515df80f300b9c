package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_FirstRow(t *testing.T) {
	t.Run("nil for empty body", func(t *testing.T) {
		doc := Document{DocumentID: "t1"}
		assert.Nil(t, doc.FirstRow())
	})

	t.Run("returns first row", func(t *testing.T) {
		doc := Document{
			DocumentID: "t1",
			Body: []DocumentRow{
				{Header: "a", Body: []float64{1, 2}},
				{Header: "b", Body: []float64{3}},
			},
		}

		row := doc.FirstRow()
		require.NotNil(t, row)
		assert.Equal(t, "a", row.Header)
		assert.Equal(t, []float64{1, 2}, row.Body)
	})
}

func TestDocument_OptionalFields(t *testing.T) {
	title := "Quarterly"
	date := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	doc := Document{DocumentID: "t1", Title: &title, DateOfCreation: &date}

	require.NotNil(t, doc.Title)
	assert.Equal(t, "Quarterly", *doc.Title)
	assert.Nil(t, doc.Footer)
	assert.Nil(t, doc.CountryOfCreation)
	assert.True(t, doc.DateOfCreation.Equal(date))
}

func TestIDs(t *testing.T) {
	docs := []Document{{DocumentID: "a"}, {DocumentID: "b"}, {DocumentID: "c"}}
	assert.Equal(t, []string{"a", "b", "c"}, IDs(docs))
	assert.Empty(t, IDs(nil))
}

func TestRowValueLocation(t *testing.T) {
	assert.Equal(t, Location("$.body[0].body[2]"), RowValueLocation(0, 2))
	assert.Equal(t, "$.body[3].body[10]", RowValueLocation(3, 10).String())
}
