package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/validate"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNormalizeForCreateDefaults(t *testing.T) {
	p := BookPayload{
		Title:        strPtr("Dune"),
		Author:       strPtr("Frank Herbert"),
		GoogleBookID: strPtr("abc"),
	}

	b, err := p.NormalizeForCreate("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "abc", b.GoogleBookID)
	assert.Equal(t, PlaceholderCoverURL, b.PosterURL)
	assert.Equal(t, 0, b.TotalPages)
	assert.Equal(t, 0, b.CurrentPage)
	assert.Equal(t, "", b.Notes)
	assert.Equal(t, StatusWantToRead, b.Status)
	assert.Equal(t, "owner-1", b.UserID)
}

func TestNormalizeForCreateRequiredFields(t *testing.T) {
	cases := map[string]BookPayload{
		"missing title":  {Author: strPtr("a"), GoogleBookID: strPtr("g")},
		"missing author": {Title: strPtr("t"), GoogleBookID: strPtr("g")},
		"missing id":     {Title: strPtr("t"), Author: strPtr("a")},
		"blank author":   {Title: strPtr("t"), Author: strPtr(""), GoogleBookID: strPtr("g")},
	}
	for name, p := range cases {
		_, err := p.NormalizeForCreate("owner-1")
		require.Error(t, err, name)
		var vErr *validate.Error
		require.ErrorAs(t, err, &vErr, name)
		assert.Contains(t, vErr.Message, "title")
		assert.Contains(t, vErr.Message, "author")
		assert.Contains(t, vErr.Message, "googleBookId")
	}
}

func TestNormalizeForCreateSnakeAliases(t *testing.T) {
	p := BookPayload{
		Title:             strPtr("Dune"),
		Author:            strPtr("Frank Herbert"),
		GoogleBookIDSnake: strPtr("abc"),
		PosterURLSnake:    strPtr("https://covers.example/dune.jpg"),
		TotalPagesSnake:   intPtr(412),
		CurrentPageSnake:  intPtr(10),
	}

	b, err := p.NormalizeForCreate("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "abc", b.GoogleBookID)
	assert.Equal(t, "https://covers.example/dune.jpg", b.PosterURL)
	assert.Equal(t, 412, b.TotalPages)
	assert.Equal(t, 10, b.CurrentPage)
}

func TestNormalizeForCreateCamelWinsOverSnake(t *testing.T) {
	p := BookPayload{
		Title:             strPtr("Dune"),
		Author:            strPtr("Frank Herbert"),
		GoogleBookID:      strPtr("camel"),
		GoogleBookIDSnake: strPtr("snake"),
		TotalPages:        intPtr(100),
		TotalPagesSnake:   intPtr(999),
	}

	b, err := p.NormalizeForCreate("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "camel", b.GoogleBookID)
	assert.Equal(t, 100, b.TotalPages)
}

func TestNormalizeForCreateBlankPosterFallsBack(t *testing.T) {
	p := BookPayload{
		Title:        strPtr("Dune"),
		Author:       strPtr("Frank Herbert"),
		GoogleBookID: strPtr("abc"),
		PosterURL:    strPtr(""),
	}

	b, err := p.NormalizeForCreate("owner-1")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderCoverURL, b.PosterURL)
}

func TestNormalizeForCreateExplicitFields(t *testing.T) {
	p := BookPayload{
		Title:        strPtr("Dune"),
		Author:       strPtr("Frank Herbert"),
		GoogleBookID: strPtr("abc"),
		Notes:        strPtr("loved it"),
		Status:       strPtr("reading"),
	}

	b, err := p.NormalizeForCreate("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "loved it", b.Notes)
	assert.Equal(t, StatusReading, b.Status)
}

func TestPatchAppliesOnlyPresentFields(t *testing.T) {
	b := Book{
		Title:        "Dune",
		Author:       "Frank Herbert",
		GoogleBookID: "abc",
		PosterURL:    PlaceholderCoverURL,
		TotalPages:   412,
		CurrentPage:  10,
		Status:       StatusReading,
	}

	patch := BookPayload{CurrentPage: intPtr(42)}.Patch()
	patch.Apply(&b)

	assert.Equal(t, 42, b.CurrentPage)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, 412, b.TotalPages)
	assert.Equal(t, StatusReading, b.Status)
}

func TestPatchStatusTakenAsGiven(t *testing.T) {
	b := Book{Status: StatusReading}

	patch := BookPayload{Status: strPtr("paused")}.Patch()
	patch.Apply(&b)

	assert.Equal(t, BookStatus("paused"), b.Status)
}

func TestEmptyPatchChangesNothing(t *testing.T) {
	b := Book{Title: "Dune", Author: "Frank Herbert", CurrentPage: 10}
	orig := b

	BookPayload{}.Patch().Apply(&b)

	assert.Equal(t, orig, b)
}
