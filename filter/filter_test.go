package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmark/curatectl/curated"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `category == "reading"`},
		{name: "boolean logic", expression: `title != "" and category == "ads"`},
		{name: "string operators", expression: `url startsWith "https://"`},
		{name: "empty", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `category ==`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatchLinks(t *testing.T) {
	link := curated.Link{
		URL:      "https://example.com/article",
		Title:    "An Article",
		Category: "reading",
		ID:       curated.ID("7"),
	}

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{name: "category match", expression: `category == "reading"`, expected: true},
		{name: "category mismatch", expression: `category == "ads"`, expected: false},
		{name: "url prefix", expression: `url startsWith "https://example.com"`, expected: true},
		{name: "title contains", expression: `title contains "Article"`, expected: true},
		{name: "missing description", expression: `description == ""`, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Match(LinkEnv(link))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestMatchIssues(t *testing.T) {
	published := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	issue := curated.Issue{
		ID:          101,
		Number:      12,
		Summary:     "The spring issue",
		PublishedAt: &published,
	}
	draft := curated.Issue{ID: 102, Number: 13}

	f, err := Compile(`published and number > 10`)
	require.NoError(t, err)

	matched, err := f.Match(IssueEnv(issue))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = f.Match(IssueEnv(draft))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMatchUndefinedVariable(t *testing.T) {
	// Unknown names must not blow up the whole listing; they are nil.
	f, err := Compile(`published_at != nil`)
	require.NoError(t, err)

	matched, err := f.Match(IssueEnv(curated.Issue{ID: 1, Number: 1}))
	require.NoError(t, err)
	assert.False(t, matched)
}
