package curated

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestLinkRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		link Link
	}{
		{
			name: "all fields",
			link: Link{
				URL:         "https://example.com/article",
				Title:       "An Article",
				Description: "Worth reading",
				Image:       "https://example.com/img.png",
				Category:    "reading",
				ID:          ID("7"),
			},
		},
		{
			name: "url only",
			link: Link{URL: "https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.link)
			require.NoError(t, err)

			var decoded Link
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.link, decoded)
		})
	}
}

func TestLinkImageWireKey(t *testing.T) {
	// The wire format calls the field image_url; the record calls it Image.
	var link Link
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com","image_url":"X"}`), &link))
	assert.Equal(t, "X", link.Image)

	data, err := json.Marshal(Link{URL: "https://example.com", Image: "X"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com","image_url":"X"}`, string(data))
}

func TestLinkOptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(Link{URL: "https://example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com"}`, string(data))
}

func TestIDDecoding(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected ID
		wantErr  bool
	}{
		{name: "string id", payload: `"abc-123"`, expected: ID("abc-123")},
		{name: "numeric id", payload: `42`, expected: ID("42")},
		{name: "object id", payload: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.payload), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	category := Category{
		Code:      "reading",
		Name:      "Reading",
		Sponsored: true,
		Limit:     intPtr(3),
	}

	data, err := json.Marshal(category)
	require.NoError(t, err)

	var decoded Category
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, category, decoded)
}

func TestCategorySponsoredDefault(t *testing.T) {
	var category Category
	require.NoError(t, json.Unmarshal([]byte(`{}`), &category))

	assert.False(t, category.Sponsored)
	assert.Empty(t, category.Code)
	assert.Nil(t, category.Limit)
}

func TestIssueRoundTrip(t *testing.T) {
	published := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		issue Issue
	}{
		{
			name: "published issue",
			issue: Issue{
				ID:          101,
				Number:      12,
				PublishedAt: timePtr(published),
				Summary:     "The spring issue",
				URL:         "https://example.curated.co/issues/12",
				UpdatedAt:   timePtr(updated),
			},
		},
		{
			name:  "draft issue",
			issue: Issue{ID: 102, Number: 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.issue)
			require.NoError(t, err)

			var decoded Issue
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.issue, decoded)
		})
	}
}

func TestIssueRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		errMsg  string
	}{
		{name: "missing id", payload: `{"number":12}`, errMsg: `"id"`},
		{name: "missing number", payload: `{"id":101}`, errMsg: `"number"`},
		{name: "empty object", payload: `{}`, errMsg: `"id"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issue Issue
			err := json.Unmarshal([]byte(tt.payload), &issue)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestIssueIsPublished(t *testing.T) {
	published := Issue{ID: 1, Number: 1, PublishedAt: timePtr(time.Now())}
	draft := Issue{ID: 2, Number: 2}

	assert.True(t, published.IsPublished())
	assert.False(t, draft.IsPublished())
}

func TestEmailRoundTrip(t *testing.T) {
	email := Email{ID: 55, Email: "reader@example.com"}

	data, err := json.Marshal(email)
	require.NoError(t, err)

	var decoded Email
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, email, decoded)
}

func TestPageRoundTrip(t *testing.T) {
	page := Page[Email]{
		Page:         2,
		TotalPages:   5,
		TotalResults: 480,
		Data: []Email{
			{ID: 1, Email: "a@example.com"},
			{ID: 2, Email: "b@example.com"},
		},
	}

	data, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded Page[Email]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, page, decoded)
}

func TestPageDecodesElements(t *testing.T) {
	payload := `{
		"page": 1,
		"total_pages": 1,
		"total_results": 1,
		"data": [{"id": 9, "number": 3, "summary": "hello"}]
	}`

	var page Page[Issue]
	require.NoError(t, json.Unmarshal([]byte(payload), &page))

	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(9), page.Data[0].ID)
	assert.Equal(t, 3, page.Data[0].Number)
	assert.Equal(t, "hello", page.Data[0].Summary)
}

func TestPagePagination(t *testing.T) {
	t.Run("HasMorePages", func(t *testing.T) {
		page := Page[Email]{Page: 2, TotalPages: 5}
		assert.True(t, page.HasMorePages())

		page.Page = 5
		assert.False(t, page.HasMorePages())
	})

	t.Run("NextPage", func(t *testing.T) {
		page := Page[Email]{Page: 2, TotalPages: 5}
		next, err := page.NextPage()
		require.NoError(t, err)
		assert.Equal(t, 3, next)

		page.Page = 5
		_, err = page.NextPage()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no more pages")
	})
}

func TestPublicationInfoDecoding(t *testing.T) {
	// Publication IDs show up both as numbers and as slugs.
	var pubs []PublicationInfo
	payload := `[{"id": 42, "name": "Weekly"}, {"id": "my-letter", "name": "Letter"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &pubs))

	require.Len(t, pubs, 2)
	assert.Equal(t, ID("42"), pubs[0].ID)
	assert.Equal(t, ID("my-letter"), pubs[1].ID)
}
