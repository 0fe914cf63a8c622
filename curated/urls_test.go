package curated

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationsURL(t *testing.T) {
	assert.Equal(t,
		"https://api.curated.co/api/v3/publications",
		publicationsURL(DefaultBaseURL))

	// Trailing slash on the base must not double up.
	assert.Equal(t,
		"https://api.curated.co/api/v3/publications",
		publicationsURL("https://api.curated.co/api/v3/"))
}

func TestResourceURL(t *testing.T) {
	tests := []struct {
		name     string
		pubID    string
		resource string
		parts    []string
		query    url.Values
		expected string
	}{
		{
			name:     "collection",
			pubID:    "42",
			resource: resourceLinks,
			expected: "https://api.curated.co/api/v3/publications/42/links",
		},
		{
			name:     "single resource",
			pubID:    "42",
			resource: resourceLinks,
			parts:    []string{"7"},
			expected: "https://api.curated.co/api/v3/publications/42/links/7",
		},
		{
			name:     "with query",
			pubID:    "42",
			resource: resourceIssues,
			query:    url.Values{"per_page": {"10"}, "state": {"draft"}},
			expected: "https://api.curated.co/api/v3/publications/42/issues?per_page=10&state=draft",
		},
		{
			name:     "empty query adds no question mark",
			pubID:    "42",
			resource: resourceCategories,
			query:    url.Values{},
			expected: "https://api.curated.co/api/v3/publications/42/categories",
		},
		{
			name:     "query values are escaped",
			pubID:    "42",
			resource: resourceLinks,
			query:    url.Values{"title": {"a b&c"}},
			expected: "https://api.curated.co/api/v3/publications/42/links?title=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resourceURL(DefaultBaseURL, tt.pubID, tt.resource, tt.parts, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResourceURLRequiresPublication(t *testing.T) {
	_, err := resourceURL(DefaultBaseURL, "", resourceLinks, nil, nil)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, ErrNoPublication)
}

func TestResourceURLEscapesSegments(t *testing.T) {
	got, err := resourceURL(DefaultBaseURL, "my pub", resourceLinks, []string{"a/b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.curated.co/api/v3/publications/my%20pub/links/a%2Fb", got)
}
