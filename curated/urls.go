package curated

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the production endpoint of the Curated API.
const DefaultBaseURL = "https://api.curated.co/api/v3"

// Resource path segments used by the URL builder.
const (
	resourceCategories    = "categories"
	resourceLinks         = "links"
	resourceIssues        = "issues"
	resourceSubscribers   = "email_subscribers"
	resourceUnsubscribers = "email_unsubscribers"
)

// publicationsURL returns the unscoped publications listing URL.
func publicationsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/publications"
}

// resourceURL builds a publication-scoped resource URL of the form
//
//	{base}/publications/{publicationID}/{resource}[/{part}...]{?query}
//
// Each path segment is escaped individually, so IDs containing reserved
// characters cannot break the path grammar. Query parameters are
// percent-encoded and sorted by url.Values.Encode; a nil or empty query adds
// nothing, not even the "?".
func resourceURL(baseURL, publicationID, resource string, parts []string, query url.Values) (string, error) {
	if publicationID == "" {
		return "", ErrNoPublication
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	for _, segment := range append([]string{"publications", publicationID, resource}, parts...) {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String(), nil
}
