package curated

import (
	"encoding/json"
	"fmt"
	"time"
)

// ID is a resource identifier. The API is inconsistent about whether it
// serializes IDs as JSON numbers or strings; both decode into an ID.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as a plain string
func (id ID) String() string {
	return string(id)
}

// Link represents a curated link within an issue.
//
// Only URL is required; the remaining fields are optional and omitted from
// the wire format when empty. ID is assigned server-side on creation.
type Link struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	ID          ID     `json:"id,omitempty"`
}

// Category represents a link category configured on a publication
type Category struct {
	Code      string `json:"code,omitempty"`
	Name      string `json:"name,omitempty"`
	Sponsored bool   `json:"sponsored"`
	Limit     *int   `json:"limit,omitempty"`
}

// Issue represents one edition of a publication. Number is the public
// sequential issue number, distinct from the internal ID.
type Issue struct {
	ID          int64      `json:"id"`
	Number      int        `json:"number"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UnmarshalJSON decodes an issue, rejecting payloads that lack the required
// id or number fields.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type issue Issue
	aux := struct {
		ID     *int64 `json:"id"`
		Number *int   `json:"number"`
		*issue
	}{issue: (*issue)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ID == nil {
		return fmt.Errorf("issue: missing required field %q", "id")
	}
	if aux.Number == nil {
		return fmt.Errorf("issue: missing required field %q", "number")
	}

	i.ID = *aux.ID
	i.Number = *aux.Number
	return nil
}

// IsPublished reports whether the issue has a publication timestamp
func (i *Issue) IsPublished() bool {
	return i.PublishedAt != nil
}

// Email represents a subscriber or unsubscriber record
type Email struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// PublicationInfo describes one publication the API key has access to
type PublicationInfo struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`
}

// Page is a single page of a paged listing. Page numbers are 1-indexed and
// Data holds only this page, so len(Data) can be less than TotalResults.
type Page[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Data         []T `json:"data"`
}

// HasMorePages checks if there are more pages to fetch
func (p *Page[T]) HasMorePages() bool {
	return p.Page < p.TotalPages
}

// NextPage returns the next page number, or an error if there are no more pages
func (p *Page[T]) NextPage() (int, error) {
	if !p.HasMorePages() {
		return 0, fmt.Errorf("no more pages available")
	}
	return p.Page + 1, nil
}

// ListIssuesOptions controls the issues listing. Zero values fall back to the
// server-documented defaults: 10 per page, draft state. Page is omitted from
// the query entirely when unset.
type ListIssuesOptions struct {
	PerPage int
	State   string
	Page    int
	Stats   bool
}

// ListOptions controls the subscriber and unsubscriber listings. Zero values
// fall back to 100 per page, page 1.
type ListOptions struct {
	PerPage int
	Page    int
}
