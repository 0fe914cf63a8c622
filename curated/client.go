package curated

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a Curated API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
	pageSize   int

	// publication is the default scope installed by SetPublicationID.
	publication *Publication
}

// NewClient creates a new Curated client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:   logger,
		pageSize: 100,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Ensure baseURL doesn't have a trailing slash
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// do performs an HTTP request with authentication. The optional body is
// marshaled to JSON exactly once, here at the transport boundary. Status
// routing is left to the caller; only transport-level failures surface as
// errors from do.
func (c *Client) do(ctx context.Context, method, rawURL string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	// The quoted-token scheme is the wire contract; the server rejects any
	// other Authorization format.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Token token=%q", c.apiKey))

	c.logger.Debug().
		Str("method", method).
		Str("url", rawURL).
		Msg("Making Curated API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// getJSON issues a GET and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	status, body, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &APIError{StatusCode: status, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// createJSON issues a POST and decodes a 201 response into out.
func (c *Client) createJSON(ctx context.Context, rawURL string, payload, out any) error {
	status, body, err := c.do(ctx, http.MethodPost, rawURL, payload)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &APIError{StatusCode: status, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// putJSON issues a PUT and decodes a 200 response into out.
func (c *Client) putJSON(ctx context.Context, rawURL string, payload, out any) error {
	status, body, err := c.do(ctx, http.MethodPut, rawURL, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &APIError{StatusCode: status, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// deleteResource issues a DELETE. A 204 means the resource was removed and a
// 404 means it was already absent; both are normal outcomes.
func (c *Client) deleteResource(ctx context.Context, rawURL string) (DeleteResult, error) {
	status, body, err := c.do(ctx, http.MethodDelete, rawURL, nil)
	if err != nil {
		return 0, err
	}
	switch status {
	case http.StatusNoContent:
		return Deleted, nil
	case http.StatusNotFound:
		return NotFound, nil
	default:
		return 0, &APIError{StatusCode: status, Body: string(body)}
	}
}

// ListPublications retrieves the publications accessible to the API key.
// This is the only unscoped listing endpoint.
func (c *Client) ListPublications(ctx context.Context) ([]PublicationInfo, error) {
	var publications []PublicationInfo
	if err := c.getJSON(ctx, publicationsURL(c.baseURL), &publications); err != nil {
		return nil, err
	}
	return publications, nil
}

// Publication returns an explicitly scoped sub-client for the given
// publication. It does not touch client state, so distinct scopes can be
// used side by side.
func (c *Client) Publication(id string) *Publication {
	return &Publication{client: c, id: id}
}

// SetPublicationID installs a default publication scope on the client. All
// publication-scoped convenience methods on Client use it.
func (c *Client) SetPublicationID(id string) {
	c.publication = c.Publication(id)
}

// PublicationID returns the currently installed default scope, or "".
func (c *Client) PublicationID() string {
	if c.publication == nil {
		return ""
	}
	return c.publication.id
}

// scope returns the default publication scope, failing before any I/O when
// none has been set.
func (c *Client) scope() (*Publication, error) {
	if c.publication == nil || c.publication.id == "" {
		return nil, ErrNoPublication
	}
	return c.publication, nil
}

// ListCategories lists categories in the default publication scope.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.ListCategories(ctx)
}

// ListLinks lists links in the default publication scope.
func (c *Client) ListLinks(ctx context.Context) ([]Link, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.ListLinks(ctx)
}

// GetLink retrieves one link in the default publication scope.
func (c *Client) GetLink(ctx context.Context, id ID) (*Link, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.GetLink(ctx, id)
}

// CreateLink creates a link in the default publication scope.
func (c *Client) CreateLink(ctx context.Context, link Link) (*Link, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.CreateLink(ctx, link)
}

// UpdateLink updates a link in the default publication scope.
func (c *Client) UpdateLink(ctx context.Context, link Link) (*Link, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.UpdateLink(ctx, link)
}

// DeleteLink deletes a link in the default publication scope.
func (c *Client) DeleteLink(ctx context.Context, id ID) (DeleteResult, error) {
	p, err := c.scope()
	if err != nil {
		return 0, err
	}
	return p.DeleteLink(ctx, id)
}

// ListIssues lists issues in the default publication scope.
func (c *Client) ListIssues(ctx context.Context, opts ListIssuesOptions) (*Page[Issue], error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.ListIssues(ctx, opts)
}

// GetIssue retrieves one issue in the default publication scope.
func (c *Client) GetIssue(ctx context.Context, number int, stats bool) (*Issue, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.GetIssue(ctx, number, stats)
}

// CreateDraftIssue creates a draft issue in the default publication scope.
func (c *Client) CreateDraftIssue(ctx context.Context) (*Issue, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.CreateDraftIssue(ctx)
}

// DeleteDraftIssue deletes a draft issue in the default publication scope.
func (c *Client) DeleteDraftIssue(ctx context.Context, number int) (DeleteResult, error) {
	p, err := c.scope()
	if err != nil {
		return 0, err
	}
	return p.DeleteDraftIssue(ctx, number)
}

// ListSubscribers lists subscribers in the default publication scope.
func (c *Client) ListSubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.ListSubscribers(ctx, opts)
}

// SubscribeEmail subscribes an address in the default publication scope.
func (c *Client) SubscribeEmail(ctx context.Context, email string, sync bool) (*Email, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.SubscribeEmail(ctx, email, sync)
}

// GetSubscriber retrieves one subscriber in the default publication scope.
func (c *Client) GetSubscriber(ctx context.Context, id int64) (*Email, error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.GetSubscriber(ctx, id)
}

// ListUnsubscribers lists unsubscribers in the default publication scope.
func (c *Client) ListUnsubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error) {
	p, err := c.scope()
	if err != nil {
		return nil, err
	}
	return p.ListUnsubscribers(ctx, opts)
}
