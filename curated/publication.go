package curated

import (
	"context"
	"net/url"
	"strconv"
)

// Publication is a client scoped to a single publication. Every resource of
// the Curated API except the publications listing nests under one, so the
// scope is part of every URL this type builds.
type Publication struct {
	client *Client
	id     string
}

// ID returns the publication identifier this scope was built with.
func (p *Publication) ID() string {
	return p.id
}

// url builds a resource URL inside this publication scope.
func (p *Publication) url(resource string, parts []string, query url.Values) (string, error) {
	return resourceURL(p.client.baseURL, p.id, resource, parts, query)
}

// ListCategories retrieves all link categories configured on the publication.
func (p *Publication) ListCategories(ctx context.Context) ([]Category, error) {
	rawURL, err := p.url(resourceCategories, nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := p.client.getJSON(ctx, rawURL, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListLinks retrieves the links collected for the current issue.
func (p *Publication) ListLinks(ctx context.Context) ([]Link, error) {
	rawURL, err := p.url(resourceLinks, nil, nil)
	if err != nil {
		return nil, err
	}

	var links []Link
	if err := p.client.getJSON(ctx, rawURL, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// GetLink retrieves a single link by ID.
func (p *Publication) GetLink(ctx context.Context, id ID) (*Link, error) {
	if id == "" {
		return nil, &ConfigError{Reason: "link ID is required"}
	}

	rawURL, err := p.url(resourceLinks, []string{id.String()}, nil)
	if err != nil {
		return nil, err
	}

	var link Link
	if err := p.client.getJSON(ctx, rawURL, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateLink submits a new link. URL and Title are required; the remaining
// fields are sent only when present.
//
// The server takes the link fields as query parameters on this call, unlike
// UpdateLink which takes a JSON body. The asymmetry is the server's contract,
// not an accident of this client.
func (p *Publication) CreateLink(ctx context.Context, link Link) (*Link, error) {
	if link.URL == "" {
		return nil, &ConfigError{Reason: "link URL is required"}
	}
	if link.Title == "" {
		return nil, &ConfigError{Reason: "link title is required"}
	}

	query := url.Values{}
	query.Set("url", link.URL)
	query.Set("title", link.Title)
	if link.Description != "" {
		query.Set("description", link.Description)
	}
	if link.Image != "" {
		query.Set("image", link.Image)
	}
	if link.Category != "" {
		query.Set("category", link.Category)
	}

	rawURL, err := p.url(resourceLinks, nil, query)
	if err != nil {
		return nil, err
	}

	var created Link
	if err := p.client.createJSON(ctx, rawURL, nil, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLink replaces the stored link identified by link.ID.
func (p *Publication) UpdateLink(ctx context.Context, link Link) (*Link, error) {
	if link.ID == "" {
		return nil, &ConfigError{Reason: "link ID is required"}
	}

	rawURL, err := p.url(resourceLinks, []string{link.ID.String()}, nil)
	if err != nil {
		return nil, err
	}

	var updated Link
	if err := p.client.putJSON(ctx, rawURL, link, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLink removes a link. A missing link is reported as NotFound rather
// than an error, so callers can tell "deleted", "already absent" and
// "request failed" apart.
func (p *Publication) DeleteLink(ctx context.Context, id ID) (DeleteResult, error) {
	if id == "" {
		return 0, &ConfigError{Reason: "link ID is required"}
	}

	rawURL, err := p.url(resourceLinks, []string{id.String()}, nil)
	if err != nil {
		return 0, err
	}
	return p.client.deleteResource(ctx, rawURL)
}

// ListIssues retrieves one page of issues.
func (p *Publication) ListIssues(ctx context.Context, opts ListIssuesOptions) (*Page[Issue], error) {
	rawURL, err := p.url(resourceIssues, nil, opts.query())
	if err != nil {
		return nil, err
	}

	var page Page[Issue]
	if err := p.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetIssue retrieves a single issue by its public number.
func (p *Publication) GetIssue(ctx context.Context, number int, stats bool) (*Issue, error) {
	query := url.Values{}
	query.Set("stats", strconv.FormatBool(stats))

	rawURL, err := p.url(resourceIssues, []string{strconv.Itoa(number)}, query)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if err := p.client.getJSON(ctx, rawURL, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateDraftIssue creates a new, empty draft issue.
func (p *Publication) CreateDraftIssue(ctx context.Context) (*Issue, error) {
	rawURL, err := p.url(resourceIssues, nil, nil)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if err := p.client.createJSON(ctx, rawURL, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// DeleteDraftIssue removes a draft issue by number.
func (p *Publication) DeleteDraftIssue(ctx context.Context, number int) (DeleteResult, error) {
	rawURL, err := p.url(resourceIssues, []string{strconv.Itoa(number)}, nil)
	if err != nil {
		return 0, err
	}
	return p.client.deleteResource(ctx, rawURL)
}

// ListSubscribers retrieves one page of email subscribers.
func (p *Publication) ListSubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error) {
	return p.listEmails(ctx, resourceSubscribers, opts)
}

// ListUnsubscribers retrieves one page of opt-out records.
func (p *Publication) ListUnsubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error) {
	return p.listEmails(ctx, resourceUnsubscribers, opts)
}

func (p *Publication) listEmails(ctx context.Context, resource string, opts ListOptions) (*Page[Email], error) {
	rawURL, err := p.url(resource, nil, opts.query())
	if err != nil {
		return nil, err
	}

	var page Page[Email]
	if err := p.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SubscribeEmail adds an email address to the publication's subscriber list.
// With sync set the server processes the subscription before responding.
func (p *Publication) SubscribeEmail(ctx context.Context, email string, sync bool) (*Email, error) {
	if email == "" {
		return nil, &ConfigError{Reason: "email address is required"}
	}

	query := url.Values{}
	query.Set("sync", strconv.FormatBool(sync))

	rawURL, err := p.url(resourceSubscribers, nil, query)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Email string `json:"email"`
	}{Email: email}

	var subscriber Email
	if err := p.client.createJSON(ctx, rawURL, payload, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetSubscriber retrieves a single subscriber record by ID.
func (p *Publication) GetSubscriber(ctx context.Context, id int64) (*Email, error) {
	rawURL, err := p.url(resourceSubscribers, []string{strconv.FormatInt(id, 10)}, nil)
	if err != nil {
		return nil, err
	}

	var subscriber Email
	if err := p.client.getJSON(ctx, rawURL, &subscriber); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// AllSubscribers walks every subscriber page and returns the combined list.
func (p *Publication) AllSubscribers(ctx context.Context) ([]Email, error) {
	return p.allEmails(ctx, p.ListSubscribers)
}

// AllUnsubscribers walks every unsubscriber page and returns the combined list.
func (p *Publication) AllUnsubscribers(ctx context.Context) ([]Email, error) {
	return p.allEmails(ctx, p.ListUnsubscribers)
}

func (p *Publication) allEmails(ctx context.Context, list func(context.Context, ListOptions) (*Page[Email], error)) ([]Email, error) {
	var all []Email
	page := 1

	for {
		result, err := list(ctx, ListOptions{PerPage: p.client.pageSize, Page: page})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Data...)

		p.client.logger.Debug().
			Int("page", result.Page).
			Int("count", len(result.Data)).
			Int("total", len(all)).
			Msg("Retrieved email page from Curated")

		if !result.HasMorePages() {
			break
		}
		page = result.Page + 1
	}

	return all, nil
}

// query encodes the issue listing options, substituting documented defaults
// for zero values. Page is omitted entirely when unset.
func (o ListIssuesOptions) query() url.Values {
	perPage := o.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	state := o.State
	if state == "" {
		state = "draft"
	}

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("state", state)
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	q.Set("stats", strconv.FormatBool(o.Stats))
	return q
}

// query encodes the email listing options with their documented defaults.
func (o ListOptions) query() url.Values {
	perPage := o.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	page := o.Page
	if page <= 0 {
		page = 1
	}

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	return q
}
