package curated

import (
	"context"
)

// API defines the publication-scoped operations of the Curated client.
// Both *Client (through its default scope) and *Publication implement it.
type API interface {
	// ListCategories retrieves all link categories
	ListCategories(ctx context.Context) ([]Category, error)

	// ListLinks retrieves the links collected for the current issue
	ListLinks(ctx context.Context) ([]Link, error)

	// GetLink retrieves a single link by ID
	GetLink(ctx context.Context, id ID) (*Link, error)

	// CreateLink submits a new link
	CreateLink(ctx context.Context, link Link) (*Link, error)

	// UpdateLink replaces the stored link identified by link.ID
	UpdateLink(ctx context.Context, link Link) (*Link, error)

	// DeleteLink removes a link, distinguishing Deleted from NotFound
	DeleteLink(ctx context.Context, id ID) (DeleteResult, error)

	// ListIssues retrieves one page of issues
	ListIssues(ctx context.Context, opts ListIssuesOptions) (*Page[Issue], error)

	// GetIssue retrieves a single issue by its public number
	GetIssue(ctx context.Context, number int, stats bool) (*Issue, error)

	// CreateDraftIssue creates a new, empty draft issue
	CreateDraftIssue(ctx context.Context) (*Issue, error)

	// DeleteDraftIssue removes a draft issue by number
	DeleteDraftIssue(ctx context.Context, number int) (DeleteResult, error)

	// ListSubscribers retrieves one page of email subscribers
	ListSubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error)

	// SubscribeEmail adds an email address to the subscriber list
	SubscribeEmail(ctx context.Context, email string, sync bool) (*Email, error)

	// GetSubscriber retrieves a single subscriber record by ID
	GetSubscriber(ctx context.Context, id int64) (*Email, error)

	// ListUnsubscribers retrieves one page of opt-out records
	ListUnsubscribers(ctx context.Context, opts ListOptions) (*Page[Email], error)
}

// PublicationLister is the unscoped part of the client surface.
type PublicationLister interface {
	// ListPublications retrieves the publications accessible to the API key
	ListPublications(ctx context.Context) ([]PublicationInfo, error)
}

var (
	_ API               = (*Client)(nil)
	_ API               = (*Publication)(nil)
	_ PublicationLister = (*Client)(nil)
)
