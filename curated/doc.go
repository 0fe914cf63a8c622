// Package curated provides a client for the Curated newsletter-publishing API.
//
// Curated (curated.co) hosts email newsletters built from collected links.
// This package implements a typed client for its v3 REST API: publications,
// link categories, links, issues, and email subscriber/unsubscriber lists.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: holds credentials, the HTTP transport, and an optional default
//     publication scope
//   - Publication: an explicitly scoped sub-client; one exists per
//     publication ID and carries all resource operations
//   - Types: domain records (Link, Category, Issue, Email) and the generic
//     Page wrapper for paged listings
//   - Errors: ConfigError for precondition failures, APIError for
//     non-success responses, DeleteResult for delete outcomes
//
// # Usage
//
// Create a client with your API key, then scope it to a publication:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := curated.NewClient("your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pub := client.Publication("your-publication-id")
//	links, err := pub.ListLinks(context.Background())
//
// Alternatively install a default scope once and use the convenience methods
// on Client directly:
//
//	client.SetPublicationID("your-publication-id")
//	links, err := client.ListLinks(context.Background())
//
// Scoped calls made before a publication ID is set fail with ErrNoPublication
// without issuing any HTTP request.
//
// # Error Handling
//
// Precondition failures (missing publication scope, missing required record
// fields) are reported as *ConfigError before any network I/O. Non-success
// HTTP statuses become *APIError carrying the status code and raw body.
// Transport failures propagate wrapped, never disguised as API errors.
// Deletes are the one exception to status handling: a 404 is a normal
// outcome reported through DeleteResult, not an error.
//
// The client performs no retries, caching, or rate limiting; callers that
// need them can layer them on top without affecting the mapping contracts.
package curated
