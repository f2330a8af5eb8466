package interfaces

import "context"

// PublishResult reports the outcome of delivering rendered content to one
// destination.
type PublishResult struct {
	Success     bool
	Destination string
	URL         string
	Error       string
}

// Publisher is the delivery capability consumed by the publish orchestrator.
// Implementations own all transport concerns (HTTP clients, browser
// automation, git pushes); the core only ever hands them rendered content.
type Publisher interface {
	// Destination returns the destination identifier this publisher serves.
	Destination() string
	// Publish delivers the rendered content for the article and returns the
	// resulting public URL on success.
	Publish(ctx context.Context, article *Article, rendered string) (PublishResult, error)
}

// AnnounceResult reports the outcome of posting an announcement message to
// one social network.
type AnnounceResult struct {
	Success bool
	Network string
	URL     string
	Error   string
}

// Announcer posts a composed announcement message to a single social
// network. Like Publisher, implementations own credentials and transport.
type Announcer interface {
	// Network returns the social network identifier this announcer serves.
	Network() string
	// Post publishes the message and returns the URL of the created post on
	// success.
	Post(ctx context.Context, message string) (AnnounceResult, error)
}
