package tracker

import "context"

// Issue is the slim view of a tracker issue the pipeline needs, enough to
// validate epic linkage.
type Issue struct {
	Key  string
	Type string
}

// IssueFields is the create-issue payload. EpicKey is optional; when set the
// new issue is linked under that parent.
type IssueFields struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	EpicKey     string
}

// Created identifies a successfully created issue.
type Created struct {
	Key string
	URL string
}

// Client is the external issue-tracker capability.
type Client interface {
	// ProjectExists reports whether the project key resolves.
	ProjectExists(ctx context.Context, key string) bool
	// GetIssue returns the issue or nil when it does not exist.
	GetIssue(ctx context.Context, key string) (*Issue, error)
	// CreateIssue submits one issue and returns its key and browse URL.
	CreateIssue(ctx context.Context, fields IssueFields) (Created, error)
	// SampleProjectKeys returns a short comma-separated sample of valid
	// project keys for error messages. Best effort.
	SampleProjectKeys(ctx context.Context) (string, error)
}
