package jiraTracker

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/internal/tracker"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

const projectSampleSize = 5

type jiraClient struct {
	client    *jira.Client
	serverURL string
	logger    *logger_i.Logger
}

// NewClient builds a tracker.Client over Jira basic auth (username + API
// token). The shared transport is passed in so connections are pooled with
// the other outbound clients.
func NewClient(serverURL, username, apiToken string, transport http.RoundTripper) (tracker.Client, error) {
	tp := jira.BasicAuthTransport{
		Username:  username,
		Password:  apiToken,
		Transport: transport,
	}
	client, err := jira.NewClient(tp.Client(), serverURL)
	if err != nil {
		return nil, fmt.Errorf("jira client: %w", err)
	}
	return &jiraClient{
		client:    client,
		serverURL: strings.TrimRight(serverURL, "/"),
		logger:    logger_i.NewLogger("JiraTracker"),
	}, nil
}

func (c *jiraClient) ProjectExists(ctx context.Context, key string) bool {
	_, _, err := c.client.Project.GetWithContext(ctx, key)
	if err != nil {
		c.logger.Error("Project lookup failed", "project", key, "error", err)
		return false
	}
	return true
}

func (c *jiraClient) GetIssue(ctx context.Context, key string) (*tracker.Issue, error) {
	issue, _, err := c.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		c.logger.Error("Issue lookup failed", "issue", key, "error", err)
		return nil, nil //not found and lookup errors both mean "cannot link"
	}
	if issue == nil || issue.Fields == nil {
		return nil, nil
	}
	return &tracker.Issue{
		Key:  issue.Key,
		Type: issue.Fields.Type.Name,
	}, nil
}

func (c *jiraClient) CreateIssue(ctx context.Context, fields tracker.IssueFields) (tracker.Created, error) {
	issueFields := &jira.IssueFields{
		Project:     jira.Project{Key: fields.ProjectKey},
		Summary:     fields.Summary,
		Description: fields.Description,
		Type:        jira.IssueType{Name: fields.IssueType},
	}
	if fields.EpicKey != "" {
		issueFields.Parent = &jira.Parent{Key: fields.EpicKey}
	}

	started := time.Now()
	created, _, err := c.client.Issue.CreateWithContext(ctx, &jira.Issue{Fields: issueFields})
	metrics.CaptureDependencyLatency("tracker", time.Since(started))
	if err != nil {
		return tracker.Created{}, fmt.Errorf("create issue: %w", err)
	}
	return tracker.Created{
		Key: created.Key,
		URL: fmt.Sprintf("%s/browse/%s", c.serverURL, created.Key),
	}, nil
}

func (c *jiraClient) SampleProjectKeys(ctx context.Context) (string, error) {
	projects, _, err := c.client.Project.GetListWithContext(ctx)
	if err != nil || projects == nil {
		return "", fmt.Errorf("list projects: %w", err)
	}

	keys := make([]string, 0, projectSampleSize)
	for _, p := range *projects {
		keys = append(keys, p.Key)
		if len(keys) == projectSampleSize {
			break
		}
	}
	return strings.Join(keys, ", "), nil
}
