package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkondratev/doctasks/internal/domain/taskModel"
	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/internal/tracker"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

const issueType = "Task"

const projectSamplePlaceholder = "could not list projects"

type Materializer struct {
	tracker  tracker.Client
	maxTasks int
	logger   *logger_i.Logger
}

func NewMaterializer(client tracker.Client, maxTasks int) *Materializer {
	return &Materializer{
		tracker:  client,
		maxTasks: maxTasks,
		logger:   logger_i.NewLogger("IssueMaterializer"),
	}
}

// CreateBatch materializes the task records as tracker issues, at most
// maxTasks per call. The target project is validated once before any create
// call; a missing project fails the whole batch. A bad epic key only drops
// the linkage. One task failing never blocks the tasks after it.
func (m *Materializer) CreateBatch(ctx context.Context, records []taskModel.TaskRecord, projectKey, epicKey string) taskModel.BatchResult {
	if len(records) > m.maxTasks {
		m.logger.Warn("Batch over the cap, truncating", "got", len(records), "cap", m.maxTasks)
		records = records[:m.maxTasks]
	}

	if !m.tracker.ProjectExists(ctx, projectKey) {
		sample, err := m.tracker.SampleProjectKeys(ctx)
		if err != nil || sample == "" {
			sample = projectSamplePlaceholder
		}
		msg := fmt.Sprintf("Project %s not found. Available projects: %s", projectKey, sample)
		m.logger.Error(msg)
		return taskModel.BatchResult{
			Status:       taskModel.BatchStatusError,
			CreatedTasks: []taskModel.CreatedIssue{},
			Errors:       []taskModel.FailedIssue{},
			ErrorMessage: msg,
		}
	}

	epicKey = m.validateEpic(ctx, epicKey)

	created := []taskModel.CreatedIssue{}
	failed := []taskModel.FailedIssue{}
	for i, record := range records {
		m.logger.Info("Creating issue", "n", i+1, "of", len(records), "taskId", record.TaskID)

		result, err := m.tracker.CreateIssue(ctx, tracker.IssueFields{
			ProjectKey:  projectKey,
			Summary:     fmt.Sprintf("%s: %s", record.TaskID, record.Title),
			Description: formatDescription(record),
			IssueType:   issueType,
			EpicKey:     epicKey,
		})
		if err != nil {
			m.logger.Error("Issue creation failed", "taskId", record.TaskID, "error", err)
			metrics.IncrementIssuesFailed()
			failed = append(failed, taskModel.FailedIssue{
				TaskID:    record.TaskID,
				TaskTitle: record.Title,
				Error:     fmt.Sprintf("failed to create issue '%s': %v", record.Title, err),
			})
			continue
		}

		m.logger.Info("Issue created", "key", result.Key, "url", result.URL)
		metrics.IncrementIssuesCreated()
		created = append(created, taskModel.CreatedIssue{
			Key:   result.Key,
			Title: record.Title,
			URL:   result.URL,
		})
	}

	status := taskModel.Aggregate(created, failed)
	return taskModel.BatchResult{
		Status:       status,
		CreatedTasks: created,
		Errors:       failed,
		ErrorMessage: batchMessage(status, len(created), len(failed)),
	}
}

// validateEpic returns the epic key when it names an existing epic-type
// issue, empty otherwise. Linkage is an enhancement, not a precondition.
func (m *Materializer) validateEpic(ctx context.Context, epicKey string) string {
	epicKey = strings.TrimSpace(epicKey)
	if epicKey == "" {
		return ""
	}

	issue, err := m.tracker.GetIssue(ctx, epicKey)
	if err != nil || issue == nil {
		m.logger.Warn("Epic not found, creating tasks without linkage", "epic", epicKey)
		return ""
	}
	switch strings.ToLower(issue.Type) {
	case "epic", "эпик":
		return epicKey
	default:
		m.logger.Warn("Issue exists but is not an epic, skipping linkage", "epic", epicKey, "type", issue.Type)
		return ""
	}
}

func formatDescription(record taskModel.TaskRecord) string {
	parts := []string{
		fmt.Sprintf("*Время выполнения:* %s", record.TimeEstimate),
		"",
	}
	if record.Description != "" {
		parts = append(parts, fmt.Sprintf("*Описание:* %s", record.Description), "")
	}
	if len(record.AcceptanceCriteria) > 0 {
		parts = append(parts, "*Критерии приемки:*", "")
		for _, criteria := range record.AcceptanceCriteria {
			parts = append(parts, fmt.Sprintf("* %s", criteria))
		}
		parts = append(parts, "")
	}
	if len(record.Dependencies) > 0 {
		parts = append(parts, fmt.Sprintf("*Зависимости:* %s", strings.Join(record.Dependencies, ", ")), "")
	}
	return strings.Join(parts, "\n")
}

func batchMessage(status taskModel.BatchStatus, created, failed int) string {
	switch status {
	case taskModel.BatchStatusSuccess:
		return fmt.Sprintf("All %d tasks created in the tracker.", created)
	case taskModel.BatchStatusPartial:
		return fmt.Sprintf("Created %d tasks, %d errors.", created, failed)
	default:
		return "No tasks were created in the tracker."
	}
}
