package tasks_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nkondratev/doctasks/internal/domain/taskModel"
	"github.com/nkondratev/doctasks/internal/tasks"
	"github.com/nkondratev/doctasks/internal/tracker"
)

type mockTracker struct {
	projectExistsFunc func(ctx context.Context, key string) bool
	getIssueFunc      func(ctx context.Context, key string) (*tracker.Issue, error)
	createIssueFunc   func(ctx context.Context, fields tracker.IssueFields) (tracker.Created, error)
	sampleFunc        func(ctx context.Context) (string, error)

	createCalls []tracker.IssueFields
}

func (m *mockTracker) ProjectExists(ctx context.Context, key string) bool {
	if m.projectExistsFunc != nil {
		return m.projectExistsFunc(ctx, key)
	}
	return true
}

func (m *mockTracker) GetIssue(ctx context.Context, key string) (*tracker.Issue, error) {
	if m.getIssueFunc != nil {
		return m.getIssueFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockTracker) CreateIssue(ctx context.Context, fields tracker.IssueFields) (tracker.Created, error) {
	m.createCalls = append(m.createCalls, fields)
	if m.createIssueFunc != nil {
		return m.createIssueFunc(ctx, fields)
	}
	return tracker.Created{Key: fmt.Sprintf("PROJ-%d", len(m.createCalls)), URL: "https://tracker.local/browse/PROJ-1"}, nil
}

func (m *mockTracker) SampleProjectKeys(ctx context.Context) (string, error) {
	if m.sampleFunc != nil {
		return m.sampleFunc(ctx)
	}
	return "", errors.New("not implemented")
}

func someRecords(n int) []taskModel.TaskRecord {
	records := make([]taskModel.TaskRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, taskModel.TaskRecord{
			TaskID:             fmt.Sprintf("TASK-%03d", i),
			Title:              fmt.Sprintf("Задача %d", i),
			TimeEstimate:       "1 час",
			Description:        "Описание",
			AcceptanceCriteria: []string{"критерий"},
			Dependencies:       []string{},
		})
	}
	return records
}

func TestCreateBatchAllSucceed(t *testing.T) {
	mock := &mockTracker{}
	materializer := tasks.NewMaterializer(mock, 5)

	result := materializer.CreateBatch(context.Background(), someRecords(3), "PROJ", "")

	if result.Status != taskModel.BatchStatusSuccess {
		t.Errorf("expected success, got %s", result.Status)
	}
	if len(result.CreatedTasks) != 3 || len(result.Errors) != 0 {
		t.Errorf("expected 3 created and 0 errors, got %d/%d", len(result.CreatedTasks), len(result.Errors))
	}
	if result.ErrorMessage != "All 3 tasks created in the tracker." {
		t.Errorf("unexpected message: %q", result.ErrorMessage)
	}
}

func TestCreateBatchIsolatesFailures(t *testing.T) {
	mock := &mockTracker{}
	mock.createIssueFunc = func(ctx context.Context, fields tracker.IssueFields) (tracker.Created, error) {
		if strings.HasPrefix(fields.Summary, "TASK-002:") {
			return tracker.Created{}, errors.New("field 'summary' is required")
		}
		return tracker.Created{Key: "PROJ-1", URL: "https://tracker.local/browse/PROJ-1"}, nil
	}
	materializer := tasks.NewMaterializer(mock, 5)

	result := materializer.CreateBatch(context.Background(), someRecords(3), "PROJ", "")

	if result.Status != taskModel.BatchStatusPartial {
		t.Errorf("expected partial_success, got %s", result.Status)
	}
	if len(result.CreatedTasks) != 2 {
		t.Errorf("expected 2 created tasks, got %d", len(result.CreatedTasks))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].TaskID != "TASK-002" {
		t.Errorf("expected TASK-002 to fail, got %s", result.Errors[0].TaskID)
	}
	if len(mock.createCalls) != 3 {
		t.Errorf("a failed task must not block the rest, got %d create calls", len(mock.createCalls))
	}
}

func TestCreateBatchMissingProject(t *testing.T) {
	mock := &mockTracker{
		projectExistsFunc: func(ctx context.Context, key string) bool { return false },
		sampleFunc:        func(ctx context.Context) (string, error) { return "ALPHA, BETA", nil },
	}
	materializer := tasks.NewMaterializer(mock, 5)

	result := materializer.CreateBatch(context.Background(), someRecords(2), "MISSING", "")

	if result.Status != taskModel.BatchStatusError {
		t.Errorf("expected error status, got %s", result.Status)
	}
	if !strings.Contains(result.ErrorMessage, "MISSING") || !strings.Contains(result.ErrorMessage, "ALPHA, BETA") {
		t.Errorf("message must name the project and the sample, got %q", result.ErrorMessage)
	}
	if len(mock.createCalls) != 0 {
		t.Errorf("missing project must stop the batch before any create call, got %d", len(mock.createCalls))
	}
}

func TestCreateBatchEpicValidation(t *testing.T) {
	tests := []struct {
		name         string
		getIssue     func(ctx context.Context, key string) (*tracker.Issue, error)
		expectLinked bool
	}{
		{
			name: "epic exists",
			getIssue: func(ctx context.Context, key string) (*tracker.Issue, error) {
				return &tracker.Issue{Key: key, Type: "Epic"}, nil
			},
			expectLinked: true,
		},
		{
			name: "russian epic type",
			getIssue: func(ctx context.Context, key string) (*tracker.Issue, error) {
				return &tracker.Issue{Key: key, Type: "Эпик"}, nil
			},
			expectLinked: true,
		},
		{
			name: "issue is not an epic",
			getIssue: func(ctx context.Context, key string) (*tracker.Issue, error) {
				return &tracker.Issue{Key: key, Type: "Story"}, nil
			},
			expectLinked: false,
		},
		{
			name: "epic does not exist",
			getIssue: func(ctx context.Context, key string) (*tracker.Issue, error) {
				return nil, nil
			},
			expectLinked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTracker{getIssueFunc: tt.getIssue}
			materializer := tasks.NewMaterializer(mock, 5)

			result := materializer.CreateBatch(context.Background(), someRecords(1), "PROJ", "PROJ-100")

			if result.Status != taskModel.BatchStatusSuccess {
				t.Fatalf("tasks must still be created, got status %s", result.Status)
			}
			linked := mock.createCalls[0].EpicKey == "PROJ-100"
			if linked != tt.expectLinked {
				t.Errorf("expected linked=%v, got epic key %q", tt.expectLinked, mock.createCalls[0].EpicKey)
			}
		})
	}
}

func TestCreateBatchCapsRecords(t *testing.T) {
	mock := &mockTracker{}
	materializer := tasks.NewMaterializer(mock, 5)

	result := materializer.CreateBatch(context.Background(), someRecords(8), "PROJ", "")

	if len(mock.createCalls) != 5 {
		t.Errorf("expected batch capped at 5, got %d create calls", len(mock.createCalls))
	}
	if len(result.CreatedTasks) != 5 {
		t.Errorf("expected 5 created tasks, got %d", len(result.CreatedTasks))
	}
}

func TestCreateBatchDescriptionFormat(t *testing.T) {
	mock := &mockTracker{}
	materializer := tasks.NewMaterializer(mock, 5)

	record := taskModel.TaskRecord{
		TaskID:             "TASK-001",
		Title:              "Настроить окружение",
		TimeEstimate:       "2 часа",
		Description:        "Поднять dev-окружение",
		AcceptanceCriteria: []string{"CI проходит"},
		Dependencies:       []string{"TASK-002"},
	}
	materializer.CreateBatch(context.Background(), []taskModel.TaskRecord{record}, "PROJ", "")

	fields := mock.createCalls[0]
	if fields.Summary != "TASK-001: Настроить окружение" {
		t.Errorf("unexpected summary: %q", fields.Summary)
	}
	for _, want := range []string{"*Время выполнения:* 2 часа", "*Описание:* Поднять dev-окружение", "*Критерии приемки:*", "* CI проходит", "*Зависимости:* TASK-002"} {
		if !strings.Contains(fields.Description, want) {
			t.Errorf("description missing %q:\n%s", want, fields.Description)
		}
	}
}
