package api

// PipelineResponse is the envelope the HTTP layer serializes for document
// processing. Summary carries the generated fields on success or a
// diagnostic map on failure.
type PipelineResponse struct {
	Status        string             `json:"status" example:"success"`
	Error         bool               `json:"error" example:"false"`
	ErrorMessage  *string            `json:"error_message"`
	Model         string             `json:"model" example:"yandex-gpt"`
	DocumentName  string             `json:"document_name" example:"standup.mp3"`
	Summary       map[string]any     `json:"summary"`
	TrackerResult *TaskBatchResponse `json:"tracker_result,omitempty"`
}

// TaskBatchResponse is the envelope for task materialization.
type TaskBatchResponse struct {
	Status       string        `json:"status" example:"partial_success"`
	CreatedTasks []CreatedTask `json:"created_tasks"`
	Errors       []TaskError   `json:"errors"`
	Error        bool          `json:"error"`
	ErrorMessage string        `json:"error_message"`
}

type CreatedTask struct {
	Key   string `json:"key" example:"PROJ-42"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type TaskError struct {
	TaskID    string `json:"task_id" example:"TASK-003"`
	TaskTitle string `json:"task_title"`
	Error     string `json:"error"`
}

// requests---------------------

type CreateTasksRequest struct {
	TasksText  string `json:"tasks_text" validate:"required"`
	ProjectKey string `json:"project_key" validate:"required"`
	EpicKey    string `json:"epic_key,omitempty"`
}
