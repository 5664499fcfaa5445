package taskModel

type BatchStatus string

const (
	BatchStatusSuccess BatchStatus = "success"
	BatchStatusPartial BatchStatus = "partial_success"
	BatchStatusError   BatchStatus = "error"
)

// TaskRecord is one structured unit of work extracted from generated text.
// Produced only by the parser, never mutated afterwards.
type TaskRecord struct {
	TaskID             string   `json:"task_id"`
	Title              string   `json:"title"`
	TimeEstimate       string   `json:"time_estimate"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Dependencies       []string `json:"dependencies"`
}

// CreatedIssue is the success half of a per-task outcome.
type CreatedIssue struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FailedIssue is the failure half of a per-task outcome. One task failing
// never blocks the rest of the batch.
type FailedIssue struct {
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
	Error     string `json:"error"`
}

// BatchResult aggregates the per-task outcomes of one materialization batch.
// Status is purely a function of the created/failed counts.
type BatchResult struct {
	Status       BatchStatus
	CreatedTasks []CreatedIssue
	Errors       []FailedIssue
	ErrorMessage string
}

func (r BatchResult) HasErrors() bool {
	return len(r.Errors) > 0 || r.Status == BatchStatusError
}

// Aggregate derives the batch status from the outcome counts.
func Aggregate(created []CreatedIssue, failed []FailedIssue) BatchStatus {
	switch {
	case len(created) > 0 && len(failed) == 0:
		return BatchStatusSuccess
	case len(created) > 0:
		return BatchStatusPartial
	default:
		return BatchStatusError
	}
}
