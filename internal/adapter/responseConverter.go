package adapter

import (
	"github.com/nkondratev/doctasks/internal/api"
	"github.com/nkondratev/doctasks/internal/domain/taskModel"
	"github.com/nkondratev/doctasks/internal/pipeline"
)

// ToPipelineResponse flattens the orchestrator's result into the wire
// envelope. Error responses always carry error=true and a non-empty message;
// the summary map degrades to a diagnostic map on failure.
func ToPipelineResponse(resp pipeline.Response) api.PipelineResponse {
	out := api.PipelineResponse{
		Status:       resp.Status,
		Model:        resp.Model,
		DocumentName: resp.DocumentName,
		Summary:      map[string]any{},
	}

	if resp.Failed() {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = "processing failed"
		}
		out.Error = true
		out.ErrorMessage = &msg
		out.Summary = map[string]any{"error": msg}
		return out
	}

	if resp.Summary != nil {
		out.Summary = map[string]any{
			"summary":      resp.Summary.Summary,
			"content":      resp.Summary.Content,
			"key_points":   resp.Summary.KeyPoints,
			"action_items": resp.Summary.ActionItems,
		}
	}
	if resp.TrackerResult != nil {
		tracker := ToTaskBatchResponse(*resp.TrackerResult)
		out.TrackerResult = &tracker
	}
	return out
}

func ToTaskBatchResponse(batch taskModel.BatchResult) api.TaskBatchResponse {
	created := make([]api.CreatedTask, 0, len(batch.CreatedTasks))
	for _, task := range batch.CreatedTasks {
		created = append(created, api.CreatedTask{
			Key:   task.Key,
			Title: task.Title,
			URL:   task.URL,
		})
	}

	failures := make([]api.TaskError, 0, len(batch.Errors))
	for _, failure := range batch.Errors {
		failures = append(failures, api.TaskError{
			TaskID:    failure.TaskID,
			TaskTitle: failure.TaskTitle,
			Error:     failure.Error,
		})
	}

	return api.TaskBatchResponse{
		Status:       string(batch.Status),
		CreatedTasks: created,
		Errors:       failures,
		Error:        batch.HasErrors(),
		ErrorMessage: batch.ErrorMessage,
	}
}
