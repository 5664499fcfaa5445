package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nkondratev/doctasks/internal/data/store"
	"github.com/nkondratev/doctasks/internal/domain/documentModel"
	"github.com/nkondratev/doctasks/internal/domain/taskModel"
	"github.com/nkondratev/doctasks/internal/llm"
	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/internal/tasks"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SummaryData is the structured half of a successful generation.
type SummaryData struct {
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
}

// Response is the per-request result envelope. Every code path through the
// orchestrator produces one; nothing panics or leaks past it.
type Response struct {
	Status        string
	ErrorMessage  string
	Model         string
	DocumentName  string
	Summary       *SummaryData
	TrackerResult *taskModel.BatchResult
}

func (r Response) Failed() bool { return r.Status != StatusSuccess }

// Extractor is the document-to-text stage seam.
type Extractor interface {
	Extract(ctx context.Context, doc documentModel.RawDocument) (string, error)
}

// Materializer is the issue-creation stage seam.
type Materializer interface {
	CreateBatch(ctx context.Context, records []taskModel.TaskRecord, projectKey, epicKey string) taskModel.BatchResult
}

type Config struct {
	DefaultModel        string
	GenerationTimeout   time.Duration
	SummaryPreviewChars int
}

type Service struct {
	extractor    Extractor
	generator    llm.Provider
	parser       *tasks.Parser
	materializer Materializer
	records      store.RecordStore
	cfg          Config
	logger       *logger_i.Logger
}

func NewService(extractor Extractor, generator llm.Provider, parser *tasks.Parser, materializer Materializer, records store.RecordStore, cfg Config) *Service {
	return &Service{
		extractor:    extractor,
		generator:    generator,
		parser:       parser,
		materializer: materializer,
		records:      records,
		cfg:          cfg,
		logger:       logger_i.NewLogger("Pipeline"),
	}
}

// ProcessDocument runs the full document-understanding flow: extract text,
// prompt the model once, parse the generated summary. The first hard failure
// short-circuits into an error Response; empty extracted text is rejected
// before the generation call is made.
func (s *Service) ProcessDocument(ctx context.Context, doc documentModel.RawDocument, modelID string) Response {
	if modelID == "" {
		modelID = s.cfg.DefaultModel
	}
	started := time.Now()

	resp := s.process(ctx, doc, modelID)

	metrics.CountDocumentProcessed(resp.Status)
	metrics.CapturePipelineDuration(resp.Status, time.Since(started))
	return resp
}

func (s *Service) process(ctx context.Context, doc documentModel.RawDocument, modelID string) Response {
	log := s.logger.With("document", doc.Filename, "model", modelID)

	text, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		log.Error("Extraction failed", "error", err)
		return s.errorResponse(doc, modelID, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		log.Error("Extracted text is empty")
		return s.errorResponse(doc, modelID, "extracted text is empty")
	}
	log.Debug("Text extracted", "length", len(text))

	record := s.saveRecord(ctx, doc, modelID, store.RecordStatusProcessing, "")

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	genStart := time.Now()
	generated, err := s.generator.Generate(genCtx, modelID, buildPrompt(text))
	metrics.CaptureDependencyLatency("llm", time.Since(genStart))
	if err != nil {
		log.Error("Generation failed", "error", err)
		return s.errorResponse(doc, modelID, fmt.Sprintf("generation failed: %v", err))
	}

	summary := parseSummary(generated, s.cfg.SummaryPreviewChars, log)
	s.updateRecord(ctx, record, store.RecordStatusProcessed, summary.Summary)

	return Response{
		Status:       StatusSuccess,
		Model:        modelID,
		DocumentName: doc.Filename,
		Summary:      summary,
	}
}

// CreateTasksFromText parses generated text into task records and
// materializes them in the tracker.
func (s *Service) CreateTasksFromText(ctx context.Context, tasksText, projectKey, epicKey string) taskModel.BatchResult {
	records := s.parser.Parse(tasksText)
	s.logger.Info("Parsed tasks from text", "count", len(records), "project", projectKey)

	if len(records) == 0 {
		return taskModel.BatchResult{
			Status:       taskModel.BatchStatusError,
			CreatedTasks: []taskModel.CreatedIssue{},
			Errors:       []taskModel.FailedIssue{},
			ErrorMessage: "No tasks recognized in the text. Expected '### TASK-001: Title' blocks or a numbered list.",
		}
	}
	if s.materializer == nil {
		return taskModel.BatchResult{
			Status:       taskModel.BatchStatusError,
			CreatedTasks: []taskModel.CreatedIssue{},
			Errors:       []taskModel.FailedIssue{},
			ErrorMessage: "Tracker is not configured.",
		}
	}
	return s.materializer.CreateBatch(ctx, records, projectKey, epicKey)
}

// ProcessAndMaterialize chains document processing with task creation. The
// tracker outcome is merged under its own field so callers see both the
// generation summary and the batch result.
func (s *Service) ProcessAndMaterialize(ctx context.Context, doc documentModel.RawDocument, modelID, projectKey, epicKey string) Response {
	resp := s.ProcessDocument(ctx, doc, modelID)
	if resp.Failed() || resp.Summary == nil {
		return resp
	}

	tasksText := resp.Summary.Content
	if strings.TrimSpace(tasksText) == "" {
		tasksText = resp.Summary.Summary
	}
	if strings.TrimSpace(tasksText) == "" {
		s.logger.Warn("No task text in generation result, skipping materialization")
		return resp
	}

	batch := s.CreateTasksFromText(ctx, tasksText, projectKey, epicKey)
	resp.TrackerResult = &batch
	return resp
}

// parseSummary decodes the generated text as the structured summary object.
// Non-JSON output degrades to a raw-text summary instead of failing: the raw
// text becomes the content and a bounded preview becomes the summary.
func parseSummary(generated string, previewChars int, log *logger_i.Logger) *SummaryData {
	var parsed struct {
		Summary     string   `json:"summary"`
		Content     string   `json:"content"`
		Text        string   `json:"text"`
		KeyPoints   []string `json:"key_points"`
		ActionItems []string `json:"action_items"`
	}
	if err := json.Unmarshal([]byte(generated), &parsed); err == nil {
		content := parsed.Content
		if content == "" {
			content = parsed.Text
		}
		return &SummaryData{
			Summary:     parsed.Summary,
			Content:     content,
			KeyPoints:   orEmpty(parsed.KeyPoints),
			ActionItems: orEmpty(parsed.ActionItems),
		}
	}

	log.Warn("Generated text is not structured, falling back to raw summary")
	return &SummaryData{
		Summary:     preview(generated, previewChars),
		Content:     generated,
		KeyPoints:   []string{},
		ActionItems: []string{},
	}
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func (s *Service) errorResponse(doc documentModel.RawDocument, modelID, message string) Response {
	return Response{
		Status:       StatusError,
		ErrorMessage: message,
		Model:        modelID,
		DocumentName: doc.Filename,
	}
}

// record keeping is best effort, the pipeline result never depends on it
func (s *Service) saveRecord(ctx context.Context, doc documentModel.RawDocument, modelID string, status store.RecordStatus, summary string) store.ProcessingRecord {
	record := store.NewProcessingRecord(doc.Filename, modelID)
	record.Status = status
	record.Summary = summary
	if s.records == nil {
		return record
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		s.logger.Warn("Could not save processing record", "error", err)
	}
	return record
}

func (s *Service) updateRecord(ctx context.Context, record store.ProcessingRecord, status store.RecordStatus, summary string) {
	record.Status = status
	record.Summary = summary
	if s.records == nil {
		return
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		s.logger.Warn("Could not update processing record", "error", err)
	}
}
