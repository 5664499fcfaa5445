package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/nkondratev/doctasks/internal/adapter"
	"github.com/nkondratev/doctasks/internal/api"
	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/domain/documentModel"
	"github.com/nkondratev/doctasks/internal/pipeline"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

var logPH *logger_i.Logger
var pipelineService *pipeline.Service
var initOnce sync.Once

// InitPipelineHandlers wires the orchestrator into the package once at startup.
func InitPipelineHandlers(service *pipeline.Service) {
	initOnce.Do(func() {
		pipelineService = service
		logPH = logger_i.NewLogger("Pipeline Handler")
	})
}

// ProcessDocumentHandler godoc
// @Summary      Process a document into a structured summary
// @Description  Extracts text from the uploaded file (pdf, docx, image, audio or plain text), runs it through the model and returns summary, content, key points and action items.
// @Tags         pipeline
// @Accept       multipart/form-data
// @Produce      json
// @Param        document       formData  file    true   "document to process"
// @Param        model          formData  string  false  "model identifier, defaults to the configured model"
// @Param        document_name  formData  string  false  "display name override"
// @Success      200  {object}  api.PipelineResponse
// @Failure      400  {object}  api.PipelineResponse
// @Router       /process [post]
func ProcessDocumentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !validateContext(ctx) {
		WriteErrorResponse(w, http.StatusRequestTimeout, "", "request cancelled")
		return
	}

	doc, modelID, ok := readDocumentForm(w, r)
	if !ok {
		return
	}

	resp := pipelineService.ProcessDocument(ctx, doc, modelID)
	writeJsonResponse(w, http.StatusOK, adapter.ToPipelineResponse(resp))
}

// ProcessAndCreateTasksHandler godoc
// @Summary      Process a document and create tracker tasks from it
// @Description  Runs the document pipeline, then parses the generated content into tasks and creates them in the tracker project.
// @Tags         pipeline
// @Accept       multipart/form-data
// @Produce      json
// @Param        document     formData  file    true   "document to process"
// @Param        model        formData  string  false  "model identifier"
// @Param        project_key  formData  string  true   "tracker project key"
// @Param        epic_key     formData  string  false  "epic to link created tasks under"
// @Success      200  {object}  api.PipelineResponse
// @Failure      400  {object}  api.PipelineResponse
// @Router       /process/auto [post]
func ProcessAndCreateTasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !validateContext(ctx) {
		WriteErrorResponse(w, http.StatusRequestTimeout, "", "request cancelled")
		return
	}

	doc, modelID, ok := readDocumentForm(w, r)
	if !ok {
		return
	}

	projectKey := strings.TrimSpace(r.FormValue("project_key"))
	if projectKey == "" {
		WriteErrorResponse(w, http.StatusBadRequest, doc.Filename, "project_key is required")
		return
	}
	epicKey := strings.TrimSpace(r.FormValue("epic_key"))

	resp := pipelineService.ProcessAndMaterialize(ctx, doc, modelID, projectKey, epicKey)
	writeJsonResponse(w, http.StatusOK, adapter.ToPipelineResponse(resp))
}

// CreateTasksHandler godoc
// @Summary      Create tracker tasks from prepared text
// @Description  Parses '### TASK-001: Title' blocks (or a numbered list) out of the text and creates the tasks in the tracker. Failures are isolated per task.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request  body      api.CreateTasksRequest  true  "tasks text and target project"
// @Success      200  {object}  api.TaskBatchResponse
// @Failure      400  {object}  api.PipelineResponse
// @Router       /tasks [post]
func CreateTasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !validateContext(ctx) {
		WriteErrorResponse(w, http.StatusRequestTimeout, "", "request cancelled")
		return
	}

	var req api.CreateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logPH.Warn("Malformed create-tasks request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.TasksText) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "tasks_text is required")
		return
	}
	if strings.TrimSpace(req.ProjectKey) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "project_key is required")
		return
	}

	batch := pipelineService.CreateTasksFromText(ctx, req.TasksText, req.ProjectKey, req.EpicKey)
	writeJsonResponse(w, http.StatusOK, adapter.ToTaskBatchResponse(batch))
}

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readDocumentForm parses the multipart upload shared by the processing
// endpoints. It writes the error response itself so handlers can just bail.
func readDocumentForm(w http.ResponseWriter, r *http.Request) (documentModel.RawDocument, string, bool) {
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		logPH.Warn("Could not parse multipart form", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "expected multipart form with a 'document' file")
		return documentModel.RawDocument{}, "", false
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "missing 'document' file field")
		return documentModel.RawDocument{}, "", false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logPH.Error("Could not read uploaded file", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, header.Filename, "could not read uploaded file")
		return documentModel.RawDocument{}, "", false
	}
	if len(content) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, header.Filename, "uploaded file is empty")
		return documentModel.RawDocument{}, "", false
	}

	name := strings.TrimSpace(r.FormValue("document_name"))
	if name == "" {
		name = header.Filename
	}

	doc := documentModel.RawDocument{
		Content:   content,
		MediaType: documentModel.FromUpload(header.Header.Get("Content-Type"), header.Filename),
		Filename:  name,
	}
	return doc, strings.TrimSpace(r.FormValue("model")), true
}
