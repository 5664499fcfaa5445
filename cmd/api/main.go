package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/option"

	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/customHttpClient"
	"github.com/nkondratev/doctasks/internal/data/store"
	"github.com/nkondratev/doctasks/internal/extract"
	"github.com/nkondratev/doctasks/internal/extract/audio"
	"github.com/nkondratev/doctasks/internal/handlers"
	"github.com/nkondratev/doctasks/internal/llm"
	"github.com/nkondratev/doctasks/internal/llm/gemini"
	"github.com/nkondratev/doctasks/internal/llm/ollamaLLM"
	"github.com/nkondratev/doctasks/internal/middleware"
	"github.com/nkondratev/doctasks/internal/pipeline"
	"github.com/nkondratev/doctasks/internal/server"
	"github.com/nkondratev/doctasks/internal/speech/whisper"
	"github.com/nkondratev/doctasks/internal/tasks"
	"github.com/nkondratev/doctasks/internal/tracker/jiraTracker"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

// @title           doctasks API
// @version         1.0
// @description     Turns meeting recordings and documents into structured summaries and tracker tasks.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger_i.Init()
	log := logger_i.NewLogger("Main")

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file, reading environment from the runtime")
	}

	creds := config.LoadCredentials()
	middleware.SetAuthToken(creds.AuthToken)
	if creds.AuthToken == "" {
		log.Warn("API_AUTH_TOKEN not set, authentication disabled")
	}

	mainCtx, mainCancel := context.WithCancel(context.Background())
	defer mainCancel()

	var records store.RecordStore
	if redisRecords := store.GetRedisRecordStore(mainCtx); redisRecords != nil {
		records = redisRecords
	} else {
		log.Warn("Redis unavailable, keeping processing records in memory")
		records = store.InitInMemoryRecordStore()
	}

	httpClient := customHttpClient.GetPooledClient()

	ollamaProvider, err := ollamaLLM.NewProvider(creds.OllamaHost, httpClient)
	if err != nil {
		log.Error("Could not create model client", "host", creds.OllamaHost, "error", err)
		os.Exit(1)
	}
	registry := llm.NewRegistry(ollamaProvider)
	if creds.GeminiKey != "" {
		if provider := gemini.NewProvider(mainCtx, creds.GeminiKey); provider != nil {
			registry.Register(config.GeminiModelPrefix, provider)
		}
	}

	var transcriber extract.AudioTranscriber
	if creds.OpenAIKey != "" {
		recognizer := whisper.NewRecognizer(creds.OpenAIKey, config.SpeechLanguage, option.WithHTTPClient(httpClient))
		transcriber = audio.NewTranscriber(audio.NewFFmpegProcessor(), recognizer, config.MaxChunkSeconds, config.ChunkRequestDelay)
	} else {
		log.Warn("OPENAI_API_KEY not set, audio uploads will be rejected")
	}

	extractor := extract.NewExtractor(transcriber, extract.NewTesseractReader())

	var materializer pipeline.Materializer
	if creds.JiraConfigured() {
		trackerClient, err := jiraTracker.NewClient(creds.JiraServerURL, creds.JiraUsername, creds.JiraAPIToken, customHttpClient.GetPooledTransport())
		if err != nil {
			log.Error("Could not create tracker client", "error", err)
			os.Exit(1)
		}
		materializer = tasks.NewMaterializer(trackerClient, config.MaxTasksPerBatch)
	} else {
		log.Warn("Jira credentials not set, task creation disabled")
	}

	service := pipeline.NewService(
		extractor,
		registry,
		tasks.NewParser(config.TitleMaxWords, config.TitleMaxChars),
		materializer,
		records,
		pipeline.Config{
			DefaultModel:        config.DefaultModel,
			GenerationTimeout:   config.GenerationTimeout,
			SummaryPreviewChars: config.SummaryPreviewChars,
		},
	)
	handlers.InitPipelineHandlers(service)

	srv := server.CreateServer()
	go server.ShutDownHandler(server.ShutdownParams{Server: srv, MainCancel: mainCancel})

	log.Info("Server starting", "addr", config.ServerListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Info("Server closed", "reason", err)
	}

	<-mainCtx.Done()
}
