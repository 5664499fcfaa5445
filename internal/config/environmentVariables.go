package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//pipeline knobs - authoritative values, injected through constructors,
	//never read from ambient state inside the core packages
	MaxChunkSeconds     = 50
	ChunkRequestDelay   = 1 * time.Second
	GenerationTimeout   = 120 * time.Second
	MaxTasksPerBatch    = 5
	TitleMaxWords       = 5
	TitleMaxChars       = 100
	SummaryPreviewChars = 500

	//upload limit, multipart form memory bound
	MaxUploadSize = 32 << 20 //32mb

	//pdf page extraction guard
	PageExtractTimeout = 10 * time.Second

	//generation defaults mirrored by the ollama provider
	ModelTemperature = 0.3
	ModelTopP        = 0.9
	ModelNumPredict  = 2048

	DefaultModel      = "yandex-gpt"
	GeminiModelPrefix = "gemini"
	SpeechLanguage    = "ru"
	OllamaDefaultHost = "http://localhost:11434"

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 150 * time.Second //must outlast GenerationTimeout
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DB we can use
	RedisRecordStore = 0

	RedisRecordStoreTTL = 24 * time.Hour
)

// Credentials for the external collaborators. Loaded once in main after godotenv,
// every component receives what it needs through its constructor.
type Credentials struct {
	JiraServerURL string
	JiraUsername  string
	JiraAPIToken  string
	OpenAIKey     string
	GeminiKey     string
	OllamaHost    string
	AuthToken     string
}

func LoadCredentials() Credentials {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = OllamaDefaultHost
	}
	return Credentials{
		JiraServerURL: os.Getenv("JIRA_SERVER_URL"),
		JiraUsername:  os.Getenv("JIRA_USERNAME"),
		JiraAPIToken:  os.Getenv("JIRA_API_TOKEN"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OllamaHost:    host,
		AuthToken:     os.Getenv("API_AUTH_TOKEN"),
	}
}

func (c Credentials) JiraConfigured() bool {
	return c.JiraServerURL != "" && c.JiraUsername != "" && c.JiraAPIToken != ""
}
