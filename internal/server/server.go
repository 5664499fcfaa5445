package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nkondratev/doctasks/internal/adapter/utils"
	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/handlers"
	"github.com/nkondratev/doctasks/internal/middleware"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

var logSV = logger_i.NewLogger("Server")

// CreateServer registers the routes on the shared router and returns the
// configured http server. WriteTimeout must stay above the generation
// timeout or long documents get cut off mid-response.
func CreateServer() *http.Server {
	router := utils.GetRouter().Router

	router.Get("/health", handlers.HealthHandler)

	router.Post("/process", middleware.Wrap(
		handlers.ProcessDocumentHandler,
		middleware.InjectTrace,
		middleware.Authenticate,
		middleware.RateLimit,
	))

	router.Post("/process/auto", middleware.Wrap(
		handlers.ProcessAndCreateTasksHandler,
		middleware.InjectTrace,
		middleware.Authenticate,
		middleware.RateLimit,
	))

	router.Post("/tasks", middleware.Wrap(
		handlers.CreateTasksHandler,
		middleware.InjectTrace,
		middleware.Authenticate,
		middleware.RateLimit,
	))

	return &http.Server{
		Addr:         config.ServerListenAddr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
}

type ShutdownParams struct {
	Server     *http.Server
	MainCancel context.CancelFunc
}

// ShutDownHandler blocks until SIGINT/SIGTERM, then drains in-flight
// requests and cancels the root context so background stores close.
func ShutDownHandler(params ShutdownParams) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logSV.Info("Shutdown signal received, draining requests")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	if err := params.Server.Shutdown(ctx); err != nil {
		logSV.Error("Server shutdown error", "error", err)
	}

	params.MainCancel()
	logSV.Info("Server stopped")
}
