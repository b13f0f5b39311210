package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bubble/internal/app"
	"bubble/internal/models"
	"bubble/internal/worker"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the background job worker",
	Long:  `Starts the asynq worker process that composes study suggestions and briefs enqueued with --async.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get application context: %w", err)
		}

		if err := runWorker(appInstance); err != nil {
			log.Errorf("Worker exited with error: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

// runWorker starts the asynq server and blocks until SIGINT or SIGTERM.
func runWorker(appInstance *app.App) error {
	cfg := appInstance.Config
	if cfg.Redis.Address == "" {
		return fmt.Errorf("worker requires redis.address: %w", models.ErrNotConfigured)
	}

	srv := worker.NewServer(cfg)
	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, appInstance.SuggestionService)

	log.Infof("Starting asynq worker server (concurrency: %d, queues: %v)...", cfg.Worker.Concurrency, cfg.Worker.Queues)
	if err := srv.Start(mux); err != nil {
		return fmt.Errorf("failed to start asynq server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Info("Shutdown signal received. Initiating graceful shutdown...")
	srv.Stop()
	srv.Shutdown()

	log.Info("Worker shutdown complete.")
	return nil
}
