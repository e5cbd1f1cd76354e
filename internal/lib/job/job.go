// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: the HTTP layer enqueues tasks through
// asynq.Client and a worker server in the same process consumes them. The
// only workers today send transactional email (welcome, payment receipt),
// so a failed email never delays or fails the originating request.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/mariaparlour/backend/internal/config"
	"github.com/mariaparlour/backend/internal/lib/email"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// emailClient is used by the email task handlers.
	emailClient *email.Client
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights give receipt emails priority over the rest: out of 10
// concurrent workers roughly 6 serve critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers constructs the dependencies the task handlers need.
// Must be called before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// Start registers task handlers and starts the worker server.
// asynq's Start is non-blocking; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskReceipt, j.handleReceiptEmailTask)

	j.logger.Info().Msg("starting background job workers")

	return j.server.Start(mux)
}

// Stop shuts down the worker server and the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job workers")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
