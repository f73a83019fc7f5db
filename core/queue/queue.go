package queue

import (
	"context"
	"encoding/json"

	"delivery-availability/core/logger"

	"github.com/hibiken/asynq"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func redisOpt(cfg RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

var clientInstance *Client

func InitClient(cfg RedisConfig) *Client {
	clientInstance = &Client{client: asynq.NewClient(redisOpt(cfg))}
	return clientInstance
}

func GetClient() *Client {
	return clientInstance
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), opts...)
	if err != nil {
		logger.Error("Queue:Enqueue:Error", "task_type", taskType, "error", err)
		return err
	}
	logger.Info("Queue:Enqueue", "task_type", taskType, "task_id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// PeriodicTask is a cron-scheduled background task.
type PeriodicTask struct {
	Cronspec string
	Type     string
	Payload  any
}

// Worker runs the task server and the periodic scheduler.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewWorker(cfg RedisConfig) *Worker {
	opt := redisOpt(cfg)
	return &Worker{
		server: asynq.NewServer(opt, asynq.Config{
			Concurrency: 5,
		}),
		scheduler: asynq.NewScheduler(opt, nil),
		mux:       asynq.NewServeMux(),
	}
}

func (w *Worker) Handle(taskType string, handler asynq.HandlerFunc) {
	w.mux.HandleFunc(taskType, handler)
}

func (w *Worker) Schedule(task PeriodicTask) error {
	data, err := json.Marshal(task.Payload)
	if err != nil {
		return err
	}
	entryID, err := w.scheduler.Register(task.Cronspec, asynq.NewTask(task.Type, data))
	if err != nil {
		return err
	}
	logger.Info("Queue:Schedule", "task_type", task.Type, "cronspec", task.Cronspec, "entry_id", entryID)
	return nil
}

// Start runs the server and scheduler on background goroutines.
func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return err
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return err
	}
	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}
