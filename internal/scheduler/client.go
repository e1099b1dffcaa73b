package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"gym_backoffice_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	queue  string
}

// SweepEnqueuer queues an out-of-schedule renewal sweep.
type SweepEnqueuer interface {
	EnqueueRenewalSweep(ctx context.Context, payload RenewalSweepPayload) error
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	opt, queue, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) EnqueueRenewalSweep(ctx context.Context, payload RenewalSweepPayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewRenewalSweepTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue), asynq.Unique(time.Minute))
	return err
}

// NewPeriodic returns an asynq scheduler that enqueues the renewal sweep on
// cronSpec, evaluated in loc.
func NewPeriodic(cfg config.SchedulerConfig, cronSpec string, loc *time.Location) (*asynq.Scheduler, error) {
	opt, queue, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	task, err := NewRenewalSweepTask(RenewalSweepPayload{})
	if err != nil {
		return nil, err
	}

	periodic := asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: loc})
	if _, err := periodic.Register(cronSpec, task, asynq.Queue(queue)); err != nil {
		return nil, fmt.Errorf("register renewal sweep: %w", err)
	}
	return periodic, nil
}

func connection(cfg config.SchedulerConfig) (asynq.RedisClientOpt, string, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return asynq.RedisClientOpt{}, "", fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return asynq.RedisClientOpt{}, "", err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}
	return opt, queue, nil
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
