// Package worker runs background jobs through a Redis list: producers LPush,
// a fixed pool of goroutines BRPOPs and dispatches by job type.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const queueKey = "agronat:jobs"

// Job is the wire format of a queued task.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Handler processes one job payload.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Dispatcher enqueues jobs for the pool.
type Dispatcher struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewDispatcher(rdb *redis.Client, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{rdb: rdb, log: log}
}

func (d *Dispatcher) Enqueue(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := d.rdb.LPush(ctx, queueKey, data).Err(); err != nil {
		return err
	}
	d.log.Debug().Str("type", job.Type).Msg("job encolado")
	return nil
}

// Pool consumes the queue with a fixed number of workers.
type Pool struct {
	rdb      *redis.Client
	size     int
	handlers map[string]Handler
	log      zerolog.Logger
	wg       sync.WaitGroup
}

func NewPool(rdb *redis.Client, size int, log zerolog.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{rdb: rdb, size: size, handlers: make(map[string]Handler), log: log}
}

// Register binds a handler to a job type. Must be called before Start.
func (p *Pool) Register(jobType string, h Handler) {
	p.handlers[jobType] = h
}

// Start launches the workers. They stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	p.log.Info().Int("workers", p.size).Msg("worker pool iniciado")
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.rdb.BRPop(ctx, 5*time.Second, queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			p.log.Warn().Err(err).Int("worker", id).Msg("error leyendo cola")
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			p.log.Warn().Err(err).Msg("job ilegible descartado")
			continue
		}
		handler, ok := p.handlers[job.Type]
		if !ok {
			p.log.Warn().Str("type", job.Type).Msg("job sin handler descartado")
			continue
		}
		if err := handler(ctx, job.Payload); err != nil {
			p.log.Error().Err(err).Str("type", job.Type).Int("worker", id).Msg("job fallido")
		}
	}
}
