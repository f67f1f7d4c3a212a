// Package scheduler fires the recurring background jobs.
package scheduler

import (
	"context"
	"time"

	"agronat/internal/worker"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron       *cron.Cron
	dispatcher *worker.Dispatcher
	log        zerolog.Logger
}

func New(dispatcher *worker.Dispatcher, log zerolog.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), dispatcher: dispatcher, log: log}
}

// Start registers the monthly sales report job with the given cron spec and
// begins scheduling.
func (s *Scheduler) Start(reportSpec string) error {
	_, err := s.cron.AddFunc(reportSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.dispatcher.Enqueue(ctx, worker.Job{Type: worker.JobReporteMensual}); err != nil {
			s.log.Error().Err(err).Msg("no se pudo encolar el reporte mensual")
			return
		}
		s.log.Info().Msg("reporte mensual encolado")
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", reportSpec).Msg("scheduler iniciado")
	return nil
}

// Stop halts scheduling and waits for any running trigger to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
