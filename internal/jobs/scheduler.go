package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"opatija/backend/internal/queue"
)

// Scheduler enqueues the nightly flight-expiry sweep.
type Scheduler struct {
	cron     *cron.Cron
	producer *queue.Producer
	log      zerolog.Logger
}

func NewScheduler(producer *queue.Producer, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:     c,
		producer: producer,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if s.producer == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 0 * * *", s.enqueueFlightExpiry); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running enqueue to finish, up to five seconds.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) enqueueFlightExpiry() {
	err := s.producer.Enqueue(context.Background(), queue.TaskPayload{
		Type: queue.TaskFlightsExpire,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("enqueue flight expiry failed")
	}
}
