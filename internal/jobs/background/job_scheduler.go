package background

import (
	"context"
	"log"
	"time"

	"rentmart/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs periodic maintenance jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	sessions  repositories.SessionRepository
}

// NewJobScheduler creates a scheduler with the session sweep registered.
func NewJobScheduler(sessions repositories.SessionRepository) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		sessions:  sessions,
	}

	// Expired sessions never match a lookup; the sweep only keeps the
	// table from growing without bound.
	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(js.sweepExpiredSessions, context.Background()),
		gocron.WithName("session-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

// Start starts the job scheduler.
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler.
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) sweepExpiredSessions(ctx context.Context) {
	deleted, err := js.sessions.DeleteExpired(ctx)
	if err != nil {
		log.Printf("Session sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Session sweep removed %d expired sessions", deleted)
	}
}
