// Package scheduler runs the background maintenance jobs: the daily stay completion
// and the periodic availability reconciliation.
package scheduler

import (
	"context"
	"log"
	"time"

	"carbon_zero/inventory"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const reconcileSchedule = "*/5 * * * *"

// StayCompleter is the part of the booking service the daily job needs.
type StayCompleter interface {
	CompleteStays(ctx context.Context, today time.Time) (int, error)
}

type Scheduler struct {
	daily     gocron.Scheduler
	reconcile *cron.Cron
}

// Start registers both jobs and starts them.
func Start(db *gorm.DB, stays StayCompleter, loc *time.Location) (*Scheduler, error) {
	daily, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	_, err = daily.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(CompleteStays, stays, loc),
	)
	if err != nil {
		return nil, err
	}

	reconcile := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := reconcile.AddFunc(reconcileSchedule, func() { ReconcileAvailability(db) }); err != nil {
		daily.Shutdown()
		return nil, err
	}

	daily.Start()
	reconcile.Start()
	log.Println("Scheduler started (stay completion 00:05, reconciliation every 5 minutes)")

	return &Scheduler{daily: daily, reconcile: reconcile}, nil
}

func (s *Scheduler) Stop() {
	if err := s.daily.Shutdown(); err != nil {
		log.Printf("stop daily scheduler: %v", err)
	}
	<-s.reconcile.Stop().Done()
}

func CompleteStays(stays StayCompleter, loc *time.Location) {
	log.Println("[CRON] CompleteStays triggered")
	n, err := stays.CompleteStays(context.Background(), time.Now().In(loc))
	if err != nil {
		log.Printf("complete stays stopped after %d bookings: %v", n, err)
	}
}

func ReconcileAvailability(db *gorm.DB) {
	fixed, err := inventory.Reconcile(context.Background(), db)
	for _, d := range fixed {
		log.Printf("[CRON] %s %d availability %d -> %d (capacity %d, active %d)",
			d.Table, d.ID, d.Availability, d.Expected(), d.Capacity, d.Active)
	}
	if err != nil {
		log.Printf("reconcile availability: %v", err)
	}
}
