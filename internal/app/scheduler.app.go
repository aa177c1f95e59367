package app

import (
	"context"
	"fmt"
	"time"

	"sureshot/internal/logger"
	"sureshot/internal/service"

	"github.com/go-co-op/gocron"
)

// SchedulerHandler drives the reconciler and the scanner on independent
// cadences. Each job runs in singleton mode: if a cycle is still in flight
// when the next firing is due, the firing is skipped rather than stacked.
type SchedulerHandler struct {
	HoldingsReconciler service.HoldingsReconciler
	CandidateScanner   service.CandidateScanner

	ReconcileInterval time.Duration
	ScanInterval      time.Duration
	// ScanDailyAt switches the scan trigger from a fixed interval to a
	// calendar time-of-day ("HH:MM") when non-empty.
	ScanDailyAt string
	Timezone    string
}

// Start registers both triggers and starts the scheduler asynchronously.
func (h SchedulerHandler) Start() (*gocron.Scheduler, error) {
	tz, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load scheduler timezone %q: %w", h.Timezone, err)
	}

	log := logger.New()
	ctx := logger.NewContext(context.Background(), log)

	scheduler := gocron.NewScheduler(tz)

	_, err = scheduler.Every(int(h.ReconcileInterval.Seconds())).Seconds().
		SingletonMode().
		Do(func() {
			h.HoldingsReconciler.Reconcile(ctx)
		})
	if err != nil {
		return nil, fmt.Errorf("schedule holdings reconciliation: %w", err)
	}

	scan := func() {
		h.CandidateScanner.Scan(ctx)
	}
	if h.ScanDailyAt != "" {
		_, err = scheduler.Every(1).Day().At(h.ScanDailyAt).SingletonMode().Do(scan)
	} else {
		_, err = scheduler.Every(int(h.ScanInterval.Seconds())).Seconds().SingletonMode().Do(scan)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule candidate scan: %w", err)
	}

	scheduler.StartAsync()
	log.Infow("scheduler started",
		"reconcileInterval", h.ReconcileInterval.String(),
		"scanInterval", h.ScanInterval.String(),
		"scanDailyAt", h.ScanDailyAt)
	return scheduler, nil
}
