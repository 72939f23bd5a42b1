// Package jobs holds the background jobs run alongside the HTTP server.
package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/irongym/backend/internal/app/services/memberships"
	"github.com/irongym/backend/pkg/logger"
)

// ExpirySweep periodically scans memberships and reports the ones past their
// end date, so the front desk can follow up on renewals.
type ExpirySweep struct {
	memberships *memberships.Service
	schedule    string
	cron        *cron.Cron
	log         *logger.Logger
}

// NewExpirySweep builds the sweep job with a standard 5-field cron schedule.
func NewExpirySweep(svc *memberships.Service, schedule string, log *logger.Logger) *ExpirySweep {
	if log == nil {
		log = logger.NewDefault("expiry-sweep")
	}
	return &ExpirySweep{memberships: svc, schedule: schedule, log: log}
}

// Name implements system.Service.
func (j *ExpirySweep) Name() string { return "membership-expiry-sweep" }

// Start validates the schedule, runs one sweep immediately, and schedules the
// recurring run.
func (j *ExpirySweep) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(j.schedule, func() { j.sweep(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}
	j.cron = c
	j.sweep(ctx)
	c.Start()
	j.log.WithField("schedule", j.schedule).Info("expiry sweep started")
	return nil
}

// Stop halts the scheduler, waiting for an in-flight sweep to finish unless
// the context expires first.
func (j *ExpirySweep) Stop(ctx context.Context) error {
	if j.cron == nil {
		return nil
	}
	select {
	case <-j.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *ExpirySweep) sweep(ctx context.Context) {
	expired, err := j.memberships.ListExpired(ctx)
	if err != nil {
		j.log.WithError(err).Error("expiry sweep failed")
		return
	}
	if len(expired) == 0 {
		j.log.Debug("expiry sweep found no expired memberships")
		return
	}
	for _, m := range expired {
		j.log.WithField("membership_id", m.ID).
			WithField("client_id", m.ClientID).
			WithField("end_date", m.EndDate.String()).
			Warn("membership expired")
	}
	j.log.WithField("count", len(expired)).Info("expiry sweep finished")
}
