package jobs

import (
	"context"
	"io"
	"testing"

	"github.com/irongym/backend/internal/app/services/memberships"
	"github.com/irongym/backend/internal/app/storage/csvstore"
	"github.com/irongym/backend/pkg/logger"
)

func newMembershipService(t *testing.T) *memberships.Service {
	t.Helper()
	log := logger.NewDefault("jobs-test")
	log.SetOutput(io.Discard)
	store, err := csvstore.New(t.TempDir(), log)
	if err != nil {
		t.Fatalf("csvstore.New: %v", err)
	}
	return memberships.New(store, store, log)
}

func TestExpirySweepRejectsBadSchedule(t *testing.T) {
	log := logger.NewDefault("jobs-test")
	log.SetOutput(io.Discard)
	sweep := NewExpirySweep(newMembershipService(t), "not a cron line", log)
	if err := sweep.Start(context.Background()); err == nil {
		t.Fatal("invalid schedule accepted")
	}
}

func TestExpirySweepStartStop(t *testing.T) {
	log := logger.NewDefault("jobs-test")
	log.SetOutput(io.Discard)
	sweep := NewExpirySweep(newMembershipService(t), "0 6 * * *", log)

	ctx := context.Background()
	if err := sweep.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := sweep.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestExpirySweepStopWithoutStart(t *testing.T) {
	sweep := NewExpirySweep(newMembershipService(t), "0 6 * * *", nil)
	if err := sweep.Stop(context.Background()); err != nil {
		t.Fatalf("stop before start: %v", err)
	}
}
