// Package app wires the stores, services, background jobs and HTTP server
// into one runnable application.
package app

import (
	"context"
	"fmt"

	"github.com/irongym/backend/internal/app/httpapi"
	"github.com/irongym/backend/internal/app/jobs"
	"github.com/irongym/backend/internal/app/services/attendances"
	"github.com/irongym/backend/internal/app/services/clients"
	"github.com/irongym/backend/internal/app/services/equipments"
	"github.com/irongym/backend/internal/app/services/groupclasses"
	"github.com/irongym/backend/internal/app/services/memberships"
	"github.com/irongym/backend/internal/app/services/payments"
	"github.com/irongym/backend/internal/app/services/routines"
	"github.com/irongym/backend/internal/app/services/supplements"
	"github.com/irongym/backend/internal/app/services/trainers"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/internal/app/storage/csvstore"
	"github.com/irongym/backend/internal/app/system"
	"github.com/irongym/backend/internal/config"
	"github.com/irongym/backend/pkg/logger"
)

// Stores lets callers substitute individual stores, mainly in tests. Any nil
// field falls back to the shared CSV store for the configured data directory.
type Stores struct {
	Clients      storage.ClientStore
	Trainers     storage.TrainerStore
	Memberships  storage.MembershipStore
	Payments     storage.PaymentStore
	Attendance   storage.AttendanceStore
	GroupClasses storage.GroupClassStore
	Equipment    storage.EquipmentStore
	Routines     storage.RoutineStore
	Exercises    storage.ExerciseStore
	Supplements  storage.SupplementStore
}

func (s *Stores) anyNil() bool {
	return s.Clients == nil || s.Trainers == nil || s.Memberships == nil ||
		s.Payments == nil || s.Attendance == nil || s.GroupClasses == nil ||
		s.Equipment == nil || s.Routines == nil || s.Exercises == nil ||
		s.Supplements == nil
}

func (s *Stores) fillDefaults(def *csvstore.Store) {
	if s.Clients == nil {
		s.Clients = def
	}
	if s.Trainers == nil {
		s.Trainers = def
	}
	if s.Memberships == nil {
		s.Memberships = def
	}
	if s.Payments == nil {
		s.Payments = def
	}
	if s.Attendance == nil {
		s.Attendance = def
	}
	if s.GroupClasses == nil {
		s.GroupClasses = def
	}
	if s.Equipment == nil {
		s.Equipment = def
	}
	if s.Routines == nil {
		s.Routines = def
	}
	if s.Exercises == nil {
		s.Exercises = def
	}
	if s.Supplements == nil {
		s.Supplements = def
	}
}

// Application owns the full service graph and its lifecycle.
type Application struct {
	cfg      config.Config
	log      *logger.Logger
	manager  *system.Manager
	services httpapi.Services
	server   *httpapi.Server
}

// New builds the application from configuration. The CSV data files are
// loaded eagerly so startup fails fast on an unreadable data directory.
func New(cfg config.Config, stores Stores, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}

	if stores.anyNil() {
		def, err := csvstore.New(cfg.DataDir, log.WithField("subsystem", "csvstore"))
		if err != nil {
			return nil, fmt.Errorf("open data directory %s: %w", cfg.DataDir, err)
		}
		stores.fillDefaults(def)
	}

	clientSvc := clients.New(stores.Clients, log.WithField("subsystem", "clients"))
	trainerSvc := trainers.New(stores.Trainers, log.WithField("subsystem", "trainers"))
	membershipSvc := memberships.New(stores.Clients, stores.Memberships, log.WithField("subsystem", "memberships"))
	paymentSvc := payments.New(stores.Clients, stores.Payments, log.WithField("subsystem", "payments"))
	groupClassSvc := groupclasses.New(stores.Clients, stores.Trainers, stores.GroupClasses, log.WithField("subsystem", "groupclasses"))
	attendanceSvc := attendances.New(stores.Clients, stores.GroupClasses, stores.Attendance, log.WithField("subsystem", "attendances"))
	equipmentSvc := equipments.New(stores.Equipment, log.WithField("subsystem", "equipments"))
	routineSvc := routines.New(stores.Routines, stores.Exercises, log.WithField("subsystem", "routines"))
	supplementSvc := supplements.New(stores.Supplements, log.WithField("subsystem", "supplements"))

	services := httpapi.Services{
		Clients:      clientSvc,
		Trainers:     trainerSvc,
		Memberships:  membershipSvc,
		Payments:     paymentSvc,
		Attendances:  attendanceSvc,
		GroupClasses: groupClassSvc,
		Equipment:    equipmentSvc,
		Routines:     routineSvc,
		Supplements:  supplementSvc,
	}

	server := httpapi.NewServer(cfg.ListenAddr, services, cfg.CORSAllowedOrigins, log.WithField("subsystem", "httpapi"))

	manager := system.NewManager()
	if err := manager.Register(server); err != nil {
		return nil, err
	}
	if cfg.ExpirySchedule != "" {
		sweep := jobs.NewExpirySweep(membershipSvc, cfg.ExpirySchedule, log.WithField("subsystem", "expiry-sweep"))
		if err := manager.Register(sweep); err != nil {
			return nil, err
		}
	}

	return &Application{
		cfg:      cfg,
		log:      log,
		manager:  manager,
		services: services,
		server:   server,
	}, nil
}

// Services exposes the wired domain services.
func (a *Application) Services() httpapi.Services { return a.services }

// Server exposes the HTTP server, mainly for tests.
func (a *Application) Server() *httpapi.Server { return a.server }

// Start launches the HTTP server and the background jobs.
func (a *Application) Start(ctx context.Context) error {
	if err := a.manager.Start(ctx); err != nil {
		return err
	}
	a.log.WithField("addr", a.cfg.ListenAddr).Info("application started")
	return nil
}

// Stop shuts everything down in reverse start order.
func (a *Application) Stop(ctx context.Context) error {
	err := a.manager.Stop(ctx)
	if err == nil {
		a.log.Info("application stopped")
	}
	return err
}
