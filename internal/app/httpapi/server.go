// Package httpapi exposes the gym services over REST.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/irongym/backend/internal/app/metrics"
	"github.com/irongym/backend/internal/app/services/attendances"
	"github.com/irongym/backend/internal/app/services/clients"
	"github.com/irongym/backend/internal/app/services/equipments"
	"github.com/irongym/backend/internal/app/services/groupclasses"
	"github.com/irongym/backend/internal/app/services/memberships"
	"github.com/irongym/backend/internal/app/services/payments"
	"github.com/irongym/backend/internal/app/services/routines"
	"github.com/irongym/backend/internal/app/services/supplements"
	"github.com/irongym/backend/internal/app/services/trainers"
	"github.com/irongym/backend/pkg/logger"
)

// Services bundles the domain services the API exposes.
type Services struct {
	Clients      *clients.Service
	Trainers     *trainers.Service
	Memberships  *memberships.Service
	Payments     *payments.Service
	Attendances  *attendances.Service
	GroupClasses *groupclasses.Service
	Equipment    *equipments.Service
	Routines     *routines.Service
	Supplements  *supplements.Service
}

// Server is the HTTP front end. It implements system.Service so the manager
// controls its lifecycle.
type Server struct {
	addr        string
	corsOrigins []string
	services    Services
	log         *logger.Logger
	handler     http.Handler
	httpSrv     *http.Server
}

// NewServer builds the server and its routing table.
func NewServer(addr string, svcs Services, corsOrigins []string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	s := &Server{addr: addr, corsOrigins: corsOrigins, services: svcs, log: log}
	s.handler = s.buildHandler()
	return s
}

// Handler returns the fully wired handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.handler }

// Name implements system.Service.
func (s *Server) Name() string { return "http-server" }

// Start begins serving in the background. Listen errors after startup are
// logged rather than returned.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		s.log.WithField("addr", s.addr).Info("http server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("http server failed")
		}
	}()
	return nil
}

// Stop drains in-flight requests until the context expires.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) buildHandler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Fixed sub-resources are registered before the {id} routes so mux does
	// not treat them as record identifiers.
	api.HandleFunc("/memberships/active", s.handleMembershipsActive).Methods(http.MethodGet)
	api.HandleFunc("/memberships/expired", s.handleMembershipsExpired).Methods(http.MethodGet)

	api.HandleFunc("/payments/methods", s.handlePaymentMethods).Methods(http.MethodGet)
	api.HandleFunc("/payments/report", s.handlePaymentReport).Methods(http.MethodGet)
	api.HandleFunc("/payments/report/export", s.handlePaymentReportExport).Methods(http.MethodGet)
	api.HandleFunc("/payments/by-client/{clientId}", s.handlePaymentsByClient).Methods(http.MethodGet)

	api.HandleFunc("/group-classes/{id}/clients/{clientId}", s.handleClassRegister).Methods(http.MethodPost)
	api.HandleFunc("/group-classes/{id}/clients/{clientId}", s.handleClassUnregister).Methods(http.MethodDelete)

	api.HandleFunc("/exercises", s.handleExercises).Methods(http.MethodGet)

	mountCRUD(s, api, "/clients", crud[clientRecord]{
		create: s.services.Clients.Create,
		update: s.services.Clients.Update,
		get:    s.services.Clients.Get,
		list:   s.services.Clients.List,
		remove: s.services.Clients.Delete,
	})
	mountCRUD(s, api, "/trainers", crud[trainerRecord]{
		create: s.services.Trainers.Create,
		update: s.services.Trainers.Update,
		get:    s.services.Trainers.Get,
		list:   s.services.Trainers.List,
		remove: s.services.Trainers.Delete,
	})
	mountCRUD(s, api, "/memberships", crud[membershipRecord]{
		create: s.services.Memberships.Create,
		update: s.services.Memberships.Update,
		get:    s.services.Memberships.Get,
		list:   s.services.Memberships.List,
		remove: s.services.Memberships.Delete,
	})
	mountCRUD(s, api, "/payments", crud[paymentRecord]{
		create: s.services.Payments.Create,
		update: s.services.Payments.Update,
		get:    s.services.Payments.Get,
		list:   s.services.Payments.List,
		remove: s.services.Payments.Delete,
	})
	mountCRUD(s, api, "/attendance", crud[attendanceRecord]{
		create: s.services.Attendances.Create,
		update: s.services.Attendances.Update,
		get:    s.services.Attendances.Get,
		list:   s.services.Attendances.List,
		remove: s.services.Attendances.Delete,
	})
	mountCRUD(s, api, "/group-classes", crud[groupClassRecord]{
		create: s.services.GroupClasses.Create,
		update: s.services.GroupClasses.Update,
		get:    s.services.GroupClasses.Get,
		list:   s.services.GroupClasses.List,
		remove: s.services.GroupClasses.Delete,
	})
	mountCRUD(s, api, "/equipment", crud[equipmentRecord]{
		create: s.services.Equipment.Create,
		update: s.services.Equipment.Update,
		get:    s.services.Equipment.Get,
		list:   s.services.Equipment.List,
		remove: s.services.Equipment.Delete,
	})
	mountCRUD(s, api, "/routines", crud[routineRecord]{
		create: s.services.Routines.Create,
		update: s.services.Routines.Update,
		get:    s.services.Routines.Get,
		list:   s.services.Routines.List,
		remove: s.services.Routines.Delete,
	})
	mountCRUD(s, api, "/supplements", crud[supplementRecord]{
		create: s.services.Supplements.Create,
		update: s.services.Supplements.Update,
		get:    s.services.Supplements.Get,
		list:   s.services.Supplements.List,
		remove: s.services.Supplements.Delete,
	})

	var h http.Handler = r
	h = s.withAccessLog(h)
	h = withRequestID(h)
	h = s.withCORS(h)
	h = metrics.InstrumentHandler(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
