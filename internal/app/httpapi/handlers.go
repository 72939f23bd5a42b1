package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/attendance"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/domain/equipment"
	"github.com/irongym/backend/internal/app/domain/groupclass"
	"github.com/irongym/backend/internal/app/domain/membership"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/domain/routine"
	"github.com/irongym/backend/internal/app/domain/supplement"
	"github.com/irongym/backend/internal/app/domain/trainer"
)

type (
	clientRecord     = client.Client
	trainerRecord    = trainer.Trainer
	membershipRecord = membership.Membership
	paymentRecord    = payment.Payment
	attendanceRecord = attendance.Attendance
	groupClassRecord = groupclass.GroupClass
	equipmentRecord  = equipment.Equipment
	routineRecord    = routine.Routine
	supplementRecord = supplement.Supplement
)

// crud bundles the five operations every entity service exposes, so the
// routing for all nine entities stays in one place.
type crud[T any] struct {
	create func(context.Context, T) (T, error)
	update func(context.Context, string, T) (T, error)
	get    func(context.Context, string) (T, error)
	list   func(context.Context) ([]T, error)
	remove func(context.Context, string) error
}

func mountCRUD[T any](s *Server, r *mux.Router, base string, c crud[T]) {
	r.HandleFunc(base, func(w http.ResponseWriter, req *http.Request) {
		var record T
		if err := decodeBody(req, &record); err != nil {
			s.writeError(w, req, err)
			return
		}
		created, err := c.create(req.Context(), record)
		if err != nil {
			s.writeError(w, req, err)
			return
		}
		s.writeJSON(w, http.StatusCreated, created)
	}).Methods(http.MethodPost)

	r.HandleFunc(base, func(w http.ResponseWriter, req *http.Request) {
		records, err := c.list(req.Context())
		if err != nil {
			s.writeError(w, req, err)
			return
		}
		s.writeJSON(w, http.StatusOK, records)
	}).Methods(http.MethodGet)

	r.HandleFunc(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		record, err := c.get(req.Context(), mux.Vars(req)["id"])
		if err != nil {
			s.writeError(w, req, err)
			return
		}
		s.writeJSON(w, http.StatusOK, record)
	}).Methods(http.MethodGet)

	r.HandleFunc(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		var record T
		if err := decodeBody(req, &record); err != nil {
			s.writeError(w, req, err)
			return
		}
		updated, err := c.update(req.Context(), mux.Vars(req)["id"], record)
		if err != nil {
			s.writeError(w, req, err)
			return
		}
		s.writeJSON(w, http.StatusOK, updated)
	}).Methods(http.MethodPut)

	r.HandleFunc(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		if err := c.remove(req.Context(), mux.Vars(req)["id"]); err != nil {
			s.writeError(w, req, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)
}

func (s *Server) handleMembershipsActive(w http.ResponseWriter, r *http.Request) {
	records, err := s.services.Memberships.ListActive(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleMembershipsExpired(w http.ResponseWriter, r *http.Request) {
	records, err := s.services.Memberships.ListExpired(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handlePaymentMethods(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.services.Payments.Methods())
}

func (s *Server) handlePaymentsByClient(w http.ResponseWriter, r *http.Request) {
	records, err := s.services.Payments.ListByClient(r.Context(), mux.Vars(r)["clientId"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// reportBounds parses the optional start/end query parameters (yyyy-MM-dd).
func reportBounds(r *http.Request) (start, end *dates.Date, method string, err error) {
	q := r.URL.Query()
	if raw := q.Get("start"); raw != "" {
		d, perr := dates.ParseDate(raw)
		if perr != nil {
			return nil, nil, "", apperr.Invalid("start", perr.Error())
		}
		start = &d
	}
	if raw := q.Get("end"); raw != "" {
		d, perr := dates.ParseDate(raw)
		if perr != nil {
			return nil, nil, "", apperr.Invalid("end", perr.Error())
		}
		end = &d
	}
	return start, end, q.Get("method"), nil
}

func (s *Server) handlePaymentReport(w http.ResponseWriter, r *http.Request) {
	start, end, method, err := reportBounds(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.services.Payments.BuildReport(r.Context(), start, end, method)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePaymentReportExport(w http.ResponseWriter, r *http.Request) {
	start, end, method, err := reportBounds(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	f, err := s.services.Payments.ExportReport(r.Context(), start, end, method)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte_pagos.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		s.log.WithError(err).Warn("write report workbook failed")
	}
}

func (s *Server) handleClassRegister(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	updated, err := s.services.GroupClasses.RegisterClient(r.Context(), vars["id"], vars["clientId"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleClassUnregister(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	updated, err := s.services.GroupClasses.UnregisterClient(r.Context(), vars["id"], vars["clientId"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	records, err := s.services.Routines.ListExercises(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}
