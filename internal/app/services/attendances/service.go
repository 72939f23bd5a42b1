// Package attendances manages class attendance records.
package attendances

import (
	"context"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/attendance"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages attendance records and their references to clients and
// group classes.
type Service struct {
	clients storage.ClientStore
	classes storage.GroupClassStore
	store   storage.AttendanceStore
	log     *logger.Logger
}

// New constructs an attendance service.
func New(clients storage.ClientStore, classes storage.GroupClassStore, store storage.AttendanceStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("attendances")
	}
	return &Service{clients: clients, classes: classes, store: store, log: log}
}

// Create records an attendance after validating the referenced client and
// group class. A caller-supplied ID must match the A## format and be unique;
// the store enforces both.
func (s *Service) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if err := s.validate(ctx, a); err != nil {
		return attendance.Attendance{}, err
	}

	created, err := s.store.CreateAttendance(ctx, a)
	if err != nil {
		return attendance.Attendance{}, err
	}
	s.log.WithField("attendance_id", created.ID).
		WithField("client_id", created.ClientID).
		WithField("group_class_id", created.GroupClassID).
		Info("attendance recorded")
	return created, nil
}

// Update replaces the attendance with the given id.
func (s *Service) Update(ctx context.Context, id string, a attendance.Attendance) (attendance.Attendance, error) {
	if _, err := s.store.GetAttendance(ctx, id); err != nil {
		return attendance.Attendance{}, err
	}
	a.ID = id
	if err := s.validate(ctx, a); err != nil {
		return attendance.Attendance{}, err
	}

	updated, err := s.store.UpdateAttendance(ctx, a)
	if err != nil {
		return attendance.Attendance{}, err
	}
	s.log.WithField("attendance_id", id).Info("attendance updated")
	return updated, nil
}

// Get retrieves an attendance record by identifier.
func (s *Service) Get(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.store.GetAttendance(ctx, id)
}

// List returns all attendance records in insertion order.
func (s *Service) List(ctx context.Context) ([]attendance.Attendance, error) {
	return s.store.ListAttendance(ctx)
}

// Delete removes an attendance record by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteAttendance(ctx, id); err != nil {
		return err
	}
	s.log.WithField("attendance_id", id).Info("attendance deleted")
	return nil
}

func (s *Service) validate(ctx context.Context, a attendance.Attendance) error {
	v := apperr.NewValidation()
	if a.DateTime.IsZero() {
		v.Add("dateTime", "dateTime is required")
	}
	if a.ClientID == "" {
		v.Add("clientId", "clientId is required")
	} else {
		if _, err := s.clients.GetClient(ctx, a.ClientID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("clientId", "client "+a.ClientID+" does not exist")
			} else {
				return err
			}
		}
	}
	if a.GroupClassID == "" {
		v.Add("groupClassId", "groupClassId is required")
	} else {
		if _, err := s.classes.GetGroupClass(ctx, a.GroupClassID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("groupClassId", "group class "+a.GroupClassID+" does not exist")
			} else {
				return err
			}
		}
	}
	return v.ErrOrNil()
}
