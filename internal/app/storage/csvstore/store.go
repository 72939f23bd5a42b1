package csvstore

import (
	"context"

	"github.com/irongym/backend/internal/app/domain/attendance"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/equipment"
	"github.com/irongym/backend/internal/app/domain/groupclass"
	"github.com/irongym/backend/internal/app/domain/membership"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/domain/routine"
	"github.com/irongym/backend/internal/app/domain/supplement"
	"github.com/irongym/backend/internal/app/domain/trainer"
	"github.com/irongym/backend/pkg/logger"
)

// Store implements every storage interface on top of CSV files under a
// single data directory. All tables are loaded eagerly so startup fails
// fast on an unreadable file.
type Store struct {
	clients     *table[client.Client]
	trainers    *table[trainer.Trainer]
	memberships *table[membership.Membership]
	payments    *table[payment.Payment]
	attendance  *table[attendance.Attendance]
	classes     *table[groupclass.GroupClass]
	equipment   *table[equipment.Equipment]
	exercises   *table[routine.Exercise]
	routines    *table[routine.Routine]
	supplements *table[supplement.Supplement]
}

// New opens (or initializes) the CSV store rooted at dir.
func New(dir string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewDefault("csvstore")
	}

	s := &Store{}
	var err error
	if s.clients, err = newTable(dir, clientSchema(), log); err != nil {
		return nil, err
	}
	if s.trainers, err = newTable(dir, trainerSchema(), log); err != nil {
		return nil, err
	}
	if s.memberships, err = newTable(dir, membershipSchema(), log); err != nil {
		return nil, err
	}
	if s.payments, err = newTable(dir, paymentSchema(), log); err != nil {
		return nil, err
	}
	if s.attendance, err = newTable(dir, attendanceSchema(), log); err != nil {
		return nil, err
	}
	if s.classes, err = newTable(dir, groupClassSchema(), log); err != nil {
		return nil, err
	}
	if s.equipment, err = newTable(dir, equipmentSchema(), log); err != nil {
		return nil, err
	}
	if s.exercises, err = newTable(dir, exerciseSchema(), log); err != nil {
		return nil, err
	}
	if s.routines, err = newTable(dir, routineSchema(), log); err != nil {
		return nil, err
	}
	if s.supplements, err = newTable(dir, supplementSchema(), log); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every table from disk.
func (s *Store) Reload(ctx context.Context) error {
	reloads := []func() error{
		s.clients.Reload,
		s.trainers.Reload,
		s.memberships.Reload,
		s.payments.Reload,
		s.attendance.Reload,
		s.classes.Reload,
		s.equipment.Reload,
		s.exercises.Reload,
		s.routines.Reload,
		s.supplements.Reload,
	}
	for _, reload := range reloads {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := reload(); err != nil {
			return err
		}
	}
	return nil
}

// ClientStore implementation -------------------------------------------------

func (s *Store) CreateClient(_ context.Context, c client.Client) (client.Client, error) {
	return s.clients.Create(c)
}

func (s *Store) UpdateClient(_ context.Context, c client.Client) (client.Client, error) {
	return s.clients.Update(c.ID, c)
}

func (s *Store) GetClient(_ context.Context, id string) (client.Client, error) {
	return s.clients.Get(id)
}

func (s *Store) ListClients(_ context.Context) ([]client.Client, error) {
	return s.clients.List(), nil
}

func (s *Store) DeleteClient(_ context.Context, id string) error {
	return s.clients.Delete(id)
}

// TrainerStore implementation ------------------------------------------------

func (s *Store) CreateTrainer(_ context.Context, t trainer.Trainer) (trainer.Trainer, error) {
	return s.trainers.Create(t)
}

func (s *Store) UpdateTrainer(_ context.Context, t trainer.Trainer) (trainer.Trainer, error) {
	return s.trainers.Update(t.ID, t)
}

func (s *Store) GetTrainer(_ context.Context, id string) (trainer.Trainer, error) {
	return s.trainers.Get(id)
}

func (s *Store) ListTrainers(_ context.Context) ([]trainer.Trainer, error) {
	return s.trainers.List(), nil
}

func (s *Store) DeleteTrainer(_ context.Context, id string) error {
	return s.trainers.Delete(id)
}

// MembershipStore implementation ---------------------------------------------

func (s *Store) CreateMembership(_ context.Context, m membership.Membership) (membership.Membership, error) {
	return s.memberships.Create(m)
}

func (s *Store) UpdateMembership(_ context.Context, m membership.Membership) (membership.Membership, error) {
	return s.memberships.Update(m.ID, m)
}

func (s *Store) GetMembership(_ context.Context, id string) (membership.Membership, error) {
	return s.memberships.Get(id)
}

func (s *Store) ListMemberships(_ context.Context) ([]membership.Membership, error) {
	return s.memberships.List(), nil
}

func (s *Store) DeleteMembership(_ context.Context, id string) error {
	return s.memberships.Delete(id)
}

// PaymentStore implementation ------------------------------------------------

func (s *Store) CreatePayment(_ context.Context, p payment.Payment) (payment.Payment, error) {
	return s.payments.Create(p)
}

func (s *Store) UpdatePayment(_ context.Context, p payment.Payment) (payment.Payment, error) {
	return s.payments.Update(p.ID, p)
}

func (s *Store) GetPayment(_ context.Context, id string) (payment.Payment, error) {
	return s.payments.Get(id)
}

func (s *Store) ListPayments(_ context.Context) ([]payment.Payment, error) {
	return s.payments.List(), nil
}

func (s *Store) DeletePayment(_ context.Context, id string) error {
	return s.payments.Delete(id)
}

// AttendanceStore implementation ---------------------------------------------

func (s *Store) CreateAttendance(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return s.attendance.Create(a)
}

func (s *Store) UpdateAttendance(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return s.attendance.Update(a.ID, a)
}

func (s *Store) GetAttendance(_ context.Context, id string) (attendance.Attendance, error) {
	return s.attendance.Get(id)
}

func (s *Store) ListAttendance(_ context.Context) ([]attendance.Attendance, error) {
	return s.attendance.List(), nil
}

func (s *Store) DeleteAttendance(_ context.Context, id string) error {
	return s.attendance.Delete(id)
}

// GroupClassStore implementation ---------------------------------------------

func (s *Store) CreateGroupClass(_ context.Context, g groupclass.GroupClass) (groupclass.GroupClass, error) {
	return s.classes.Create(g)
}

func (s *Store) UpdateGroupClass(_ context.Context, g groupclass.GroupClass) (groupclass.GroupClass, error) {
	return s.classes.Update(g.ID, g)
}

func (s *Store) GetGroupClass(_ context.Context, id string) (groupclass.GroupClass, error) {
	return s.classes.Get(id)
}

func (s *Store) ListGroupClasses(_ context.Context) ([]groupclass.GroupClass, error) {
	return s.classes.List(), nil
}

func (s *Store) DeleteGroupClass(_ context.Context, id string) error {
	return s.classes.Delete(id)
}

// EquipmentStore implementation ----------------------------------------------

func (s *Store) CreateEquipment(_ context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	return s.equipment.Create(e)
}

func (s *Store) UpdateEquipment(_ context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	return s.equipment.Update(e.ID, e)
}

func (s *Store) GetEquipment(_ context.Context, id string) (equipment.Equipment, error) {
	return s.equipment.Get(id)
}

func (s *Store) ListEquipment(_ context.Context) ([]equipment.Equipment, error) {
	return s.equipment.List(), nil
}

func (s *Store) DeleteEquipment(_ context.Context, id string) error {
	return s.equipment.Delete(id)
}

// ExerciseStore implementation -----------------------------------------------

func (s *Store) CreateExercise(_ context.Context, e routine.Exercise) (routine.Exercise, error) {
	return s.exercises.Create(e)
}

func (s *Store) UpdateExercise(_ context.Context, e routine.Exercise) (routine.Exercise, error) {
	return s.exercises.Update(e.Name, e)
}

func (s *Store) GetExercise(_ context.Context, name string) (routine.Exercise, error) {
	return s.exercises.Get(name)
}

func (s *Store) ListExercises(_ context.Context) ([]routine.Exercise, error) {
	return s.exercises.List(), nil
}

func (s *Store) DeleteExercise(_ context.Context, name string) error {
	return s.exercises.Delete(name)
}

// RoutineStore implementation ------------------------------------------------

func (s *Store) CreateRoutine(_ context.Context, r routine.Routine) (routine.Routine, error) {
	return s.routines.Create(r)
}

func (s *Store) UpdateRoutine(_ context.Context, r routine.Routine) (routine.Routine, error) {
	return s.routines.Update(r.ID, r)
}

func (s *Store) GetRoutine(_ context.Context, id string) (routine.Routine, error) {
	return s.routines.Get(id)
}

func (s *Store) ListRoutines(_ context.Context) ([]routine.Routine, error) {
	return s.routines.List(), nil
}

func (s *Store) DeleteRoutine(_ context.Context, id string) error {
	return s.routines.Delete(id)
}

// SupplementStore implementation ---------------------------------------------

func (s *Store) CreateSupplement(_ context.Context, sup supplement.Supplement) (supplement.Supplement, error) {
	return s.supplements.Create(sup)
}

func (s *Store) UpdateSupplement(_ context.Context, sup supplement.Supplement) (supplement.Supplement, error) {
	return s.supplements.Update(sup.ID, sup)
}

func (s *Store) GetSupplement(_ context.Context, id string) (supplement.Supplement, error) {
	return s.supplements.Get(id)
}

func (s *Store) ListSupplements(_ context.Context) ([]supplement.Supplement, error) {
	return s.supplements.List(), nil
}

func (s *Store) DeleteSupplement(_ context.Context, id string) error {
	return s.supplements.Delete(id)
}
