// Package storage defines the persistence interfaces for the gym entities.
// Implementations own the in-memory collection for their entity type and keep
// it consistent with the backing file; cross-entity references are by ID only
// and are validated by the services, not here.
package storage

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
)

// ClientStore persists gym members.
type ClientStore interface {
	CreateClient(ctx context.Context, c client.Client) (client.Client, error)
	UpdateClient(ctx context.Context, c client.Client) (client.Client, error)
	GetClient(ctx context.Context, id string) (client.Client, error)
	ListClients(ctx context.Context) ([]client.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// TrainerStore persists trainers.
type TrainerStore interface {
	CreateTrainer(ctx context.Context, t trainer.Trainer) (trainer.Trainer, error)
	UpdateTrainer(ctx context.Context, t trainer.Trainer) (trainer.Trainer, error)
	GetTrainer(ctx context.Context, id string) (trainer.Trainer, error)
	ListTrainers(ctx context.Context) ([]trainer.Trainer, error)
	DeleteTrainer(ctx context.Context, id string) error
}

// MembershipStore persists membership plans.
type MembershipStore interface {
	CreateMembership(ctx context.Context, m membership.Membership) (membership.Membership, error)
	UpdateMembership(ctx context.Context, m membership.Membership) (membership.Membership, error)
	GetMembership(ctx context.Context, id string) (membership.Membership, error)
	ListMemberships(ctx context.Context) ([]membership.Membership, error)
	DeleteMembership(ctx context.Context, id string) error
}

// PaymentStore persists payments.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error)
	UpdatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error)
	GetPayment(ctx context.Context, id string) (payment.Payment, error)
	ListPayments(ctx context.Context) ([]payment.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

// AttendanceStore persists attendance records.
type AttendanceStore interface {
	CreateAttendance(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error)
	UpdateAttendance(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error)
	GetAttendance(ctx context.Context, id string) (attendance.Attendance, error)
	ListAttendance(ctx context.Context) ([]attendance.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}

// GroupClassStore persists group classes.
type GroupClassStore interface {
	CreateGroupClass(ctx context.Context, g groupclass.GroupClass) (groupclass.GroupClass, error)
	UpdateGroupClass(ctx context.Context, g groupclass.GroupClass) (groupclass.GroupClass, error)
	GetGroupClass(ctx context.Context, id string) (groupclass.GroupClass, error)
	ListGroupClasses(ctx context.Context) ([]groupclass.GroupClass, error)
	DeleteGroupClass(ctx context.Context, id string) error
}

// EquipmentStore persists equipment inventory.
type EquipmentStore interface {
	CreateEquipment(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error)
	UpdateEquipment(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error)
	GetEquipment(ctx context.Context, id string) (equipment.Equipment, error)
	ListEquipment(ctx context.Context) ([]equipment.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

// RoutineStore persists training routines.
type RoutineStore interface {
	CreateRoutine(ctx context.Context, r routine.Routine) (routine.Routine, error)
	UpdateRoutine(ctx context.Context, r routine.Routine) (routine.Routine, error)
	GetRoutine(ctx context.Context, id string) (routine.Routine, error)
	ListRoutines(ctx context.Context) ([]routine.Routine, error)
	DeleteRoutine(ctx context.Context, id string) error
}

// ExerciseStore persists standalone exercises, keyed by name.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, e routine.Exercise) (routine.Exercise, error)
	UpdateExercise(ctx context.Context, e routine.Exercise) (routine.Exercise, error)
	GetExercise(ctx context.Context, name string) (routine.Exercise, error)
	ListExercises(ctx context.Context) ([]routine.Exercise, error)
	DeleteExercise(ctx context.Context, name string) error
}

// SupplementStore persists supplements.
type SupplementStore interface {
	CreateSupplement(ctx context.Context, s supplement.Supplement) (supplement.Supplement, error)
	UpdateSupplement(ctx context.Context, s supplement.Supplement) (supplement.Supplement, error)
	GetSupplement(ctx context.Context, id string) (supplement.Supplement, error)
	ListSupplements(ctx context.Context) ([]supplement.Supplement, error)
	DeleteSupplement(ctx context.Context, id string) error
}
