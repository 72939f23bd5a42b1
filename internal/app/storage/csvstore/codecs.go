package csvstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/irongym/backend/internal/app/domain/attendance"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/domain/equipment"
	"github.com/irongym/backend/internal/app/domain/groupclass"
	"github.com/irongym/backend/internal/app/domain/membership"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/domain/person"
	"github.com/irongym/backend/internal/app/domain/routine"
	"github.com/irongym/backend/internal/app/domain/supplement"
	"github.com/irongym/backend/internal/app/domain/trainer"
)

// The wire format writes fields verbatim, comma-separated, with no quoting;
// embedded commas are not supported by the format. Values "" and "null" in
// optional columns decode as absent.

func blank(s string) bool {
	return s == "" || strings.EqualFold(s, "null")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func personFields(fields []string) (person.Fields, error) {
	if len(fields) < 5 || fields[0] == "" {
		return person.Fields{}, errSkipRow
	}
	return person.Fields{
		ID:             fields[0],
		Name:           fields[1],
		Email:          fields[2],
		Phone:          fields[3],
		Identification: fields[4],
	}, nil
}

func encodePerson(p person.Fields) []string {
	return []string{p.ID, p.Name, p.Email, p.Phone, p.Identification}
}

func clientSchema() schema[client.Client] {
	return schema[client.Client]{
		name:   "client",
		file:   "clients.csv",
		header: []string{"id", "name", "email", "phone", "identification"},
		prefix: "",
		width:  2,
		id:     func(c client.Client) string { return c.ID },
		setID:  func(c *client.Client, id string) { c.ID = id },
		encode: func(c client.Client) []string { return encodePerson(c.Fields) },
		decode: func(fields []string) (client.Client, error) {
			p, err := personFields(fields)
			if err != nil {
				return client.Client{}, err
			}
			return client.Client{Fields: p}, nil
		},
	}
}

func trainerSchema() schema[trainer.Trainer] {
	return schema[trainer.Trainer]{
		name:   "trainer",
		file:   "trainers.csv",
		header: []string{"id", "name", "email", "phone", "identification"},
		prefix: "T",
		width:  2,
		id:     func(t trainer.Trainer) string { return t.ID },
		setID:  func(t *trainer.Trainer, id string) { t.ID = id },
		encode: func(t trainer.Trainer) []string { return encodePerson(t.Fields) },
		decode: func(fields []string) (trainer.Trainer, error) {
			p, err := personFields(fields)
			if err != nil {
				return trainer.Trainer{}, err
			}
			return trainer.Trainer{Fields: p}, nil
		},
	}
}

func membershipSchema() schema[membership.Membership] {
	return schema[membership.Membership]{
		name:   "membership",
		file:   "memberships.csv",
		header: []string{"id", "clientId", "type", "startDate", "endDate", "price"},
		prefix: "M",
		width:  3,
		id:     func(m membership.Membership) string { return m.ID },
		setID:  func(m *membership.Membership, id string) { m.ID = id },
		encode: func(m membership.Membership) []string {
			return []string{
				m.ID,
				m.ClientID,
				string(m.Type),
				m.StartDate.String(),
				m.EndDate.String(),
				fmt.Sprintf("%.3f", m.Price),
			}
		},
		decode: func(fields []string) (membership.Membership, error) {
			if len(fields) < 6 || fields[0] == "" {
				return membership.Membership{}, errSkipRow
			}
			typ, ok := membership.ParseType(fields[2])
			if !ok {
				return membership.Membership{}, errSkipRow
			}
			start, err := dates.ParseDate(fields[3])
			if err != nil {
				return membership.Membership{}, errSkipRow
			}
			end, err := dates.ParseDate(fields[4])
			if err != nil {
				return membership.Membership{}, errSkipRow
			}
			price, err := strconv.ParseFloat(fields[5], 64)
			if err != nil {
				return membership.Membership{}, errSkipRow
			}
			return membership.Membership{
				ID:        fields[0],
				ClientID:  fields[1],
				Type:      typ,
				StartDate: start,
				EndDate:   end,
				Price:     price,
			}, nil
		},
	}
}

func paymentSchema() schema[payment.Payment] {
	return schema[payment.Payment]{
		name:   "payment",
		file:   "payments.csv",
		header: []string{"id", "amount", "dateTime", "paymentMethod", "clientId"},
		prefix: "P",
		width:  3,
		id:     func(p payment.Payment) string { return p.ID },
		setID:  func(p *payment.Payment, id string) { p.ID = id },
		encode: func(p payment.Payment) []string {
			dt := ""
			if !p.DateTime.IsZero() {
				dt = p.DateTime.String()
			}
			return []string{p.ID, formatFloat(p.Amount), dt, string(p.Method), p.ClientID}
		},
		// Four columns are accepted for rows written before clientId existed.
		decode: func(fields []string) (payment.Payment, error) {
			if len(fields) < 4 || fields[0] == "" {
				return payment.Payment{}, errSkipRow
			}
			amount, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return payment.Payment{}, errSkipRow
			}
			var dt dates.DateTime
			if !blank(fields[2]) {
				dt, err = dates.ParseDateTime(fields[2])
				if err != nil {
					return payment.Payment{}, errSkipRow
				}
			}
			var method payment.Method
			if !blank(fields[3]) {
				m, ok := payment.ParseMethod(fields[3])
				if !ok {
					return payment.Payment{}, errSkipRow
				}
				method = m
			}
			clientID := ""
			if len(fields) >= 5 {
				clientID = fields[4]
			}
			return payment.Payment{
				ID:       fields[0],
				Amount:   amount,
				DateTime: dt,
				Method:   method,
				ClientID: clientID,
			}, nil
		},
	}
}

func attendanceSchema() schema[attendance.Attendance] {
	return schema[attendance.Attendance]{
		name:    "attendance",
		file:    "attendance.csv",
		header:  []string{"id", "dateTime", "clientId", "groupClassId"},
		prefix:  "A",
		width:   2,
		validID: attendance.ValidID,
		id:      func(a attendance.Attendance) string { return a.ID },
		setID:   func(a *attendance.Attendance, id string) { a.ID = id },
		encode: func(a attendance.Attendance) []string {
			dt := ""
			if !a.DateTime.IsZero() {
				dt = a.DateTime.String()
			}
			return []string{a.ID, dt, a.ClientID, a.GroupClassID}
		},
		decode: func(fields []string) (attendance.Attendance, error) {
			if len(fields) < 4 || fields[0] == "" {
				return attendance.Attendance{}, errSkipRow
			}
			var dt dates.DateTime
			if !blank(fields[1]) {
				parsed, err := dates.ParseDateTime(fields[1])
				if err != nil {
					return attendance.Attendance{}, errSkipRow
				}
				dt = parsed
			}
			return attendance.Attendance{
				ID:           fields[0],
				DateTime:     dt,
				ClientID:     fields[2],
				GroupClassID: fields[3],
			}, nil
		},
	}
}

func groupClassSchema() schema[groupclass.GroupClass] {
	return schema[groupclass.GroupClass]{
		name:   "group class",
		file:   "group_classes.csv",
		header: []string{"id", "name", "maxCapacity", "schedule", "trainerId", "clientIds"},
		prefix: "GC",
		width:  2,
		id:     func(g groupclass.GroupClass) string { return g.ID },
		setID:  func(g *groupclass.GroupClass, id string) { g.ID = id },
		encode: func(g groupclass.GroupClass) []string {
			return []string{
				g.ID,
				g.Name,
				strconv.Itoa(g.MaxCapacity),
				g.Schedule,
				g.TrainerID,
				strings.Join(g.ClientIDs, ";"),
			}
		},
		decode: func(fields []string) (groupclass.GroupClass, error) {
			if len(fields) < 6 || fields[0] == "" {
				return groupclass.GroupClass{}, errSkipRow
			}
			capacity, err := strconv.Atoi(fields[2])
			if err != nil {
				return groupclass.GroupClass{}, errSkipRow
			}
			var clientIDs []string
			if !blank(fields[5]) {
				for _, id := range strings.Split(fields[5], ";") {
					if id = strings.TrimSpace(id); id != "" {
						clientIDs = append(clientIDs, id)
					}
				}
			}
			trainerID := ""
			if !blank(fields[4]) {
				trainerID = fields[4]
			}
			return groupclass.GroupClass{
				ID:          fields[0],
				Name:        fields[1],
				MaxCapacity: capacity,
				Schedule:    fields[3],
				TrainerID:   trainerID,
				ClientIDs:   clientIDs,
			}, nil
		},
	}
}

func equipmentSchema() schema[equipment.Equipment] {
	return schema[equipment.Equipment]{
		name:   "equipment",
		file:   "equipment.csv",
		header: []string{"id", "type", "status"},
		prefix: "EQ",
		width:  3,
		id:     func(e equipment.Equipment) string { return e.ID },
		setID:  func(e *equipment.Equipment, id string) { e.ID = id },
		encode: func(e equipment.Equipment) []string {
			return []string{e.ID, e.Type, string(e.Status)}
		},
		decode: func(fields []string) (equipment.Equipment, error) {
			if len(fields) < 3 || fields[0] == "" {
				return equipment.Equipment{}, errSkipRow
			}
			status, ok := equipment.ParseStatus(fields[2])
			if !ok {
				return equipment.Equipment{}, errSkipRow
			}
			return equipment.Equipment{ID: fields[0], Type: fields[1], Status: status}, nil
		},
	}
}

func exerciseSchema() schema[routine.Exercise] {
	return schema[routine.Exercise]{
		name:   "exercise",
		file:   "exercises.csv",
		header: []string{"name", "repetitions", "sets"},
		prefix: "EX",
		width:  2,
		id:     func(e routine.Exercise) string { return e.Name },
		setID:  func(e *routine.Exercise, name string) { e.Name = name },
		encode: func(e routine.Exercise) []string {
			return []string{e.Name, strconv.Itoa(e.Repetitions), strconv.Itoa(e.Sets)}
		},
		decode: func(fields []string) (routine.Exercise, error) {
			if len(fields) < 3 || fields[0] == "" {
				return routine.Exercise{}, errSkipRow
			}
			reps, err := strconv.Atoi(fields[1])
			if err != nil {
				return routine.Exercise{}, errSkipRow
			}
			sets, err := strconv.Atoi(fields[2])
			if err != nil {
				return routine.Exercise{}, errSkipRow
			}
			return routine.Exercise{Name: fields[0], Repetitions: reps, Sets: sets}, nil
		},
	}
}

// Routine rows persist only id and objective; the exercise list lives in
// memory for the lifetime of the process and is not round-tripped.
func routineSchema() schema[routine.Routine] {
	return schema[routine.Routine]{
		name:   "routine",
		file:   "routines.csv",
		header: []string{"id", "objective"},
		prefix: "R",
		width:  2,
		id:     func(r routine.Routine) string { return r.ID },
		setID:  func(r *routine.Routine, id string) { r.ID = id },
		encode: func(r routine.Routine) []string { return []string{r.ID, r.Objective} },
		decode: func(fields []string) (routine.Routine, error) {
			if len(fields) < 2 || fields[0] == "" {
				return routine.Routine{}, errSkipRow
			}
			return routine.Routine{ID: fields[0], Objective: fields[1]}, nil
		},
	}
}

func supplementSchema() schema[supplement.Supplement] {
	return schema[supplement.Supplement]{
		name:   "supplement",
		file:   "supplements.csv",
		header: []string{"id", "name", "brand", "price"},
		prefix: "S",
		width:  3,
		id:     func(s supplement.Supplement) string { return s.ID },
		setID:  func(s *supplement.Supplement, id string) { s.ID = id },
		encode: func(s supplement.Supplement) []string {
			return []string{s.ID, s.Name, s.Brand, formatFloat(s.Price)}
		},
		decode: func(fields []string) (supplement.Supplement, error) {
			if len(fields) < 4 || fields[0] == "" {
				return supplement.Supplement{}, errSkipRow
			}
			price, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return supplement.Supplement{}, errSkipRow
			}
			return supplement.Supplement{
				ID:    fields[0],
				Name:  fields[1],
				Brand: fields[2],
				Price: price,
			}, nil
		},
	}
}
