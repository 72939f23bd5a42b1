package payments

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/metrics"
)

// Report groups payments by calendar day, then by client, with per-client
// and per-day totals. Field names follow the gym's established wire format.
type Report struct {
	DateFrom string     `json:"fecha_inicial"`
	DateTo   string     `json:"fecha_final"`
	Days     []DayGroup `json:"reporte"`
}

// DayGroup holds one calendar day of the report.
type DayGroup struct {
	Date               string        `json:"fecha"`
	Clients            []ClientGroup `json:"clientes"`
	TotalDate          int64         `json:"total_fecha"`
	TotalDateFormatted string        `json:"total_fecha_formateado"`
}

// ClientGroup holds one client's payments within a day. ClientName is nil
// when the payment's clientId does not resolve to a known client; such
// payments still count financially.
type ClientGroup struct {
	ClientName           *string `json:"cliente"`
	Payments             []Entry `json:"pagos"`
	TotalClient          int64   `json:"total_cliente"`
	TotalClientFormatted string  `json:"total_cliente_formateado"`
}

// Entry is a single payment inside a client group.
type Entry struct {
	Method          payment.Method `json:"medio_pago"`
	Amount          int64          `json:"valor"`
	AmountFormatted string         `json:"valor_formateado"`
}

// copPrinter renders amounts with es-CO digit grouping ($1.234.567).
var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

func formatCOP(amount int64) string {
	return copPrinter.Sprintf("$%d", amount)
}

// BuildReport aggregates payments into the date/client report.
//
// Bounds default to the min/max payment dates when omitted (today when the
// store is empty) and are swapped when reversed. A method filter outside the
// allowed set is ignored rather than rejected. Grouping compares calendar
// days only; the time of day is discarded.
func (s *Service) BuildReport(ctx context.Context, start, end *dates.Date, methodRaw string) (Report, error) {
	began := time.Now()
	defer func() { metrics.RecordReportBuild("json", time.Since(began)) }()

	all, err := s.store.ListPayments(ctx)
	if err != nil {
		return Report{}, err
	}

	var minDate, maxDate dates.Date
	for _, p := range all {
		if p.DateTime.IsZero() {
			continue
		}
		d := p.DateTime.Date()
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}
		if maxDate.IsZero() || d.After(maxDate) {
			maxDate = d
		}
	}

	today := dates.Today()
	startDate := today
	if start != nil {
		startDate = *start
	} else if !minDate.IsZero() {
		startDate = minDate
	}
	endDate := startDate
	if end != nil {
		endDate = *end
	} else if !maxDate.IsZero() {
		endDate = maxDate
	}
	if endDate.Before(startDate) {
		startDate, endDate = endDate, startDate
	}

	methodFilter, filterOK := payment.ParseMethod(methodRaw)
	if methodRaw == "" {
		filterOK = false
	}

	type clientBucket struct {
		clientID string
		entries  []Entry
	}
	type dayBucket struct {
		order   []string // clientIDs in first-seen order
		clients map[string]*clientBucket
	}
	grouped := make(map[dates.Date]*dayBucket)

	for _, p := range all {
		if p.DateTime.IsZero() {
			continue
		}
		d := p.DateTime.Date()
		if d.Before(startDate) || d.After(endDate) {
			continue
		}
		if filterOK && p.Method != methodFilter {
			continue
		}
		day := grouped[d]
		if day == nil {
			day = &dayBucket{clients: make(map[string]*clientBucket)}
			grouped[d] = day
		}
		bucket := day.clients[p.ClientID]
		if bucket == nil {
			bucket = &clientBucket{clientID: p.ClientID}
			day.clients[p.ClientID] = bucket
			day.order = append(day.order, p.ClientID)
		}
		amount := int64(math.Round(p.Amount))
		bucket.entries = append(bucket.entries, Entry{
			Method:          p.Method,
			Amount:          amount,
			AmountFormatted: formatCOP(amount),
		})
	}

	days := make([]dates.Date, 0, len(grouped))
	for d := range grouped {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	report := Report{
		DateFrom: startDate.String(),
		DateTo:   endDate.String(),
		Days:     make([]DayGroup, 0, len(days)),
	}
	for _, d := range days {
		day := grouped[d]
		dayGroup := DayGroup{Date: d.String(), Clients: make([]ClientGroup, 0, len(day.order))}
		var totalDate int64
		for _, clientID := range day.order {
			bucket := day.clients[clientID]
			var totalClient int64
			for _, entry := range bucket.entries {
				totalClient += entry.Amount
			}
			totalDate += totalClient

			var name *string
			if clientID != "" {
				if c, err := s.clients.GetClient(ctx, clientID); err == nil {
					n := c.Name
					name = &n
				}
			}
			dayGroup.Clients = append(dayGroup.Clients, ClientGroup{
				ClientName:           name,
				Payments:             bucket.entries,
				TotalClient:          totalClient,
				TotalClientFormatted: formatCOP(totalClient),
			})
		}
		dayGroup.TotalDate = totalDate
		dayGroup.TotalDateFormatted = formatCOP(totalDate)
		report.Days = append(report.Days, dayGroup)
	}
	return report, nil
}
