package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/metrics"
)

const reportSheet = "Reporte"

// ExportReport renders the payment report as an Excel workbook: one row per
// payment plus per-client and per-day subtotal rows. The caller owns the
// returned file and must Close it.
func (s *Service) ExportReport(ctx context.Context, start, end *dates.Date, methodRaw string) (*excelize.File, error) {
	began := time.Now()
	defer func() { metrics.RecordReportBuild("xlsx", time.Since(began)) }()

	report, err := s.BuildReport(ctx, start, end, methodRaw)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(reportSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	row := 1
	set := func(values ...any) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(reportSheet, cell, v)
		}
		row++
	}

	set("Reporte de pagos")
	set("Desde", report.DateFrom, "Hasta", report.DateTo)
	row++
	set("Fecha", "Cliente", "Medio de pago", "Valor")

	for _, day := range report.Days {
		for _, clientGroup := range day.Clients {
			name := ""
			if clientGroup.ClientName != nil {
				name = *clientGroup.ClientName
			}
			for _, entry := range clientGroup.Payments {
				set(day.Date, name, string(entry.Method), entry.Amount)
			}
			set("", "", "Total cliente", clientGroup.TotalClient)
		}
		set(day.Date, "", "Total fecha", day.TotalDate)
	}

	return f, nil
}
