package payments

import (
	"context"
	"testing"

	"github.com/irongym/backend/internal/app/domain/payment"
)

func TestExportReportLayout(t *testing.T) {
	ctx := context.Background()
	svc, clientSvc := newFixture(t)
	ana := seedClient(t, clientSvc, "Ana", "3001234567", "CC-1")

	for _, p := range []payment.Payment{
		{Amount: 10000, DateTime: at(1, 3, 9), Method: payment.MethodCash, ClientID: ana.ID},
		{Amount: 5000, DateTime: at(1, 3, 17), Method: payment.MethodNequi, ClientID: ana.ID},
	} {
		if _, err := svc.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	f, err := svc.ExportReport(ctx, nil, nil, "")
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue(reportSheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if cell("A1") != "Reporte de pagos" {
		t.Fatalf("A1 = %q", cell("A1"))
	}
	if cell("A4") != "Fecha" || cell("D4") != "Valor" {
		t.Fatalf("header row = %q..%q", cell("A4"), cell("D4"))
	}
	if cell("A5") != "2026-03-01" || cell("B5") != "Ana" {
		t.Fatalf("first payment row = %q, %q", cell("A5"), cell("B5"))
	}
	// Two payment rows, then the client subtotal, then the day subtotal.
	if cell("C7") != "Total cliente" || cell("D7") != "15000" {
		t.Fatalf("client subtotal row = %q, %q", cell("C7"), cell("D7"))
	}
	if cell("C8") != "Total fecha" || cell("D8") != "15000" {
		t.Fatalf("day subtotal row = %q, %q", cell("C8"), cell("D8"))
	}
}
