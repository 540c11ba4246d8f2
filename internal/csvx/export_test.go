package csvx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
)

func TestItemSummary(t *testing.T) {
	items := []pos.OrderItem{
		{Name: "Mie Goreng", Quantity: 2},
		{Name: "Sosis", Quantity: 1},
	}
	if got := ItemSummary(items); got != "Mie Goreng x2, Sosis x1" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteTransactions(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	txns := []pos.Transaction{{
		ID:           "TRX-1",
		CustomerName: "Meja 3",
		Items: []pos.OrderItem{
			{Name: "Mie Goreng", Quantity: 2},
			{Name: "Air Mineral", Quantity: 1},
		},
		Payment:   pos.Payment{Status: pos.StatusPaid, Method: pos.MethodQRIS},
		CreatedAt: &at,
		Total:     21000,
	}}

	var buf bytes.Buffer
	if err := WriteTransactions(&buf, txns); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Waktu,Nama,Item,Total,Status,Metode" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	row := lines[1]
	for _, want := range []string{"TRX-1", "2026-09-01T12:30:00Z", "Meja 3", "Mie Goreng x2", "21000", "Sudah Bayar", "QRIS"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q: %q", want, row)
		}
	}
}

func TestWriteExpenses(t *testing.T) {
	at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	expenses := []pos.Expense{{ID: "EXP-1", Description: "Beli 1 dus Indomie", Amount: 105000, Date: at}}

	var buf bytes.Buffer
	if err := WriteExpenses(&buf, expenses); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "ID,Tanggal,Deskripsi,Jumlah" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Beli 1 dus Indomie") || !strings.Contains(lines[1], "105000") {
		t.Fatalf("row mismatch: %q", lines[1])
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTransactions(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "ID,Waktu,Nama,Item,Total,Status,Metode" {
		t.Fatalf("empty export keeps header: %q", got)
	}
}
