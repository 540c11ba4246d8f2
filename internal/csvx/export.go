// Package csvx renders the export files. Column names match the files
// the stall owner already has.
package csvx

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/gocarina/gocsv"
)

type transactionRow struct {
	ID     string `csv:"ID"`
	Waktu  string `csv:"Waktu"`
	Nama   string `csv:"Nama"`
	Item   string `csv:"Item"`
	Total  int    `csv:"Total"`
	Status string `csv:"Status"`
	Metode string `csv:"Metode"`
}

type expenseRow struct {
	ID        string `csv:"ID"`
	Tanggal   string `csv:"Tanggal"`
	Deskripsi string `csv:"Deskripsi"`
	Jumlah    int    `csv:"Jumlah"`
}

// ItemSummary joins cart lines as "Mie Goreng x2, Sosis x1".
func ItemSummary(items []pos.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

func WriteTransactions(w io.Writer, txns []pos.Transaction) error {
	rows := make([]transactionRow, 0, len(txns))
	for _, t := range txns {
		at := ""
		if t.CreatedAt != nil {
			at = t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		rows = append(rows, transactionRow{
			ID:     t.ID,
			Waktu:  at,
			Nama:   t.CustomerName,
			Item:   ItemSummary(t.Items),
			Total:  t.Total,
			Status: string(t.Payment.Status),
			Metode: string(t.Payment.Method),
		})
	}
	return gocsv.Marshal(&rows, w)
}

func WriteExpenses(w io.Writer, expenses []pos.Expense) error {
	rows := make([]expenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, expenseRow{
			ID:        e.ID,
			Tanggal:   e.Date.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Deskripsi: e.Description,
			Jumlah:    e.Amount,
		})
	}
	return gocsv.Marshal(&rows, w)
}
