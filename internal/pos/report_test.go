package pos

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func orderAt(t *testing.T, day, id string, status PaymentStatus, items ...OrderItem) Order {
	t.Helper()
	at, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatal(err)
	}
	o := testOrder(id, status, items...)
	o.CreatedAt = &at
	return o
}

func seedReportStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(nil, nil)
	commits := []Order{
		orderAt(t, "2026-09-01", "TRX-1", StatusPaid, line("menu-1", "Mie Goreng", 8000, 0, 2, "stock-1")),
		orderAt(t, "2026-09-01", "TRX-2", StatusPaid,
			line("menu-2", "Mie Kuah", 8000, 0, 2, "stock-1"),
			line("top-1", "Sosis", 2000, 0, 3, "stock-2")),
		orderAt(t, "2026-09-01", "TRX-3", StatusUnpaid, line("menu-1", "Mie Goreng", 8000, 0, 5, "stock-1")),
		orderAt(t, "2026-08-31", "TRX-4", StatusPaid, line("menu-1", "Mie Goreng", 8000, 0, 1, "stock-1")),
	}
	for _, o := range commits {
		if _, err := s.Commit(o); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestDailyReportFiltersDayAndPaid(t *testing.T) {
	s := seedReportStore(t)
	r := s.DailyReport("2026-09-01")
	if r.Count != 2 {
		t.Fatalf("want 2 paid transactions on the day, got %d", r.Count)
	}
	if r.TotalOmzet != 16000+22000 {
		t.Fatalf("want omzet 38000, got %d", r.TotalOmzet)
	}

	empty := s.DailyReport("2026-01-01")
	if empty.Count != 0 || empty.TotalOmzet != 0 {
		t.Fatalf("want empty report, got %+v", empty)
	}
}

func TestFinancialSummary(t *testing.T) {
	s := seedReportStore(t)
	if _, err := s.AddExpense("Beli 1 dus Indomie", 105000); err != nil {
		t.Fatal(err)
	}
	sum := s.FinancialSummary()
	wantRevenue := 16000 + 22000 + 8000 // all-time paid, the unpaid one excluded
	if sum.TotalRevenue != wantRevenue {
		t.Fatalf("want revenue %d, got %d", wantRevenue, sum.TotalRevenue)
	}
	if sum.TotalExpenses != 105000 {
		t.Fatalf("want expenses 105000, got %d", sum.TotalExpenses)
	}
	if sum.NetProfit != wantRevenue-105000 {
		t.Fatalf("want net %d, got %d", wantRevenue-105000, sum.NetProfit)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	s := NewStore(nil, nil)
	if _, err := s.AddExpense("", 1000); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty description: want ErrInvalidInput, got %v", err)
	}
	if _, err := s.AddExpense("gas", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero amount: want ErrInvalidInput, got %v", err)
	}
	if len(s.Data().Expenses) != 0 {
		t.Fatal("rejected expense must not be recorded")
	}
}

func TestTopItemsCountsOnlyMainMenu(t *testing.T) {
	s := seedReportStore(t)
	top := s.TopItems("2026-09-01", 3)
	// Sosis is a topping, never ranked; Mie Goreng 2 vs Mie Kuah 2 tie
	// keeps first-seen (most recent transaction scans first).
	if len(top) != 2 {
		t.Fatalf("want 2 ranked items, got %+v", top)
	}
	if top[0].Name != "Mie Kuah" || top[0].Count != 2 {
		t.Fatalf("want Mie Kuah first on tie, got %+v", top)
	}
	if top[1].Name != "Mie Goreng" || top[1].Count != 2 {
		t.Fatalf("want Mie Goreng second, got %+v", top)
	}
}

func TestTopItemsLimit(t *testing.T) {
	s := NewStore(nil, nil)
	o := orderAt(t, "2026-09-01", "TRX-1", StatusPaid,
		line("menu-1", "Mie Goreng", 8000, 0, 1, "stock-1"),
		line("menu-2", "Mie Kuah", 8000, 0, 2, "stock-1"),
		line("menu-3", "Mie Double", 13000, 2, 3, "stock-1"))
	if _, err := s.Commit(o); err != nil {
		t.Fatal(err)
	}
	top := s.TopItems("2026-09-01", 2)
	if len(top) != 2 || top[0].Name != "Mie Double" || top[1].Name != "Mie Kuah" {
		t.Fatalf("want top 2 descending, got %+v", top)
	}
}

func TestTransactionsFilter(t *testing.T) {
	s := seedReportStore(t)
	o := orderAt(t, "2026-09-01", "TRX-5", StatusPaid, line("menu-1", "Mie Goreng", 8000, 0, 1, "stock-1"))
	o.CustomerName = "Meja 7"
	o.Delivered = true
	if _, err := s.Commit(o); err != nil {
		t.Fatal(err)
	}

	if got := s.Transactions(TxnFilter{Status: StatusUnpaid}); len(got) != 1 || got[0].ID != "TRX-3" {
		t.Fatalf("status filter: %+v", got)
	}
	if got := s.Transactions(TxnFilter{Name: "meja"}); len(got) != 1 || got[0].ID != "TRX-5" {
		t.Fatalf("name filter should be case-insensitive substring: %+v", got)
	}
	yes := true
	if got := s.Transactions(TxnFilter{Delivered: &yes}); len(got) != 1 || got[0].ID != "TRX-5" {
		t.Fatalf("delivered filter: %+v", got)
	}
	if got := s.Transactions(TxnFilter{Date: "2026-08-31"}); len(got) != 1 || got[0].ID != "TRX-4" {
		t.Fatalf("date filter: %+v", got)
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int]string{
		0:       "Rp 0",
		8000:    "Rp 8.000",
		24000:   "Rp 24.000",
		1234567: "Rp 1.234.567",
		-5000:   "Rp -5.000",
	}
	for in, want := range cases {
		if got := FormatRupiah(in); got != want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestDailySummaryPrompt(t *testing.T) {
	s := seedReportStore(t)
	prompt, err := s.DailySummaryPrompt("2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Total Omzet: Rp 38.000", "Jumlah Transaksi: 2", "Mie Kuah (2 porsi)", "Selasa, 1 September"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	if _, err := s.DailySummaryPrompt("2026-01-01"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty day: want ErrInvalidInput, got %v", err)
	}
}

func TestMenuIdeasPromptListsExistingMenu(t *testing.T) {
	s := NewStore(nil, nil)
	prompt := s.MenuIdeasPrompt()
	if !strings.Contains(prompt, "Mie Goreng, Mie Kuah, Mie Double") {
		t.Fatalf("prompt must list existing menu:\n%s", prompt)
	}
}
