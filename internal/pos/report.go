package pos

import (
	"fmt"
	"strings"
	"time"
)

// DailyReport aggregates paid transactions on one UTC calendar day.
type DailyReport struct {
	Date         string        `json:"date"`
	Transactions []Transaction `json:"transactions"`
	TotalOmzet   int           `json:"totalOmzet"`
	Count        int           `json:"count"`
}

func (s *Store) DailyReport(date string) DailyReport {
	txns := s.Transactions(TxnFilter{Date: date, Status: StatusPaid})
	total := 0
	for _, t := range txns {
		total += t.Total
	}
	return DailyReport{Date: date, Transactions: txns, TotalOmzet: total, Count: len(txns)}
}

// FinancialSummary is the all-time view: paid revenue vs expenses.
type FinancialSummary struct {
	TotalRevenue  int `json:"totalRevenue"`
	TotalExpenses int `json:"totalExpenses"`
	NetProfit     int `json:"netProfit"`
}

func (s *Store) FinancialSummary() FinancialSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum FinancialSummary
	for _, t := range s.data.Transactions {
		if t.Payment.Status == StatusPaid {
			sum.TotalRevenue += t.Total
		}
	}
	for _, e := range s.data.Expenses {
		sum.TotalExpenses += e.Amount
	}
	sum.NetProfit = sum.TotalRevenue - sum.TotalExpenses
	return sum
}

// ItemCount is one row of the top-items ranking.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopItems counts quantity sold per main-menu item name across the
// day's paid transactions. Descending by count; ties keep first-seen
// order; at most n rows.
func (s *Store) TopItems(date string, n int) []ItemCount {
	report := s.DailyReport(date)

	s.mu.Lock()
	menuIDs := map[string]bool{}
	for _, m := range s.data.Menu {
		menuIDs[m.ID] = true
	}
	s.mu.Unlock()

	counts := map[string]int{}
	var order []string
	for _, t := range report.Transactions {
		for _, it := range t.Items {
			if !menuIDs[it.ID] {
				continue
			}
			if _, seen := counts[it.Name]; !seen {
				order = append(order, it.Name)
			}
			counts[it.Name] += it.Quantity
		}
	}

	out := make([]ItemCount, 0, len(order))
	for _, name := range order {
		out = append(out, ItemCount{Name: name, Count: counts[name]})
	}
	// insertion sort keeps the first-seen order stable on ties
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Count > out[j-1].Count; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FormatRupiah renders whole-rupiah amounts the way the receipts do:
// Rp 24.000.
func FormatRupiah(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + sign + b.String()
}

var hariIndo = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
var bulanIndo = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

func formatTanggal(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d %s", hariIndo[int(t.Weekday())], t.Day(), bulanIndo[int(t.Month())])
}

// DailySummaryPrompt assembles the Indonesian prompt for the AI daily
// sales summary from the day's aggregates.
func (s *Store) DailySummaryPrompt(date string) (string, error) {
	report := s.DailyReport(date)
	if report.Count == 0 {
		return "", fmt.Errorf("%w: tidak ada data untuk diringkas", ErrInvalidInput)
	}
	top := s.TopItems(date, 3)
	parts := make([]string, 0, len(top))
	for _, it := range top {
		parts = append(parts, fmt.Sprintf("%s (%d porsi)", it.Name, it.Count))
	}
	topItems := strings.Join(parts, ", ")
	if topItems == "" {
		topItems = "Tidak ada"
	}
	return fmt.Sprintf(
		"Anda adalah asisten manajer warmindo. Buat ringkasan penjualan harian yang singkat, "+
			"informatif, dan memberi semangat untuk pemilik. Gunakan bahasa Indonesia santai. "+
			"Data penjualan untuk %s: Total Omzet: %s, Jumlah Transaksi: %d, Menu Terlaris: %s. "+
			"Format sebagai: 1. **Analisis Singkat:** ulasan performa. 2. **Saran Praktis:** satu saran untuk besok. "+
			"3. **Kata Semangat:** kalimat motivasi.",
		formatTanggal(date), FormatRupiah(report.TotalOmzet), report.Count, topItems,
	), nil
}

// MenuIdeasPrompt assembles the Indonesian prompt asking for new menu
// ideas, excluding what is already on the menu.
func (s *Store) MenuIdeasPrompt() string {
	s.mu.Lock()
	names := make([]string, 0, len(s.data.Menu))
	for _, m := range s.data.Menu {
		names = append(names, m.Name)
	}
	s.mu.Unlock()
	return fmt.Sprintf(
		"Anda adalah seorang chef spesialis mie instan. Berikan 5 ide menu baru yang kreatif "+
			"untuk warmindo di Indonesia, hindari menu yang sudah ada: %s. Untuk setiap ide, berikan: "+
			"Nama Menu, Topping unik, dan Perkiraan harga jual (Rupiah). Format sebagai daftar bernomor. "+
			"Contoh: 1. **Nama:** Mie Goreng Sambal Matah\\n**Topping:** Ayam suwir, sambal matah segar.\\n**Harga:** Rp 15.000",
		strings.Join(names, ", "),
	)
}
