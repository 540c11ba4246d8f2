package httpx

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/ariefcatur/warmindo-pos.git/internal/csvx"
	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/ariefcatur/warmindo-pos.git/internal/redisx"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

func reportDate(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return time.Now().UTC().Format("2006-01-02")
}

func (h *PosHandler) dailyReport(w http.ResponseWriter, r *http.Request) {
	date := reportDate(r)
	key := fmt.Sprintf(redisx.KeyDailyReport, date)
	if cached, ok := redisx.Get(r.Context(), h.Redis, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	report := h.Store.DailyReport(date)
	b, _ := json.Marshal(report)
	redisx.Set(r.Context(), h.Redis, key, string(b), redisx.TTLReportCache)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *PosHandler) financialSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.FinancialSummary())
}

func (h *PosHandler) topItems(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n > 0 {
			limit = n
		}
	}
	items := h.Store.TopItems(reportDate(r), limit)
	if items == nil {
		items = []pos.ItemCount{}
	}
	writeJSON(w, http.StatusOK, items)
}

// --- expenses ---

func (h *PosHandler) listExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Data().Expenses)
}

type addExpenseReq struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
}

func (h *PosHandler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	amount, err := cast.ToIntE(req.Amount)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "deskripsi dan jumlah harus diisi"})
		return
	}
	e, err := h.Store.AddExpense(req.Description, amount)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "deskripsi dan jumlah harus diisi"})
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// --- AI ---

type aiResp struct {
	Text string `json:"text"`
}

// aiDailySummary builds the day's sales prompt and asks Gemini for a
// summary. A busy flag stops double-triggering while a call is in
// flight; a failure is a message, never a state change.
func (h *PosHandler) aiDailySummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	if !h.summaryBusy.CompareAndSwap(false, true) {
		writeJSON(w, http.StatusConflict, busyMessage("ringkasan"))
		return
	}
	defer h.summaryBusy.Store(false)

	key := fmt.Sprintf(redisx.KeyAISummary, date)
	if cached, ok := redisx.Get(r.Context(), h.Redis, key); ok {
		writeJSON(w, http.StatusOK, aiResp{Text: cached})
		return
	}

	prompt, err := h.Store.DailySummaryPrompt(date)
	if err != nil {
		writeErr(w, err)
		return
	}
	text, err := h.AI.Generate(r.Context(), prompt)
	if err != nil {
		zap.S().Warnf("gemini summary: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Tidak dapat menghubungi Gemini API."})
		return
	}
	redisx.Set(r.Context(), h.Redis, key, text, redisx.TTLAICache)
	writeJSON(w, http.StatusOK, aiResp{Text: text})
}

func (h *PosHandler) aiMenuIdeas(w http.ResponseWriter, r *http.Request) {
	if !h.ideasBusy.CompareAndSwap(false, true) {
		writeJSON(w, http.StatusConflict, busyMessage("ide menu"))
		return
	}
	defer h.ideasBusy.Store(false)

	prompt := h.Store.MenuIdeasPrompt()
	key := fmt.Sprintf(redisx.KeyMenuIdeas, menuHash(h.Store.Data().Menu))
	if cached, ok := redisx.Get(r.Context(), h.Redis, key); ok {
		writeJSON(w, http.StatusOK, aiResp{Text: cached})
		return
	}

	text, err := h.AI.Generate(r.Context(), prompt)
	if err != nil {
		zap.S().Warnf("gemini menu ideas: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Tidak dapat menghubungi Gemini API."})
		return
	}
	redisx.Set(r.Context(), h.Redis, key, text, redisx.TTLAICache)
	writeJSON(w, http.StatusOK, aiResp{Text: text})
}

func menuHash(menu []pos.CatalogItem) string {
	names := make([]string, 0, len(menu))
	for _, m := range menu {
		names = append(names, m.Name)
	}
	f := fnv.New64a()
	_, _ = f.Write([]byte(strings.Join(names, "|")))
	return fmt.Sprintf("%x", f.Sum64())
}

// --- export ---

func (h *PosHandler) exportTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transaksi.csv"`)
	if err := csvx.WriteTransactions(w, h.Store.Data().Transactions); err != nil {
		zap.S().Errorf("export transactions: %v", err)
	}
}

func (h *PosHandler) exportExpenses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="pengeluaran.csv"`)
	if err := csvx.WriteExpenses(w, h.Store.Data().Expenses); err != nil {
		zap.S().Errorf("export expenses: %v", err)
	}
}
