package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/ariefcatur/warmindo-pos.git/internal/cart"
	"github.com/ariefcatur/warmindo-pos.git/internal/gemini"
	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// PosHandler owns the application state plus the single in-progress
// cart (one stall, one cashier).
type PosHandler struct {
	Store *pos.Store
	Cart  *cart.Builder
	AI    *gemini.Client
	Redis *redis.Client

	summaryBusy atomic.Bool
	ideasBusy   atomic.Bool
}

func (h *PosHandler) Register(r *chi.Mux) {
	// cart
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Post("/cart/items/{id}/increment", h.incrementCartItem)
	r.Post("/cart/items/{id}/decrement", h.decrementCartItem)
	r.Patch("/cart", h.patchCart)
	r.Post("/cart/reset", h.resetCart)
	r.Post("/cart/load/{id}", h.loadCart)

	// commit
	r.Post("/orders", h.commitOrder)

	// transactions
	r.Get("/transactions", h.listTransactions)
	r.Post("/transactions/{id}/cancel", h.cancelTransaction)
	r.Post("/transactions/{id}/delivered", h.toggleDelivered)

	// inventory
	r.Get("/inventory", h.listInventory)
	r.Get("/inventory/low", h.listLowStock)
	r.Post("/inventory/{id}/adjust", h.adjustStock)

	// catalog
	r.Get("/catalog", h.getCatalog)

	// reports, expenses, AI, export
	r.Get("/reports/daily", h.dailyReport)
	r.Get("/reports/summary", h.financialSummary)
	r.Get("/reports/top-items", h.topItems)
	r.Get("/expenses", h.listExpenses)
	r.Post("/expenses", h.addExpense)
	r.Post("/ai/daily-summary", h.aiDailySummary)
	r.Post("/ai/menu-ideas", h.aiMenuIdeas)
	r.Get("/export/transactions.csv", h.exportTransactions)
	r.Get("/export/expenses.csv", h.exportExpenses)

	// admin
	r.Get("/settings", h.getSettings)
	r.Put("/settings", h.putSettings)
	r.Post("/admin/catalog/{kind}", h.addCatalogItem)
	r.Patch("/admin/catalog/{kind}/{id}", h.updateCatalogItem)
	r.Delete("/admin/catalog/{kind}/{id}", h.deleteCatalogItem)
	r.Post("/admin/inventory", h.addInventoryItem)
	r.Patch("/admin/inventory/{id}", h.updateInventoryItem)
	r.Delete("/admin/inventory/{id}", h.deleteInventoryItem)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain failures to statuses. Validation rejections are
// 400/409 with the user-facing message; nothing here is fatal.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case pos.IsInsufficientStock(err):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error() + "!"})
	case errors.Is(err, pos.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, pos.ErrNoMainItem), errors.Is(err, pos.ErrEmptyOrder),
		errors.Is(err, pos.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// --- cart ---

func (h *PosHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

type addItemReq struct {
	ID string `json:"id"`
}

func (h *PosHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	item, _, ok := h.Store.CatalogItemByID(req.ID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	if err := h.Cart.Add(item); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

func (h *PosHandler) incrementCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Increment(chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

func (h *PosHandler) decrementCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Decrement(chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

type patchCartReq struct {
	CustomerName *string `json:"customerName"`
	Payment      *struct {
		Status *string `json:"status"`
		Method *string `json:"method"`
	} `json:"payment"`
	Delivered *bool `json:"delivered"`
}

func (h *PosHandler) patchCart(w http.ResponseWriter, r *http.Request) {
	var req patchCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.CustomerName != nil {
		h.Cart.SetCustomer(*req.CustomerName)
	}
	if req.Payment != nil {
		if req.Payment.Status != nil {
			s := pos.PaymentStatus(*req.Payment.Status)
			if !pos.ValidStatus(s) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown payment status"})
				return
			}
			h.Cart.SetPaymentStatus(s)
		}
		if req.Payment.Method != nil {
			m := pos.PaymentMethod(*req.Payment.Method)
			if !pos.ValidMethod(m) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown payment method"})
				return
			}
			h.Cart.SetPaymentMethod(m)
		}
	}
	if req.Delivered != nil {
		h.Cart.SetDelivered(*req.Delivered)
	}
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

func (h *PosHandler) resetCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Reset()
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

// loadCart pulls an existing transaction into the cart for editing.
func (h *PosHandler) loadCart(w http.ResponseWriter, r *http.Request) {
	txn, err := h.Store.TransactionByID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	h.Cart.Load(txn)
	writeJSON(w, http.StatusOK, h.Cart.Order())
}

// --- commit ---

type commitResp struct {
	Transaction pos.Transaction `json:"transaction"`
	Updated     bool            `json:"updated"`
}

func (h *PosHandler) commitOrder(w http.ResponseWriter, r *http.Request) {
	order := h.Cart.Order()
	_, err := h.Store.TransactionByID(order.ID)
	updated := err == nil

	txn, err := h.Store.Commit(order)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.Cart.Reset()
	writeJSON(w, http.StatusCreated, commitResp{Transaction: txn, Updated: updated})
}

// --- transactions ---

func (h *PosHandler) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := pos.TxnFilter{
		Date:   q.Get("date"),
		Status: pos.PaymentStatus(q.Get("status")),
		Method: pos.PaymentMethod(q.Get("method")),
		Name:   q.Get("name"),
	}
	if v := q.Get("delivered"); v != "" {
		d := v == "true"
		f.Delivered = &d
	}
	writeJSON(w, http.StatusOK, h.Store.Transactions(f))
}

func (h *PosHandler) cancelTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Cancel(chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *PosHandler) toggleDelivered(w http.ResponseWriter, r *http.Request) {
	delivered, err := h.Store.ToggleDelivered(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"delivered": delivered})
}

// --- inventory ---

func (h *PosHandler) listInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Data().Inventory)
}

func (h *PosHandler) listLowStock(w http.ResponseWriter, r *http.Request) {
	low := h.Store.LowStock()
	if low == nil {
		low = []pos.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, low)
}

type adjustStockReq struct {
	Action string `json:"action"`
	Value  any    `json:"value"` // number or numeric string, straight from a form field
}

func (h *PosHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	action, err := pos.ParseAdjustAction(req.Action)
	if err != nil {
		writeErr(w, err)
		return
	}
	value, err := cast.ToIntE(req.Value)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "masukkan jumlah valid"})
		return
	}
	item, err := h.Store.AdjustStock(chi.URLParam(r, "id"), action, value)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// --- catalog ---

func (h *PosHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	data := h.Store.Data()
	writeJSON(w, http.StatusOK, map[string][]pos.CatalogItem{
		"menu":     data.Menu,
		"toppings": data.Toppings,
		"drinks":   data.Drinks,
	})
}

func busyMessage(what string) map[string]string {
	return map[string]string{"error": fmt.Sprintf("%s masih diproses, harap tunggu", what)}
}
