package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/go-chi/chi/v5"
)

func (h *PosHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Data().Settings)
}

func (h *PosHandler) putSettings(w http.ResponseWriter, r *http.Request) {
	var set pos.Settings
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	h.Store.UpdateSettings(set)
	writeJSON(w, http.StatusOK, set)
}

func catalogKind(w http.ResponseWriter, r *http.Request) (pos.CatalogKind, bool) {
	kind, err := pos.ParseCatalogKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeErr(w, err)
		return "", false
	}
	return kind, true
}

func (h *PosHandler) addCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := catalogKind(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.AddCatalogItem(kind))
}

type catalogUpdateReq struct {
	Name     *string `json:"name"`
	Price    *int    `json:"price"`
	StockID  *string `json:"stockId"`
	StockQty *int    `json:"qty"`
}

func (h *PosHandler) updateCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := catalogKind(w, r)
	if !ok {
		return
	}
	var req catalogUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	item, err := h.Store.UpdateCatalogItem(kind, chi.URLParam(r, "id"), pos.CatalogUpdate{
		Name:     req.Name,
		Price:    req.Price,
		StockID:  req.StockID,
		StockQty: req.StockQty,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *PosHandler) deleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := catalogKind(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteCatalogItem(kind, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PosHandler) addInventoryItem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.Store.AddInventoryItem())
}

type inventoryUpdateReq struct {
	Name     *string `json:"name"`
	MinStock *int    `json:"minStock"`
}

func (h *PosHandler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	item, err := h.Store.UpdateInventoryItem(chi.URLParam(r, "id"), pos.InventoryUpdate{
		Name:     req.Name,
		MinStock: req.MinStock,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *PosHandler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteInventoryItem(chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
