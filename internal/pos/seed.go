package pos

import "encoding/json"

// SnapshotKey is the fixed document name in the durable store. Kept from
// the original dataset so old snapshots keep loading.
const SnapshotKey = "warmindoAppData"

// DefaultData is the seed dataset for a fresh install.
func DefaultData() AppData {
	return AppData{
		Menu: []CatalogItem{
			{ID: "menu-1", Name: "Mie Goreng", Price: 8000, StockID: "stock-1"},
			{ID: "menu-2", Name: "Mie Kuah", Price: 8000, StockID: "stock-1"},
			{ID: "menu-3", Name: "Mie Double", Price: 13000, StockID: "stock-1", StockQty: 2},
		},
		Toppings: []CatalogItem{
			{ID: "top-1", Name: "Sosis", Price: 2000, StockID: "stock-2"},
			{ID: "top-2", Name: "Pangsit", Price: 2000, StockID: "stock-3"},
			{ID: "top-3", Name: "Bakso", Price: 3000, StockID: "stock-4"},
			{ID: "top-4", Name: "Tahu", Price: 1500, StockID: "stock-5"},
		},
		Drinks: []CatalogItem{
			{ID: "drink-1", Name: "Air Mineral", Price: 5000, StockID: "stock-6"},
		},
		Inventory: []InventoryItem{
			{ID: "stock-1", Name: "Indomie (bks)", Quantity: 40, MinStock: 10},
			{ID: "stock-2", Name: "Sosis (pcs)", Quantity: 50, MinStock: 10},
			{ID: "stock-3", Name: "Pangsit (pcs)", Quantity: 50, MinStock: 10},
			{ID: "stock-4", Name: "Bakso (biji)", Quantity: 30, MinStock: 9},
			{ID: "stock-5", Name: "Tahu (pcs)", Quantity: 20, MinStock: 5},
			{ID: "stock-6", Name: "Air Mineral (btl)", Quantity: 24, MinStock: 5},
		},
		Transactions: []Transaction{},
		Expenses:     []Expense{},
		Settings: Settings{
			PrimaryColor:   "#4A5568",
			SecondaryColor: "#FDFBF6",
		},
	}
}

// DecodeAppData parses a stored snapshot, defaulting any missing
// top-level section onto the seed dataset and missing settings fields
// individually. A nil/empty document yields the full default.
func DecodeAppData(raw []byte) (AppData, error) {
	def := DefaultData()
	if len(raw) == 0 {
		return def, nil
	}

	var parsed struct {
		Menu         *[]CatalogItem   `json:"menu"`
		Toppings     *[]CatalogItem   `json:"toppings"`
		Drinks       *[]CatalogItem   `json:"drinks"`
		Inventory    *[]InventoryItem `json:"inventory"`
		Transactions *[]Transaction   `json:"transactions"`
		Expenses     *[]Expense       `json:"expenses"`
		Settings     *struct {
			PrimaryColor    *string `json:"primaryColor"`
			SecondaryColor  *string `json:"secondaryColor"`
			BackgroundImage *string `json:"backgroundImage"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return def, err
	}

	out := def
	if parsed.Menu != nil {
		out.Menu = *parsed.Menu
	}
	if parsed.Toppings != nil {
		out.Toppings = *parsed.Toppings
	}
	if parsed.Drinks != nil {
		out.Drinks = *parsed.Drinks
	}
	if parsed.Inventory != nil {
		out.Inventory = *parsed.Inventory
	}
	if parsed.Transactions != nil {
		out.Transactions = *parsed.Transactions
	}
	if parsed.Expenses != nil {
		out.Expenses = *parsed.Expenses
	}
	if s := parsed.Settings; s != nil {
		if s.PrimaryColor != nil {
			out.Settings.PrimaryColor = *s.PrimaryColor
		}
		if s.SecondaryColor != nil {
			out.Settings.SecondaryColor = *s.SecondaryColor
		}
		if s.BackgroundImage != nil {
			out.Settings.BackgroundImage = *s.BackgroundImage
		}
	}
	return out, nil
}
