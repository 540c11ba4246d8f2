package pos

import "time"

// CatalogItem is a sellable entry (main dish, topping or drink).
// StockID links it to the inventory item consumed per unit sold; empty
// means the item does not consume stock. StockQty is units consumed per
// sale (0 reads as 1, e.g. Mie Double uses 2 packs).
type CatalogItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	StockID string `json:"stockId"`
	StockQty int   `json:"qty,omitempty"`
}

func (c CatalogItem) UnitsPerSale() int {
	if c.StockQty <= 0 {
		return 1
	}
	return c.StockQty
}

type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"minStock"`
}

func (i InventoryItem) Low() bool { return i.Quantity <= i.MinStock }

type Payment struct {
	Status PaymentStatus `json:"status"`
	Method PaymentMethod `json:"method"`
}

// OrderItem is one cart line: a catalog item plus the quantity ordered.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	StockID  string `json:"stockId"`
	StockQty int    `json:"qty,omitempty"`
	Quantity int    `json:"quantity"`
}

func (it OrderItem) UnitsPerSale() int {
	if it.StockQty <= 0 {
		return 1
	}
	return it.StockQty
}

// Order is the in-progress cart. ID is empty until the first line is
// added; once committed it is persisted as a Transaction under the same id.
type Order struct {
	ID           string      `json:"id"`
	Items        []OrderItem `json:"items"`
	CustomerName string      `json:"customerName"`
	Payment      Payment     `json:"payment"`
	Delivered    bool        `json:"delivered"`
	CreatedAt    *time.Time  `json:"createdAt"`
	Total        int         `json:"total"`
}

// Transaction is a committed order. Same shape, id and createdAt are set.
type Transaction = Order

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	Date        time.Time `json:"date"`
}

// Settings is presentation payload owned by the UI; stored and merged
// field by field on load, never interpreted here.
type Settings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundImage string `json:"backgroundImage"`
}

// AppData is the whole application aggregate, persisted as one JSON
// document in the snapshot store.
type AppData struct {
	Menu         []CatalogItem   `json:"menu"`
	Toppings     []CatalogItem   `json:"toppings"`
	Drinks       []CatalogItem   `json:"drinks"`
	Inventory    []InventoryItem `json:"inventory"`
	Transactions []Transaction   `json:"transactions"`
	Expenses     []Expense       `json:"expenses"`
	Settings     Settings        `json:"settings"`
}
