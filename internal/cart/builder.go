// Package cart holds the in-progress order before it is committed.
package cart

import (
	"sync"
	"time"

	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/google/uuid"
)

// StockReader is the read-side view of the inventory ledger the builder
// pre-checks against. *pos.Store satisfies it.
type StockReader interface {
	StockByID(id string) (pos.InventoryItem, bool)
}

// Builder accumulates cart lines. Every mutation recomputes the total;
// a rejected mutation leaves the cart untouched.
type Builder struct {
	mu     sync.Mutex
	stocks StockReader
	order  pos.Order
}

func New(stocks StockReader) *Builder {
	return &Builder{stocks: stocks, order: newOrder()}
}

func newOrder() pos.Order {
	return pos.Order{
		Items:   []pos.OrderItem{},
		Payment: pos.Payment{Status: pos.StatusUnpaid, Method: pos.MethodCash},
	}
}

// Add puts one unit of a catalog item into the cart, merging with an
// existing line for the same item. The needed stock for the would-be
// quantity is checked against the ledger before anything changes.
// The first line stamps createdAt and assigns the order id.
func (b *Builder) Add(item pos.CatalogItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	qtyInCart := 0
	for _, line := range b.order.Items {
		if line.ID == item.ID {
			qtyInCart = line.Quantity
			break
		}
	}
	if err := b.checkStock(item.StockID, (qtyInCart+1)*item.UnitsPerSale()); err != nil {
		return err
	}

	if b.order.ID == "" && len(b.order.Items) == 0 {
		now := time.Now().UTC()
		b.order.CreatedAt = &now
		b.order.ID = "TRX-" + uuid.NewString()
	}

	if qtyInCart > 0 {
		for i := range b.order.Items {
			if b.order.Items[i].ID == item.ID {
				b.order.Items[i].Quantity++
				break
			}
		}
	} else {
		b.order.Items = append(b.order.Items, pos.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			StockID:  item.StockID,
			StockQty: item.StockQty,
			Quantity: 1,
		})
	}
	b.recalc()
	return nil
}

// Increment bumps an existing line by one, re-checking stock the same
// way Add does.
func (b *Builder) Increment(lineID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.order.Items {
		line := b.order.Items[i]
		if line.ID != lineID {
			continue
		}
		if err := b.checkStock(line.StockID, (line.Quantity+1)*line.UnitsPerSale()); err != nil {
			return err
		}
		b.order.Items[i].Quantity++
		b.recalc()
		return nil
	}
	return pos.ErrNotFound
}

// Decrement lowers a line by one; at quantity 1 the line is removed
// entirely, never left at zero.
func (b *Builder) Decrement(lineID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.order.Items {
		if b.order.Items[i].ID != lineID {
			continue
		}
		if b.order.Items[i].Quantity > 1 {
			b.order.Items[i].Quantity--
		} else {
			b.order.Items = append(b.order.Items[:i], b.order.Items[i+1:]...)
		}
		b.recalc()
		return nil
	}
	return pos.ErrNotFound
}

func (b *Builder) SetCustomer(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order.CustomerName = name
}

func (b *Builder) SetPaymentStatus(s pos.PaymentStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order.Payment.Status = s
}

func (b *Builder) SetPaymentMethod(m pos.PaymentMethod) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order.Payment.Method = m
}

func (b *Builder) SetDelivered(d bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order.Delivered = d
}

// Reset discards the cart and starts a fresh empty order.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = newOrder()
}

// Load replaces the cart with a copy of an existing transaction so it
// can be edited and re-committed under the same id.
func (b *Builder) Load(t pos.Transaction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = t
	b.order.Items = append([]pos.OrderItem(nil), t.Items...)
	if t.CreatedAt != nil {
		at := *t.CreatedAt
		b.order.CreatedAt = &at
	}
	b.recalc()
}

// Order returns a deep copy of the current cart.
func (b *Builder) Order() pos.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.order
	out.Items = append([]pos.OrderItem(nil), b.order.Items...)
	if b.order.CreatedAt != nil {
		at := *b.order.CreatedAt
		out.CreatedAt = &at
	}
	return out
}

func (b *Builder) recalc() {
	total := 0
	for _, line := range b.order.Items {
		total += line.Price * line.Quantity
	}
	b.order.Total = total
}

// checkStock rejects when the linked inventory item cannot cover the
// needed units. Lines without a known stock link are not checked.
func (b *Builder) checkStock(stockID string, needed int) error {
	if stockID == "" {
		return nil
	}
	stock, ok := b.stocks.StockByID(stockID)
	if !ok {
		return nil
	}
	if stock.Quantity < needed {
		return &pos.InsufficientStockError{
			StockID:   stock.ID,
			Name:      stock.Name,
			Required:  needed,
			Available: stock.Quantity,
		}
	}
	return nil
}
