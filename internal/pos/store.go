package pos

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot persists the whole AppData document. Save is best-effort:
// the store logs failures and keeps serving from memory.
type Snapshot interface {
	Save(raw []byte) error
	Load() ([]byte, error)
}

// Bus is the in-process event bus (EventBus.Bus satisfies it).
type Bus interface {
	Publish(topic string, args ...interface{})
}

// Store owns the application state. Every mutation goes through one of
// its methods under the mutex, so a stock check and the decrement it
// guards can never interleave with another operation.
type Store struct {
	mu   sync.Mutex
	data AppData
	snap Snapshot
	bus  Bus
}

// NewStore loads the snapshot (merging defaults for missing sections) or
// starts from the seed dataset. A broken snapshot is logged, not fatal.
func NewStore(snap Snapshot, bus Bus) *Store {
	s := &Store{snap: snap, bus: bus, data: DefaultData()}
	if snap == nil {
		return s
	}
	raw, err := snap.Load()
	if err != nil {
		zap.S().Errorf("snapshot load: %v", err)
		return s
	}
	data, err := DecodeAppData(raw)
	if err != nil {
		zap.S().Errorf("snapshot decode, falling back to defaults: %v", err)
		return s
	}
	s.data = data
	return s
}

func newID(prefix string) string { return prefix + "-" + uuid.NewString() }

func cloneOrder(o Order) Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	if o.CreatedAt != nil {
		t := *o.CreatedAt
		out.CreatedAt = &t
	}
	return out
}

func cloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	for i, t := range in {
		out[i] = cloneOrder(t)
	}
	return out
}

// persistLocked serializes current state into the snapshot store.
// Caller holds s.mu.
func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		zap.S().Errorf("snapshot marshal: %v", err)
		return
	}
	if err := s.snap.Save(raw); err != nil {
		zap.S().Errorf("snapshot save: %v", err)
	}
}

func (s *Store) publish(topic string, args ...interface{}) {
	if s.bus != nil {
		s.bus.Publish(topic, args...)
	}
}

// Data returns a deep copy of the aggregate for read-side consumers.
func (s *Store) Data() AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.data
	out.Menu = append([]CatalogItem(nil), s.data.Menu...)
	out.Toppings = append([]CatalogItem(nil), s.data.Toppings...)
	out.Drinks = append([]CatalogItem(nil), s.data.Drinks...)
	out.Inventory = append([]InventoryItem(nil), s.data.Inventory...)
	out.Transactions = cloneTransactions(s.data.Transactions)
	out.Expenses = append([]Expense(nil), s.data.Expenses...)
	return out
}

// StockByID implements the stock lookup the cart builder pre-checks
// against.
func (s *Store) StockByID(id string) (InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.data.Inventory {
		if it.ID == id {
			return it, true
		}
	}
	return InventoryItem{}, false
}

// CatalogItemByID searches menu, toppings and drinks in that order.
func (s *Store) CatalogItemByID(id string) (CatalogItem, CatalogKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range []CatalogKind{KindMenu, KindToppings, KindDrinks} {
		for _, it := range *s.catalogSliceLocked(kind) {
			if it.ID == id {
				return it, kind, true
			}
		}
	}
	return CatalogItem{}, "", false
}

func (s *Store) menuHasLocked(id string) bool {
	for _, m := range s.data.Menu {
		if m.ID == id {
			return true
		}
	}
	return false
}

// TxnFilter narrows the transaction list; zero values mean "all".
type TxnFilter struct {
	Date      string // calendar day, "2006-01-02"
	Status    PaymentStatus
	Method    PaymentMethod
	Name      string // customer substring, case-insensitive
	Delivered *bool
}

// Transactions returns committed orders, most recent first, after
// applying the filter.
func (s *Store) Transactions(f TxnFilter) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transaction, 0, len(s.data.Transactions))
	for _, t := range s.data.Transactions {
		if f.Date != "" && (t.CreatedAt == nil || t.CreatedAt.UTC().Format("2006-01-02") != f.Date) {
			continue
		}
		if f.Status != "" && t.Payment.Status != f.Status {
			continue
		}
		if f.Method != "" && t.Payment.Method != f.Method {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(t.CustomerName), strings.ToLower(f.Name)) {
			continue
		}
		if f.Delivered != nil && t.Delivered != *f.Delivered {
			continue
		}
		out = append(out, cloneOrder(t))
	}
	return out
}

// TransactionByID is used to load an existing order into the builder
// for editing. The copy is deep so edits never touch the store.
func (s *Store) TransactionByID(id string) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.data.Transactions {
		if t.ID == id {
			return cloneOrder(t), nil
		}
	}
	return Transaction{}, ErrNotFound
}

// ToggleDelivered flips the delivery flag and returns the new value.
func (s *Store) ToggleDelivered(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Transactions {
		if s.data.Transactions[i].ID == id {
			s.data.Transactions[i].Delivered = !s.data.Transactions[i].Delivered
			s.persistLocked()
			return s.data.Transactions[i].Delivered, nil
		}
	}
	return false, ErrNotFound
}

// AddExpense records an expense, most recent first.
func (s *Store) AddExpense(description string, amount int) (Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" || amount <= 0 {
		return Expense{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Expense{
		ID:          newID("EXP"),
		Description: description,
		Amount:      amount,
		Date:        time.Now().UTC(),
	}
	s.data.Expenses = append([]Expense{e}, s.data.Expenses...)
	s.persistLocked()
	s.publish(TopicExpenseAdded, e)
	return e, nil
}

// UpdateSettings replaces the presentation settings wholesale.
func (s *Store) UpdateSettings(set Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = set
	s.persistLocked()
}
