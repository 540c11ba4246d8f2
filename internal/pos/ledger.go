package pos

import "fmt"

// AdjustAction is a manual stock mutation kind.
type AdjustAction string

const (
	AdjustAdd AdjustAction = "add"
	AdjustSet AdjustAction = "set"
)

func ParseAdjustAction(s string) (AdjustAction, error) {
	switch AdjustAction(s) {
	case AdjustAdd, AdjustSet:
		return AdjustAction(s), nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidInput, s)
}

// AdjustStock applies a manual adjustment to one inventory item.
// add: quantity = max(0, quantity+value); set: quantity = max(0, value).
// The commit path never clamps; manual adjustment always does.
func (s *Store) AdjustStock(id string, action AdjustAction, value int) (InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Inventory {
		if s.data.Inventory[i].ID != id {
			continue
		}
		q := value
		if action == AdjustAdd {
			q = s.data.Inventory[i].Quantity + value
		}
		if q < 0 {
			q = 0
		}
		s.data.Inventory[i].Quantity = q
		item := s.data.Inventory[i]
		s.persistLocked()
		if item.Low() {
			s.publish(TopicStockLow, StockLowEvent{
				StockID: item.ID, Name: item.Name,
				Quantity: item.Quantity, MinStock: item.MinStock,
			})
		}
		return item, nil
	}
	return InventoryItem{}, ErrNotFound
}

// LowStock lists inventory items at or below their minimum.
func (s *Store) LowStock() []InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []InventoryItem
	for _, it := range s.data.Inventory {
		if it.Low() {
			out = append(out, it)
		}
	}
	return out
}
