package pos

import "fmt"

// CatalogKind tags which catalog list a record lives in.
type CatalogKind string

const (
	KindMenu     CatalogKind = "menu"
	KindToppings CatalogKind = "toppings"
	KindDrinks   CatalogKind = "drinks"
)

func ParseCatalogKind(s string) (CatalogKind, error) {
	switch CatalogKind(s) {
	case KindMenu, KindToppings, KindDrinks:
		return CatalogKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown catalog kind %q", ErrInvalidInput, s)
}

func (s *Store) catalogSliceLocked(kind CatalogKind) *[]CatalogItem {
	switch kind {
	case KindToppings:
		return &s.data.Toppings
	case KindDrinks:
		return &s.data.Drinks
	default:
		return &s.data.Menu
	}
}

// CatalogUpdate carries the editable fields of a catalog item; nil
// means "leave as is".
type CatalogUpdate struct {
	Name     *string
	Price    *int
	StockID  *string
	StockQty *int
}

func (s *Store) UpdateCatalogItem(kind CatalogKind, id string, upd CatalogUpdate) (CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.catalogSliceLocked(kind)
	for i := range *items {
		if (*items)[i].ID != id {
			continue
		}
		if upd.Name != nil {
			(*items)[i].Name = *upd.Name
		}
		if upd.Price != nil {
			(*items)[i].Price = *upd.Price
		}
		if upd.StockID != nil {
			(*items)[i].StockID = *upd.StockID
		}
		if upd.StockQty != nil {
			(*items)[i].StockQty = *upd.StockQty
		}
		s.persistLocked()
		return (*items)[i], nil
	}
	return CatalogItem{}, ErrNotFound
}

// AddCatalogItem appends a blank record to the given kind.
func (s *Store) AddCatalogItem(kind CatalogKind) CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := CatalogItem{ID: newID(string(kind)[:3]), Name: "Item Baru"}
	items := s.catalogSliceLocked(kind)
	*items = append(*items, it)
	s.persistLocked()
	return it
}

// DeleteCatalogItem removes a record. Past transactions keep their
// copied line data, so deleting a referenced item is allowed.
func (s *Store) DeleteCatalogItem(kind CatalogKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.catalogSliceLocked(kind)
	for i := range *items {
		if (*items)[i].ID == id {
			*items = append((*items)[:i], (*items)[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// InventoryUpdate carries the editable metadata of an inventory item;
// quantity changes go through AdjustStock instead.
type InventoryUpdate struct {
	Name     *string
	MinStock *int
}

func (s *Store) UpdateInventoryItem(id string, upd InventoryUpdate) (InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Inventory {
		if s.data.Inventory[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.data.Inventory[i].Name = *upd.Name
		}
		if upd.MinStock != nil {
			m := *upd.MinStock
			if m < 0 {
				m = 0
			}
			s.data.Inventory[i].MinStock = m
		}
		s.persistLocked()
		return s.data.Inventory[i], nil
	}
	return InventoryItem{}, ErrNotFound
}

func (s *Store) AddInventoryItem() InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := InventoryItem{ID: newID("stock"), Name: "Item Baru", MinStock: 5}
	s.data.Inventory = append(s.data.Inventory, it)
	s.persistLocked()
	return it
}

func (s *Store) DeleteInventoryItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Inventory {
		if s.data.Inventory[i].ID == id {
			s.data.Inventory = append(s.data.Inventory[:i], s.data.Inventory[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
