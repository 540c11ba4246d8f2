package pos

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrNoMainItem  = errors.New("pesanan harus memiliki menu utama")
	ErrEmptyOrder  = errors.New("pesanan kosong")
	ErrInvalidInput = errors.New("invalid input")
)

// InsufficientStockError reports which inventory item cannot cover the
// aggregated demand. Name is what the user sees in the toast.
type InsufficientStockError struct {
	StockID   string
	Name      string
	Required  int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak cukup", e.Name)
}

func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
