package pos

// In-process event topics published on the app bus.
const (
	TopicOrderCommitted = "order.committed"
	TopicOrderCancelled = "order.cancelled"
	TopicStockLow       = "stock.low"
	TopicExpenseAdded   = "expense.added"
)

// StockLowEvent is the payload for TopicStockLow.
type StockLowEvent struct {
	StockID  string
	Name     string
	Quantity int
	MinStock int
}
