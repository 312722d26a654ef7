package cart

type EventType string

const (
	ItemAdded         EventType = "item_added"
	QuantityIncreased EventType = "quantity_increased"
	QuantityChanged   EventType = "quantity_changed"
	ItemRemoved       EventType = "item_removed"
	CartCleared       EventType = "cart_cleared"
)

// Event describes what a mutation did. Quantity is the line's quantity after
// the change (0 once removed); Count is the number of lines a clear removed.
type Event struct {
	Type     EventType `json:"type"`
	ItemID   string    `json:"item_id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Kind     Kind      `json:"kind,omitempty"`
	Quantity int       `json:"quantity"`
	Count    int       `json:"count,omitempty"`
}
