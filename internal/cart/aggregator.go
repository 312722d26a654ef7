package cart

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindProduct  Kind = "product"
	KindMedicine Kind = "medicine"
)

// Item is the catalog entry a line refers to.
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Kind  Kind            `json:"kind"`
}

type Line struct {
	Item
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Aggregator holds at most one line per item id, each with quantity >= 1.
// Every mutation runs under one lock, so each is atomic.
type Aggregator struct {
	mu    sync.Mutex
	lines []Line
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) find(id string) int {
	for i := range a.lines {
		if a.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem merges quantity into the existing line for item.ID or appends a new line.
// The stored name, price and image are those of the first add.
func (a *Aggregator) AddItem(item Item, quantity int) (Event, error) {
	if quantity < 1 {
		return Event{}, errors.Wrapf(ErrInvalidQuantity, "got %d", quantity)
	}
	if item.ID == "" {
		return Event{}, errors.Wrap(ErrInvalidItem, "empty id")
	}
	if item.Price.IsNegative() {
		return Event{}, errors.Wrapf(ErrInvalidItem, "negative price for %s", item.ID)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if i := a.find(item.ID); i >= 0 {
		a.lines[i].Quantity += quantity
		l := a.lines[i]
		return Event{Type: QuantityIncreased, ItemID: l.ID, Name: l.Name, Kind: l.Kind, Quantity: l.Quantity}, nil
	}
	a.lines = append(a.lines, Line{Item: item, Quantity: quantity})
	return Event{Type: ItemAdded, ItemID: item.ID, Name: item.Name, Kind: item.Kind, Quantity: quantity}, nil
}

// RemoveItem deletes the line. ok is false when no line had that id.
func (a *Aggregator) RemoveItem(id string) (ev Event, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remove(id)
}

func (a *Aggregator) remove(id string) (Event, bool) {
	i := a.find(id)
	if i < 0 {
		return Event{}, false
	}
	l := a.lines[i]
	a.lines = append(a.lines[:i], a.lines[i+1:]...)
	return Event{Type: ItemRemoved, ItemID: l.ID, Name: l.Name, Kind: l.Kind}, true
}

// UpdateQuantity sets the line's quantity; a quantity <= 0 removes the line.
// ok is false when no line had that id.
func (a *Aggregator) UpdateQuantity(id string, quantity int) (ev Event, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity <= 0 {
		return a.remove(id)
	}
	i := a.find(id)
	if i < 0 {
		return Event{}, false
	}
	a.lines[i].Quantity = quantity
	l := a.lines[i]
	return Event{Type: QuantityChanged, ItemID: l.ID, Name: l.Name, Kind: l.Kind, Quantity: quantity}, true
}

func (a *Aggregator) Clear() Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := len(a.lines)
	a.lines = nil
	return Event{Type: CartCleared, Count: n}
}

// Lines returns a copy in insertion order.
func (a *Aggregator) Lines() []Line {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Quantity of the line for id, 0 when absent.
func (a *Aggregator) Quantity(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i := a.find(id); i >= 0 {
		return a.lines[i].Quantity
	}
	return 0
}

func (a *Aggregator) TotalItems() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, l := range a.lines {
		n += l.Quantity
	}
	return n
}

func (a *Aggregator) TotalPrice() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := decimal.Zero
	for _, l := range a.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
