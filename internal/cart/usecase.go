package cart

import "context"

// Notification is the localized toast shown after a cart change.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// View is one session's cart as returned to the shopper.
type View struct {
	SessionID    string        `json:"session_id"`
	Items        []Line        `json:"items"`
	Summary      Summary       `json:"summary"`
	Notification *Notification `json:"notification,omitempty"`
}

// Publisher ships applied cart events downstream.
type Publisher interface {
	Publish(ctx context.Context, sessionID string, ev Event) error
}

// UseCase operates on the cart of the session carried by ctx.
// Removing or updating an id that is not in the cart is a no-op and carries no notification.
type UseCase interface {
	GetCart(ctx context.Context) (*View, error)
	AddItem(ctx context.Context, kind Kind, id string, quantity int) (*View, error)
	RemoveItem(ctx context.Context, id string) (*View, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*View, error)
	ClearCart(ctx context.Context) (*View, error)
}
