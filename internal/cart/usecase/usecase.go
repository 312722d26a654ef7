package usecase

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-storefront/internal/auth"
	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Shipping          cart.ShippingPolicy
	MedicineMaxPerAdd int
}

type cartUseCase struct {
	products  product.UseCase
	medicines medicine.UseCase
	publisher cart.Publisher
	tr        *i18n.Translator
	cfg       Config
	logger    logger.ZapLogger

	mu       sync.Mutex
	sessions map[string]*session
}

// session serializes the catalog checks and the mutation they guard, so
// concurrent adds in one cart cannot pass the stock check together.
type session struct {
	mu  sync.Mutex
	agg *cart.Aggregator
}

// NewCartUseCase keeps one aggregator per session in memory. publisher may be nil.
func NewCartUseCase(products product.UseCase, medicines medicine.UseCase, publisher cart.Publisher, tr *i18n.Translator, cfg Config, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		products:  products,
		medicines: medicines,
		publisher: publisher,
		tr:        tr,
		cfg:       cfg,
		logger:    log,
		sessions:  make(map[string]*session),
	}
}

func (u *cartUseCase) session(ctx context.Context, create bool) (string, *session, error) {
	id := auth.GetSessionID(ctx)
	if id == "" {
		return "", nil, cart.ErrNoSession
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[id]
	if !ok && create {
		s = &session{agg: cart.NewAggregator()}
		u.sessions[id] = s
	}
	return id, s, nil
}

func (u *cartUseCase) GetCart(ctx context.Context) (*cart.View, error) {
	id, s, err := u.session(ctx, false)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return u.view(id, nil), nil
	}
	return u.view(id, s.agg), nil
}

func (u *cartUseCase) AddItem(ctx context.Context, kind cart.Kind, itemID string, quantity int) (*cart.View, error) {
	if quantity < 1 {
		return nil, errors.Wrapf(cart.ErrInvalidQuantity, "got %d", quantity)
	}
	id, s, err := u.session(ctx, true)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := u.resolve(ctx, kind, itemID, s.agg.Quantity(itemID)+quantity)
	if err != nil {
		return nil, err
	}
	if kind == cart.KindMedicine && quantity > u.cfg.MedicineMaxPerAdd {
		return nil, errors.Wrapf(cart.ErrQuantityLimit, "at most %d per add", u.cfg.MedicineMaxPerAdd)
	}

	ev, err := s.agg.AddItem(item, quantity)
	if err != nil {
		return nil, err
	}
	return u.applied(ctx, id, s.agg, ev), nil
}

func (u *cartUseCase) RemoveItem(ctx context.Context, itemID string) (*cart.View, error) {
	id, s, err := u.session(ctx, false)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return u.view(id, nil), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.agg.RemoveItem(itemID)
	if !ok {
		return u.view(id, s.agg), nil
	}
	return u.applied(ctx, id, s.agg, ev), nil
}

func (u *cartUseCase) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*cart.View, error) {
	id, s, err := u.session(ctx, false)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return u.view(id, nil), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity > 0 {
		for _, l := range s.agg.Lines() {
			if l.ID != itemID {
				continue
			}
			if _, err := u.resolve(ctx, l.Kind, l.ID, quantity); err != nil {
				return nil, err
			}
			if l.Kind == cart.KindMedicine && quantity > u.cfg.MedicineMaxPerAdd {
				return nil, errors.Wrapf(cart.ErrQuantityLimit, "at most %d", u.cfg.MedicineMaxPerAdd)
			}
		}
	}

	ev, ok := s.agg.UpdateQuantity(itemID, quantity)
	if !ok {
		return u.view(id, s.agg), nil
	}
	return u.applied(ctx, id, s.agg, ev), nil
}

func (u *cartUseCase) ClearCart(ctx context.Context) (*cart.View, error) {
	id, s, err := u.session(ctx, true)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.applied(ctx, id, s.agg, s.agg.Clear()), nil
}

// resolve loads the catalog entry and checks it can be held at want units.
func (u *cartUseCase) resolve(ctx context.Context, kind cart.Kind, id string, want int) (cart.Item, error) {
	switch kind {
	case cart.KindProduct:
		p, err := u.products.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return cart.Item{}, errors.Wrap(cart.ErrNotFound, id)
			}
			return cart.Item{}, err
		}
		if want > p.Stock {
			return cart.Item{}, errors.Wrapf(cart.ErrOutOfStock, "%s has %d left", p.Name, p.Stock)
		}
		return cart.Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.ImageURL, Kind: kind}, nil

	case cart.KindMedicine:
		m, err := u.medicines.GetMedicine(ctx, id)
		if err != nil {
			if errors.Is(err, medicine.ErrNotFound) {
				return cart.Item{}, errors.Wrap(cart.ErrNotFound, id)
			}
			return cart.Item{}, err
		}
		if !m.InStock {
			return cart.Item{}, errors.Wrap(cart.ErrOutOfStock, m.Name)
		}
		if m.RequiresPrescription {
			return cart.Item{}, errors.Wrap(cart.ErrPrescriptionRequired, m.Name)
		}
		return cart.Item{ID: m.ID, Name: m.Name, Price: m.Price, Image: m.ImageURL, Kind: kind}, nil

	default:
		return cart.Item{}, errors.Wrapf(cart.ErrInvalidItem, "unknown kind %q", kind)
	}
}

func (u *cartUseCase) applied(ctx context.Context, id string, agg *cart.Aggregator, ev cart.Event) *cart.View {
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, id, ev); err != nil {
			u.logger.Warn("failed to publish cart event",
				zap.String("session_id", id),
				zap.String("type", string(ev.Type)),
				zap.Error(err),
			)
		}
	}

	v := u.view(id, agg)
	v.Notification = u.notify(auth.GetLocale(ctx), ev)
	return v
}

var messageIDs = map[cart.EventType]string{
	cart.ItemAdded:         "cart.added",
	cart.QuantityIncreased: "cart.increased",
	cart.QuantityChanged:   "cart.changed",
	cart.ItemRemoved:       "cart.removed",
	cart.CartCleared:       "cart.cleared",
}

func (u *cartUseCase) notify(lang string, ev cart.Event) *cart.Notification {
	base, ok := messageIDs[ev.Type]
	if !ok || u.tr == nil {
		return nil
	}

	data := map[string]interface{}{
		"Name":     ev.Name,
		"Quantity": ev.Quantity,
		"Count":    ev.Count,
	}
	var count interface{}
	if ev.Type == cart.CartCleared {
		count = ev.Count
	}
	return &cart.Notification{
		Title:   u.tr.Localize(lang, base+".title", data, nil),
		Message: u.tr.Localize(lang, base+".message", data, count),
	}
}

func (u *cartUseCase) view(id string, agg *cart.Aggregator) *cart.View {
	lines := []cart.Line{}
	if agg != nil {
		lines = agg.Lines()
	}
	return &cart.View{
		SessionID: id,
		Items:     lines,
		Summary:   u.cfg.Shipping.Summarize(lines),
	}
}
