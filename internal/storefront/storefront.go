// Package storefront wires the state containers of one client together:
// session, catalog, cart, wishlist and order history over one storage view.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Hasna17806/ZYRA-sub000/internal/auth"
	"github.com/Hasna17806/ZYRA-sub000/internal/cart"
	"github.com/Hasna17806/ZYRA-sub000/internal/catalog"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
	"github.com/Hasna17806/ZYRA-sub000/internal/wishlist"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
)

// API is the part of the REST collaborator a storefront needs.
type API interface {
	auth.Directory
	catalog.Source
}

// Notifier hears about placed orders. Failures are logged, never surfaced to
// the shopper.
type Notifier interface {
	OrderPlaced(ctx context.Context, email string, o models.Order) error
}

type Option func(*options)

type options struct {
	now      func() time.Time
	notifier Notifier
	authOpts []auth.Option
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithAuthOptions(opts ...auth.Option) Option {
	return func(o *options) { o.authOpts = append(o.authOpts, opts...) }
}

type Storefront struct {
	Auth     *auth.Session
	Catalog  *catalog.State
	Cart     *cart.Container
	Wishlist *wishlist.Container
	Orders   *orders.History

	notifier Notifier
}

// New restores any stored session and loads that user's cart and wishlist
// (the guest ones when nobody is logged in).
func New(ctx context.Context, store storage.Store, api API, opts ...Option) (*Storefront, error) {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}

	sess := auth.NewSession(store, api, append([]auth.Option{auth.WithClock(o.now)}, o.authOpts...)...)
	if err := sess.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	ns := namespaceOf(sess)

	c, err := cart.Load(ctx, store, ns)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	w, err := wishlist.Load(ctx, store, ns)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	return &Storefront{
		Auth:     sess,
		Catalog:  catalog.NewState(api),
		Cart:     c,
		Wishlist: w,
		Orders:   orders.NewHistory(store).WithClock(o.now),
		notifier: o.notifier,
	}, nil
}

func namespaceOf(sess *auth.Session) storage.Namespace {
	u, _ := sess.Current()
	return storage.NewNamespace(u.ID)
}

// rebind points cart and wishlist at the namespace of whoever is logged in now.
func (s *Storefront) rebind(ctx context.Context) error {
	ns := namespaceOf(s.Auth)
	if err := s.Cart.Bind(ctx, ns); err != nil {
		return err
	}
	return s.Wishlist.Bind(ctx, ns)
}

func (s *Storefront) Register(ctx context.Context, in auth.RegisterInput) (models.User, error) {
	return s.Auth.Register(ctx, in)
}

func (s *Storefront) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := s.rebind(ctx); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Storefront) Logout(ctx context.Context) error {
	err := s.Auth.Logout(ctx)
	if rerr := s.rebind(ctx); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

// Checkout places an order from the current cart and empties the cart.
func (s *Storefront) Checkout(ctx context.Context, shipping models.ShippingInfo, payment string) (models.Order, error) {
	u, ok := s.Auth.Current()
	if !ok {
		return models.Order{}, auth.ErrNotAuthenticated
	}
	if err := validate.Shipping(shipping); err != nil {
		return models.Order{}, err
	}
	if err := validate.PaymentMethod(payment); err != nil {
		return models.Order{}, err
	}
	items := s.Cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	o, err := s.Orders.PlaceOrder(ctx, u, items, shipping, payment)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.Cart.ClearCart(ctx); err != nil {
		return o, fmt.Errorf("order %s placed, clearing cart: %w", o.ID, err)
	}
	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, u.Email, o); err != nil {
			log.Printf("notify order %s: %v", o.ID, err)
		}
	}
	return o, nil
}

// OrderHistory lists the current user's orders, most recent first.
func (s *Storefront) OrderHistory(ctx context.Context, page, size int) ([]models.Order, int, error) {
	u, ok := s.Auth.Current()
	if !ok {
		return nil, 0, auth.ErrNotAuthenticated
	}
	return s.Orders.Page(ctx, u.Email, page, size)
}

func (s *Storefront) ClearOrderHistory(ctx context.Context) error {
	u, ok := s.Auth.Current()
	if !ok {
		return auth.ErrNotAuthenticated
	}
	return s.Orders.ClearOrders(ctx, u.Email)
}

// MoveToCart takes a saved product out of the wishlist and adds one unit of
// it to the cart.
func (s *Storefront) MoveToCart(ctx context.Context, id models.ID) error {
	p, ok := s.Wishlist.Lookup(id)
	if !ok {
		return ErrProductNotFound
	}
	if err := s.Cart.AddToCart(ctx, p, 1); err != nil {
		return err
	}
	return s.Wishlist.RemoveFromWishlist(ctx, id)
}

// Product finds a product in the loaded catalog, fetching it once if the
// catalog was never loaded.
func (s *Storefront) Product(ctx context.Context, id models.ID) (models.Product, error) {
	if p, ok := s.Catalog.Lookup(id); ok {
		return p, nil
	}
	if !s.Catalog.Loaded() {
		if err := s.Catalog.FetchAll(ctx); err != nil {
			return models.Product{}, err
		}
		if p, ok := s.Catalog.Lookup(id); ok {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
