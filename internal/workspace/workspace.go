// Package workspace wires the state containers and page services of one
// browser visitor around a dedicated API client.
package workspace

import (
	"context"
	"net/http"
	"time"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/logger"
	cartrepo "guarashopp-storefront/internal/repository/cart"
	categoryrepo "guarashopp-storefront/internal/repository/category"
	custrepo "guarashopp-storefront/internal/repository/customer"
	orderrepo "guarashopp-storefront/internal/repository/order"
	productrepo "guarashopp-storefront/internal/repository/product"
	"guarashopp-storefront/internal/repository/storage"
	"guarashopp-storefront/internal/service/alert"
	"guarashopp-storefront/internal/service/cart"
	"guarashopp-storefront/internal/service/category"
	"guarashopp-storefront/internal/service/checkout"
	"guarashopp-storefront/internal/service/customer"
	"guarashopp-storefront/internal/service/layout"
	"guarashopp-storefront/internal/service/order"
	"guarashopp-storefront/internal/service/product"
)

// Deps are shared by every workspace.
type Deps struct {
	APIBaseURL    string
	APITimeout    time.Duration
	AlertDuration time.Duration
	Store         storage.Repository
	Logger        *logger.Logger
	// HTTPClient overrides the timeout-based client; tests point it at httptest.
	HTTPClient *http.Client
}

type Workspace struct {
	VisitorID string

	API        *apiclient.Client
	Session    *customer.Service
	Cart       *cart.Service
	Layout     *layout.Service
	Alerts     *alert.Service
	Products   *product.Service
	Categories *category.Service
	Orders     *order.Service
	Checkout   *checkout.Service
}

// New builds the visitor's workspace and restores the persisted session and
// cart mirror.
func New(ctx context.Context, deps Deps, visitorID string) *Workspace {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	opts := []apiclient.Option{apiclient.WithLogger(log.With("apiclient"))}
	if deps.HTTPClient != nil {
		opts = append(opts, apiclient.WithHTTPClient(deps.HTTPClient))
	} else if deps.APITimeout > 0 {
		opts = append(opts, apiclient.WithTimeout(deps.APITimeout))
	}
	api := apiclient.New(deps.APIBaseURL, opts...)
	bucket := storage.NewBucket(deps.Store, visitorID)

	session := customer.New(custrepo.NewREST(api), bucket, log.With("session"))
	api.SetTokenSource(session.Token)
	api.OnUnauthorized(session.HandleUnauthorized)

	alertOpts := []alert.Option{}
	if deps.AlertDuration > 0 {
		alertOpts = append(alertOpts, alert.WithDefaultDuration(deps.AlertDuration))
	}

	orderRepo := orderrepo.NewREST(api)
	w := &Workspace{
		VisitorID:  visitorID,
		API:        api,
		Session:    session,
		Cart:       cart.New(cartrepo.NewREST(api), session.UserID, bucket, log.With("cart")),
		Layout:     layout.New(),
		Alerts:     alert.New(alertOpts...),
		Products:   product.New(productrepo.NewREST(api)),
		Categories: category.New(categoryrepo.NewREST(api)),
		Orders:     order.New(orderRepo, session.UserID),
	}
	w.Checkout = checkout.New(session, w.Cart, orderRepo, log.With("checkout"))

	session.OnLogout(func(ctx context.Context) {
		w.Cart.Reset(ctx)
		w.Layout.HideCart()
	})

	session.Restore(ctx)
	w.Cart.Restore(ctx)
	return w
}

// Close stops pending alert timers. Persisted state survives.
func (w *Workspace) Close() {
	w.Alerts.Close()
}
