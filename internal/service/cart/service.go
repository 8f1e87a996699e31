package cart

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/logger"
	cartrepo "guarashopp-storefront/internal/repository/cart"
)

// UserSource returns the authenticated user's id, or "" when nobody is logged in.
type UserSource func() domain.ID

type cartRepo interface {
	Get(ctx context.Context, userID domain.ID) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID domain.ID, quantity int) (*domain.CartLine, error)
	UpdateItem(ctx context.Context, userID, itemID domain.ID, quantity int) (*domain.CartLine, error)
	RemoveItem(ctx context.Context, userID, itemID domain.ID) error
	Clear(ctx context.Context, userID domain.ID) error
}

// Service mirrors one user's server cart. Add, update and remove are applied
// locally first and reconciled when the backend answers.
//
// Lines are keyed by product id. For every product the service keeps the last
// line the server confirmed, the sequence number of the newest mutation and
// the number of mutations still in flight. A response only changes the visible
// line when it answers the newest mutation; once nothing is in flight for a
// product its visible line is the confirmed one. Reset, Clear and a completed
// Fetch start a new epoch, and answers from an older epoch are dropped.
type Service struct {
	repo   cartRepo
	user   UserSource
	mirror *mirror
	logger *logger.Logger

	mu           sync.Mutex
	cartID       domain.ID
	total        decimal.Decimal
	order        []domain.ID
	lines        map[domain.ID]domain.CartLine
	confirmed    map[domain.ID]domain.CartLine
	seq          map[domain.ID]uint64
	confirmedSeq map[domain.ID]uint64
	pending      map[domain.ID]int
	epoch        uint64
	fetchGen     uint64
	version      uint64
	// syncedFor is the user whose server cart was last fetched wholesale.
	syncedFor domain.ID
}

func New(repo cartrepo.Repository, user UserSource, store mirrorStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		repo:   repo,
		user:   user,
		mirror: newMirror(store, log),
		logger: log,
	}
	s.resetLocked()
	return s
}

// Snapshot returns the visible cart in display order.
func (s *Service) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Total is computed from the visible lines, never from the server total.
func (s *Service) Total() decimal.Decimal {
	return s.Snapshot().ItemsTotal()
}

// Fetch replaces the local cart with the server's. Without a user, or when
// the read fails, the local cart is emptied; the error is returned for display.
// The answer is dropped when another Fetch started later or the cart was reset
// while it was in flight.
func (s *Service) Fetch(ctx context.Context) error {
	userID := s.currentUser()

	s.mu.Lock()
	if userID == "" {
		s.startEpochLocked()
		s.resetLocked()
		version := s.bumpVersionLocked()
		s.mu.Unlock()
		s.mirror.clear(ctx, version)
		return nil
	}
	s.fetchGen++
	gen, epoch := s.fetchGen, s.epoch
	s.mu.Unlock()

	cart, err := s.repo.Get(ctx, userID)

	s.mu.Lock()
	// A newer fetch, a Reset or a Clear owns the cart now.
	if gen != s.fetchGen || epoch != s.epoch {
		s.mu.Unlock()
		return err
	}
	s.startEpochLocked()
	s.resetLocked()
	if err != nil {
		version := s.bumpVersionLocked()
		s.mu.Unlock()
		s.logger.Error().Err(err).Str("userId", userID.String()).Msg("fetch cart failed")
		s.mirror.clear(ctx, version)
		return err
	}
	s.replaceLocked(*cart)
	s.syncedFor = userID
	state, version := s.mirrorStateLocked(userID)
	s.mu.Unlock()

	s.mirror.save(ctx, state, version)
	return nil
}

// Sync fetches the server cart unless it was already fetched for the current
// user. A cart restored from the mirror is not synced until then.
func (s *Service) Sync(ctx context.Context) error {
	userID := s.currentUser()
	if userID == "" {
		return nil
	}
	s.mu.Lock()
	synced := s.syncedFor == userID
	s.mu.Unlock()
	if synced {
		return nil
	}
	return s.Fetch(ctx)
}

// AddWithStock adds quantity units of product, refusing before any network
// call when the cart would hold more than product.Stock units.
func (s *Service) AddWithStock(ctx context.Context, product domain.Product, quantity int) (*domain.CartLine, error) {
	userID := s.currentUser()
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	key := product.ID

	s.mu.Lock()
	prev, existed := s.lines[key]
	inCart := 0
	if existed {
		inCart = prev.Quantity
	}
	if inCart+quantity > product.Stock {
		s.mu.Unlock()
		return nil, &domain.StockError{Product: product.Name, Stock: product.Stock, InCart: inCart, Requested: quantity}
	}

	line := prev
	if existed {
		line.Quantity += quantity
	} else {
		line = domain.CartLine{ID: domain.TempLineID(key), ProductID: key, Quantity: quantity, Product: product}
	}
	s.lines[key] = line
	if !slices.Contains(s.order, key) {
		s.order = append(s.order, key)
	}
	op := s.beginLocked(key)
	s.mu.Unlock()

	server, err := s.repo.AddItem(ctx, userID, key, quantity)
	if err != nil {
		s.logger.Warn().Err(err).Str("userId", userID.String()).Str("productId", key.String()).Msg("add to cart failed")
		s.fail(op)
		return nil, err
	}

	confirmed := *server
	confirmed.ProductID = key
	confirmed.Product = domain.MergeProduct(line.Product, server.Product)
	if confirmed.ID == "" {
		// Without a line id the mirror cannot be reconciled; reload it.
		s.fail(op)
		if ferr := s.Fetch(ctx); ferr != nil {
			return nil, ferr
		}
		return &confirmed, nil
	}
	s.succeed(ctx, userID, op, &confirmed)
	return &confirmed, nil
}

// UpdateItem sets the quantity of a confirmed line. When the line's product
// snapshot knows its stock the new quantity must not exceed it.
func (s *Service) UpdateItem(ctx context.Context, itemID domain.ID, quantity int) (*domain.CartLine, error) {
	userID := s.currentUser()
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	key, line, ok := s.findLocked(itemID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if line.Temporary() {
		s.mu.Unlock()
		return nil, domain.ErrLinePending
	}
	if stock := line.Product.Stock; stock > 0 && quantity > stock {
		s.mu.Unlock()
		return nil, &domain.StockError{Product: line.Product.Name, Stock: stock, InCart: line.Quantity, Requested: quantity}
	}
	line.Quantity = quantity
	s.lines[key] = line
	op := s.beginLocked(key)
	s.mu.Unlock()

	server, err := s.repo.UpdateItem(ctx, userID, itemID, quantity)
	if err != nil {
		s.logger.Warn().Err(err).Str("userId", userID.String()).Str("itemId", itemID.String()).Msg("update cart item failed")
		s.fail(op)
		return nil, err
	}

	confirmed := *server
	if confirmed.ID == "" {
		confirmed.ID = itemID
	}
	if confirmed.Quantity == 0 {
		confirmed.Quantity = quantity
	}
	confirmed.ProductID = key
	confirmed.Product = domain.MergeProduct(line.Product, server.Product)
	s.succeed(ctx, userID, op, &confirmed)
	return &confirmed, nil
}

// RemoveItem drops a confirmed line. The line keeps its display position
// until the backend answers so a rejected removal restores it in place.
func (s *Service) RemoveItem(ctx context.Context, itemID domain.ID) error {
	userID := s.currentUser()
	if userID == "" {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	key, line, ok := s.findLocked(itemID)
	if !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if line.Temporary() {
		s.mu.Unlock()
		return domain.ErrLinePending
	}
	delete(s.lines, key)
	op := s.beginLocked(key)
	s.mu.Unlock()

	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		s.logger.Warn().Err(err).Str("userId", userID.String()).Str("itemId", itemID.String()).Msg("remove cart item failed")
		s.fail(op)
		return err
	}
	s.succeed(ctx, userID, op, nil)
	return nil
}

// Clear empties the server cart and, once it succeeds, the local one and its
// mirror. A failed clear leaves everything as it was.
func (s *Service) Clear(ctx context.Context) error {
	userID := s.currentUser()
	if userID == "" {
		return domain.ErrNotAuthenticated
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("userId", userID.String()).Msg("clear cart failed")
		return err
	}
	s.Reset(ctx)
	return nil
}

// Reset drops local state and the mirror without calling the backend. It runs on logout.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	s.startEpochLocked()
	s.resetLocked()
	version := s.bumpVersionLocked()
	s.mu.Unlock()
	s.mirror.clear(ctx, version)
}

// Restore loads the mirrored cart of the current user, if any. A mirror left
// by another user is discarded.
func (s *Service) Restore(ctx context.Context) {
	userID := s.currentUser()
	state, err := s.mirror.load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("cart mirror unreadable")
		}
		return
	}
	if userID == "" || state.UserID != userID {
		s.Reset(ctx)
		return
	}
	s.mu.Lock()
	s.startEpochLocked()
	s.resetLocked()
	s.replaceLocked(state.Cart)
	s.mu.Unlock()
}

type operation struct {
	key   domain.ID
	seq   uint64
	epoch uint64
}

func (s *Service) beginLocked(key domain.ID) operation {
	s.seq[key]++
	s.pending[key]++
	return operation{key: key, seq: s.seq[key], epoch: s.epoch}
}

// succeed records a server-confirmed line; nil means the line no longer exists.
func (s *Service) succeed(ctx context.Context, userID domain.ID, op operation, line *domain.CartLine) {
	s.mu.Lock()
	if op.epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	if op.seq > s.confirmedSeq[op.key] {
		s.confirmedSeq[op.key] = op.seq
		if line != nil {
			s.confirmed[op.key] = *line
		} else {
			delete(s.confirmed, op.key)
		}
	}
	if op.seq == s.seq[op.key] {
		if line != nil {
			s.lines[op.key] = *line
		} else {
			delete(s.lines, op.key)
		}
	}
	s.settleLocked(op.key)
	state, version := s.mirrorStateLocked(userID)
	s.mu.Unlock()
	s.mirror.save(ctx, state, version)
}

func (s *Service) fail(op operation) {
	s.mu.Lock()
	if op.epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	if op.seq == s.seq[op.key] {
		s.restoreConfirmedLocked(op.key)
	}
	s.settleLocked(op.key)
	s.mu.Unlock()
}

// settleLocked closes one in-flight mutation. When it was the last one for
// the product the visible line falls back to the confirmed line.
func (s *Service) settleLocked(key domain.ID) {
	s.pending[key]--
	if s.pending[key] > 0 {
		return
	}
	delete(s.pending, key)
	s.restoreConfirmedLocked(key)
	if _, ok := s.lines[key]; !ok {
		s.order = slices.DeleteFunc(s.order, func(k domain.ID) bool { return k == key })
	}
}

func (s *Service) restoreConfirmedLocked(key domain.ID) {
	if c, ok := s.confirmed[key]; ok {
		s.lines[key] = c
		return
	}
	delete(s.lines, key)
}

func (s *Service) findLocked(itemID domain.ID) (domain.ID, domain.CartLine, bool) {
	for key, line := range s.lines {
		if line.ID == itemID {
			return key, line, true
		}
	}
	return "", domain.CartLine{}, false
}

func (s *Service) replaceLocked(cart domain.Cart) {
	s.cartID = cart.ID
	s.total = cart.Total
	for _, line := range cart.Items {
		key := line.ProductKey()
		if key == "" {
			key = line.ID
		}
		if _, dup := s.lines[key]; dup {
			s.logger.Warn().Str("productId", key.String()).Msg("duplicate cart line from server ignored")
			continue
		}
		line.ProductID = key
		s.lines[key] = line
		s.confirmed[key] = line
		s.order = append(s.order, key)
	}
}

func (s *Service) resetLocked() {
	s.cartID = ""
	s.total = decimal.Zero
	s.order = nil
	s.lines = make(map[domain.ID]domain.CartLine)
	s.confirmed = make(map[domain.ID]domain.CartLine)
	s.seq = make(map[domain.ID]uint64)
	s.confirmedSeq = make(map[domain.ID]uint64)
	s.pending = make(map[domain.ID]int)
	s.syncedFor = ""
}

func (s *Service) startEpochLocked() {
	s.epoch++
}

func (s *Service) bumpVersionLocked() uint64 {
	s.version++
	return s.version
}

func (s *Service) snapshotLocked() domain.Cart {
	items := make([]domain.CartLine, 0, len(s.order))
	for _, key := range s.order {
		if line, ok := s.lines[key]; ok {
			items = append(items, line)
		}
	}
	return domain.Cart{ID: s.cartID, Items: items, Total: s.total}
}

// mirrorStateLocked captures confirmed lines only, so a temporary line never
// reaches storage.
func (s *Service) mirrorStateLocked(userID domain.ID) (mirrorState, uint64) {
	items := make([]domain.CartLine, 0, len(s.order))
	for _, key := range s.order {
		if line, ok := s.confirmed[key]; ok {
			items = append(items, line)
		}
	}
	state := mirrorState{UserID: userID, Cart: domain.Cart{ID: s.cartID, Items: items, Total: s.total}}
	return state, s.bumpVersionLocked()
}

func (s *Service) currentUser() domain.ID {
	if s.user == nil {
		return ""
	}
	return s.user()
}
