package cart

import (
	"context"
	"sync"

	"github.com/amborella-organics/storefront-backend/pkg/config"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Store owns the ordered line items of one cart session. All mutation goes
// through its methods; each successful mutation rewrites the persisted
// slice in full. The in-memory state stays authoritative for the session
// even when a persistence write fails, so durability is best effort.
type Store struct {
	mu       sync.Mutex
	items    []LineItem
	persist  Persistence
	shipping ShippingPolicy
	logg     *logger.Logger
}

// NewStore builds a store and restores any persisted state. A missing or
// malformed persisted payload starts the cart empty; it is logged, never
// surfaced as an error.
func NewStore(ctx context.Context, persist Persistence, cfg config.CartConfig, logg *logger.Logger) *Store {
	s := &Store{
		persist:  persist,
		shipping: NewShippingPolicy(cfg),
		logg:     logg,
	}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	if s.persist == nil {
		return
	}
	payload, found, err := s.persist.Load(ctx)
	if err != nil {
		s.warn(ctx, "cart restore failed, starting empty", err)
		return
	}
	if !found {
		return
	}
	items, err := decodeItems(payload)
	if err != nil {
		s.warn(ctx, "discarding malformed persisted cart", err)
		return
	}
	s.items = items
}

// AddItem merges the quantity into an existing line item for the same
// product, keeping the originally captured price, or appends a new line
// item at the end of the sequence.
func (s *Store) AddItem(ctx context.Context, snap ProductSnapshot, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].ProductID == snap.ID {
			s.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, newLineItem(snap, qty))
	}
	s.save(ctx)
}

// UpdateQuantity replaces the quantity of an existing line item. A
// quantity at or below zero removes the item. An unknown product id is a
// no-op, not a fault.
func (s *Store) UpdateQuantity(ctx context.Context, productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		if s.removeLocked(productID) {
			s.save(ctx)
		}
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = qty
			s.save(ctx)
			return
		}
	}
}

// RemoveItem deletes the line item for the product id if present.
func (s *Store) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removeLocked(productID) {
		s.save(ctx)
	}
}

// Clear empties the cart. Used after a simulated successful checkout.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.save(ctx)
}

func (s *Store) removeLocked(productID int) bool {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// save persists the full items slice. Failures are logged and swallowed;
// the in-memory cart remains correct for the session regardless.
func (s *Store) save(ctx context.Context) {
	if s.persist == nil {
		return
	}
	payload, err := encodeItems(s.items)
	if err != nil {
		s.warn(ctx, "cart serialize failed, skipping persist", err)
		return
	}
	if err := s.persist.Save(ctx, payload); err != nil {
		s.warn(ctx, "cart persist failed, in-memory state unaffected", err)
	}
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount sums quantities over all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

// Subtotal sums price * quantity over all line items.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// ShippingCost evaluates the tiered policy against the current subtotal
// and item count.
func (s *Store) ShippingCost() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping.Cost(s.subtotalLocked(), s.itemCountLocked())
}

// TotalWithShipping returns subtotal plus shipping.
func (s *Store) TotalWithShipping() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := s.subtotalLocked()
	return subtotal.Add(s.shipping.Cost(subtotal, s.itemCountLocked()))
}

// Totals is the aggregate view handlers render next to the items.
type Totals struct {
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// Totals computes all derivations under a single lock.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.subtotalLocked()
	count := s.itemCountLocked()
	shipping := s.shipping.Cost(subtotal, count)
	return Totals{
		ItemCount: count,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal.Add(shipping),
	}
}

func (s *Store) itemCountLocked() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) subtotalLocked() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func (s *Store) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "cause", err.Error()), msg)
}
