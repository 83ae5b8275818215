package cart

import (
	"github.com/amborella-organics/storefront-backend/pkg/config"
	"github.com/shopspring/decimal"
)

// ShippingPolicy selects a shipping rate by the first matching threshold
// rule against the cart's subtotal or item count. Rules are evaluated in
// order; there is no combination or proration between tiers.
type ShippingPolicy struct {
	cfg config.CartConfig
}

func NewShippingPolicy(cfg config.CartConfig) ShippingPolicy {
	return ShippingPolicy{cfg: cfg}
}

// Cost returns the shipping charge for the given subtotal and item count.
// Bundles of 48+ items ship free regardless of subtotal, as do orders at or
// over the free-shipping dollar threshold.
func (p ShippingPolicy) Cost(subtotal decimal.Decimal, itemCount int) decimal.Decimal {
	if itemCount >= p.cfg.FreeShippingItemCount || subtotal.GreaterThanOrEqual(p.cfg.FreeShippingSubtotal) {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(p.cfg.ReducedRateSubtotal) {
		return p.cfg.ReducedRate
	}
	if subtotal.GreaterThanOrEqual(p.cfg.MidRateSubtotal) {
		return p.cfg.MidRate
	}
	return p.cfg.BaseRate
}
