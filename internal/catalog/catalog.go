package catalog

import (
	"fmt"
	"sync"

	"offer-auction/internal/auctionerrors"
	model "offer-auction/internal/models"
)

// OfferCatalog is the read surface the auction core needs from the offer
// store: resolve an offer so its floor price can be checked.
type OfferCatalog interface {
	GetOffer(offerID string) (model.Offer, error)
}

// MemoryCatalog is a concurrency-safe in-memory offer store. It stands in
// for the marketplace's offer service, which owns the full offer lifecycle.
type MemoryCatalog struct {
	mu     sync.RWMutex
	offers map[string]model.Offer
}

// NewMemoryCatalog creates a new in-memory catalog instance
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		offers: make(map[string]model.Offer),
	}
}

// GetOffer returns the offer with the given ID
func (c *MemoryCatalog) GetOffer(offerID string) (model.Offer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	offer, ok := c.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	return offer, nil
}

// AddOffer adds or replaces an offer in the catalog
func (c *MemoryCatalog) AddOffer(offer model.Offer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offers[offer.OfferID] = offer
}

// SetStatus updates an offer's lifecycle status
func (c *MemoryCatalog) SetStatus(offerID string, status model.OfferStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	offer, ok := c.offers[offerID]
	if !ok {
		return fmt.Errorf("set status for offer %s: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	offer.Status = status
	c.offers[offerID] = offer
	return nil
}

// DecrementQuantity reduces an offer's remaining quantity after an order is
// fulfilled, marking it sold out when stock reaches zero.
func (c *MemoryCatalog) DecrementQuantity(offerID string, n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	offer, ok := c.offers[offerID]
	if !ok {
		return fmt.Errorf("decrement quantity for offer %s: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	if n <= 0 || n > offer.Quantity {
		return fmt.Errorf("decrement quantity for offer %s: invalid quantity %d (have %d)", offerID, n, offer.Quantity)
	}

	offer.Quantity -= n
	if offer.Quantity == 0 {
		offer.Status = model.OfferSoldOut
	}
	c.offers[offerID] = offer
	return nil
}
