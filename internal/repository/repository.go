package repository

import (
	"fmt"
	"sync"
	"time"

	"offer-auction/internal/auctionerrors"
	model "offer-auction/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionDB defines the bid-ledger and lobby-registry storage interface.
// A backing store must support an atomic conditional append keyed by offer,
// a uniqueness guarantee on (offer, user) lobby membership, and ordered
// reads of bids by amount.
type AuctionDB interface {
	AppendBid(offerID, userID string, amount decimal.Decimal) (model.Bid, error)
	GetBidsByOffer(offerID string) ([]model.Bid, error)
	GetHighestBid(offerID string) (model.Bid, error)
	JoinLobby(offerID, userID string) (int, error)
	LobbyCount(offerID string) (int, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	bids         map[string][]model.Bid                         // key: offerID -> bids in placement order
	participants map[string]map[string]model.AuctionParticipant // key: offerID -> userID -> membership
	nextBidID    int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:         make(map[string][]model.Bid),
		participants: make(map[string]map[string]model.AuctionParticipant),
	}
}

// AppendBid records a bid for an offer if and only if its amount strictly
// exceeds the current highest bid. The check and the append happen under a
// single write lock, so two racing bids are serialized and the loser is
// validated against the winner's committed amount, never a stale snapshot.
func (r *MemoryRepo) AppendBid(offerID, userID string, amount decimal.Decimal) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger := r.bids[offerID]
	if n := len(ledger); n > 0 {
		// Amounts are strictly increasing, so the last entry is the highest.
		highest := ledger[n-1]
		if amount.LessThanOrEqual(highest.Amount) {
			return model.Bid{}, fmt.Errorf("append bid for offer %s: %w (current highest bid is %s)",
				offerID, auctionerrors.ErrBidTooLow, highest.Amount.String())
		}
	}

	r.nextBidID++
	bid := model.Bid{
		BidID:    r.nextBidID,
		OfferID:  offerID,
		UserID:   userID,
		Amount:   amount,
		PlacedAt: time.Now().UTC(),
	}
	r.bids[offerID] = append(ledger, bid)

	return bid, nil
}

// GetBidsByOffer returns all bids for an offer sorted by amount descending.
// An offer without bids yields an empty slice, not an error.
func (r *MemoryRepo) GetBidsByOffer(offerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.bids[offerID]
	out := make([]model.Bid, len(ledger))
	for i, b := range ledger {
		// stored ascending by amount; reverse for highest-first
		out[len(ledger)-1-i] = b
	}
	return out, nil
}

// GetHighestBid returns the bid with the maximum amount for an offer
func (r *MemoryRepo) GetHighestBid(offerID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.bids[offerID]
	if len(ledger) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for offer %s: %w", offerID, auctionerrors.ErrNoBids)
	}
	return ledger[len(ledger)-1], nil
}

// JoinLobby records lobby membership for (offerID, userID) and returns the
// resulting participant count. A repeated join is a no-op that leaves the
// original JoinedAt untouched; racing first-joins collapse to a single row.
func (r *MemoryRepo) JoinLobby(offerID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lobby := r.participants[offerID]
	if lobby == nil {
		lobby = make(map[string]model.AuctionParticipant)
		r.participants[offerID] = lobby
	}

	if _, joined := lobby[userID]; !joined {
		lobby[userID] = model.AuctionParticipant{
			OfferID:  offerID,
			UserID:   userID,
			JoinedAt: time.Now().UTC(),
		}
	}

	return len(lobby), nil
}

// LobbyCount returns the number of distinct lobby participants for an offer
func (r *MemoryRepo) LobbyCount(offerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants[offerID]), nil
}
