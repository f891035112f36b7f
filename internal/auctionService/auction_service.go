package auction

import (
	"fmt"

	"offer-auction/internal/auctionerrors"
	"offer-auction/internal/catalog"
	"offer-auction/internal/directory"
	"offer-auction/internal/models"
	"offer-auction/internal/repository"

	"github.com/shopspring/decimal"
)

// AuctionService defines the business logic for offer auctions: the bid
// ledger and the pre-bidding lobby.
type AuctionService struct {
	repo    repository.AuctionDB
	catalog catalog.OfferCatalog
	users   directory.UserDirectory
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, offers catalog.OfferCatalog, users directory.UserDirectory) *AuctionService {
	return &AuctionService{
		repo:    repo,
		catalog: offers,
		users:   users,
	}
}

// BidWithBidder is a bid enriched with the bidder's display name
type BidWithBidder struct {
	models.Bid
	BidderName string
}

// PlaceBid validates and records a user's bid on an offer. The amount must
// meet the offer's floor price and strictly exceed the current highest bid;
// the highest-bid check happens inside the ledger's conditional append so
// concurrent bids on the same offer cannot both pass a stale check.
func (s *AuctionService) PlaceBid(offerID, userID string, amount decimal.Decimal) (models.Bid, error) {
	if offerID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing offerID or userID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	offer, err := s.catalog.GetOffer(offerID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to resolve offer %s: %w", offerID, err)
	}

	// Note: bids are accepted regardless of offer status; only the floor
	// price gates them.
	if amount.LessThan(offer.Price) {
		return models.Bid{}, fmt.Errorf("service: %w - the starting price %s is the minimum bid",
			auctionerrors.ErrBelowFloorPrice, offer.Price.String())
	}

	bid, err := s.repo.AppendBid(offerID, userID, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for offer %s by user %s: %w", offerID, userID, err)
	}

	return bid, nil
}

// GetBidsForOffer returns all bids for an offer, highest first, each
// enriched with the bidder's display name. An offer without bids yields an
// empty slice.
func (s *AuctionService) GetBidsForOffer(offerID string) ([]BidWithBidder, error) {
	if offerID == "" {
		return nil, fmt.Errorf("service: %w - empty offer ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByOffer(offerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for offer %s: %w", offerID, err)
	}

	out := make([]BidWithBidder, 0, len(bids))
	for _, b := range bids {
		entry := BidWithBidder{Bid: b}
		// An unknown bidder only costs the display name, never the listing.
		if user, err := s.users.GetUser(b.UserID); err == nil {
			entry.BidderName = user.Name
		}
		out = append(out, entry)
	}

	return out, nil
}

// JoinLobby records a user's commitment to an offer's auction and returns
// the resulting participant count. Joining twice is a no-op.
func (s *AuctionService) JoinLobby(offerID, userID string) (int, error) {
	if offerID == "" || userID == "" {
		return 0, fmt.Errorf("service: %w - missing offerID or userID", auctionerrors.ErrInvalidBid)
	}

	if _, err := s.catalog.GetOffer(offerID); err != nil {
		return 0, fmt.Errorf("service: failed to resolve offer %s: %w", offerID, err)
	}

	count, err := s.repo.JoinLobby(offerID, userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to join lobby for offer %s by user %s: %w", offerID, userID, err)
	}

	return count, nil
}

// GetLobbyStatus returns the participant count for an offer's lobby. An
// unknown offer simply counts zero.
func (s *AuctionService) GetLobbyStatus(offerID string) (int, error) {
	if offerID == "" {
		return 0, fmt.Errorf("service: %w - empty offer ID", auctionerrors.ErrInvalidBid)
	}

	count, err := s.repo.LobbyCount(offerID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get lobby count for offer %s: %w", offerID, err)
	}

	return count, nil
}
