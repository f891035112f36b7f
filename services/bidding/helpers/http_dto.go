package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	OfferID string          `json:"offer_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID    int64  `json:"bid_id"`
	OfferID  string `json:"offer_id"`
	UserID   string `json:"user_id"`
	Bidder   string `json:"bidder,omitempty"`
	Amount   string `json:"amount"`
	PlacedAt string `json:"placed_at"`
}

type LobbyResponse struct {
	Count int `json:"count"`
}
