package handler

import (
	"fmt"
	"net/http"
	"time"

	"offer-auction/internal/auctionerrors"
	auction "offer-auction/internal/auctionService"
	model "offer-auction/internal/models"
	"offer-auction/services/bidding/helpers"
	"offer-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	PlaceBid(offerID, userID string, amount decimal.Decimal) (model.Bid, error)
	GetBidsForOffer(offerID string) ([]auction.BidWithBidder, error)
	JoinLobby(offerID, userID string) (int, error)
	GetLobbyStatus(offerID string) (int, error)
}

type BiddingHandler struct {
	service AuctionServiceInterface
}

func NewBiddingHandler(service AuctionServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /api/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	id, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "missing or invalid credentials")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.OfferID, id.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":  "PlaceBidHandler",
			"offer_id": req.OfferID,
			"user_id":  id.UserID,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:    bid.BidID,
		OfferID:  bid.OfferID,
		UserID:   bid.UserID,
		Amount:   bid.Amount.String(),
		PlacedAt: bid.PlacedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":   bid.BidID,
		"offer_id": bid.OfferID,
		"user_id":  id.UserID,
		"amount":   bid.Amount.String(),
	})
}

// GetBidsHandler handles GET /api/bids/:offerId
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	offerID := c.Param("offerId")
	bids, err := h.service.GetBidsForOffer(offerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"offer_id": offerID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.BidResponse{
			BidID:    b.BidID,
			OfferID:  b.OfferID,
			UserID:   b.UserID,
			Bidder:   b.BidderName,
			Amount:   b.Amount.String(),
			PlacedAt: b.PlacedAt.UTC().Format(time.RFC3339),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"offer_id": offerID,
		"count":    len(resp),
	})
}

// JoinLobbyHandler handles POST /api/bids/join/:offerId
func (h *BiddingHandler) JoinLobbyHandler(c *gin.Context) {
	id, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "missing or invalid credentials")
		return
	}

	offerID := c.Param("offerId")
	count, err := h.service.JoinLobby(offerID, id.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinLobbyHandler: failed to join lobby", map[string]any{
			"offer_id": offerID,
			"user_id":  id.UserID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LobbyResponse{Count: count}, "lobby joined successfully")
	helpers.LogSuccess("JoinLobbyHandler", "lobby joined successfully", map[string]any{
		"offer_id": offerID,
		"user_id":  id.UserID,
		"count":    count,
	})
}

// LobbyStatusHandler handles GET /api/bids/lobby/:offerId
func (h *BiddingHandler) LobbyStatusHandler(c *gin.Context) {
	offerID := c.Param("offerId")
	count, err := h.service.GetLobbyStatus(offerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LobbyStatusHandler: error retrieving lobby status", map[string]any{"offer_id": offerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LobbyResponse{Count: count}, "lobby status retrieved successfully")
	helpers.LogSuccess("LobbyStatusHandler", "lobby status retrieved successfully", map[string]any{
		"offer_id": offerID,
		"count":    count,
	})
}
