package server

import (
	auction "offer-auction/internal/auctionService"
	"offer-auction/internal/auth"
	handler "offer-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, verifier auth.TokenVerifier) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(auctionService)
	authed := RequireAuth(verifier)

	bids := router.Group("/api/bids")
	{
		bids.POST("", authed, biddingHandler.PlaceBidHandler)
		bids.GET("/:offerId", biddingHandler.GetBidsHandler)
		bids.POST("/join/:offerId", authed, biddingHandler.JoinLobbyHandler)
		bids.GET("/lobby/:offerId", biddingHandler.LobbyStatusHandler)
	}

	return router
}
