package main

import (
	"fmt"
	"os"

	auction "offer-auction/internal/auctionService"
	"offer-auction/internal/auth"
	"offer-auction/internal/catalog"
	"offer-auction/internal/directory"
	model "offer-auction/internal/models"
	"offer-auction/internal/repository"
	"offer-auction/internal/server"
	"offer-auction/utils"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	repo := repository.NewMemoryRepo()
	offers := catalog.NewMemoryCatalog()
	users := directory.NewMemoryDirectory()
	tokens := auth.NewMemoryTokenStore()

	prepopulate(offers, users, tokens)

	auctionSvc := auction.NewAuctionService(repo, offers, users)

	router := server.SetupRouter(auctionSvc, tokens)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		utils.Error("failed to start server", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// prepopulate seeds sample offers, users, and tokens for local development
func prepopulate(offers *catalog.MemoryCatalog, users *directory.MemoryDirectory, tokens *auth.MemoryTokenStore) {
	sampleOffers := []model.Offer{
		{OfferID: "offer1", PartnerID: "partner1", Title: "Surprise Bag - Bakery", Description: "Assorted pastries from today's batch", Price: decimal.NewFromInt(5), OriginalPrice: decimal.NewFromInt(15), Quantity: 3, PickupTime: "18:00-19:00", Status: model.OfferActive},
		{OfferID: "offer2", PartnerID: "partner1", Title: "Sushi Box", Description: "Chef's selection, 12 pieces", Price: decimal.NewFromInt(8), OriginalPrice: decimal.NewFromInt(22), Quantity: 2, PickupTime: "20:30-21:00", Status: model.OfferActive},
		{OfferID: "offer3", PartnerID: "partner2", Title: "Veggie Lunch Box", Description: "Seasonal vegetables and rice", Price: decimal.NewFromFloat(4.5), OriginalPrice: decimal.NewFromInt(12), Quantity: 5, PickupTime: "13:00-14:00", Status: model.OfferActive},
	}
	for _, offer := range sampleOffers {
		offers.AddOffer(offer)
	}

	sampleUsers := []model.User{
		{UserID: "user1", Name: "Alice", Role: model.RoleBuyer},
		{UserID: "user2", Name: "Bob", Role: model.RoleBuyer},
		{UserID: "partner1", Name: "Corner Bakery", Role: model.RolePartner},
	}
	for _, user := range sampleUsers {
		users.AddUser(user)

		token := tokens.Issue(auth.Identity{UserID: user.UserID, Role: user.Role})
		utils.Info("issued development token", map[string]any{"user_id": user.UserID, "token": token})
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
