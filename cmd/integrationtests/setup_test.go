package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "offer-auction/internal/auctionService"
	"offer-auction/internal/auth"
	"offer-auction/internal/catalog"
	"offer-auction/internal/directory"
	model "offer-auction/internal/models"
	"offer-auction/internal/repository"
	"offer-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// TestEnv bundles the router with the collaborators tests need to seed
// offers, users, and tokens.
type TestEnv struct {
	Router *gin.Engine
	Offers *catalog.MemoryCatalog
	Users  *directory.MemoryDirectory
	Tokens *auth.MemoryTokenStore
}

// SetupTestEnv initializes the full stack on in-memory collaborators.
func SetupTestEnv(offers ...model.Offer) *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	offerCatalog := catalog.NewMemoryCatalog()
	users := directory.NewMemoryDirectory()
	tokens := auth.NewMemoryTokenStore()

	for _, offer := range offers {
		offerCatalog.AddOffer(offer)
	}

	service := auction.NewAuctionService(repo, offerCatalog, users)
	router := server.SetupRouter(service, tokens)

	return &TestEnv{Router: router, Offers: offerCatalog, Users: users, Tokens: tokens}
}

// LoginAs registers a user in the directory and returns a bearer token for them.
func (env *TestEnv) LoginAs(userID, name string, role model.Role) string {
	env.Users.AddUser(model.User{UserID: userID, Name: name, Role: role})
	return env.Tokens.Issue(auth.Identity{UserID: userID, Role: role})
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// An empty token leaves the request unauthenticated.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
