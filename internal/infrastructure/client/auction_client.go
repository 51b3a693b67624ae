package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pokebid/user-service/internal/core/domain"
)

const auctionServiceName = "auction"

// AuctionClient talks to the auction (enchere) collaborator service.
type AuctionClient struct {
	baseURL string
	hc      *http.Client
}

func NewAuctionClient(baseURL string, timeout time.Duration) *AuctionClient {
	return &AuctionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      newHTTPClient(timeout),
	}
}

// ListBids fetches the bids the collaborator holds for the user.
func (c *AuctionClient) ListBids(ctx context.Context, userID string) ([]domain.Bid, error) {
	var bids []domain.Bid
	url := fmt.Sprintf("%s/encheres/user/%s", c.baseURL, userID)
	if err := getJSON(ctx, c.hc, auctionServiceName, url, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// PlaceBid forwards a bid to the collaborator for the user.
func (c *AuctionClient) PlaceBid(ctx context.Context, userID string, bid domain.Bid) error {
	url := fmt.Sprintf("%s/encheres/place/%s", c.baseURL, userID)
	return postJSON(ctx, c.hc, auctionServiceName, url, bid)
}
