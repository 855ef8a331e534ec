package models

import "time"

// Auction is a timed bidding round for one property. An empty SellerId means the
// bank is selling an unowned property.
type Auction struct {
	Id            string         `json:"id"`
	Active        bool           `json:"active"`
	PropertyId    string         `json:"propertyId"`
	StartingBid   int            `json:"startingBid"`
	CurrentBid    int            `json:"currentBid"`
	HighestBidder string         `json:"highestBidder,omitempty"`
	Bids          map[string]int `json:"bids"`
	SellerId      string         `json:"sellerId,omitempty"`
	Log           []string       `json:"log"`
	Deadline      time.Time      `json:"deadline"`
}

func (a *Auction) Unbid() bool {
	return len(a.Bids) == 0
}
