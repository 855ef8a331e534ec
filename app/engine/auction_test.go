package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/saimerit/monopoly-game/app/models"
)

func TestAuction_BankSale(t *testing.T) {
	src, clock := &scripted{}, newClock()
	e := newTestEngine(src, clock)
	g := startedGame(t, e, 3, models.DefaultSettings())
	src.dice(1, 5)
	g = mustApply(t, e, g, RollDice{PlayerId: "p1"})

	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "gru-airport"})
	if g.Auction == nil || g.Auction.CurrentBid != 100 || g.Auction.SellerId != "" {
		t.Fatalf("auction = %+v, want a bank auction starting at 100", g.Auction)
	}
	if g.Turn.PendingPurchase != "" || g.Turn.Phase != models.PhaseTurnComplete {
		t.Errorf("pending purchase not cleared: %+v", g.Turn)
	}
	if _, _, err := e.Apply(g, EndTurn{PlayerId: "p1"}); !errors.Is(err, ErrAuctionActive) {
		t.Errorf("end turn during auction: err = %v, want %v", err, ErrAuctionActive)
	}
	if _, _, err := e.Apply(g, PlaceBid{PlayerId: "p2", Amount: 99}); !errors.Is(err, ErrBidTooLow) {
		t.Errorf("bid under start: err = %v, want %v", err, ErrBidTooLow)
	}

	g = mustApply(t, e, g, PlaceBid{PlayerId: "p2", Amount: 100})
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p3", Amount: 150})
	if _, _, err := e.Apply(g, PlaceBid{PlayerId: "p2", Amount: 150}); !errors.Is(err, ErrBidTooLow) {
		t.Errorf("matching bid: err = %v, want %v", err, ErrBidTooLow)
	}
	if _, _, err := e.Apply(g, PlaceBid{PlayerId: "p2", Amount: 5000}); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("bid over balance: err = %v, want %v", err, ErrInsufficientFunds)
	}
	if _, _, err := e.Apply(g, SettleAuction{PlayerId: "p1"}); !errors.Is(err, ErrAuctionOpen) {
		t.Errorf("early settle: err = %v, want %v", err, ErrAuctionOpen)
	}
	if _, _, err := e.Apply(g, SettleAuction{PlayerId: "p2"}); !errors.Is(err, ErrNotHost) {
		t.Errorf("settle by guest: err = %v, want %v", err, ErrNotHost)
	}

	clock.Advance(DefaultAuctionWindow)
	g = mustApply(t, e, g, SettleAuction{PlayerId: "p1"})
	if g.Auction != nil {
		t.Errorf("auction still present after settling")
	}
	if g.Board["gru-airport"].Owner != "p3" || g.Players["p3"].Money != 1350 {
		t.Errorf("owner = %q money = %d, want p3 and 1350", g.Board["gru-airport"].Owner, g.Players["p3"].Money)
	}
	if g.Players["p2"].Money != 1500 {
		t.Errorf("losing bidder charged: money = %d", g.Players["p2"].Money)
	}
}

func TestAuction_SettlesOnTheLedgerMaximum(t *testing.T) {
	clock := newClock()
	e := newTestEngine(&scripted{}, clock)
	g := startedGame(t, e, 3, models.DefaultSettings())
	// the recorded current bid lags behind a bid that arrived out of order
	g.Auction = &models.Auction{
		Id:            "a1",
		Active:        true,
		PropertyId:    "muc-airport",
		CurrentBid:    200,
		HighestBidder: "p3",
		Bids:          map[string]int{"p2": 300, "p3": 200},
		Deadline:      clock.Now().Add(-time.Second),
	}

	g = mustApply(t, e, g, SettleAuction{PlayerId: "p1"})
	if g.Board["muc-airport"].Owner != "p2" || g.Players["p2"].Money != 1200 {
		t.Errorf("owner = %q money = %d, want p2 and 1200", g.Board["muc-airport"].Owner, g.Players["p2"].Money)
	}
}

func TestWinningBid(t *testing.T) {
	players := map[string]*models.Player{
		"a": {Id: "a", Money: 1000},
		"b": {Id: "b", Money: 250},
		"c": {Id: "c", Money: 1000},
	}
	tests := []struct {
		name      string
		auction   models.Auction
		want      string
		wantPrice int
		wantOk    bool
	}{
		{"no bids", models.Auction{Bids: map[string]int{}}, "", 0, false},
		{"highest wins", models.Auction{Bids: map[string]int{"a": 100, "c": 300}}, "c", 300, true},
		{"unaffordable skipped", models.Auction{Bids: map[string]int{"a": 200, "b": 300}}, "a", 200, true},
		{"tie prefers recorded bidder", models.Auction{HighestBidder: "c", Bids: map[string]int{"a": 200, "c": 200}}, "c", 200, true},
		{"tie falls back to id order", models.Auction{Bids: map[string]int{"c": 200, "a": 200}}, "a", 200, true},
		{"departed bidder ignored", models.Auction{Bids: map[string]int{"z": 900, "a": 100}}, "a", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, price, ok := WinningBid(&tt.auction, players)
			if got != tt.want || price != tt.wantPrice || ok != tt.wantOk {
				t.Errorf("WinningBid = (%q, %d, %v), want (%q, %d, %v)", got, price, ok, tt.want, tt.wantPrice, tt.wantOk)
			}
		})
	}
}

func TestAuction_FireSale(t *testing.T) {
	clock := newClock()
	e := newTestEngine(&scripted{}, clock)
	g := startedGame(t, e, 2, models.DefaultSettings())
	give(t, e, g, "p1", "brazil-rio")

	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "brazil-rio", StartingBid: 50})
	if _, _, err := e.Apply(g, PlaceBid{PlayerId: "p1", Amount: 60}); !errors.Is(err, ErrSellerCannotBid) {
		t.Errorf("seller bid: err = %v, want %v", err, ErrSellerCannotBid)
	}
	if _, _, err := e.Apply(g, SellProperty{PlayerId: "p1", PropertyId: "brazil-rio"}); !errors.Is(err, ErrAuctionActive) {
		t.Errorf("sell during auction: err = %v, want %v", err, ErrAuctionActive)
	}
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p2", Amount: 100})
	clock.Advance(DefaultAuctionWindow)
	g = mustApply(t, e, g, SettleAuction{PlayerId: "p1"})

	if g.Board["brazil-rio"].Owner != "p2" {
		t.Errorf("owner = %q, want p2", g.Board["brazil-rio"].Owner)
	}
	if g.Players["p1"].Money != 1590 || g.Players["p2"].Money != 1400 || g.VacationPot != 10 {
		t.Errorf("seller = %d buyer = %d pot = %d, want 1590, 1400, 10",
			g.Players["p1"].Money, g.Players["p2"].Money, g.VacationPot)
	}
}

func TestAuction_FireSaleRules(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 2, models.DefaultSettings())
	give(t, e, g, "p2", "brazil-rio")
	if _, _, err := e.Apply(g, StartAuction{PlayerId: "p2", PropertyId: "brazil-rio"}); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("auction out of turn: err = %v, want %v", err, ErrNotYourTurn)
	}
	if _, _, err := e.Apply(g, StartAuction{PlayerId: "p1", PropertyId: "brazil-rio"}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("auction someone else's: err = %v, want %v", err, ErrNotOwner)
	}
	g.Settings.AllowOwnedPropertyAuctions = false
	g.CurrentPlayerTurn = "p2"
	if _, _, err := e.Apply(g, StartAuction{PlayerId: "p2", PropertyId: "brazil-rio"}); !errors.Is(err, ErrActionDisabled) {
		t.Errorf("disabled: err = %v, want %v", err, ErrActionDisabled)
	}
}

func TestAuction_Cancel(t *testing.T) {
	clock := newClock()
	e := newTestEngine(&scripted{}, clock)
	g := startedGame(t, e, 2, models.DefaultSettings())
	give(t, e, g, "p1", "brazil-rio")
	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "brazil-rio"})

	cancelled := mustApply(t, e, g, CancelAuction{PlayerId: "p1"})
	if cancelled.Auction != nil || cancelled.Board["brazil-rio"].Owner != "p1" {
		t.Errorf("cancel left auction = %+v owner = %q", cancelled.Auction, cancelled.Board["brazil-rio"].Owner)
	}

	g = mustApply(t, e, g, PlaceBid{PlayerId: "p2", Amount: 40})
	if _, _, err := e.Apply(g, CancelAuction{PlayerId: "p1"}); !errors.Is(err, ErrAuctionHasBids) {
		t.Errorf("cancel with bids: err = %v, want %v", err, ErrAuctionHasBids)
	}
}

func TestAuction_NoBidsCloses(t *testing.T) {
	clock := newClock()
	e := newTestEngine(&scripted{}, clock)
	g := startedGame(t, e, 2, models.DefaultSettings())
	g.Players["p1"].Position = 8
	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "israel-haifa"})
	clock.Advance(DefaultAuctionWindow)

	next, events, err := e.Apply(g, SettleAuction{PlayerId: "p1"})
	if err != nil {
		t.Fatalf("SettleAuction failed: %v", err)
	}
	if next.Auction != nil || next.Board["israel-haifa"].Owner != "" {
		t.Errorf("unbid auction changed ownership")
	}
	if countEvents(events, models.EventAuctionClosed) != 1 {
		t.Errorf("expected an auction-closed event")
	}
}
