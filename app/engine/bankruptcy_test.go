package engine

import (
	"testing"

	"github.com/saimerit/monopoly-game/app/models"
)

func TestDeclareBankruptcy_GameContinues(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 3, models.DefaultSettings())
	give(t, e, g, "p2", "brazil-salvador", "brazil-rio", "brazil-sao-paulo", "gru-airport")
	g.Board["brazil-salvador"].Houses = 2
	g.Players["p2"].Houses = 2
	g.Board["gru-airport"].Mortgaged = true
	g.JailCards[models.DeckTreasure] = "p2"
	g.Players["p2"].JailFreeCards = 1
	g = mustApply(t, e, g, ProposeTrade{PlayerId: "p1", ToPlayer: "p2", Offer: models.Bundle{Money: 10}})

	g = mustApply(t, e, g, DeclareBankruptcy{PlayerId: "p2"})
	for _, id := range []string{"brazil-salvador", "brazil-rio", "brazil-sao-paulo", "gru-airport"} {
		if st := g.Board[id]; *st != (models.PropertyState{}) {
			t.Errorf("%s = %+v, want returned to the bank", id, *st)
		}
	}
	if _, ok := g.Players["p2"]; ok {
		t.Errorf("bankrupt player still seated")
	}
	if len(g.TurnOrder) != 2 || g.TurnOrder[0] != "p1" || g.TurnOrder[1] != "p3" {
		t.Errorf("turn order = %v, want [p1 p3]", g.TurnOrder)
	}
	if g.Status != models.StatusInProgress || g.Winner != "" {
		t.Errorf("status = %s winner = %q, want in-progress and none", g.Status, g.Winner)
	}
	if g.CurrentPlayerTurn != "p1" {
		t.Errorf("current = %s, want p1", g.CurrentPlayerTurn)
	}
	if len(g.Trades) != 0 || len(g.JailCards) != 0 {
		t.Errorf("trades = %d jail cards = %d, want none", len(g.Trades), len(g.JailCards))
	}
}

func TestDeclareBankruptcy_CurrentPlayerPassesTheTurn(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 3, models.DefaultSettings())

	g = mustApply(t, e, g, DeclareBankruptcy{PlayerId: "p1"})
	if g.CurrentPlayerTurn != "p2" || g.Turn.Phase != models.PhaseAwaitingRoll {
		t.Errorf("current = %s phase = %s, want p2 awaiting roll", g.CurrentPlayerTurn, g.Turn.Phase)
	}
}

func TestDeclareBankruptcy_LastTwo(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 2, models.DefaultSettings())

	next, events, err := e.Apply(g, DeclareBankruptcy{PlayerId: "p2"})
	if err != nil {
		t.Fatalf("DeclareBankruptcy failed: %v", err)
	}
	if next.Status != models.StatusFinished || next.Winner != "p1" {
		t.Errorf("status = %s winner = %q, want finished and p1", next.Status, next.Winner)
	}
	if countEvents(events, models.EventGameOver) != 1 {
		t.Errorf("expected a game-over event")
	}
	if _, _, err := e.Apply(next, RollDice{PlayerId: "p1"}); err != ErrGameFinished {
		t.Errorf("roll after game over: err = %v, want %v", err, ErrGameFinished)
	}
}

func TestDeclareBankruptcy_WithdrawsBid(t *testing.T) {
	clock := newClock()
	e := newTestEngine(&scripted{}, clock)
	g := startedGame(t, e, 3, models.DefaultSettings())
	g.Players["p1"].Position = 8
	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "israel-haifa"})
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p2", Amount: 60})
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p3", Amount: 80})

	g = mustApply(t, e, g, DeclareBankruptcy{PlayerId: "p3"})
	if g.Auction.HighestBidder != "p2" || g.Auction.CurrentBid != 60 {
		t.Errorf("auction = %+v, want p2 leading at 60", g.Auction)
	}
}

func TestDeclareBankruptcy_WithdrawnOnlyBidRestoresStart(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 3, models.DefaultSettings())
	g.Players["p1"].Position = 8
	g = mustApply(t, e, g, StartAuction{PlayerId: "p1", PropertyId: "israel-haifa"})
	start := g.Auction.StartingBid
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p3", Amount: start + 40})

	g = mustApply(t, e, g, DeclareBankruptcy{PlayerId: "p3"})
	if !g.Auction.Unbid() || g.Auction.HighestBidder != "" || g.Auction.CurrentBid != start {
		t.Fatalf("auction = %+v, want unbid at the starting bid %d", g.Auction, start)
	}
	g = mustApply(t, e, g, PlaceBid{PlayerId: "p2", Amount: start})
	if g.Auction.HighestBidder != "p2" || g.Auction.CurrentBid != start {
		t.Errorf("auction = %+v, want p2 leading at %d", g.Auction, start)
	}
}

func TestDeclareBankruptcy_SoleRemainingPlayerWins(t *testing.T) {
	e := newTestEngine(&scripted{}, newClock())
	g := startedGame(t, e, 2, models.DefaultSettings())
	delete(g.Players, "p2")
	g.TurnOrder = []string{"p1"}

	next, events, err := e.Apply(g, DeclareBankruptcy{PlayerId: "p1"})
	if err != nil {
		t.Fatalf("DeclareBankruptcy failed: %v", err)
	}
	if next.Status != models.StatusFinished || next.Winner != "p1" {
		t.Errorf("status = %s winner = %q, want finished and p1", next.Status, next.Winner)
	}
	if len(next.Players) != 0 || len(next.TurnOrder) != 0 {
		t.Errorf("players = %v order = %v, want none", next.Players, next.TurnOrder)
	}
	if countEvents(events, models.EventGameOver) != 1 {
		t.Errorf("expected a game-over event")
	}
}
