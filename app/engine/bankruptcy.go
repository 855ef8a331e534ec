package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

func (t *tx) declareBankruptcy(c DeclareBankruptcy) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	p, err := t.player(c.PlayerId)
	if err != nil {
		return err
	}

	for _, id := range p.AllProperties() {
		sq, st, err := t.square(id)
		if err != nil {
			return err
		}
		t.release(sq, st)
	}
	for deck, holder := range t.g.JailCards {
		if holder == p.Id {
			delete(t.g.JailCards, deck)
		}
	}
	for id, tr := range t.g.Trades {
		if tr.FromPlayer == p.Id || tr.ToPlayer == p.Id {
			delete(t.g.Trades, id)
		}
	}
	t.dropFromAuction(p.Id)

	wasCurrent := t.g.CurrentPlayerTurn == p.Id
	next := t.nextPlayer(p.Id)
	order := t.g.TurnOrder[:0]
	for _, id := range t.g.TurnOrder {
		if id != p.Id {
			order = append(order, id)
		}
	}
	t.g.TurnOrder = order
	delete(t.g.Players, p.Id)
	t.emit(models.Event{Type: models.EventBankrupt, Player: p.Id, Message: fmt.Sprintf("%s went bankrupt", p.Name)})

	switch len(t.g.TurnOrder) {
	case 0:
		t.finish(p.Id, p.Name)
	case 1:
		winner := t.g.TurnOrder[0]
		t.finish(winner, t.name(winner))
	default:
		if wasCurrent {
			t.beginTurn(next)
		}
	}
	return nil
}

// dropFromAuction closes an auction the player is selling and withdraws their bid otherwise.
func (t *tx) dropFromAuction(id string) {
	if !t.auctionRunning() {
		return
	}
	a := t.g.Auction
	if a.SellerId == id {
		t.g.Auction = nil
		t.emit(models.Event{Type: models.EventAuctionClosed, Property: a.PropertyId,
			Message: fmt.Sprintf("auction for %s closed because the seller left", t.propertyName(a.PropertyId))})
		return
	}
	if _, ok := a.Bids[id]; !ok {
		return
	}
	delete(a.Bids, id)
	if a.HighestBidder != id {
		return
	}
	// every accepted bid beat the one before it, so amounts are distinct
	a.HighestBidder, a.CurrentBid = "", a.StartingBid
	for bidder, amount := range a.Bids {
		if a.HighestBidder == "" || amount > a.CurrentBid {
			a.HighestBidder, a.CurrentBid = bidder, amount
		}
	}
}

func (t *tx) finish(winner, name string) {
	t.g.Status = models.StatusFinished
	t.g.Winner = winner
	t.g.Auction = nil
	t.g.Turn = models.TurnState{Phase: models.PhaseTurnComplete}
	t.emit(models.Event{Type: models.EventGameOver, Player: winner, Message: fmt.Sprintf("%s won the game", name)})
}
