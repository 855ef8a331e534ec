package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
	uuid "github.com/satori/go.uuid"
)

// checkBundle verifies p can hand over b right now.
func (t *tx) checkBundle(p *models.Player, b models.Bundle) error {
	if b.Money < 0 {
		return ErrInvalidAmount
	}
	if b.Money > p.Money {
		return ErrInsufficientFunds
	}
	seen := make(map[string]bool, len(b.Properties))
	for _, id := range b.Properties {
		if seen[id] {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidAmount, id)
		}
		seen[id] = true
		_, st, err := t.square(id)
		if err != nil {
			return err
		}
		if st.Owner != p.Id {
			return ErrNotOwner
		}
		if st.Improved() {
			return ErrHasBuildings
		}
		if t.lockedInAuction(id) {
			return ErrAuctionActive
		}
	}
	return nil
}

func (t *tx) proposeTrade(c ProposeTrade) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	from, err := t.player(c.PlayerId)
	if err != nil {
		return err
	}
	if c.ToPlayer == from.Id {
		return ErrSelfTrade
	}
	to, err := t.player(c.ToPlayer)
	if err != nil {
		return err
	}
	if c.Offer.Money == 0 && len(c.Offer.Properties) == 0 && c.Request.Money == 0 && len(c.Request.Properties) == 0 {
		return ErrEmptyTrade
	}
	if err := t.checkBundle(from, c.Offer); err != nil {
		return err
	}
	if err := t.checkBundle(to, c.Request); err != nil {
		return err
	}
	tr := &models.Trade{
		Id:         uuid.NewV4().String(),
		FromPlayer: from.Id,
		ToPlayer:   to.Id,
		Offer:      c.Offer,
		Request:    c.Request,
		Status:     models.TradePending,
		CreatedAt:  t.now,
	}
	t.g.Trades[tr.Id] = tr
	t.emit(models.Event{Type: models.EventTradeProposed, Player: from.Id, Target: to.Id, Property: tr.Id,
		Message: fmt.Sprintf("%s proposed a trade to %s", from.Name, to.Name)})
	return nil
}

func (t *tx) pendingTrade(id string) (*models.Trade, error) {
	if err := t.requireInProgress(); err != nil {
		return nil, err
	}
	tr := t.g.Trades[id]
	if tr == nil {
		return nil, ErrTradeNotFound
	}
	if tr.Status != models.TradePending {
		return nil, ErrTradeNotPending
	}
	return tr, nil
}

// acceptTrade swaps both bundles against the current holdings. Any mismatch
// with the proposal aborts the whole exchange.
func (t *tx) acceptTrade(c AcceptTrade) error {
	tr, err := t.pendingTrade(c.TradeId)
	if err != nil {
		return err
	}
	if c.PlayerId != tr.ToPlayer {
		return ErrNotTradeParty
	}
	from, to := t.g.Players[tr.FromPlayer], t.g.Players[tr.ToPlayer]
	if from == nil || to == nil {
		return ErrTradeStale
	}
	if from.Money-tr.Offer.Money+tr.Request.Money < 0 || to.Money-tr.Request.Money+tr.Offer.Money < 0 {
		return ErrInsufficientFunds
	}
	for _, check := range []struct {
		p *models.Player
		b models.Bundle
	}{{from, tr.Offer}, {to, tr.Request}} {
		b := check.b
		b.Money = 0
		if err := t.checkBundle(check.p, b); err != nil {
			return fmt.Errorf("%w: %v", ErrTradeStale, err)
		}
	}

	from.Money += tr.Request.Money - tr.Offer.Money
	to.Money += tr.Offer.Money - tr.Request.Money
	for _, id := range tr.Offer.Properties {
		sq, st, _ := t.square(id)
		t.assign(sq, st, to)
	}
	for _, id := range tr.Request.Properties {
		sq, st, _ := t.square(id)
		t.assign(sq, st, from)
	}
	delete(t.g.Trades, tr.Id)
	t.emit(models.Event{Type: models.EventTradeAccepted, Player: to.Id, Target: from.Id, Property: tr.Id,
		Message: fmt.Sprintf("%s accepted the trade from %s", to.Name, from.Name)})
	return nil
}

func (t *tx) rejectTrade(c RejectTrade) error {
	tr, err := t.pendingTrade(c.TradeId)
	if err != nil {
		return err
	}
	if c.PlayerId != tr.ToPlayer {
		return ErrNotTradeParty
	}
	delete(t.g.Trades, tr.Id)
	t.emit(models.Event{Type: models.EventTradeRejected, Player: c.PlayerId, Target: tr.FromPlayer, Property: tr.Id,
		Message: fmt.Sprintf("%s rejected the trade from %s", t.name(c.PlayerId), t.name(tr.FromPlayer))})
	return nil
}

func (t *tx) cancelTrade(c CancelTrade) error {
	tr, err := t.pendingTrade(c.TradeId)
	if err != nil {
		return err
	}
	if c.PlayerId != tr.FromPlayer {
		return ErrNotTradeParty
	}
	delete(t.g.Trades, tr.Id)
	t.emit(models.Event{Type: models.EventTradeCancelled, Player: c.PlayerId, Target: tr.ToPlayer, Property: tr.Id,
		Message: fmt.Sprintf("%s withdrew their trade offer to %s", t.name(c.PlayerId), t.name(tr.ToPlayer))})
	return nil
}
