package engine

import (
	"fmt"
	"sort"

	"github.com/saimerit/monopoly-game/app/models"
	uuid "github.com/satori/go.uuid"
)

// SellerShare is the part of a fire-sale price the seller keeps, in percent.
const SellerShare = 90

func (t *tx) auctionRunning() bool {
	return t.g.Auction != nil && t.g.Auction.Active
}

func (t *tx) lockedInAuction(propertyId string) bool {
	return t.auctionRunning() && t.g.Auction.PropertyId == propertyId
}

func (t *tx) startAuction(c StartAuction) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	p, err := t.player(c.PlayerId)
	if err != nil {
		return err
	}
	if t.auctionRunning() {
		return ErrAuctionActive
	}
	if c.StartingBid < 0 {
		return ErrInvalidAmount
	}
	sq, st, err := t.square(c.PropertyId)
	if err != nil {
		return err
	}
	if st.Owner == "" {
		err = t.canAuctionFromBank(p, sq)
	} else {
		err = t.canFireSale(p, st)
	}
	if err != nil {
		return err
	}

	start := c.StartingBid
	if start == 0 {
		start = sq.Cost / 2
	}
	if t.g.Turn.PendingPurchase == sq.Id {
		t.g.Turn.PendingPurchase = ""
		if cur := t.g.Players[t.g.CurrentPlayerTurn]; cur != nil {
			t.settlePhase(cur)
		}
	}
	t.g.Auction = &models.Auction{
		Id:          uuid.NewV4().String(),
		Active:      true,
		PropertyId:  sq.Id,
		StartingBid: start,
		CurrentBid:  start,
		Bids:        make(map[string]int),
		SellerId:    st.Owner,
		Deadline:    t.now.Add(t.e.auctionWindow),
	}
	msg := fmt.Sprintf("%s started an auction for %s at $%d", p.Name, sq.Name, start)
	t.g.Auction.Log = append(t.g.Auction.Log, msg)
	t.emit(models.Event{Type: models.EventAuctionStarted, Player: p.Id, Property: sq.Id, Amount: start, Message: msg})
	return nil
}

// canAuctionFromBank allows the current player or the host to auction the
// unowned square the current player is standing on.
func (t *tx) canAuctionFromBank(p *models.Player, sq models.Property) error {
	if !t.g.Settings.AllowAuctions {
		return ErrActionDisabled
	}
	if p.Id != t.g.CurrentPlayerTurn && p.Id != t.g.Host {
		return ErrNotYourTurn
	}
	cur := t.g.Players[t.g.CurrentPlayerTurn]
	if t.g.Turn.PendingPurchase != sq.Id && (cur == nil || cur.Position != sq.Position) {
		return ErrNoPurchasePending
	}
	return nil
}

func (t *tx) canFireSale(p *models.Player, st *models.PropertyState) error {
	if !t.g.Settings.AllowOwnedPropertyAuctions {
		return ErrActionDisabled
	}
	if st.Owner != p.Id {
		return ErrNotOwner
	}
	if t.g.CurrentPlayerTurn != p.Id {
		return ErrNotYourTurn
	}
	if st.Improved() {
		return ErrHasBuildings
	}
	if st.Mortgaged {
		return ErrAlreadyMortgaged
	}
	return nil
}

func (t *tx) placeBid(c PlaceBid) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	p, err := t.player(c.PlayerId)
	if err != nil {
		return err
	}
	if !t.auctionRunning() {
		return ErrNoAuction
	}
	a := t.g.Auction
	if p.Id == a.SellerId {
		return ErrSellerCannotBid
	}
	if c.Amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Unbid() {
		if c.Amount < a.CurrentBid {
			return ErrBidTooLow
		}
	} else if c.Amount <= a.CurrentBid {
		return ErrBidTooLow
	}
	if c.Amount > p.Money {
		return ErrInsufficientFunds
	}
	a.Bids[p.Id] = c.Amount
	a.CurrentBid = c.Amount
	a.HighestBidder = p.Id
	a.Deadline = t.now.Add(t.e.auctionWindow)
	msg := fmt.Sprintf("%s bid $%d", p.Name, c.Amount)
	a.Log = append(a.Log, msg)
	t.emit(models.Event{Type: models.EventBidPlaced, Player: p.Id, Property: a.PropertyId, Amount: c.Amount, Message: msg})
	return nil
}

// WinningBid scans the whole bid ledger for the highest bid a bidder can still
// pay. Ties go to the recorded highest bidder, then to the smallest id.
func WinningBid(a *models.Auction, players map[string]*models.Player) (string, int, bool) {
	bidders := make([]string, 0, len(a.Bids))
	for id := range a.Bids {
		bidders = append(bidders, id)
	}
	sort.Strings(bidders)

	winner, best := "", 0
	for _, id := range bidders {
		amount := a.Bids[id]
		p := players[id]
		if p == nil || id == a.SellerId || amount <= 0 || amount > p.Money {
			continue
		}
		if amount > best || (amount == best && id == a.HighestBidder) {
			winner, best = id, amount
		}
	}
	return winner, best, winner != ""
}

func (t *tx) settleAuction(c SettleAuction) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	if c.PlayerId != t.g.Host {
		return ErrNotHost
	}
	if !t.auctionRunning() {
		return ErrNoAuction
	}
	a := t.g.Auction
	if t.now.Before(a.Deadline) {
		return ErrAuctionOpen
	}
	sq, st, err := t.square(a.PropertyId)
	if err != nil {
		return err
	}
	winnerId, amount, ok := WinningBid(a, t.g.Players)
	if !ok || st.Owner != a.SellerId {
		t.g.Auction = nil
		t.emit(models.Event{Type: models.EventAuctionClosed, Property: sq.Id,
			Message: fmt.Sprintf("auction for %s closed without a sale", sq.Name)})
		return nil
	}

	winner := t.g.Players[winnerId]
	winner.Money -= amount
	if seller := t.g.Players[a.SellerId]; seller != nil {
		share := amount * SellerShare / 100
		seller.Money += share
		if t.g.Settings.TaxInVacationPot {
			t.g.VacationPot += amount - share
		}
	}
	t.assign(sq, st, winner)
	t.g.Auction = nil
	t.emit(models.Event{Type: models.EventAuctionSettled, Player: winnerId, Target: a.SellerId, Property: sq.Id, Amount: amount,
		Message: fmt.Sprintf("%s won %s for $%d", winner.Name, sq.Name, amount)})
	return nil
}

func (t *tx) cancelAuction(c CancelAuction) error {
	if err := t.requireInProgress(); err != nil {
		return err
	}
	if c.PlayerId != t.g.Host {
		return ErrNotHost
	}
	if !t.auctionRunning() {
		return ErrNoAuction
	}
	if !t.g.Auction.Unbid() {
		return ErrAuctionHasBids
	}
	id := t.g.Auction.PropertyId
	t.g.Auction = nil
	t.emit(models.Event{Type: models.EventAuctionClosed, Player: c.PlayerId, Property: id,
		Message: fmt.Sprintf("auction for %s was cancelled", t.propertyName(id))})
	return nil
}
