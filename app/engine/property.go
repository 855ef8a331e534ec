package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

func (t *tx) buyProperty(c BuyProperty) error {
	p, err := t.requireTurn(c.PlayerId)
	if err != nil {
		return err
	}
	id := t.g.Turn.PendingPurchase
	if t.g.Turn.Phase != models.PhaseAwaitingBuyDecision || id == "" {
		return ErrNoPurchasePending
	}
	sq, st, err := t.square(id)
	if err != nil {
		return err
	}
	if st.Owner != "" {
		return ErrAlreadyOwned
	}
	if p.Money < sq.Cost {
		return ErrInsufficientFunds
	}
	p.Money -= sq.Cost
	t.assign(sq, st, p)
	t.g.Turn.PendingPurchase = ""
	t.emit(models.Event{Type: models.EventPropertyBought, Player: p.Id, Property: sq.Id, Amount: sq.Cost,
		Message: fmt.Sprintf("%s bought %s for $%d", p.Name, sq.Name, sq.Cost)})
	t.settlePhase(p)
	return nil
}

func (t *tx) declineProperty(c DeclineProperty) error {
	p, err := t.requireTurn(c.PlayerId)
	if err != nil {
		return err
	}
	id := t.g.Turn.PendingPurchase
	if t.g.Turn.Phase != models.PhaseAwaitingBuyDecision || id == "" {
		return ErrNoPurchasePending
	}
	t.g.Turn.PendingPurchase = ""
	t.emit(models.Event{Type: models.EventPurchaseSkipped, Player: p.Id, Property: id,
		Message: fmt.Sprintf("%s passed on %s", p.Name, t.propertyName(id))})
	t.settlePhase(p)
	return nil
}

func (t *tx) propertyName(id string) string {
	if sq, err := t.e.board.GetById(id); err == nil {
		return sq.Name
	}
	return id
}

// owned resolves a property and checks that actor owns it.
func (t *tx) owned(actor, id string) (*models.Player, models.Property, *models.PropertyState, error) {
	if err := t.requireInProgress(); err != nil {
		return nil, models.Property{}, nil, err
	}
	p, err := t.player(actor)
	if err != nil {
		return nil, models.Property{}, nil, err
	}
	sq, st, err := t.square(id)
	if err != nil {
		return nil, sq, nil, err
	}
	if st.Owner != p.Id {
		return nil, sq, nil, ErrNotOwner
	}
	if t.lockedInAuction(id) {
		return nil, sq, nil, ErrAuctionActive
	}
	return p, sq, st, nil
}

// sellProperty returns an unimproved property to the bank for half its cost.
// A mortgaged property has already paid out and fetches nothing.
func (t *tx) sellProperty(c SellProperty) error {
	p, sq, st, err := t.owned(c.PlayerId, c.PropertyId)
	if err != nil {
		return err
	}
	if st.Improved() {
		return ErrHasBuildings
	}
	price := 0
	if !st.Mortgaged {
		price = sq.MortgageValue()
	}
	t.release(sq, st)
	p.Money += price
	t.emit(models.Event{Type: models.EventPropertySold, Player: p.Id, Property: sq.Id, Amount: price,
		Message: fmt.Sprintf("%s sold %s to the bank for $%d", p.Name, sq.Name, price)})
	return nil
}

func (t *tx) mortgage(c MortgageProperty) error {
	if !t.g.Settings.AllowMortgage {
		return ErrActionDisabled
	}
	p, sq, st, err := t.owned(c.PlayerId, c.PropertyId)
	if err != nil {
		return err
	}
	if st.Mortgaged {
		return ErrAlreadyMortgaged
	}
	if st.Improved() {
		return ErrHasBuildings
	}
	st.Mortgaged = true
	p.Money += sq.MortgageValue()
	t.emit(models.Event{Type: models.EventMortgaged, Player: p.Id, Property: sq.Id, Amount: sq.MortgageValue(),
		Message: fmt.Sprintf("%s mortgaged %s for $%d", p.Name, sq.Name, sq.MortgageValue())})
	return nil
}

func (t *tx) unmortgage(c UnmortgageProperty) error {
	p, sq, st, err := t.owned(c.PlayerId, c.PropertyId)
	if err != nil {
		return err
	}
	if !st.Mortgaged {
		return ErrNotMortgaged
	}
	cost := sq.UnmortgageCost()
	if p.Money < cost {
		return ErrInsufficientFunds
	}
	p.Money -= cost
	st.Mortgaged = false
	t.emit(models.Event{Type: models.EventUnmortgaged, Player: p.Id, Property: sq.Id, Amount: cost,
		Message: fmt.Sprintf("%s lifted the mortgage on %s for $%d", p.Name, sq.Name, cost)})
	return nil
}

// buildHouse adds one improvement level. The fifth level turns four houses into a hotel.
func (t *tx) buildHouse(c BuildHouse) error {
	p, sq, st, err := t.owned(c.PlayerId, c.PropertyId)
	if err != nil {
		return err
	}
	if t.g.CurrentPlayerTurn != p.Id {
		return ErrNotYourTurn
	}
	if sq.Type != models.SquareCity {
		return ErrNotCity
	}
	if !t.hasMonopoly(p.Id, sq.Country) {
		return ErrNoMonopoly
	}
	for _, id := range t.e.board.Country(sq.Country) {
		if t.g.Board[id].Mortgaged {
			return ErrMortgagedInSet
		}
	}
	if st.Hotels > 0 {
		return ErrMaxBuildings
	}
	if p.Money < sq.HouseCost {
		return ErrInsufficientFunds
	}
	p.Money -= sq.HouseCost
	what := "a house"
	if st.Houses == models.HotelLevel-1 {
		st.Houses = 0
		st.Hotels = 1
		p.Houses -= models.HotelLevel - 1
		p.Hotels++
		what = "a hotel"
	} else {
		st.Houses++
		p.Houses++
	}
	t.emit(models.Event{Type: models.EventHouseBuilt, Player: p.Id, Property: sq.Id, Amount: sq.HouseCost,
		Message: fmt.Sprintf("%s built %s on %s", p.Name, what, sq.Name)})
	return nil
}

// sellHouse removes one improvement level for half the house cost. Selling a
// hotel leaves four houses behind.
func (t *tx) sellHouse(c SellHouse) error {
	p, sq, st, err := t.owned(c.PlayerId, c.PropertyId)
	if err != nil {
		return err
	}
	if !st.Improved() {
		return ErrNoBuildings
	}
	refund := sq.HouseCost / 2
	what := "a house"
	if st.Hotels > 0 {
		st.Hotels = 0
		st.Houses = models.HotelLevel - 1
		p.Hotels--
		p.Houses += models.HotelLevel - 1
		what = "a hotel"
	} else {
		st.Houses--
		p.Houses--
	}
	p.Money += refund
	t.emit(models.Event{Type: models.EventHouseSold, Player: p.Id, Property: sq.Id, Amount: refund,
		Message: fmt.Sprintf("%s sold %s on %s for $%d", p.Name, what, sq.Name, refund)})
	return nil
}
