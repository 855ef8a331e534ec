package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

// RentInput is everything rent depends on.
type RentInput struct {
	Renter      string
	Owner       string
	OwnerJailed bool
	Square      models.Property
	State       models.PropertyState
	DiceTotal   int
	Settings    models.Settings
	// Monopoly reports whether the owner holds every city of the square's country.
	Monopoly bool
	// SetCount is how many squares of the square's category the owner holds.
	SetCount int
}

// Rent computes what the renter owes. ok is false when no rent is due.
func Rent(in RentInput) (amount int, ok bool) {
	if in.Owner == "" || in.Owner == in.Renter || in.State.Mortgaged {
		return 0, false
	}
	if in.OwnerJailed && !in.Settings.RentInJail {
		return 0, false
	}
	table := in.Square.Rent
	if len(table) == 0 {
		return 0, false
	}
	switch in.Square.Type {
	case models.SquareCity:
		amount = cityRent(in, table)
	case models.SquareAirport, models.SquareHarbour:
		amount = at(table, in.SetCount-1)
	case models.SquareCompany:
		amount = in.DiceTotal * at(table, in.SetCount-1)
	default:
		return 0, false
	}
	if amount <= 0 {
		return 0, false
	}
	return amount, true
}

func cityRent(in RentInput, table []int) int {
	if !in.Monopoly {
		return table[0]
	}
	if in.State.Hotels > 0 {
		return at(table, models.HotelLevel)
	}
	if in.State.Houses == 0 && in.Settings.DoubleRentOnMonopoly {
		return table[0] * 2
	}
	return at(table, in.State.Houses)
}

// at clamps i into the table so a malformed level never panics.
func at(table []int, i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

func (t *tx) rentInput(renter *models.Player, sq models.Property, st *models.PropertyState, dice int) RentInput {
	in := RentInput{
		Renter:    renter.Id,
		Owner:     st.Owner,
		Square:    sq,
		State:     *st,
		DiceTotal: dice,
		Settings:  t.g.Settings,
		SetCount:  t.countOwned(st.Owner, sq.Type),
	}
	if owner := t.g.Players[st.Owner]; owner != nil {
		in.OwnerJailed = owner.InJail
	}
	if sq.Type == models.SquareCity {
		in.Monopoly = t.hasMonopoly(st.Owner, sq.Country)
	}
	return in
}

// chargeRent moves rent from renter to owner, scaled by multiplier when above one.
func (t *tx) chargeRent(renter *models.Player, sq models.Property, st *models.PropertyState, in RentInput, multiplier int) {
	amount, ok := Rent(in)
	if !ok {
		return
	}
	if multiplier > 1 {
		amount *= multiplier
	}
	owner := t.g.Players[st.Owner]
	if owner == nil {
		t.logger().WithField("property_id", sq.Id).Warn("rent owner missing")
		return
	}
	t.transfer(renter, owner, amount)
	t.emit(models.Event{Type: models.EventRentPaid, Player: renter.Id, Target: owner.Id, Property: sq.Id, Amount: amount,
		Message: fmt.Sprintf("%s paid $%d rent to %s for %s", renter.Name, amount, owner.Name, sq.Name)})
}
