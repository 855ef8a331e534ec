package engine

import (
	"fmt"
	"math"

	"github.com/saimerit/monopoly-game/app/models"
)

// maxLandingDepth bounds card-driven chains of landings.
const maxLandingDepth = 3

func (t *tx) resolveLanding(p *models.Player, dice int) error {
	sq, err := t.e.board.GetByPos(p.Position)
	if err != nil {
		t.logger().WithField("position", p.Position).Warn("no square at position")
		return fmt.Errorf("%w: position %d", ErrUnknownProperty, p.Position)
	}
	t.depth++
	defer func() { t.depth-- }()
	if t.depth > maxLandingDepth {
		return nil
	}
	t.g.PropertyVisits[p.Position]++

	switch sq.Type {
	case models.SquareGo:
		t.credit(p, GoBonus, "landed on GO")
	case models.SquareCity, models.SquareAirport, models.SquareHarbour, models.SquareCompany:
		return t.landOnProperty(p, sq, dice, 1)
	case models.SquareTax:
		t.payTax(p, sq)
	case models.SquareVacation:
		t.takeVacation(p, true)
	case models.SquareGoToJail:
		t.sendToJail(p, "landed on "+sq.Name)
	case models.SquareTreasure:
		return t.drawCard(p, models.DeckTreasure, dice)
	case models.SquareSurprise:
		return t.drawCard(p, models.DeckSurprise, dice)
	}
	return nil
}

// landOnProperty offers an unowned square for purchase or charges rent on an owned one.
func (t *tx) landOnProperty(p *models.Player, sq models.Property, dice, multiplier int) error {
	st := t.g.Board[sq.Id]
	if st == nil {
		t.logger().WithField("property_id", sq.Id).Warn("property missing from game board state")
		return fmt.Errorf("%w: %s", ErrUnknownProperty, sq.Id)
	}
	if st.Owner == "" {
		if t.g.CurrentPlayerTurn == p.Id {
			t.g.Turn.PendingPurchase = sq.Id
			t.emit(models.Event{Type: models.EventPurchaseOffered, Player: p.Id, Property: sq.Id, Amount: sq.Cost,
				Message: fmt.Sprintf("%s may buy %s for $%d", p.Name, sq.Name, sq.Cost)})
		}
		return nil
	}
	t.chargeRent(p, sq, st, t.rentInput(p, sq, st, dice), multiplier)
	return nil
}

// TaxDue is the amount a tax square takes from a player holding money.
// Amounts below one are a fraction of the player's money.
func TaxDue(sq models.Property, money int) int {
	if sq.Amount <= 0 {
		return 0
	}
	if sq.Amount < 1 {
		if money <= 0 {
			return 0
		}
		return int(math.Floor(float64(money) * sq.Amount))
	}
	return int(sq.Amount)
}

func (t *tx) payTax(p *models.Player, sq models.Property) {
	due := TaxDue(sq, p.Money)
	if due == 0 {
		return
	}
	p.Money -= due
	if t.g.Settings.TaxInVacationPot {
		t.g.VacationPot += due
	}
	t.emit(models.Event{Type: models.EventTaxPaid, Player: p.Id, Property: sq.Id, Amount: due,
		Message: fmt.Sprintf("%s paid $%d %s", p.Name, due, sq.Name)})
}

// takeVacation moves nothing; it pays out the pot when collect is set and
// benches the player for their next turn.
func (t *tx) takeVacation(p *models.Player, collect bool) {
	if collect && t.g.VacationPot > 0 {
		pot := t.g.VacationPot
		t.g.VacationPot = 0
		p.Money += pot
		t.emit(models.Event{Type: models.EventVacationPayout, Player: p.Id, Amount: pot,
			Message: fmt.Sprintf("%s collected $%d from the vacation pot", p.Name, pot)})
	}
	p.OnVacation = true
	p.DoublesCount = 0
}
