package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

func (t *tx) credit(p *models.Player, amount int, reason string) {
	if amount == 0 {
		return
	}
	p.Money += amount
	t.emit(models.Event{Type: models.EventMoneyChanged, Player: p.Id, Amount: amount,
		Message: fmt.Sprintf("%s received $%d (%s)", p.Name, amount, reason)})
}

// debit takes amount from p. Money may go negative; the player must recover
// before ending the turn. Sinks marked toPot feed the vacation pot when the
// settings route taxes there, otherwise the money leaves the game.
func (t *tx) debit(p *models.Player, amount int, toPot bool, reason string) {
	if amount == 0 {
		return
	}
	p.Money -= amount
	if toPot && t.g.Settings.TaxInVacationPot {
		t.g.VacationPot += amount
	}
	t.emit(models.Event{Type: models.EventMoneyChanged, Player: p.Id, Amount: -amount,
		Message: fmt.Sprintf("%s paid $%d (%s)", p.Name, amount, reason)})
}

func (t *tx) transfer(from, to *models.Player, amount int) {
	from.Money -= amount
	to.Money += amount
}

// assign hands a property to p, keeping the board owner and holdings in step.
func (t *tx) assign(sq models.Property, st *models.PropertyState, p *models.Player) {
	if st.Owner != "" {
		if prev := t.g.Players[st.Owner]; prev != nil {
			prev.RemoveHolding(sq.Type, sq.Id)
		}
	}
	st.Owner = p.Id
	p.AddHolding(sq.Type, sq.Id)
}

// release returns a property to the bank with its improvements cleared.
func (t *tx) release(sq models.Property, st *models.PropertyState) {
	if owner := t.g.Players[st.Owner]; owner != nil {
		owner.RemoveHolding(sq.Type, sq.Id)
		owner.Houses -= st.Houses
		owner.Hotels -= st.Hotels
	}
	st.Reset()
}

func (t *tx) hasMonopoly(owner string, country string) bool {
	cities := t.e.board.Country(country)
	if owner == "" || len(cities) == 0 {
		return false
	}
	for _, id := range cities {
		st := t.g.Board[id]
		if st == nil || st.Owner != owner {
			return false
		}
	}
	return true
}

func (t *tx) countOwned(owner string, typ models.SquareType) int {
	p := t.g.Players[owner]
	if p == nil {
		return 0
	}
	if list := p.Holdings(typ); list != nil {
		return len(*list)
	}
	return 0
}
