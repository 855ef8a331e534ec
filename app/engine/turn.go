package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

func (t *tx) rollDice(c RollDice) error {
	p, err := t.requireTurn(c.PlayerId)
	if err != nil {
		return err
	}
	if p.OnVacation || t.g.Turn.OnVacation {
		return ErrOnVacation
	}
	if t.auctionRunning() {
		return ErrAuctionActive
	}
	switch t.g.Turn.Phase {
	case models.PhaseAwaitingBuyDecision:
		return ErrDecisionPending
	case models.PhaseTurnComplete:
		return ErrAlreadyRolled
	}

	d1, d2 := t.e.rng.Intn(6)+1, t.e.rng.Intn(6)+1
	total := d1 + d2
	doubles := d1 == d2
	t.g.Turn.Dice = [2]int{d1, d2}
	t.g.Turn.DrawnCard = ""
	t.emit(models.Event{Type: models.EventDiceRolled, Player: p.Id, Amount: total,
		Message: fmt.Sprintf("%s rolled %d and %d", p.Name, d1, d2)})

	if p.InJail {
		if !doubles {
			t.g.Turn.Phase = models.PhaseTurnComplete
			t.emit(models.Event{Type: models.EventStayedInJail, Player: p.Id, Message: fmt.Sprintf("%s stays in jail", p.Name)})
			return nil
		}
		t.releaseFromJail(p, "rolled doubles")
		t.advance(p, total, false)
		if err := t.resolveLanding(p, total); err != nil {
			return err
		}
		p.DoublesCount = 0
		t.settlePhase(p)
		return nil
	}

	if doubles {
		p.DoublesCount++
		if p.DoublesCount >= MaxDoubles {
			t.sendToJail(p, "rolled doubles three times")
			return nil
		}
	} else {
		p.DoublesCount = 0
	}
	t.advance(p, total, true)
	if err := t.resolveLanding(p, total); err != nil {
		return err
	}
	t.settlePhase(p)
	return nil
}

// advance moves p by steps squares. A forward move that wraps credits the GO
// bonus when collect is set; landing exactly on GO is paid by the landing itself.
func (t *tx) advance(p *models.Player, steps int, collect bool) {
	n := t.e.board.Size()
	old := p.Position
	next := ((old+steps)%n + n) % n
	p.Position = next
	p.AnimatedPosition = next
	t.emit(models.Event{Type: models.EventMoved, Player: p.Id, Amount: next,
		Message: fmt.Sprintf("%s moved to %s", p.Name, t.squareName(next))})
	if collect && steps > 0 && next < old && next != 0 {
		t.passGo(p)
	}
}

// moveTo places p on pos directly, crediting GO when the jump goes around the board.
func (t *tx) moveTo(p *models.Player, pos int, collect bool) {
	old := p.Position
	p.Position = pos
	p.AnimatedPosition = pos
	t.emit(models.Event{Type: models.EventMoved, Player: p.Id, Amount: pos,
		Message: fmt.Sprintf("%s moved to %s", p.Name, t.squareName(pos))})
	if collect && pos < old && pos != 0 {
		t.passGo(p)
	}
}

func (t *tx) passGo(p *models.Player) {
	p.Money += GoBonus
	t.emit(models.Event{Type: models.EventPassedGo, Player: p.Id, Amount: GoBonus,
		Message: fmt.Sprintf("%s passed GO and collected $%d", p.Name, GoBonus)})
}

func (t *tx) squareName(pos int) string {
	sq, err := t.e.board.GetByPos(pos)
	if err != nil {
		return fmt.Sprintf("square %d", pos)
	}
	return sq.Name
}

// settlePhase decides what the current player may do after a move.
func (t *tx) settlePhase(p *models.Player) {
	switch {
	case t.g.Turn.PendingPurchase != "":
		t.g.Turn.Phase = models.PhaseAwaitingBuyDecision
	case p.DoublesCount > 0 && !p.InJail && !p.OnVacation:
		t.g.Turn.Phase = models.PhaseAwaitingRoll
	default:
		t.g.Turn.Phase = models.PhaseTurnComplete
	}
}

func (t *tx) endTurn(c EndTurn) error {
	p, err := t.requireTurn(c.PlayerId)
	if err != nil {
		return err
	}
	if t.auctionRunning() {
		return ErrAuctionActive
	}
	if t.g.Turn.Phase == models.PhaseAwaitingBuyDecision {
		return ErrDecisionPending
	}
	if p.Money < 0 {
		return ErrNegativeBalance
	}
	if t.g.Turn.Phase == models.PhaseAwaitingRoll {
		if p.DoublesCount == 0 {
			return ErrMustRoll
		}
		t.emit(models.Event{Type: models.EventTurnContinued, Player: p.Id,
			Message: fmt.Sprintf("%s rolled doubles and goes again", p.Name)})
		return nil
	}

	if p.InJail && t.g.Turn.StartedInJail {
		p.JailTurns++
		if p.JailTurns >= MaxJailTurns {
			t.releaseFromJail(p, "served their time")
		}
	}
	if t.g.Turn.OnVacation {
		p.OnVacation = false
	}
	p.DoublesCount = 0
	t.beginTurn(t.nextPlayer(p.Id))
	return nil
}

func (t *tx) sendToJail(p *models.Player, reason string) {
	p.Position = t.e.board.JailPosition()
	p.AnimatedPosition = p.Position
	p.InJail = true
	p.JailTurns = 0
	p.DoublesCount = 0
	t.g.JailCount[p.Id]++
	t.g.Turn.PendingPurchase = ""
	if t.g.CurrentPlayerTurn == p.Id {
		t.g.Turn.Phase = models.PhaseTurnComplete
	}
	t.emit(models.Event{Type: models.EventJailed, Player: p.Id,
		Message: fmt.Sprintf("%s went to jail (%s)", p.Name, reason)})
}

func (t *tx) releaseFromJail(p *models.Player, reason string) {
	p.InJail = false
	p.JailTurns = 0
	t.emit(models.Event{Type: models.EventReleased, Player: p.Id,
		Message: fmt.Sprintf("%s left jail (%s)", p.Name, reason)})
}

// jailFine is the price of leaving jail early.
func (t *tx) jailFine(id string) int {
	if !t.g.Settings.EscalatingJailFine {
		return JailFine
	}
	if n := t.g.JailCount[id]; n > 1 {
		return JailFine * n
	}
	return JailFine
}

func (t *tx) requireJailExit(id string) (*models.Player, error) {
	p, err := t.requireTurn(id)
	if err != nil {
		return nil, err
	}
	if !p.InJail {
		return nil, ErrNotInJail
	}
	if t.g.Turn.Phase != models.PhaseAwaitingRoll {
		return nil, ErrAlreadyRolled
	}
	return p, nil
}

func (t *tx) payJailFine(c PayJailFine) error {
	p, err := t.requireJailExit(c.PlayerId)
	if err != nil {
		return err
	}
	fine := t.jailFine(p.Id)
	if p.Money < fine {
		return ErrInsufficientFunds
	}
	t.debit(p, fine, true, "jail fine")
	t.releaseFromJail(p, "paid the fine")
	return nil
}

func (t *tx) useJailCard(c UseJailCard) error {
	p, err := t.requireJailExit(c.PlayerId)
	if err != nil {
		return err
	}
	if p.JailFreeCards <= 0 {
		return ErrNoJailCard
	}
	p.JailFreeCards--
	for _, deck := range []models.CardDeck{models.DeckTreasure, models.DeckSurprise} {
		if t.g.JailCards[deck] == p.Id {
			delete(t.g.JailCards, deck)
			break
		}
	}
	t.releaseFromJail(p, "used a get out of jail free card")
	return nil
}
