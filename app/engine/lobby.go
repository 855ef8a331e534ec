package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

const MaxSeats = 8

func validateSettings(s models.Settings) error {
	if s.StartingMoney < 0 {
		return ErrInvalidAmount
	}
	if s.MaxPlayers < 2 || s.MaxPlayers > MaxSeats {
		return fmt.Errorf("%w: max players must be between 2 and %d", ErrActionDisabled, MaxSeats)
	}
	return nil
}

func (t *tx) join(c JoinGame) error {
	if t.g.Status != models.StatusWaiting {
		return ErrGameNotWaiting
	}
	if _, ok := t.g.Players[c.PlayerId]; ok {
		return ErrAlreadyJoined
	}
	if len(t.g.Players) >= t.g.Settings.MaxPlayers {
		return ErrGameFull
	}
	p := &models.Player{
		Id:        c.PlayerId,
		Name:      c.Name,
		Color:     c.Color,
		Cities:    []string{},
		Airports:  []string{},
		Harbours:  []string{},
		Companies: []string{},
	}
	t.g.Players[p.Id] = p
	t.g.TurnOrder = append(t.g.TurnOrder, p.Id)
	t.g.JailCount[p.Id] = 0
	t.emit(models.Event{Type: models.EventPlayerJoined, Player: p.Id, Message: fmt.Sprintf("%s joined the game", p.Name)})
	return nil
}

func (t *tx) updateSettings(c UpdateSettings) error {
	if t.g.Status != models.StatusWaiting {
		return ErrGameNotWaiting
	}
	if c.PlayerId != t.g.Host {
		return ErrNotHost
	}
	if err := validateSettings(c.Settings); err != nil {
		return err
	}
	if c.Settings.MaxPlayers < len(t.g.Players) {
		return ErrGameFull
	}
	t.g.Settings = c.Settings
	t.emit(models.Event{Type: models.EventSettingsChanged, Player: c.PlayerId, Message: "game settings updated"})
	return nil
}

func (t *tx) start(c StartGame) error {
	if t.g.Status != models.StatusWaiting {
		return ErrGameNotWaiting
	}
	if c.PlayerId != t.g.Host {
		return ErrNotHost
	}
	if len(t.g.TurnOrder) < 2 {
		return ErrNotEnoughPlayers
	}
	t.g.Status = models.StatusInProgress
	for _, id := range t.g.TurnOrder {
		t.g.Players[id].Money = t.g.Settings.StartingMoney
	}
	t.emit(models.Event{Type: models.EventGameStarted, Player: c.PlayerId,
		Message: fmt.Sprintf("game started with %d players", len(t.g.TurnOrder))})
	t.beginTurn(t.g.TurnOrder[0])
	return nil
}

func (t *tx) beginTurn(id string) {
	p := t.g.Players[id]
	t.g.CurrentPlayerTurn = id
	t.g.Turn = models.TurnState{Phase: models.PhaseAwaitingRoll, StartedInJail: p != nil && p.InJail}
	t.emit(models.Event{Type: models.EventTurnChanged, Player: id, Message: fmt.Sprintf("it is %s's turn", t.name(id))})
	if p != nil && p.OnVacation {
		t.g.Turn.Phase = models.PhaseTurnComplete
		t.g.Turn.OnVacation = true
		t.emit(models.Event{Type: models.EventTurnChanged, Player: id, Message: fmt.Sprintf("%s is on vacation and sits this turn out", p.Name)})
	}
}

// nextPlayer returns the id after current in turn order, wrapping around.
func (t *tx) nextPlayer(current string) string {
	order := t.g.TurnOrder
	if len(order) == 0 {
		return ""
	}
	for i, id := range order {
		if id == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
