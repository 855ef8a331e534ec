package engine

import (
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

func flat(id string, deck models.CardDeck, info string, amount int) models.Card {
	return models.Card{Id: id, Deck: deck, Info: info, Effect: models.Effect{Kind: models.EffectFlat, Amount: amount, ToPot: amount < 0}}
}

func effect(id string, deck models.CardDeck, info string, e models.Effect) models.Card {
	return models.Card{Id: id, Deck: deck, Info: info, Effect: e}
}

var treasureCards = []models.Card{
	flat("bank-error", models.DeckTreasure, "Bank error in your favour. Collect $200", 200),
	flat("doctor-fee", models.DeckTreasure, "Doctor's fee. Pay $50", -50),
	flat("stock-sale", models.DeckTreasure, "From sale of stock you get $50", 50),
	flat("holiday-fund", models.DeckTreasure, "Holiday fund matures. Receive $100", 100),
	flat("tax-refund", models.DeckTreasure, "Income tax refund. Collect $20", 20),
	flat("life-insurance", models.DeckTreasure, "Life insurance matures. Collect $100", 100),
	flat("hospital-fees", models.DeckTreasure, "Pay hospital fees of $100", -100),
	flat("school-fees", models.DeckTreasure, "Pay school fees of $50", -50),
	flat("consultancy", models.DeckTreasure, "Receive $25 consultancy fee", 25),
	flat("beauty-contest", models.DeckTreasure, "You won second prize in a beauty contest. Collect $10", 10),
	flat("inheritance", models.DeckTreasure, "You inherit $100", 100),
	flat("xmas-fund", models.DeckTreasure, "Xmas fund matures. Collect $100", 100),
	flat("parking-fine", models.DeckTreasure, "Parking fine. Pay $15", -15),
	flat("freelance", models.DeckTreasure, "Freelance gig pays off. Collect $150", 150),
	flat("insurance-premium", models.DeckTreasure, "Pay your insurance premium of $50", -50),
	effect("street-repairs", models.DeckTreasure, "You are assessed for street repairs. $40 per house, $115 per hotel",
		models.Effect{Kind: models.EffectPerUnitFee, PerHouse: 40, PerHotel: 115, ToPot: true}),
	effect("treasure-advance-go", models.DeckTreasure, "Advance to GO. Collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 0}),
	effect("advance-rome", models.DeckTreasure, "Advance to Rome. If you pass GO, collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 15}),
	effect("treasure-jail-free", models.DeckTreasure, "Get out of jail free",
		models.Effect{Kind: models.EffectJailFree}),
	effect("treasure-go-to-jail", models.DeckTreasure, "Go to jail. Do not pass GO",
		models.Effect{Kind: models.EffectGoToJail}),
	effect("birthday", models.DeckTreasure, "It is your birthday. Collect $10 from every player",
		models.Effect{Kind: models.EffectAllPlayers, Amount: 10}),
	effect("opera-night", models.DeckTreasure, "Grand opera night. Collect $50 from every player",
		models.Effect{Kind: models.EffectAllPlayers, Amount: 50}),
	effect("charity", models.DeckTreasure, "Donate $100 to the vacation fund",
		models.Effect{Kind: models.EffectFlat, Amount: -100, ToPot: true}),
	effect("lucky-trip", models.DeckTreasure, "Lucky trip. Collect the vacation pot",
		models.Effect{Kind: models.EffectVacationCollect}),
}

var surpriseCards = []models.Card{
	effect("surprise-advance-go", models.DeckSurprise, "Advance to GO. Collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 0}),
	effect("advance-berlin", models.DeckSurprise, "Advance to Berlin. If you pass GO, collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 21}),
	effect("advance-paris", models.DeckSurprise, "Advance to Paris. If you pass GO, collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 30}),
	effect("advance-zurich", models.DeckSurprise, "Take a trip to Zurich",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 55}),
	effect("advance-cdg", models.DeckSurprise, "Fly to CDG Airport. If you pass GO, collect $200",
		models.Effect{Kind: models.EffectMoveAbsolute, Target: 31}),
	effect("nearest-airport", models.DeckSurprise, "Advance to the nearest airport. If owned, pay twice the rent",
		models.Effect{Kind: models.EffectMoveNearest, Category: models.SquareAirport}),
	effect("nearest-airport-2", models.DeckSurprise, "Advance to the nearest airport. If owned, pay twice the rent",
		models.Effect{Kind: models.EffectMoveNearest, Category: models.SquareAirport}),
	effect("nearest-company", models.DeckSurprise, "Advance to the nearest company. If owned, pay ten times the dice",
		models.Effect{Kind: models.EffectMoveNearest, Category: models.SquareCompany}),
	effect("back-three", models.DeckSurprise, "Go back 3 spaces",
		models.Effect{Kind: models.EffectMoveRelative, Steps: -3}),
	effect("surprise-jail-free", models.DeckSurprise, "Get out of jail free",
		models.Effect{Kind: models.EffectJailFree}),
	effect("surprise-go-to-jail", models.DeckSurprise, "Go to jail. Do not pass GO",
		models.Effect{Kind: models.EffectGoToJail}),
	effect("general-repairs", models.DeckSurprise, "Make general repairs. $25 per house, $100 per hotel",
		models.Effect{Kind: models.EffectPerUnitFee, PerHouse: 25, PerHotel: 100, ToPot: true}),
	flat("dividend", models.DeckSurprise, "Bank pays you a dividend of $50", 50),
	flat("speeding-fine", models.DeckSurprise, "Speeding fine. Pay $15", -15),
	flat("building-loan", models.DeckSurprise, "Your building loan matures. Collect $150", 150),
	flat("crossword", models.DeckSurprise, "You won a crossword competition. Collect $100", 100),
	flat("tuition", models.DeckSurprise, "Pay tuition of $150", -150),
	effect("chairman", models.DeckSurprise, "Elected chairman of the board. Pay every player $50",
		models.Effect{Kind: models.EffectAllPlayers, Amount: -50}),
	effect("party", models.DeckSurprise, "You threw a party. Pay every player $25",
		models.Effect{Kind: models.EffectAllPlayers, Amount: -25}),
	effect("staycation", models.DeckSurprise, "Go on vacation. Collect nothing",
		models.Effect{Kind: models.EffectVacationNoCollect}),
}

var cardsById = func() map[string]models.Card {
	m := make(map[string]models.Card, len(treasureCards)+len(surpriseCards))
	for _, c := range append(append([]models.Card{}, treasureCards...), surpriseCards...) {
		m[c.Id] = c
	}
	return m
}()

// Deck returns the static cards of a deck.
func Deck(deck models.CardDeck) []models.Card {
	if deck == models.DeckTreasure {
		return treasureCards
	}
	return surpriseCards
}

func CardById(id string) (models.Card, bool) {
	c, ok := cardsById[id]
	return c, ok
}

// drawCard picks a card uniformly from the deck. The deck's jail card is out
// of the draw while a player holds it.
func (t *tx) drawCard(p *models.Player, deck models.CardDeck, dice int) error {
	held := t.g.JailCards[deck] != ""
	var eligible []models.Card
	for _, c := range Deck(deck) {
		if held && c.Effect.Kind == models.EffectJailFree {
			continue
		}
		eligible = append(eligible, c)
	}
	card := eligible[t.e.rng.Intn(len(eligible))]
	t.g.Turn.DrawnCard = card.Id
	t.emit(models.Event{Type: models.EventCardDrawn, Player: p.Id, Property: card.Id,
		Message: fmt.Sprintf("%s drew a %s card: %s", p.Name, deck, card.Info)})
	return t.applyCard(p, card, dice)
}

func (t *tx) applyCard(p *models.Player, card models.Card, dice int) error {
	e := card.Effect
	switch e.Kind {
	case models.EffectFlat:
		if e.Amount >= 0 {
			t.credit(p, e.Amount, card.Info)
		} else {
			t.debit(p, -e.Amount, e.ToPot, card.Info)
		}
	case models.EffectPerUnitFee:
		t.debit(p, e.PerHouse*p.Houses+e.PerHotel*p.Hotels, e.ToPot, card.Info)
	case models.EffectMoveAbsolute:
		if e.Target == 0 {
			t.moveTo(p, 0, false)
			t.credit(p, GoBonus, "advanced to GO")
			return nil
		}
		t.moveTo(p, e.Target, true)
	case models.EffectMoveRelative:
		t.advance(p, e.Steps, true)
		return t.resolveLanding(p, dice)
	case models.EffectMoveNearest:
		return t.moveNearest(p, e.Category, dice)
	case models.EffectAllPlayers:
		t.collectFromAll(p, e.Amount)
	case models.EffectVacationCollect:
		pot := t.g.VacationPot
		t.g.VacationPot = 0
		t.credit(p, pot, card.Info)
	case models.EffectJailFree:
		t.g.JailCards[card.Deck] = p.Id
		p.JailFreeCards++
	case models.EffectGoToJail:
		t.sendToJail(p, card.Info)
	case models.EffectVacationNoCollect:
		t.moveTo(p, t.e.board.VacationPosition(), false)
		t.takeVacation(p, false)
	default:
		t.logger().WithField("card_id", card.Id).Warn("card has no effect")
	}
	return nil
}

// moveNearest sends p forward to the closest square of category. Owned
// airports charge double rent and owned companies ten times the dice.
func (t *tx) moveNearest(p *models.Player, category models.SquareType, dice int) error {
	sq, err := t.e.board.Nearest(p.Position, category)
	if err != nil {
		t.logger().WithField("category", category).Warn("no square of category on board")
		return fmt.Errorf("%w: %s", ErrUnknownProperty, category)
	}
	t.moveTo(p, sq.Position, true)
	t.g.PropertyVisits[sq.Position]++
	st := t.g.Board[sq.Id]
	if st == nil || st.Owner == "" {
		return t.landOnProperty(p, sq, dice, 1)
	}
	in := t.rentInput(p, sq, st, dice)
	if category == models.SquareCompany {
		in.SetCount = len(sq.Rent)
		t.chargeRent(p, sq, st, in, 1)
		return nil
	}
	t.chargeRent(p, sq, st, in, 2)
	return nil
}

// collectFromAll moves amount from every other player to p; a negative amount
// pays every other player instead.
func (t *tx) collectFromAll(p *models.Player, amount int) {
	total := 0
	for _, id := range t.g.TurnOrder {
		other := t.g.Players[id]
		if other == nil || id == p.Id {
			continue
		}
		if amount >= 0 {
			t.transfer(other, p, amount)
		} else {
			t.transfer(p, other, -amount)
		}
		total += amount
	}
	t.emit(models.Event{Type: models.EventMoneyChanged, Player: p.Id, Amount: total,
		Message: fmt.Sprintf("%s settled $%d with every player", p.Name, abs(total))})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
