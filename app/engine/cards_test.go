package engine

import (
	"testing"

	"github.com/saimerit/monopoly-game/app/models"
)

func TestDeckSizes(t *testing.T) {
	if n := len(Deck(models.DeckTreasure)); n != 24 {
		t.Errorf("treasure cards = %d, want 24", n)
	}
	if n := len(Deck(models.DeckSurprise)); n != 20 {
		t.Errorf("surprise cards = %d, want 20", n)
	}
	seen := map[string]bool{}
	for _, deck := range []models.CardDeck{models.DeckTreasure, models.DeckSurprise} {
		jail := 0
		for _, c := range Deck(deck) {
			if seen[c.Id] {
				t.Errorf("duplicate card id %q", c.Id)
			}
			seen[c.Id] = true
			if c.Deck != deck {
				t.Errorf("%s is filed under %s", c.Id, deck)
			}
			if c.Effect.Kind == models.EffectJailFree {
				jail++
			}
		}
		if jail != 1 {
			t.Errorf("%s jail cards = %d, want 1", deck, jail)
		}
	}
}

// drawAt rolls p1 from start onto a card square and draws the card with the given id.
func drawAt(t *testing.T, start, d1, d2 int, cardId string, setup func(g *models.Game)) (*models.Game, []models.Event) {
	t.Helper()
	src := &scripted{}
	e := newTestEngine(src, newClock())
	g := startedGame(t, e, 3, models.DefaultSettings())
	g.Players["p1"].Position = start
	if setup != nil {
		setup(g)
	}
	card, ok := CardById(cardId)
	if !ok {
		t.Fatalf("no card %q", cardId)
	}
	idx := -1
	for i, c := range Deck(card.Deck) {
		if c.Id == cardId {
			idx = i
		}
	}
	src.dice(d1, d2).card(idx)
	next, events, err := e.Apply(g, RollDice{PlayerId: "p1"})
	if err != nil {
		t.Fatalf("RollDice failed: %v", err)
	}
	if next.Turn.DrawnCard != cardId {
		t.Fatalf("drawn = %q, want %q", next.Turn.DrawnCard, cardId)
	}
	checkInvariants(t, e, next)
	return next, events
}

func TestCardEffects(t *testing.T) {
	t.Run("flat debit feeds the pot", func(t *testing.T) {
		g, _ := drawAt(t, 0, 1, 2, "hospital-fees", nil)
		if g.Players["p1"].Money != 1400 || g.VacationPot != 100 {
			t.Errorf("money = %d pot = %d, want 1400, 100", g.Players["p1"].Money, g.VacationPot)
		}
	})

	t.Run("per unit fee", func(t *testing.T) {
		g, _ := drawAt(t, 0, 1, 2, "street-repairs", func(g *models.Game) {
			g.Players["p1"].Houses = 3
			g.Players["p1"].Hotels = 1
		})
		if got := g.Players["p1"].Money; got != 1500-3*40-115 {
			t.Errorf("money = %d, want %d", got, 1500-3*40-115)
		}
	})

	t.Run("advance without passing GO", func(t *testing.T) {
		g, events := drawAt(t, 0, 3, 4, "advance-berlin", nil)
		if g.Players["p1"].Position != 21 || g.Players["p1"].Money != 1500 {
			t.Errorf("position = %d money = %d, want 21, 1500", g.Players["p1"].Position, g.Players["p1"].Money)
		}
		if countEvents(events, models.EventPassedGo) != 0 {
			t.Errorf("unexpected GO bonus")
		}
	})

	t.Run("advance past GO", func(t *testing.T) {
		g, events := drawAt(t, 33, 2, 2, "advance-berlin", nil)
		if g.Players["p1"].Position != 21 || countEvents(events, models.EventPassedGo) != 1 {
			t.Errorf("position = %d, want 21 with one GO bonus", g.Players["p1"].Position)
		}
	})

	t.Run("advance to GO", func(t *testing.T) {
		g, _ := drawAt(t, 30, 1, 1, "treasure-advance-go", nil)
		if g.Players["p1"].Position != 0 || g.Players["p1"].Money != 1700 {
			t.Errorf("position = %d money = %d, want 0, 1700", g.Players["p1"].Position, g.Players["p1"].Money)
		}
	})

	t.Run("back three resolves the landing", func(t *testing.T) {
		g, _ := drawAt(t, 4, 1, 2, "back-three", func(g *models.Game) {
			g.Board["brazil-sao-paulo"].Owner = "p2"
			g.Players["p2"].AddHolding(models.SquareCity, "brazil-sao-paulo")
		})
		if g.Players["p1"].Position != 4 || g.Players["p1"].Money != 1494 {
			t.Errorf("position = %d money = %d, want 4, 1494", g.Players["p1"].Position, g.Players["p1"].Money)
		}
	})

	t.Run("nearest airport pays double", func(t *testing.T) {
		g, _ := drawAt(t, 4, 1, 2, "nearest-airport", func(g *models.Game) {
			g.Board["muc-airport"].Owner = "p2"
			g.Players["p2"].AddHolding(models.SquareAirport, "muc-airport")
		})
		if g.Players["p1"].Position != 20 || g.Players["p1"].Money != 1450 || g.Players["p2"].Money != 1550 {
			t.Errorf("position = %d money = %d/%d, want 20, 1450/1550",
				g.Players["p1"].Position, g.Players["p1"].Money, g.Players["p2"].Money)
		}
	})

	t.Run("nearest company pays ten times the dice", func(t *testing.T) {
		g, _ := drawAt(t, 20, 1, 2, "nearest-company", func(g *models.Game) {
			g.Board["water-company"].Owner = "p2"
			g.Players["p2"].AddHolding(models.SquareCompany, "water-company")
		})
		if g.Players["p1"].Position != 40 || g.Players["p1"].Money != 1470 {
			t.Errorf("position = %d money = %d, want 40, 1470", g.Players["p1"].Position, g.Players["p1"].Money)
		}
	})

	t.Run("nearest unowned is offered", func(t *testing.T) {
		g, _ := drawAt(t, 20, 1, 2, "nearest-airport", nil)
		if g.Turn.PendingPurchase != "cdg-airport" {
			t.Errorf("pending = %q, want cdg-airport", g.Turn.PendingPurchase)
		}
	})

	t.Run("collect from everyone", func(t *testing.T) {
		g, _ := drawAt(t, 0, 1, 2, "birthday", nil)
		if g.Players["p1"].Money != 1520 || g.Players["p2"].Money != 1490 || g.Players["p3"].Money != 1490 {
			t.Errorf("money = %d/%d/%d, want 1520/1490/1490",
				g.Players["p1"].Money, g.Players["p2"].Money, g.Players["p3"].Money)
		}
	})

	t.Run("pay everyone", func(t *testing.T) {
		g, _ := drawAt(t, 4, 1, 2, "chairman", nil)
		if g.Players["p1"].Money != 1400 || g.Players["p2"].Money != 1550 {
			t.Errorf("money = %d/%d, want 1400/1550", g.Players["p1"].Money, g.Players["p2"].Money)
		}
	})

	t.Run("jail card is kept", func(t *testing.T) {
		g, _ := drawAt(t, 0, 1, 2, "treasure-jail-free", nil)
		if g.Players["p1"].JailFreeCards != 1 || g.JailCards[models.DeckTreasure] != "p1" {
			t.Errorf("jail card not granted")
		}
	})

	t.Run("go to jail", func(t *testing.T) {
		g, _ := drawAt(t, 4, 1, 2, "surprise-go-to-jail", nil)
		if !g.Players["p1"].InJail || g.Players["p1"].Position != 14 {
			t.Errorf("not jailed")
		}
	})

	t.Run("vacation without collecting", func(t *testing.T) {
		g, _ := drawAt(t, 20, 1, 2, "staycation", func(g *models.Game) { g.VacationPot = 200 })
		p := g.Players["p1"]
		if p.Position != 28 || !p.OnVacation || g.VacationPot != 200 || p.Money != 1500 {
			t.Errorf("position = %d onVacation = %v pot = %d money = %d", p.Position, p.OnVacation, g.VacationPot, p.Money)
		}
	})

	t.Run("collect the pot", func(t *testing.T) {
		g, _ := drawAt(t, 0, 1, 2, "lucky-trip", func(g *models.Game) { g.VacationPot = 120 })
		if g.Players["p1"].Money != 1620 || g.VacationPot != 0 {
			t.Errorf("money = %d pot = %d, want 1620, 0", g.Players["p1"].Money, g.VacationPot)
		}
	})
}

func TestHeldJailCardIsNotDrawn(t *testing.T) {
	src := &scripted{}
	e := newTestEngine(src, newClock())
	g := startedGame(t, e, 2, models.DefaultSettings())
	g.JailCards[models.DeckTreasure] = "p2"
	g.Players["p2"].JailFreeCards = 1
	src.dice(1, 2).card(18)

	g = mustApply(t, e, g, RollDice{PlayerId: "p1"})
	if src.last != 23 {
		t.Errorf("drew from %d cards, want 23", src.last)
	}
	if g.Turn.DrawnCard == "treasure-jail-free" {
		t.Errorf("held jail card drawn again")
	}
}
