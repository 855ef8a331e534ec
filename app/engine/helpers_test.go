package engine

import (
	"testing"
	"time"

	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/platform/board"
)

// scripted replays queued values and remembers the last range asked for.
type scripted struct {
	vals []int
	last int
}

func (s *scripted) Intn(n int) int {
	s.last = n
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

// dice queues two faces in 1..6.
func (s *scripted) dice(d1, d2 int) *scripted {
	s.vals = append(s.vals, d1-1, d2-1)
	return s
}

func (s *scripted) card(i int) *scripted {
	s.vals = append(s.vals, i)
	return s
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
func newClock() *testClock                   { return &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)} }

func newTestEngine(src *scripted, clock *testClock) *Engine {
	return New(board.MustLoad(), WithSource(src), WithClock(clock.Now))
}

// startedGame seats n players (p1 hosts) and starts the game.
func startedGame(t *testing.T, e *Engine, n int, settings models.Settings) *models.Game {
	t.Helper()
	g, _, err := e.NewGame("g1", "p1", "Ann", "red", settings)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	names := []string{"Ann", "Bob", "Cid", "Dee", "Eve", "Fay"}
	for i := 2; i <= n; i++ {
		id := "p" + string(rune('0'+i))
		g = mustApply(t, e, g, JoinGame{PlayerId: id, Name: names[i-1], Color: "blue"})
	}
	return mustApply(t, e, g, StartGame{PlayerId: "p1"})
}

func mustApply(t *testing.T, e *Engine, g *models.Game, cmd Command) *models.Game {
	t.Helper()
	next, _, err := e.Apply(g, cmd)
	if err != nil {
		t.Fatalf("%T failed: %v", cmd, err)
	}
	checkInvariants(t, e, next)
	return next
}

func give(t *testing.T, e *Engine, g *models.Game, playerId string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		sq, err := e.Board().GetById(id)
		if err != nil {
			t.Fatalf("GetById(%q) failed: %v", id, err)
		}
		g.Board[id].Owner = playerId
		g.Players[playerId].AddHolding(sq.Type, id)
	}
}

func countEvents(events []models.Event, typ models.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// checkInvariants verifies ownership is consistent in both directions and
// improvements stay within their bounds.
func checkInvariants(t *testing.T, e *Engine, g *models.Game) {
	t.Helper()
	for id, st := range g.Board {
		sq, err := e.Board().GetById(id)
		if err != nil {
			t.Fatalf("board state for unknown property %q", id)
		}
		if st.Houses < 0 || st.Houses > 4 || st.Hotels < 0 || st.Hotels > 1 {
			t.Errorf("%s: houses = %d, hotels = %d out of range", id, st.Houses, st.Hotels)
		}
		if st.Hotels > 0 && st.Houses > 0 {
			t.Errorf("%s has both a hotel and %d houses", id, st.Houses)
		}
		if st.Mortgaged && st.Improved() {
			t.Errorf("%s is mortgaged with buildings", id)
		}
		if st.Owner == "" {
			continue
		}
		owner := g.Players[st.Owner]
		if owner == nil || !owner.Owns(sq.Type, id) {
			t.Errorf("%s owner = %q but holdings disagree", id, st.Owner)
		}
	}
	for _, p := range g.Players {
		for _, id := range p.AllProperties() {
			if st := g.Board[id]; st == nil || st.Owner != p.Id {
				t.Errorf("%s holds %s but board owner disagrees", p.Id, id)
			}
		}
	}
}
