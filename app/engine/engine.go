package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/platform/board"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

const (
	GoBonus              = 200
	JailFine             = 50
	MaxJailTurns         = 3
	MaxDoubles           = 3
	DefaultAuctionWindow = 10 * time.Second
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Engine applies commands to a game. It holds no game state of its own, so one
// Engine serves every game.
type Engine struct {
	board         *board.Board
	rng           Source
	now           func() time.Time
	log           *logrus.Entry
	auctionWindow time.Duration
}

type Option func(*Engine)

func WithSource(src Source) Option {
	return func(e *Engine) { e.rng = src }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) { e.log = log }
}

func WithAuctionWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.auctionWindow = d
		}
	}
}

func New(b *board.Board, opts ...Option) *Engine {
	e := &Engine{
		board:         b,
		rng:           &lockedSource{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))},
		now:           time.Now,
		log:           logrus.WithField("component", "engine"),
		auctionWindow: DefaultAuctionWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Board() *board.Board { return e.board }

// Apply runs cmd against g. On success it returns the next state and the events
// produced; on error g is returned untouched.
func (e *Engine) Apply(g *models.Game, cmd Command) (*models.Game, []models.Event, error) {
	if cmd == nil {
		return g, nil, ErrUnknownCommand
	}
	if v := reflect.ValueOf(cmd); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return g, nil, ErrUnknownCommand
		}
		cmd = v.Elem().Interface().(Command)
	}
	t := e.begin(g.Clone())
	if err := t.dispatch(cmd); err != nil {
		return g, nil, err
	}
	return t.commit(), t.events, nil
}

// NewGame builds a game in the waiting state with its host seated.
func (e *Engine) NewGame(id, hostId, hostName, color string, settings models.Settings) (*models.Game, []models.Event, error) {
	if err := validateSettings(settings); err != nil {
		return nil, nil, err
	}
	now := e.now()
	g := &models.Game{
		Id:             id,
		Host:           hostId,
		Status:         models.StatusWaiting,
		Settings:       settings,
		Board:          make(map[string]*models.PropertyState),
		Players:        make(map[string]*models.Player),
		Trades:         make(map[string]*models.Trade),
		PropertyVisits: make(map[int]int),
		JailCount:      make(map[string]int),
		JailCards:      make(map[models.CardDeck]string),
		CreatedAt:      now,
	}
	for _, p := range e.board.Priced() {
		g.Board[p.Id] = &models.PropertyState{}
	}
	t := e.begin(g)
	t.emit(models.Event{Type: models.EventGameCreated, Player: hostId, Message: fmt.Sprintf("%s created the game", hostName)})
	if err := t.join(JoinGame{PlayerId: hostId, Name: hostName, Color: color}); err != nil {
		return nil, nil, err
	}
	return t.commit(), t.events, nil
}

// tx is one command application against a private copy of the game.
type tx struct {
	e      *Engine
	g      *models.Game
	now    time.Time
	events []models.Event
	depth  int
}

func (e *Engine) begin(g *models.Game) *tx {
	if g.PropertyVisits == nil {
		g.PropertyVisits = make(map[int]int)
	}
	if g.JailCount == nil {
		g.JailCount = make(map[string]int)
	}
	if g.JailCards == nil {
		g.JailCards = make(map[models.CardDeck]string)
	}
	if g.Trades == nil {
		g.Trades = make(map[string]*models.Trade)
	}
	return &tx{e: e, g: g, now: e.now()}
}

func (t *tx) dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case JoinGame:
		return t.join(c)
	case UpdateSettings:
		return t.updateSettings(c)
	case StartGame:
		return t.start(c)
	case RollDice:
		return t.rollDice(c)
	case EndTurn:
		return t.endTurn(c)
	case BuyProperty:
		return t.buyProperty(c)
	case DeclineProperty:
		return t.declineProperty(c)
	case SellProperty:
		return t.sellProperty(c)
	case MortgageProperty:
		return t.mortgage(c)
	case UnmortgageProperty:
		return t.unmortgage(c)
	case BuildHouse:
		return t.buildHouse(c)
	case SellHouse:
		return t.sellHouse(c)
	case PayJailFine:
		return t.payJailFine(c)
	case UseJailCard:
		return t.useJailCard(c)
	case StartAuction:
		return t.startAuction(c)
	case PlaceBid:
		return t.placeBid(c)
	case SettleAuction:
		return t.settleAuction(c)
	case CancelAuction:
		return t.cancelAuction(c)
	case ProposeTrade:
		return t.proposeTrade(c)
	case AcceptTrade:
		return t.acceptTrade(c)
	case RejectTrade:
		return t.rejectTrade(c)
	case CancelTrade:
		return t.cancelTrade(c)
	case DeclareBankruptcy:
		return t.declareBankruptcy(c)
	}
	return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

func (t *tx) commit() *models.Game {
	for _, ev := range t.events {
		t.g.GameLog = append(t.g.GameLog, models.LogEntry{At: t.now, Message: ev.Message})
	}
	return t.g
}

func (t *tx) emit(ev models.Event) {
	t.events = append(t.events, ev)
}

func (t *tx) logger() *logrus.Entry {
	return t.e.log.WithField("game_id", t.g.Id)
}

func (t *tx) requireInProgress() error {
	switch t.g.Status {
	case models.StatusWaiting:
		return ErrGameNotStarted
	case models.StatusFinished:
		return ErrGameFinished
	}
	return nil
}

func (t *tx) player(id string) (*models.Player, error) {
	p := t.g.Players[id]
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	return p, nil
}

// requireTurn checks the game is running and it is id's turn.
func (t *tx) requireTurn(id string) (*models.Player, error) {
	if err := t.requireInProgress(); err != nil {
		return nil, err
	}
	p, err := t.player(id)
	if err != nil {
		return nil, err
	}
	if t.g.CurrentPlayerTurn != id {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

// square resolves a property id against the board. Unknown ids are logged and
// reported as ErrUnknownProperty.
func (t *tx) square(id string) (models.Property, *models.PropertyState, error) {
	sq, err := t.e.board.GetById(id)
	if err != nil {
		t.logger().WithField("property_id", id).Warn("property not on board")
		return models.Property{}, nil, fmt.Errorf("%w: %s", ErrUnknownProperty, id)
	}
	if !sq.Priced() {
		return sq, nil, ErrNotPriced
	}
	st := t.g.Board[id]
	if st == nil {
		t.logger().WithField("property_id", id).Warn("property missing from game board state")
		return sq, nil, fmt.Errorf("%w: %s", ErrUnknownProperty, id)
	}
	return sq, st, nil
}

func (t *tx) name(id string) string {
	if p := t.g.Players[id]; p != nil && p.Name != "" {
		return p.Name
	}
	return id
}
