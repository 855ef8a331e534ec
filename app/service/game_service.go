package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/saimerit/monopoly-game/app/engine"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/pkg/utils"
	"github.com/saimerit/monopoly-game/platform/cache"
	"github.com/saimerit/monopoly-game/platform/logging"
	"github.com/saimerit/monopoly-game/platform/queries"
	"github.com/sirupsen/logrus"
)

var (
	ErrBadPasscode   = errors.New("wrong passcode")
	ErrUnknownAction = errors.New("unknown action")
	ErrBadPayload    = errors.New("malformed action payload")
)

const gameCodeLength = 6

// Store persists game documents. Update must apply fn atomically against the
// latest state.
type Store interface {
	Create(ctx context.Context, g *models.Game) error
	Load(ctx context.Context, id string) (*models.Game, error)
	Update(ctx context.Context, id string, fn cache.UpdateFunc) (*models.Game, error)
	Delete(ctx context.Context, id string) error
	Balances(ctx context.Context, id string) (map[string]int, error)
}

type Registry interface {
	CreateGame(ctx context.Context, game *models.GameRecord, passcode string) error
	VerifyGame(ctx context.Context, id string) (*models.GameRecord, error)
	ListOpen(ctx context.Context) ([]models.GameRecord, error)
	AddPlayer(ctx context.Context, gameId, userId, username string) error
	RemovePlayer(ctx context.Context, gameId, userId string) error
	MarkStarted(ctx context.Context, id string) error
	MarkFinished(ctx context.Context, id, winner string) error
}

// Broadcaster pushes committed state to everyone watching a game.
type Broadcaster interface {
	Publish(gameId string, g *models.Game, events []models.Event)
}

// GameService is the only writer of game state. Every command runs through
// the engine inside a store transaction.
type GameService struct {
	engine   *engine.Engine
	store    Store
	registry Registry

	mu          sync.Mutex
	broadcaster Broadcaster
	timers      map[string]*time.Timer
	synced      map[string]int64

	log *logrus.Entry
}

func New(eng *engine.Engine, store Store, registry Registry) *GameService {
	return &GameService{
		engine:   eng,
		store:    store,
		registry: registry,
		timers:   make(map[string]*time.Timer),
		synced:   make(map[string]int64),
		log:      logging.For("game-service"),
	}
}

// SetBroadcaster installs the realtime surface once it exists.
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcaster = b
}

func (s *GameService) publish(id string, g *models.Game, events []models.Event) {
	s.mu.Lock()
	b := s.broadcaster
	s.mu.Unlock()
	if b != nil {
		b.Publish(id, g, events)
	}
}

func (s *GameService) CreateGame(ctx context.Context, hostId, hostName string, dto models.GameCreateDto) (*models.Game, error) {
	settings := models.DefaultSettings()
	if dto.Settings != nil {
		settings = *dto.Settings
	}
	g, events, err := s.engine.NewGame(utils.RandString(gameCodeLength), hostId, hostName, dto.Color, settings)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, g); err != nil {
		return nil, err
	}
	record := &models.GameRecord{
		Id:        g.Id,
		Name:      dto.Name,
		Status:    string(g.Status),
		Host:      hostId,
		CreatedAt: g.CreatedAt,
	}
	if err := s.registry.CreateGame(ctx, record, dto.Passcode); err != nil {
		if derr := s.store.Delete(ctx, g.Id); derr != nil {
			s.log.WithError(derr).WithField("game_id", g.Id).Error("failed to roll back game document")
		}
		return nil, err
	}
	if err := s.registry.AddPlayer(ctx, g.Id, hostId, hostName); err != nil {
		s.log.WithError(err).WithField("game_id", g.Id).Warn("failed to record host seat")
	}
	s.log.WithFields(logrus.Fields{"game_id": g.Id, "player_id": hostId}).Info("game created")
	s.publish(g.Id, g, events)
	return g, nil
}

func (s *GameService) ListOpen(ctx context.Context) ([]models.GameRecord, error) {
	return s.registry.ListOpen(ctx)
}

func (s *GameService) Verify(ctx context.Context, id string) (*models.GameRecord, error) {
	return s.registry.VerifyGame(ctx, id)
}

func (s *GameService) Join(ctx context.Context, gameId, userId, name string, dto models.JoinGameDto) (*models.Game, error) {
	record, err := s.registry.VerifyGame(ctx, gameId)
	if err != nil {
		return nil, err
	}
	if !queries.CheckPasscode(record, dto.Passcode) {
		return nil, ErrBadPasscode
	}
	g, _, err := s.Execute(ctx, gameId, engine.JoinGame{PlayerId: userId, Name: name, Color: dto.Color})
	if err != nil {
		return nil, err
	}
	if err := s.registry.AddPlayer(ctx, gameId, userId, name); err != nil {
		s.log.WithError(err).WithField("game_id", gameId).Warn("failed to record seat")
	}
	return g, nil
}

func (s *GameService) State(ctx context.Context, id string) (*models.Game, error) {
	return s.store.Load(ctx, id)
}

// Balances reads the money of every seated player without loading the game.
func (s *GameService) Balances(ctx context.Context, id string) (map[string]int, error) {
	balances, err := s.store.Balances(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(balances) == 0 {
		return nil, cache.ErrNotFound
	}
	return balances, nil
}

// Dispatch decodes a named action from a loosely typed payload. The acting
// player always comes from the authenticated identity, never the payload.
func (s *GameService) Dispatch(ctx context.Context, gameId, playerId, verb string, payload map[string]interface{}) (*models.Game, []models.Event, error) {
	cmd, err := DecodeCommand(verb, playerId, payload)
	if err != nil {
		return nil, nil, err
	}
	return s.Execute(ctx, gameId, cmd)
}

func DecodeCommand(verb, playerId string, payload map[string]interface{}) (engine.Command, error) {
	cmd, ok := engine.NewCommand(verb)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, verb)
	}
	input := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		input[k] = v
	}
	input["playerId"] = playerId
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           cmd,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return cmd, nil
}

// Execute applies cmd to the latest stored state and commits the result.
func (s *GameService) Execute(ctx context.Context, gameId string, cmd engine.Command) (*models.Game, []models.Event, error) {
	var events []models.Event
	next, err := s.store.Update(ctx, gameId, func(cur *models.Game) (*models.Game, error) {
		g, ev, err := s.engine.Apply(cur, cmd)
		if err != nil {
			return nil, err
		}
		events = ev
		return g, nil
	})
	entry := s.log.WithFields(logrus.Fields{"game_id": gameId, "player_id": cmd.Actor(), "op": fmt.Sprintf("%T", cmd)})
	if err != nil {
		if engine.IsPrecondition(err) {
			entry.WithError(err).Debug("command rejected")
		} else {
			entry.WithError(err).Warn("command failed")
		}
		return nil, nil, err
	}
	entry.WithField("events", len(events)).Debug("command applied")
	s.afterCommit(ctx, next, events)
	s.publish(gameId, next, events)
	return next, events, nil
}

func (s *GameService) afterCommit(ctx context.Context, g *models.Game, events []models.Event) {
	for _, ev := range events {
		var err error
		switch ev.Type {
		case models.EventGameStarted:
			err = s.registry.MarkStarted(ctx, g.Id)
		case models.EventBankrupt:
			err = s.registry.RemovePlayer(ctx, g.Id, ev.Player)
		case models.EventGameOver:
			err = s.registry.MarkFinished(ctx, g.Id, g.Winner)
		}
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"game_id": g.Id, "event": ev.Type}).Warn("registry update failed")
		}
	}
	s.syncAuctionTimer(g)
}
