package queries

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrGameNotFound = errors.New("game does not exist")

// Registry records games and their seats in Postgres. The live game state
// itself lives in the store.
type Registry struct {
	db  *pg.DB
	log *logrus.Entry
}

func NewRegistry(db *pg.DB) *Registry {
	return &Registry{db: db, log: logrus.WithField("component", "registry")}
}

func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasscode accepts anything for open games.
func CheckPasscode(game *models.GameRecord, passcode string) bool {
	if game.Passcode == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(game.Passcode), []byte(passcode)) == nil
}

func (r *Registry) CreateGame(ctx context.Context, game *models.GameRecord, passcode string) error {
	hash, err := HashPasscode(passcode)
	if err != nil {
		return err
	}
	game.Passcode = hash
	_, err = r.db.ModelContext(ctx, game).Insert()
	return err
}

func (r *Registry) VerifyGame(ctx context.Context, id string) (*models.GameRecord, error) {
	game := &models.GameRecord{Id: id}
	err := r.db.ModelContext(ctx, game).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (r *Registry) ListOpen(ctx context.Context) ([]models.GameRecord, error) {
	var games []models.GameRecord
	err := r.db.ModelContext(ctx, &games).
		Where("status = ?", string(models.StatusWaiting)).
		Order("created_at DESC").
		Select()
	return games, err
}

func (r *Registry) AddPlayer(ctx context.Context, gameId, userId, username string) error {
	player := &models.PlayerRecord{Game_id: gameId, User_id: userId, Username: username, Active: true}
	_, err := r.db.ModelContext(ctx, player).Insert()
	return err
}

// RemovePlayer marks a seat inactive once its player has gone bankrupt.
func (r *Registry) RemovePlayer(ctx context.Context, gameId, userId string) error {
	_, err := r.db.ModelContext(ctx, (*models.PlayerRecord)(nil)).
		Set("active = ?", false).
		Where("game_id = ? and user_id = ?", gameId, userId).
		Update()
	return err
}

func (r *Registry) MarkStarted(ctx context.Context, id string) error {
	_, err := r.db.ModelContext(ctx, &models.GameRecord{Id: id}).
		Set("status = ?", string(models.StatusInProgress)).
		WherePK().
		Update()
	return err
}

func (r *Registry) MarkFinished(ctx context.Context, id, winner string) error {
	_, err := r.db.ModelContext(ctx, &models.GameRecord{Id: id}).
		Set("status = ?", string(models.StatusFinished)).
		Set("winner = ?", winner).
		WherePK().
		Update()
	if err != nil {
		r.log.WithError(err).WithField("game_id", id).Error("failed to record winner")
	}
	return err
}
