package cache

import (
	"errors"

	"github.com/saimerit/monopoly-game/app/models"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrExists   = errors.New("game already exists")
	// ErrConflict means every retry lost the race to a concurrent writer.
	ErrConflict = errors.New("game was modified concurrently, try again")
)

// UpdateFunc derives the next state from the latest stored one. Returning an
// error aborts the write.
type UpdateFunc func(cur *models.Game) (*models.Game, error)

const DefaultRetries = 5
