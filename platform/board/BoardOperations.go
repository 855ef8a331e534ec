package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saimerit/monopoly-game/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

var ErrNotFound = errors.New("not found")

// Board is the immutable square layout.
type Board struct {
	squares  []models.Property
	byId     map[string]int
	jail     int
	vacation int
}

// LoadProperties parses the embedded board layout.
func LoadProperties() (*Board, error) {
	var properties []models.Property
	if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return New(properties)
}

// MustLoad is LoadProperties for program start-up.
func MustLoad() *Board {
	b, err := LoadProperties()
	if err != nil {
		panic(err)
	}
	return b
}

func New(properties []models.Property) (*Board, error) {
	b := &Board{
		squares:  make([]models.Property, len(properties)),
		byId:     make(map[string]int, len(properties)),
		jail:     -1,
		vacation: -1,
	}
	for i, p := range properties {
		if p.Position != i {
			return nil, fmt.Errorf("square %q at index %d claims position %d", p.Id, i, p.Position)
		}
		if _, dup := b.byId[p.Id]; dup {
			return nil, fmt.Errorf("duplicate square id %q", p.Id)
		}
		b.squares[i] = p
		b.byId[p.Id] = i
		switch p.Type {
		case models.SquareJail:
			b.jail = i
		case models.SquareVacation:
			b.vacation = i
		}
	}
	if b.jail < 0 || b.vacation < 0 {
		return nil, errors.New("board needs a jail and a vacation square")
	}
	return b, nil
}

func (b *Board) Size() int             { return len(b.squares) }
func (b *Board) JailPosition() int     { return b.jail }
func (b *Board) VacationPosition() int { return b.vacation }

func (b *Board) GetByPos(pos int) (models.Property, error) {
	if pos < 0 || pos >= len(b.squares) {
		return models.Property{}, ErrNotFound
	}
	return b.squares[pos], nil
}

func (b *Board) GetById(id string) (models.Property, error) {
	idx, ok := b.byId[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	return b.squares[idx], nil
}

// Priced lists every square that can be owned.
func (b *Board) Priced() []models.Property {
	var out []models.Property
	for _, p := range b.squares {
		if p.Priced() {
			out = append(out, p)
		}
	}
	return out
}

// Country returns the ids of every city in a country.
func (b *Board) Country(country string) []string {
	var ids []string
	for _, p := range b.squares {
		if p.Type == models.SquareCity && p.Country == country {
			ids = append(ids, p.Id)
		}
	}
	return ids
}

// Nearest finds the square of type t with the smallest forward distance from pos,
// wrapping past GO. The square at pos itself is skipped.
func (b *Board) Nearest(pos int, t models.SquareType) (models.Property, error) {
	n := len(b.squares)
	for step := 1; step <= n; step++ {
		p := b.squares[(pos+step)%n]
		if p.Type == t {
			return p, nil
		}
	}
	return models.Property{}, ErrNotFound
}
