package models

import (
	"encoding/json"
	"time"
)

type GameStatus string

const (
	StatusWaiting    GameStatus = "waiting"
	StatusInProgress GameStatus = "in-progress"
	StatusFinished   GameStatus = "finished"
)

// Settings are frozen once the game leaves StatusWaiting.
type Settings struct {
	StartingMoney              int  `json:"startingMoney"`
	MaxPlayers                 int  `json:"maxPlayers"`
	AllowAuctions              bool `json:"allowAuctions"`
	AllowOwnedPropertyAuctions bool `json:"allowOwnedPropertyAuctions"`
	AllowMortgage              bool `json:"allowMortgage"`
	RentInJail                 bool `json:"rentInJail"`
	TaxInVacationPot           bool `json:"taxInVacationPot"`
	DoubleRentOnMonopoly       bool `json:"doubleRentOnMonopoly"`
	EscalatingJailFine         bool `json:"escalatingJailFine"`
}

func DefaultSettings() Settings {
	return Settings{
		StartingMoney:              1500,
		MaxPlayers:                 6,
		AllowAuctions:              true,
		AllowOwnedPropertyAuctions: true,
		AllowMortgage:              true,
		RentInJail:                 true,
		TaxInVacationPot:           true,
		DoubleRentOnMonopoly:       true,
		EscalatingJailFine:         false,
	}
}

type TurnPhase string

const (
	PhaseAwaitingRoll        TurnPhase = "awaiting-roll"
	PhaseAwaitingBuyDecision TurnPhase = "awaiting-buy-decision"
	PhaseTurnComplete        TurnPhase = "turn-complete"
)

type TurnState struct {
	Phase           TurnPhase `json:"phase"`
	Dice            [2]int    `json:"dice"`
	PendingPurchase string    `json:"pendingPurchase,omitempty"`
	DrawnCard       string    `json:"drawnCard,omitempty"`
	StartedInJail   bool      `json:"startedInJail"`
	OnVacation      bool      `json:"onVacation"` // the turn is skipped
}

type LogEntry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// Game is the root aggregate shared by every player of a match.
type Game struct {
	Id       string     `json:"id"`
	Host     string     `json:"host"`
	Status   GameStatus `json:"status"`
	Settings Settings   `json:"settings"`
	Version  int64      `json:"version"`

	Board             map[string]*PropertyState `json:"board"`
	Players           map[string]*Player        `json:"players"`
	TurnOrder         []string                  `json:"turnOrder"`
	CurrentPlayerTurn string                    `json:"currentPlayerTurn"`
	Turn              TurnState                 `json:"turn"`

	GameLog        []LogEntry          `json:"gameLog"`
	VacationPot    int                 `json:"vacationPot"`
	Auction        *Auction            `json:"auction,omitempty"`
	Trades         map[string]*Trade   `json:"trades"`
	PropertyVisits map[int]int         `json:"propertyVisits"`
	JailCount      map[string]int      `json:"jailCount"`
	JailCards      map[CardDeck]string `json:"jailCards"` // deck -> holder of its get-out-of-jail card
	Winner         string              `json:"winner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	data, err := json.Marshal(g)
	if err != nil {
		panic(err)
	}
	var out Game
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// Player returns the player with the given id, nil if absent.
func (g *Game) Player(id string) *Player {
	return g.Players[id]
}

// GameRecord is the registry row for a game.
type GameRecord struct {
	tableName struct{} `pg:"games"`

	Id        string `pg:",pk"`
	Name      string
	Status    string
	Host      string
	Winner    string
	Passcode  string
	CreatedAt time.Time
}

type GameCreateDto struct {
	Name     string    `json:"name"`
	Passcode string    `json:"passcode"`
	Color    string    `json:"color"`
	Settings *Settings `json:"settings"`
}

type JoinGameDto struct {
	Color    string `json:"color"`
	Passcode string `json:"passcode"`
}

type VerifyGameDto struct {
	Code string `query:"code"`
}
