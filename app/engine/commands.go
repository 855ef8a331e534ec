package engine

import "github.com/saimerit/monopoly-game/app/models"

// Command is a player intent. Actor is the id of the player issuing it.
type Command interface {
	Actor() string
}

type JoinGame struct {
	PlayerId string `json:"playerId"`
	Name     string `json:"name"`
	Color    string `json:"color"`
}

type UpdateSettings struct {
	PlayerId string          `json:"playerId"`
	Settings models.Settings `json:"settings"`
}

type StartGame struct {
	PlayerId string `json:"playerId"`
}

type RollDice struct {
	PlayerId string `json:"playerId"`
}

type EndTurn struct {
	PlayerId string `json:"playerId"`
}

type BuyProperty struct {
	PlayerId string `json:"playerId"`
}

type DeclineProperty struct {
	PlayerId string `json:"playerId"`
}

type SellProperty struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type MortgageProperty struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type UnmortgageProperty struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type BuildHouse struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type SellHouse struct {
	PlayerId   string `json:"playerId"`
	PropertyId string `json:"propertyId"`
}

type PayJailFine struct {
	PlayerId string `json:"playerId"`
}

type UseJailCard struct {
	PlayerId string `json:"playerId"`
}

type StartAuction struct {
	PlayerId    string `json:"playerId"`
	PropertyId  string `json:"propertyId"`
	StartingBid int    `json:"startingBid"`
}

type PlaceBid struct {
	PlayerId string `json:"playerId"`
	Amount   int    `json:"amount"`
}

type SettleAuction struct {
	PlayerId string `json:"playerId"`
}

type CancelAuction struct {
	PlayerId string `json:"playerId"`
}

type ProposeTrade struct {
	PlayerId string        `json:"playerId"`
	ToPlayer string        `json:"toPlayer"`
	Offer    models.Bundle `json:"offer"`
	Request  models.Bundle `json:"request"`
}

type AcceptTrade struct {
	PlayerId string `json:"playerId"`
	TradeId  string `json:"tradeId"`
}

type RejectTrade struct {
	PlayerId string `json:"playerId"`
	TradeId  string `json:"tradeId"`
}

type CancelTrade struct {
	PlayerId string `json:"playerId"`
	TradeId  string `json:"tradeId"`
}

type DeclareBankruptcy struct {
	PlayerId string `json:"playerId"`
}

func (c JoinGame) Actor() string           { return c.PlayerId }
func (c UpdateSettings) Actor() string     { return c.PlayerId }
func (c StartGame) Actor() string          { return c.PlayerId }
func (c RollDice) Actor() string           { return c.PlayerId }
func (c EndTurn) Actor() string            { return c.PlayerId }
func (c BuyProperty) Actor() string        { return c.PlayerId }
func (c DeclineProperty) Actor() string    { return c.PlayerId }
func (c SellProperty) Actor() string       { return c.PlayerId }
func (c MortgageProperty) Actor() string   { return c.PlayerId }
func (c UnmortgageProperty) Actor() string { return c.PlayerId }
func (c BuildHouse) Actor() string         { return c.PlayerId }
func (c SellHouse) Actor() string          { return c.PlayerId }
func (c PayJailFine) Actor() string        { return c.PlayerId }
func (c UseJailCard) Actor() string        { return c.PlayerId }
func (c StartAuction) Actor() string       { return c.PlayerId }
func (c PlaceBid) Actor() string           { return c.PlayerId }
func (c SettleAuction) Actor() string      { return c.PlayerId }
func (c CancelAuction) Actor() string      { return c.PlayerId }
func (c ProposeTrade) Actor() string       { return c.PlayerId }
func (c AcceptTrade) Actor() string        { return c.PlayerId }
func (c RejectTrade) Actor() string        { return c.PlayerId }
func (c CancelTrade) Actor() string        { return c.PlayerId }
func (c DeclareBankruptcy) Actor() string  { return c.PlayerId }

// NewCommand returns an empty command for a verb, ready to be decoded into.
func NewCommand(verb string) (Command, bool) {
	factory, ok := verbs[verb]
	if !ok {
		return nil, false
	}
	return factory(), true
}

var verbs = map[string]func() Command{
	"joinGame":           func() Command { return &JoinGame{} },
	"updateSettings":     func() Command { return &UpdateSettings{} },
	"startGame":          func() Command { return &StartGame{} },
	"rollDice":           func() Command { return &RollDice{} },
	"endTurn":            func() Command { return &EndTurn{} },
	"buyProperty":        func() Command { return &BuyProperty{} },
	"declineProperty":    func() Command { return &DeclineProperty{} },
	"sellProperty":       func() Command { return &SellProperty{} },
	"mortgageProperty":   func() Command { return &MortgageProperty{} },
	"unmortgageProperty": func() Command { return &UnmortgageProperty{} },
	"buildHouse":         func() Command { return &BuildHouse{} },
	"sellHouse":          func() Command { return &SellHouse{} },
	"payJailFine":        func() Command { return &PayJailFine{} },
	"useJailCard":        func() Command { return &UseJailCard{} },
	"startAuction":       func() Command { return &StartAuction{} },
	"placeBid":           func() Command { return &PlaceBid{} },
	"settleAuction":      func() Command { return &SettleAuction{} },
	"cancelAuction":      func() Command { return &CancelAuction{} },
	"proposeTrade":       func() Command { return &ProposeTrade{} },
	"acceptTrade":        func() Command { return &AcceptTrade{} },
	"rejectTrade":        func() Command { return &RejectTrade{} },
	"cancelTrade":        func() Command { return &CancelTrade{} },
	"declareBankruptcy":  func() Command { return &DeclareBankruptcy{} },
}
