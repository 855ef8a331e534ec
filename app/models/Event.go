package models

type EventType string

const (
	EventGameCreated     EventType = "game-created"
	EventPlayerJoined    EventType = "player-joined"
	EventSettingsChanged EventType = "settings-changed"
	EventGameStarted     EventType = "game-started"
	EventDiceRolled      EventType = "dice-rolled"
	EventMoved           EventType = "moved"
	EventPassedGo        EventType = "passed-go"
	EventRentPaid        EventType = "rent-paid"
	EventTaxPaid         EventType = "tax-paid"
	EventVacationPayout  EventType = "vacation-payout"
	EventCardDrawn       EventType = "card-drawn"
	EventMoneyChanged    EventType = "money-changed"
	EventJailed          EventType = "jailed"
	EventReleased        EventType = "released"
	EventStayedInJail    EventType = "stayed-in-jail"
	EventPurchaseOffered EventType = "purchase-offered"
	EventPropertyBought  EventType = "property-bought"
	EventPurchaseSkipped EventType = "purchase-skipped"
	EventPropertySold    EventType = "property-sold"
	EventMortgaged       EventType = "mortgaged"
	EventUnmortgaged     EventType = "unmortgaged"
	EventHouseBuilt      EventType = "house-built"
	EventHouseSold       EventType = "house-sold"
	EventAuctionStarted  EventType = "auction-started"
	EventBidPlaced       EventType = "bid-placed"
	EventAuctionSettled  EventType = "auction-settled"
	EventAuctionClosed   EventType = "auction-closed"
	EventTradeProposed   EventType = "trade-proposed"
	EventTradeAccepted   EventType = "trade-accepted"
	EventTradeRejected   EventType = "trade-rejected"
	EventTradeCancelled  EventType = "trade-cancelled"
	EventBankrupt        EventType = "bankrupt"
	EventTurnChanged     EventType = "turn-changed"
	EventTurnContinued   EventType = "turn-continued"
	EventGameOver        EventType = "game-over"
)

// Event is one observable outcome of a command.
type Event struct {
	Type     EventType `json:"type"`
	Player   string    `json:"player,omitempty"`
	Target   string    `json:"target,omitempty"`
	Property string    `json:"property,omitempty"`
	Amount   int       `json:"amount,omitempty"`
	Message  string    `json:"message"`
}
