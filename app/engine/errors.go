package engine

import "errors"

// Precondition violations. They never leave partial state behind.
var (
	ErrGameNotStarted    = errors.New("game has not started")
	ErrGameNotWaiting    = errors.New("game has already started")
	ErrGameFinished      = errors.New("game is over")
	ErrGameFull          = errors.New("game is full")
	ErrAlreadyJoined     = errors.New("already in this game")
	ErrNotEnoughPlayers  = errors.New("at least two players are needed to start")
	ErrNotHost           = errors.New("only the host can do that")
	ErrUnknownPlayer     = errors.New("player is not in this game")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrOnVacation        = errors.New("you are on vacation this turn")
	ErrAlreadyRolled     = errors.New("you have already rolled the dice")
	ErrMustRoll          = errors.New("you must roll the dice first")
	ErrNegativeBalance   = errors.New("resolve your negative balance before ending the turn")
	ErrDecisionPending   = errors.New("decide whether to buy the property first")
	ErrNoPurchasePending = errors.New("there is nothing to buy")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrActionDisabled    = errors.New("this action is disabled in the game settings")
	ErrNotInJail         = errors.New("you are not in jail")
	ErrNoJailCard        = errors.New("you have no get out of jail free card")
	ErrNotOwner          = errors.New("you do not own this property")
	ErrAlreadyOwned      = errors.New("property is already owned")
	ErrNotPriced         = errors.New("this square cannot be owned")
	ErrAlreadyMortgaged  = errors.New("property is already mortgaged")
	ErrNotMortgaged      = errors.New("property is not mortgaged")
	ErrHasBuildings      = errors.New("sell the houses on this property first")
	ErrNoMonopoly        = errors.New("you must own every city in the country to build")
	ErrMortgagedInSet    = errors.New("a property in this country is mortgaged")
	ErrMaxBuildings      = errors.New("property already has a hotel")
	ErrNoBuildings       = errors.New("property has no houses to sell")
	ErrNotCity           = errors.New("only cities can be built on")
	ErrAuctionActive     = errors.New("an auction is already running")
	ErrNoAuction         = errors.New("no auction is running")
	ErrAuctionOpen       = errors.New("auction countdown has not expired")
	ErrAuctionHasBids    = errors.New("auction already has bids")
	ErrSellerCannotBid   = errors.New("seller cannot bid on their own property")
	ErrBidTooLow         = errors.New("bid must exceed the current bid")
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrSelfTrade         = errors.New("cannot trade with yourself")
	ErrEmptyTrade        = errors.New("trade offers nothing")
	ErrTradeNotFound     = errors.New("trade not found")
	ErrTradeNotPending   = errors.New("trade is no longer pending")
	ErrTradeStale        = errors.New("trade no longer matches the players' holdings")
	ErrNotTradeParty     = errors.New("this trade is not addressed to you")
	ErrUnknownCommand    = errors.New("unknown command")
)

// ErrUnknownProperty is a data integrity condition: the id is not on the static board.
var ErrUnknownProperty = errors.New("property not found on the board")

// IsPrecondition reports whether err is a rule violation the player can fix.
func IsPrecondition(err error) bool {
	for _, target := range preconditions {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var preconditions = []error{
	ErrGameNotStarted, ErrGameNotWaiting, ErrGameFinished, ErrGameFull, ErrAlreadyJoined,
	ErrNotEnoughPlayers, ErrNotHost, ErrUnknownPlayer, ErrNotYourTurn, ErrOnVacation,
	ErrAlreadyRolled, ErrMustRoll, ErrNegativeBalance, ErrDecisionPending, ErrNoPurchasePending,
	ErrInsufficientFunds, ErrActionDisabled, ErrNotInJail, ErrNoJailCard, ErrNotOwner,
	ErrAlreadyOwned, ErrNotPriced, ErrAlreadyMortgaged, ErrNotMortgaged, ErrHasBuildings,
	ErrNoMonopoly, ErrMortgagedInSet, ErrMaxBuildings, ErrNoBuildings, ErrNotCity,
	ErrAuctionActive, ErrNoAuction, ErrAuctionOpen, ErrAuctionHasBids, ErrSellerCannotBid,
	ErrBidTooLow, ErrInvalidAmount, ErrSelfTrade, ErrEmptyTrade, ErrTradeNotFound,
	ErrTradeNotPending, ErrTradeStale, ErrNotTradeParty,
}
