package models

type CardDeck string

const (
	DeckTreasure CardDeck = "treasure"
	DeckSurprise CardDeck = "surprise"
)

type EffectKind string

const (
	EffectFlat              EffectKind = "flat"                // credit (+) or debit (-) Amount
	EffectPerUnitFee        EffectKind = "per-unit-fee"        // PerHouse * houses + PerHotel * hotels
	EffectMoveAbsolute      EffectKind = "move-absolute"       // go to Target, collect GO if passed
	EffectMoveRelative      EffectKind = "move-relative"       // move Steps and resolve the landing
	EffectMoveNearest       EffectKind = "move-nearest"        // nearest square of Category
	EffectAllPlayers        EffectKind = "all-players"         // every other player pays Amount to the drawer (negative: drawer pays)
	EffectVacationCollect   EffectKind = "vacation-collect"    // take the whole pot
	EffectJailFree          EffectKind = "jail-free"           // keep until used
	EffectGoToJail          EffectKind = "go-to-jail"          // straight to jail, no landing
	EffectVacationNoCollect EffectKind = "vacation-no-collect" // move to vacation, collect nothing, turn ends
)

// Effect describes what a card does. Only the fields relevant to Kind are set.
type Effect struct {
	Kind     EffectKind `json:"kind"`
	Amount   int        `json:"amount,omitempty"`
	ToPot    bool       `json:"toPot,omitempty"` // debits feed the vacation pot when enabled
	Target   int        `json:"target,omitempty"`
	Steps    int        `json:"steps,omitempty"`
	Category SquareType `json:"category,omitempty"`
	PerHouse int        `json:"perHouse,omitempty"`
	PerHotel int        `json:"perHotel,omitempty"`
}

type Card struct {
	Id     string   `json:"id"`
	Deck   CardDeck `json:"deck"`
	Info   string   `json:"info"`
	Effect Effect   `json:"effect"`
}
