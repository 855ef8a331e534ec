package models

type SquareType string

const (
	SquareGo       SquareType = "go"
	SquareCity     SquareType = "city"
	SquareAirport  SquareType = "airport"
	SquareHarbour  SquareType = "harbour"
	SquareCompany  SquareType = "company"
	SquareTax      SquareType = "tax"
	SquareTreasure SquareType = "treasure"
	SquareSurprise SquareType = "surprise"
	SquareJail     SquareType = "jail"
	SquareVacation SquareType = "vacation"
	SquareGoToJail SquareType = "go-to-jail"
)

// Property is a static board square. Priced squares carry a cost and a rent table:
// cities are indexed by improvement level (0..4 houses, then hotel), airports and
// harbours by the owner's count in the category, companies hold dice multipliers.
type Property struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Type      SquareType `json:"type"`
	Country   string     `json:"country,omitempty"`
	Position  int        `json:"position"`
	Cost      int        `json:"cost,omitempty"`
	Rent      []int      `json:"rent,omitempty"`
	HouseCost int        `json:"houseCost,omitempty"`
	Amount    float64    `json:"amount,omitempty"` // tax: flat amount, or a fraction of money when < 1
}

func (p Property) Priced() bool {
	switch p.Type {
	case SquareCity, SquareAirport, SquareHarbour, SquareCompany:
		return true
	}
	return false
}

func (p Property) MortgageValue() int {
	return p.Cost / 2
}

// UnmortgageCost is the mortgage value plus 10% interest.
func (p Property) UnmortgageCost() int {
	return p.MortgageValue() * 11 / 10
}

const HotelLevel = 5

// PropertyState is the dynamic part of a priced square.
type PropertyState struct {
	Owner     string `json:"owner,omitempty"`
	Houses    int    `json:"houses"`
	Hotels    int    `json:"hotels"`
	Mortgaged bool   `json:"mortgaged"`
}

func (s *PropertyState) Improved() bool {
	return s.Houses > 0 || s.Hotels > 0
}

// Reset returns the property to the bank.
func (s *PropertyState) Reset() {
	*s = PropertyState{}
}
