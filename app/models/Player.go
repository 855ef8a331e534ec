package models

import "sort"

type Player struct {
	Id               string `json:"id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Money            int    `json:"money"`
	Position         int    `json:"position"`
	AnimatedPosition int    `json:"animatedPosition"`

	Cities    []string `json:"cities"`
	Airports  []string `json:"airports"`
	Harbours  []string `json:"harbours"`
	Companies []string `json:"companies"`

	InJail        bool `json:"inJail"`
	JailTurns     int  `json:"jailTurns"`
	DoublesCount  int  `json:"doublesCount"`
	OnVacation    bool `json:"onVacation"`
	JailFreeCards int  `json:"jailFreeCards"`

	Houses int `json:"houses"`
	Hotels int `json:"hotels"`
}

// Holdings returns the ownership list for a category, nil for unpriced types.
func (p *Player) Holdings(t SquareType) *[]string {
	switch t {
	case SquareCity:
		return &p.Cities
	case SquareAirport:
		return &p.Airports
	case SquareHarbour:
		return &p.Harbours
	case SquareCompany:
		return &p.Companies
	}
	return nil
}

func (p *Player) Owns(t SquareType, id string) bool {
	list := p.Holdings(t)
	if list == nil {
		return false
	}
	for _, owned := range *list {
		if owned == id {
			return true
		}
	}
	return false
}

func (p *Player) AddHolding(t SquareType, id string) {
	if list := p.Holdings(t); list != nil && !p.Owns(t, id) {
		*list = append(*list, id)
	}
}

func (p *Player) RemoveHolding(t SquareType, id string) {
	list := p.Holdings(t)
	if list == nil {
		return
	}
	kept := (*list)[:0]
	for _, owned := range *list {
		if owned != id {
			kept = append(kept, owned)
		}
	}
	*list = kept
}

// AllProperties lists every owned property id in a stable order.
func (p *Player) AllProperties() []string {
	all := make([]string, 0, len(p.Cities)+len(p.Airports)+len(p.Harbours)+len(p.Companies))
	all = append(all, p.Cities...)
	all = append(all, p.Airports...)
	all = append(all, p.Harbours...)
	all = append(all, p.Companies...)
	sort.Strings(all)
	return all
}

// PlayerRecord is the registry row for a seat in a game.
type PlayerRecord struct {
	tableName struct{} `pg:"players"`

	User_id  string
	Game_id  string
	Username string
	Active   bool
}
