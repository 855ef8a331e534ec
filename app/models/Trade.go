package models

import "time"

type TradeStatus string

const (
	TradePending  TradeStatus = "pending"
	TradeAccepted TradeStatus = "accepted"
	TradeRejected TradeStatus = "rejected"
)

type Bundle struct {
	Money      int      `json:"money"`
	Properties []string `json:"properties"`
}

type Trade struct {
	Id         string      `json:"id"`
	FromPlayer string      `json:"fromPlayer"`
	ToPlayer   string      `json:"toPlayer"`
	Offer      Bundle      `json:"offer"`
	Request    Bundle      `json:"request"`
	Status     TradeStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}
