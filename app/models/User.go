package models

type GuestDto struct {
	Name string `json:"name"`
}
