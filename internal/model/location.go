package model

type NearbyLocation struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Distance string  `json:"distance"`
	Rating   float64 `json:"rating"`
	IsOpen   bool    `json:"is_open"`
}
