package model

// Attraction is one entry of attractions.json shown on the discover page.
type Attraction struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
