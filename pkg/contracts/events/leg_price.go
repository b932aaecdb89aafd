package events

import "time"

// LegPrice é publicado no tópico "leg_prices" a cada mudança de odd
type LegPrice struct {
	GameID       string    `json:"game_id"`
	BetType      string    `json:"bet_type"`  // moneyline | spread | total
	Selection    string    `json:"selection"` // time ou "Over 220.5"
	AmericanOdds int       `json:"american_odds"`
	UpdatedAt    time.Time `json:"updated_at"`
	Source       string    `json:"source"`
}
