package events

// ParlayLeg é a perna como sai na submissão
type ParlayLeg struct {
	GameID       string `json:"game_id"`
	BetType      string `json:"bet_type"`
	Selection    string `json:"selection"`
	Side         string `json:"side"`
	AmericanOdds int    `json:"american_odds"`
}

// ParlayPlaced é publicado após reservar o stake e gravar o parlay
type ParlayPlaced struct {
	ParlayID          string      `json:"parlay_id"`
	UserID            string      `json:"user_id"`
	Legs              []ParlayLeg `json:"legs"`
	StakeCents        int64       `json:"stake_cents"`
	DecimalMultiplier float64     `json:"decimal_multiplier"`
	AmericanPrice     int         `json:"american_price"`
	PotentialWinCents int64       `json:"potential_win_cents"`
	ReservedRef       string      `json:"reserved_ref"` // external_ref usado na reserva da carteira (parlayID)
	TsUnixMs          int64       `json:"ts_unix_ms"`
}
