package repo

import "time"

// Parlay é o modelo persistido no Postgres.
type Parlay struct {
	ID                string
	UserID            string
	StakeCents        int64
	DecimalMultiplier float64
	AmericanPrice     int
	PotentialWinCents int64
	Status            string
	RejectReason      string // preenchido em REJECTED
	Legs              []Leg
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Leg é uma linha de parlay_legs; Position preserva a ordem do slip.
type Leg struct {
	Position     int
	GameID       string
	BetType      string
	Selection    string
	Side         string
	AmericanOdds int
}
