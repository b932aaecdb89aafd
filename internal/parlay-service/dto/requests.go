package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
)

// AddLegRequest chega do navegador de odds; side é opcional
type AddLegRequest struct {
	GameID       string    `json:"gameId"`
	BetType      string    `json:"betType"`   // moneyline | spread | total
	Selection    string    `json:"selection"` // nome do time ou "Over 220.5"
	Side         string    `json:"side,omitempty"`
	AmericanOdds int       `json:"americanOdds"`
	HomeTeam     string    `json:"homeTeam"`
	AwayTeam     string    `json:"awayTeam"`
	Sport        string    `json:"sport"`
	CommenceTime time.Time `json:"commenceTime"`
}

// ToLeg converte o payload; sem side explícito tenta casar a seleção com os times.
// Sem correspondência o side fica vazio e Validate devolve ErrSideRequired.
func (r AddLegRequest) ToLeg() parlay.Leg {
	side := parlay.Side(r.Side)
	if side == "" {
		side, _ = parlay.SideOf(r.Selection, r.HomeTeam, r.AwayTeam)
	}
	return parlay.Leg{
		GameID:       r.GameID,
		BetType:      parlay.BetType(r.BetType),
		Selection:    r.Selection,
		Side:         side,
		AmericanOdds: r.AmericanOdds,
		Game: parlay.GameMetadata{
			HomeTeam:     r.HomeTeam,
			AwayTeam:     r.AwayTeam,
			Sport:        r.Sport,
			CommenceTime: r.CommenceTime,
		},
	}
}

// QuoteRequest: sem userId a cotação usa o teto do plano gratuito
type QuoteRequest struct {
	UserID string          `json:"userId,omitempty"`
	Stake  decimal.Decimal `json:"stake"`
}

// SubmitRequest não carrega o plano; ele vem do TierSource do serviço
type SubmitRequest struct {
	UserID string          `json:"userId"`
	Stake  decimal.Decimal `json:"stake"`
}
