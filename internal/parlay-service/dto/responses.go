package dto

import (
	"github.com/shopspring/decimal"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
)

// PriceView é o preço composto pronto para exibição
type PriceView struct {
	Decimal  float64 `json:"decimal"`
	American int     `json:"american"`
	Display  string  `json:"display"` // "+402"
}

func NewPriceView(p parlay.ComposedPrice) *PriceView {
	return &PriceView{Decimal: p.DecimalMultiplier, American: p.AmericanPrice, Display: p.String()}
}

type SlipResponse struct {
	SlipID        string       `json:"slipId"`
	State         string       `json:"state"`
	Legs          []parlay.Leg `json:"legs"`
	Price         *PriceView   `json:"price,omitempty"`
	FailureReason string       `json:"failureReason,omitempty"`
}

type AddLegResponse struct {
	Decision   string       `json:"decision"` // accepted | replaced
	Superseded *parlay.Leg  `json:"superseded,omitempty"`
	Slip       SlipResponse `json:"slip"`
}

type QuoteResponse struct {
	Price        PriceView       `json:"price"`
	Stake        decimal.Decimal `json:"stake"`
	PotentialWin decimal.Decimal `json:"potentialWin"`
	TotalReturn  decimal.Decimal `json:"totalReturn"`
}

type SubmitResponse struct {
	ParlayID     string          `json:"parlayId"`
	Status       string          `json:"status"` // PENDING_CONFIRMATION
	Price        PriceView       `json:"price"`
	Stake        decimal.Decimal `json:"stake"`
	PotentialWin decimal.Decimal `json:"potentialWin"`
	TotalReturn  decimal.Decimal `json:"totalReturn"`
}

type ParlayStatusResponse struct {
	ParlayID string `json:"parlayId"`
	Status   string `json:"status"`
}

// ErrorResponse carrega o código estável de parlay.Code
type ErrorResponse struct {
	Error       string `json:"error"`
	Message     string `json:"message,omitempty"`
	CurrentOdds *int   `json:"currentOdds,omitempty"`
}
