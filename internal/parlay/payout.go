package parlay

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Payout são os valores exibidos para um stake e um preço americano
type Payout struct {
	Stake       decimal.Decimal `json:"stake"`
	Win         decimal.Decimal `json:"potentialWin"`
	TotalReturn decimal.Decimal `json:"totalReturn"`
}

// PotentialWin calcula lucro potencial e retorno total, arredondados em centavos.
// Serve para uma perna ou para o preço composto do parlay.
// Limites de stake são pré-condição (StakeLimits.Validate), não ajuste daqui.
func PotentialWin(stake decimal.Decimal, americanOdds int) (Payout, error) {
	if !stake.IsPositive() {
		return Payout{}, ErrInvalidStake
	}
	if americanOdds > -MinAmericanMagnitude && americanOdds < MinAmericanMagnitude {
		return Payout{}, ErrInvalidOdds
	}

	odds := decimal.NewFromInt(int64(americanOdds))
	var win decimal.Decimal
	if americanOdds > 0 {
		win = stake.Mul(odds).Div(hundred)
	} else {
		win = stake.Mul(hundred).Div(odds.Abs())
	}
	win = win.Round(2)

	return Payout{Stake: stake, Win: win, TotalReturn: stake.Add(win)}, nil
}

// StakeLimits é o contrato único de stake: fora da faixa rejeita, nunca ajusta.
type StakeLimits struct {
	Min         decimal.Decimal
	Max         decimal.Decimal
	FreeTierMax decimal.Decimal
}

// DefaultStakeLimits: mínimo 1, máximo 10000, plano gratuito até 100
func DefaultStakeLimits() StakeLimits {
	return StakeLimits{
		Min:         decimal.NewFromInt(1),
		Max:         decimal.NewFromInt(10000),
		FreeTierMax: decimal.NewFromInt(100),
	}
}

// Ceiling devolve o teto aplicável ao plano
func (l StakeLimits) Ceiling(freeTier bool) decimal.Decimal {
	if freeTier && l.FreeTierMax.IsPositive() && l.FreeTierMax.LessThan(l.Max) {
		return l.FreeTierMax
	}
	return l.Max
}

// Validate rejeita stake não positivo, abaixo do mínimo, acima do teto
// ou com fração menor que centavo.
func (l StakeLimits) Validate(stake decimal.Decimal, freeTier bool) error {
	if !stake.IsPositive() {
		return ErrInvalidStake
	}
	if stake.LessThan(l.Min) || stake.GreaterThan(l.Ceiling(freeTier)) {
		return ErrInvalidStake
	}
	if !stake.Equal(stake.Round(2)) {
		return ErrInvalidStake
	}
	return nil
}
