package parlay

import "errors"

// Motivos de rejeição. Todos recuperáveis; o slip não muda quando retornados.
var (
	ErrCapacityExceeded        = errors.New("slip already holds the maximum number of legs")
	ErrDuplicateSelection      = errors.New("identical leg already in slip")
	ErrMutuallyExclusiveMarket = errors.New("market already covered for this game")
	ErrInferiorPrice           = errors.New("conflicting leg has an equal or better price")
	ErrInvalidOdds             = errors.New("american odds magnitude must be between 100 and 100000")
	ErrPriceOutOfRange         = errors.New("composed price exceeds the maximum multiplier")
	ErrSideRequired            = errors.New("selection does not name a team; send side explicitly")
	ErrInsufficientLegs        = errors.New("parlay needs at least two legs")
	ErrInvalidStake            = errors.New("stake out of allowed range")

	ErrInvalidLeg  = errors.New("leg is missing game, selection, bet type or side")
	ErrLegNotFound = errors.New("no leg at index")
	ErrEmptySlip   = errors.New("no legs to compose")
	ErrSlipLocked  = errors.New("slip is not editable in its current state")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrCapacityExceeded, "capacity_exceeded"},
	{ErrDuplicateSelection, "duplicate_selection"},
	{ErrMutuallyExclusiveMarket, "mutually_exclusive_market"},
	{ErrInferiorPrice, "inferior_price"},
	{ErrInvalidOdds, "invalid_odds"},
	{ErrPriceOutOfRange, "price_out_of_range"},
	{ErrSideRequired, "side_required"},
	{ErrInsufficientLegs, "insufficient_legs"},
	{ErrInvalidStake, "invalid_stake"},
	{ErrInvalidLeg, "invalid_leg"},
	{ErrLegNotFound, "leg_not_found"},
	{ErrEmptySlip, "empty_slip"},
	{ErrSlipLocked, "slip_locked"},
}

// Code devolve um código estável para a camada de transporte.
// Erros fora da taxonomia viram "internal".
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}
