package parlay

import (
	"fmt"
	"math"
	"strconv"
)

// ruído de ponto flutuante descartado antes do arredondamento final
const roundingEpsilon = 1e6

const (
	// MinAmericanMagnitude: entre -100 e +100 não existe odd americana
	MinAmericanMagnitude = 100
	// MaxAmericanMagnitude é o teto aceito por perna (+100000 = decimal 1001)
	MaxAmericanMagnitude = 100000
	// MaxComposedDecimal é o teto do multiplicador composto (americano +99999900)
	MaxComposedDecimal = 1e6
)

// ValidAmerican exige 100 <= |odds| <= 100000
func ValidAmerican(american int) error {
	if american < 0 {
		american = -american
	}
	if american < MinAmericanMagnitude || american > MaxAmericanMagnitude {
		return ErrInvalidOdds
	}
	return nil
}

// AmericanToDecimal converte odds americanas em multiplicador decimal.
// +150 → 2.50, -150 → 1.6667
func AmericanToDecimal(american int) (float64, error) {
	if err := ValidAmerican(american); err != nil {
		return 0, err
	}
	if american > 0 {
		return 1.0 + float64(american)/100.0, nil
	}
	return 1.0 + 100.0/float64(-american), nil
}

// DecimalToAmerican converte o multiplicador de volta para odds americanas.
// Os dois ramos concordam em 2.0 (even money): +100 e -100 são o mesmo preço.
// Acima de MaxComposedDecimal retorna ErrPriceOutOfRange.
func DecimalToAmerican(decimal float64) (int, error) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) || decimal <= 1.0 {
		return 0, fmt.Errorf("decimal odds %v: must be > 1.0", decimal)
	}
	if decimal > MaxComposedDecimal {
		return 0, fmt.Errorf("decimal odds %v: %w", decimal, ErrPriceOutOfRange)
	}
	if decimal >= 2.0 {
		return roundHalfAway((decimal - 1.0) * 100.0), nil
	}
	return roundHalfAway(-100.0 / (decimal - 1.0)), nil
}

// roundHalfAway arredonda para o inteiro mais próximo, empate para longe do zero.
// Antes corta o ruído em 1e-6 para que 100.49999999 conte como 100.5.
func roundHalfAway(x float64) int {
	x = math.Round(x*roundingEpsilon) / roundingEpsilon
	return int(math.Round(x))
}

// FormatAmerican formata com "+" explícito para preço positivo
func FormatAmerican(odds int) string {
	if odds > 0 {
		return "+" + strconv.Itoa(odds)
	}
	return strconv.Itoa(odds)
}
