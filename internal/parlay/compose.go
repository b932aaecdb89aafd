package parlay

import "sort"

// ComposedPrice é derivado das pernas; nunca é guardado à parte do slip
type ComposedPrice struct {
	DecimalMultiplier float64 `json:"decimalMultiplier"`
	AmericanPrice     int     `json:"americanPrice"`
}

func (p ComposedPrice) String() string { return FormatAmerican(p.AmericanPrice) }

// Compose multiplica os decimais das pernas e reexpressa o total em odds americanas.
// Uma perna só devolve a própria odd sem passar pela conversão.
func Compose(legs []Leg) (ComposedPrice, error) {
	if len(legs) == 0 {
		return ComposedPrice{}, ErrEmptySlip
	}

	decimals := make([]float64, 0, len(legs))
	for _, l := range legs {
		d, err := AmericanToDecimal(l.AmericanOdds)
		if err != nil {
			return ComposedPrice{}, err
		}
		decimals = append(decimals, d)
	}

	if len(legs) == 1 {
		return ComposedPrice{DecimalMultiplier: decimals[0], AmericanPrice: legs[0].AmericanOdds}, nil
	}

	// ordem fixa de multiplicação: o produto fica idêntico para qualquer permutação
	sort.Float64s(decimals)
	product := 1.0
	for _, d := range decimals {
		product *= d
	}

	american, err := DecimalToAmerican(product)
	if err != nil {
		return ComposedPrice{}, err
	}
	return ComposedPrice{DecimalMultiplier: product, AmericanPrice: american}, nil
}
