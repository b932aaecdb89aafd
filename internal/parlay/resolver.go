package parlay

// DecisionKind é o resultado do resolver para uma perna candidata
type DecisionKind int

const (
	Accept DecisionKind = iota
	Reject
	Replace
)

func (k DecisionKind) String() string {
	switch k {
	case Accept:
		return "accepted"
	case Reject:
		return "rejected"
	case Replace:
		return "replaced"
	}
	return "unknown"
}

// Decision carrega o motivo (Reject) ou a perna substituída (Replace)
type Decision struct {
	Kind            DecisionKind
	Reason          error
	Superseded      *Leg
	SupersededIndex int
}

func accept() Decision { return Decision{Kind: Accept, SupersededIndex: -1} }

func reject(reason error) Decision {
	return Decision{Kind: Reject, Reason: reason, SupersededIndex: -1}
}

// Resolve decide se a candidata entra no slip. Regras por precedência, cada
// uma avaliada contra todas as pernas do mesmo jogo antes da próxima:
//  1. mesmo jogo, mercado e seleção → DuplicateSelection
//  2. mesmo jogo e mercado, outra seleção → MutuallyExclusiveMarket
//  3. moneyline/spread no mesmo lado do mesmo jogo → Replace se o multiplicador
//     decimal da candidata for estritamente maior, senão InferiorPrice
//
// A candidata já deve ter passado por Leg.Validate.
func Resolve(candidate Leg, existing []Leg) Decision {
	sameGame := make([]int, 0, len(existing))
	for i, l := range existing {
		if l.GameID == candidate.GameID {
			sameGame = append(sameGame, i)
		}
	}
	if len(sameGame) == 0 {
		return accept()
	}

	for _, i := range sameGame {
		l := existing[i]
		if l.BetType == candidate.BetType && l.sameSelection(candidate) {
			return reject(ErrDuplicateSelection)
		}
	}

	for _, i := range sameGame {
		if existing[i].BetType == candidate.BetType {
			return reject(ErrMutuallyExclusiveMarket)
		}
	}

	if !candidate.BetType.teamMarket() {
		return accept()
	}
	for _, i := range sameGame {
		l := existing[i]
		if !l.BetType.teamMarket() || l.Side != candidate.Side {
			continue
		}
		if betterPrice(candidate.AmericanOdds, l.AmericanOdds) {
			superseded := l
			return Decision{Kind: Replace, Superseded: &superseded, SupersededIndex: i}
		}
		return reject(ErrInferiorPrice)
	}

	return accept()
}

// betterPrice compara multiplicadores decimais (-105 perde para +110)
func betterPrice(candidate, current int) bool {
	c, err := AmericanToDecimal(candidate)
	if err != nil {
		return false
	}
	e, err := AmericanToDecimal(current)
	if err != nil {
		return true
	}
	return c > e
}
