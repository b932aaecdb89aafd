package parlay

const (
	// MaxLegs é o teto de pernas de um slip
	MaxLegs = 10
	// MinParlayLegs: abaixo disso é aposta simples, não parlay
	MinParlayLegs = 2
)

// Slip é a coleção ordenada de pernas em construção.
// Valor de escritor único: quem o detém serializa TryAdd/Remove.
type Slip struct {
	legs []Leg
}

// NewSlip cria um slip vazio
func NewSlip() *Slip { return &Slip{legs: make([]Leg, 0, MaxLegs)} }

// Len retorna a quantidade de pernas
func (s *Slip) Len() int { return len(s.legs) }

// Legs devolve uma cópia; alterar o retorno não afeta o slip
func (s *Slip) Legs() []Leg {
	out := make([]Leg, len(s.legs))
	copy(out, s.legs)
	return out
}

// TryAdd valida a candidata, consulta o resolver e aplica a decisão.
// Em Replace remove a perna superada e anexa a candidata no fim.
// O teto só é checado quando o slip cresceria, então um Replace com 10
// pernas é permitido. Uma perna que levaria o preço composto acima de
// MaxComposedDecimal é recusada com ErrPriceOutOfRange. Qualquer erro
// deixa o slip intacto.
func (s *Slip) TryAdd(candidate Leg) (Decision, error) {
	if err := candidate.Validate(); err != nil {
		return reject(err), err
	}

	d := Resolve(candidate, s.legs)
	next := make([]Leg, 0, len(s.legs)+1)
	switch d.Kind {
	case Reject:
		return d, d.Reason
	case Replace:
		next = append(next, s.legs[:d.SupersededIndex]...)
		next = append(next, s.legs[d.SupersededIndex+1:]...)
	default:
		if len(s.legs) >= MaxLegs {
			return reject(ErrCapacityExceeded), ErrCapacityExceeded
		}
		next = append(next, s.legs...)
	}
	next = append(next, candidate)

	if _, err := Compose(next); err != nil {
		return reject(err), err
	}
	s.legs = next
	return d, nil
}

// Remove tira a perna do índice; as demais mantêm a ordem relativa
func (s *Slip) Remove(index int) error {
	if index < 0 || index >= len(s.legs) {
		return ErrLegNotFound
	}
	s.removeAt(index)
	return nil
}

// Clear descarta todas as pernas
func (s *Slip) Clear() { s.legs = s.legs[:0] }

// Price recalcula o preço composto a partir das pernas atuais
func (s *Slip) Price() (ComposedPrice, error) { return Compose(s.legs) }

func (s *Slip) removeAt(i int) {
	s.legs = append(s.legs[:i], s.legs[i+1:]...)
}
