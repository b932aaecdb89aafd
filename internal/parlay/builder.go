package parlay

import (
	"github.com/shopspring/decimal"
)

// State do construtor de parlay
type State string

const (
	StateEmpty      State = "EMPTY"
	StateBuilding   State = "BUILDING"
	StateSubmitting State = "SUBMITTING"
	StateSettled    State = "SETTLED"
	StateFailed     State = "FAILED"
)

// Quote é o que a tela mostra enquanto o slip é montado
type Quote struct {
	Legs   []Leg         `json:"legs"`
	Price  ComposedPrice `json:"price"`
	Payout Payout        `json:"payout"`
}

// Ticket é entregue ao chamador na submissão; a colocação da aposta é externa
type Ticket struct {
	Legs   []Leg           `json:"legs"`
	Price  ComposedPrice   `json:"price"`
	Stake  decimal.Decimal `json:"stake"`
	Payout Payout          `json:"payout"`
}

// Builder amarra slip, limites de stake e a máquina de estados
// Empty → Building → Submitting → {Settled | Failed} → Empty.
// Não é seguro para uso concorrente.
type Builder struct {
	slip   *Slip
	limits StakeLimits
	state  State
	reason string
}

// NewBuilder cria um construtor vazio com os limites informados
func NewBuilder(limits StakeLimits) *Builder {
	return &Builder{slip: NewSlip(), limits: limits, state: StateEmpty}
}

func (b *Builder) State() State { return b.state }

// FailureReason só é preenchido em StateFailed
func (b *Builder) FailureReason() string { return b.reason }

func (b *Builder) Legs() []Leg { return b.slip.Legs() }

func (b *Builder) Len() int { return b.slip.Len() }

// Price recalcula a partir das pernas; ErrEmptySlip sem pernas
func (b *Builder) Price() (ComposedPrice, error) { return b.slip.Price() }

func (b *Builder) editable() bool {
	return b.state == StateEmpty || b.state == StateBuilding
}

func (b *Builder) syncState() {
	if b.slip.Len() == 0 {
		b.state = StateEmpty
	} else {
		b.state = StateBuilding
	}
}

// Add tenta incluir a perna; rejeição mantém estado e pernas
func (b *Builder) Add(leg Leg) (Decision, error) {
	if !b.editable() {
		return reject(ErrSlipLocked), ErrSlipLocked
	}
	d, err := b.slip.TryAdd(leg)
	if err != nil {
		return d, err
	}
	b.syncState()
	return d, nil
}

// Remove retira a perna do índice
func (b *Builder) Remove(index int) error {
	if !b.editable() {
		return ErrSlipLocked
	}
	if err := b.slip.Remove(index); err != nil {
		return err
	}
	b.syncState()
	return nil
}

// Quote calcula preço e retorno para exibição. Aceita uma perna só.
func (b *Builder) Quote(stake decimal.Decimal, freeTier bool) (Quote, error) {
	if err := b.limits.Validate(stake, freeTier); err != nil {
		return Quote{}, err
	}
	price, err := b.slip.Price()
	if err != nil {
		return Quote{}, err
	}
	p, err := PotentialWin(stake, price.AmericanPrice)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Legs: b.slip.Legs(), Price: price, Payout: p}, nil
}

// Submit entra em Submitting. Exige 2+ pernas e stake válido.
func (b *Builder) Submit(stake decimal.Decimal, freeTier bool) (Ticket, error) {
	if b.state != StateBuilding {
		if b.state == StateEmpty {
			return Ticket{}, ErrInsufficientLegs
		}
		return Ticket{}, ErrSlipLocked
	}
	if b.slip.Len() < MinParlayLegs {
		return Ticket{}, ErrInsufficientLegs
	}
	q, err := b.Quote(stake, freeTier)
	if err != nil {
		return Ticket{}, err
	}
	b.state = StateSubmitting
	return Ticket{Legs: q.Legs, Price: q.Price, Stake: stake, Payout: q.Payout}, nil
}

// Settle marca sucesso da colocação e limpa o slip
func (b *Builder) Settle() error {
	if b.state != StateSubmitting {
		return ErrSlipLocked
	}
	b.slip.Clear()
	b.state = StateSettled
	return nil
}

// Fail registra a falha; as pernas ficam até Reset
func (b *Builder) Fail(reason string) error {
	if b.state != StateSubmitting {
		return ErrSlipLocked
	}
	b.reason = reason
	b.state = StateFailed
	return nil
}

// Reset volta a Empty descartando tudo (cancelar, fechar o modal)
func (b *Builder) Reset() {
	b.slip.Clear()
	b.reason = ""
	b.state = StateEmpty
}
