package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
)

var (
	// ErrNotFound quando o slip não existe ou já foi descartado
	ErrNotFound = errors.New("slip not found")
	// ErrSubmitting: slip com submissão em andamento não pode ser descartado
	ErrSubmitting = errors.New("slip has a submission in progress")
)

type entry struct {
	mu      sync.Mutex
	b       *parlay.Builder
	touched time.Time
}

// Store guarda os slips em memória, um Builder por sessão do navegador.
// Cada slip tem seu próprio mutex: mutações no mesmo slip são serializadas
// (escritor único), slips diferentes não disputam lock.
type Store struct {
	mu     sync.RWMutex
	slips  map[string]*entry
	limits parlay.StakeLimits
	now    func() time.Time
}

// New cria o store com os limites de stake aplicados a todo Builder
func New(limits parlay.StakeLimits) *Store {
	return &Store{
		slips:  make(map[string]*entry),
		limits: limits,
		now:    time.Now,
	}
}

// Create abre um slip vazio e devolve o ID
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.slips[id] = &entry{b: parlay.NewBuilder(s.limits), touched: s.now()}
	s.mu.Unlock()
	return id
}

// With executa fn com acesso exclusivo ao Builder do slip.
// fn não deve guardar a referência nem fazer I/O demorado.
func (s *Store) With(id string, fn func(*parlay.Builder) error) error {
	s.mu.RLock()
	e, ok := s.slips[id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = s.now()
	return fn(e.b)
}

// Delete descarta o slip (cancelar / fechar o modal).
// Como no Sweep, slips em Submitting ficam: o resultado da colocação
// ainda precisa fechar a máquina de estados.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.slips[id]
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.b.State() == parlay.StateSubmitting {
		return ErrSubmitting
	}
	delete(s.slips, id)
	return nil
}

// Len retorna quantos slips estão abertos
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slips)
}

// Sweep remove slips sem uso há mais de idle; slips em Submitting ficam.
// Retorna quantos foram removidos.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.slips {
		if !e.mu.TryLock() {
			continue
		}
		if e.touched.Before(cutoff) && e.b.State() != parlay.StateSubmitting {
			delete(s.slips, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}
