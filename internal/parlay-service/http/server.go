package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/dto"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/repo"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/session"
	"github.com/radieske/sports-bet-parlay/pkg/contracts/events"
)

// Repo define a persistência usada na submissão
type Repo interface {
	CreatePending(ctx context.Context, p *repo.Parlay) (string, error)
	MarkRejected(ctx context.Context, parlayID, reason string) error
	GetStatus(ctx context.Context, parlayID string) (string, error)
}

// PriceChecker consulta a odd ao vivo de uma perna
type PriceChecker interface {
	CurrentPrice(ctx context.Context, gameID, betType, selection string) (int, bool, error)
}

type Wallet interface {
	Reserve(ctx context.Context, userID string, cents int64, externalRef string, legs int) (string, error)
}

type Publisher interface {
	PublishParlayPlaced(context.Context, events.ParlayPlaced) error
}

// TierSource decide o teto de stake pelo usuário, nunca pelo corpo da requisição
type TierSource interface {
	FreeTier(ctx context.Context, userID string) bool
}

// Hooks recebem os eventos para métricas; todos opcionais
type Hooks struct {
	OnDecision     func(decision string) // accepted | replaced
	OnRejected     func(code string)
	OnSubmitted    func(legs int)
	OnSubmitFailed func(stage string)
}

type Server struct {
	log    *zap.Logger
	store  *session.Store
	repo   Repo
	prices PriceChecker
	wallet Wallet
	publ   Publisher
	tiers  TierSource
	hooks  Hooks
}

// NewServer monta o handler; tiers nil aplica o teto do plano gratuito a todos
func NewServer(log *zap.Logger, store *session.Store, r Repo, p PriceChecker, w Wallet, publ Publisher, tiers TierSource, hooks Hooks) *Server {
	return &Server{log: log, store: store, repo: r, prices: p, wallet: w, publ: publ, tiers: tiers, hooks: hooks}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/v1/slips", s.createSlip)
	r.Get("/v1/slips/{id}", s.getSlip)
	r.Delete("/v1/slips/{id}", s.cancelSlip)
	r.Post("/v1/slips/{id}/legs", s.addLeg)
	r.Delete("/v1/slips/{id}/legs/{index}", s.removeLeg)
	r.Post("/v1/slips/{id}/quote", s.quote)
	r.Post("/v1/slips/{id}/submit", s.submit)
	r.Post("/v1/slips/{id}/reset", s.resetSlip)
	r.Get("/v1/parlays/{id}", s.getParlayStatus)
	return r
}

func (s *Server) createSlip(w http.ResponseWriter, r *http.Request) {
	id := s.store.Create()
	writeJSON(w, http.StatusCreated, dto.SlipResponse{SlipID: id, State: string(parlay.StateEmpty), Legs: []parlay.Leg{}})
}

func (s *Server) getSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var out dto.SlipResponse
	err := s.store.With(id, func(b *parlay.Builder) error {
		out = slipView(id, b)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) cancelSlip(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resetSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var out dto.SlipResponse
	err := s.store.With(id, func(b *parlay.Builder) error {
		b.Reset()
		out = slipView(id, b)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addLeg(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.AddLegRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad_json"})
		return
	}
	leg := req.ToLeg()
	if err := leg.Validate(); err != nil {
		s.reject(w, err)
		return
	}

	// 1) Confere a odd ao vivo; sem preço em cache segue com a do cliente
	if s.prices != nil {
		cur, found, err := s.prices.CurrentPrice(r.Context(), leg.GameID, string(leg.BetType), leg.Selection)
		if err != nil {
			s.log.Warn("price lookup failed", zap.String("gameId", leg.GameID), zap.Error(err))
		} else if found && cur != leg.AmericanOdds {
			s.hook(s.hooks.OnRejected, "price_changed")
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{
				Error:       "price_changed",
				Message:     "odds changed; current=" + parlay.FormatAmerican(cur),
				CurrentOdds: &cur,
			})
			return
		}
	}

	// 2) Resolver decide; rejeição não muda o slip
	var out dto.AddLegResponse
	err := s.store.With(id, func(b *parlay.Builder) error {
		d, err := b.Add(leg)
		if err != nil {
			return err
		}
		out = dto.AddLegResponse{Decision: d.Kind.String(), Superseded: d.Superseded, Slip: slipView(id, b)}
		return nil
	})
	if err != nil {
		s.reject(w, err)
		return
	}
	s.hook(s.hooks.OnDecision, out.Decision)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) removeLeg(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad_index"})
		return
	}

	var out dto.SlipResponse
	err = s.store.With(id, func(b *parlay.Builder) error {
		if err := b.Remove(idx); err != nil {
			return err
		}
		out = slipView(id, b)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad_json"})
		return
	}

	var q parlay.Quote
	err := s.store.With(id, func(b *parlay.Builder) error {
		var err error
		q, err = b.Quote(req.Stake, s.freeTier(r.Context(), req.UserID))
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.QuoteResponse{
		Price:        *dto.NewPriceView(q.Price),
		Stake:        q.Payout.Stake,
		PotentialWin: q.Payout.Win,
		TotalReturn:  q.Payout.TotalReturn,
	})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad_json"})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_payload", Message: "userId required"})
		return
	}

	// 1) Trava o slip em Submitting; o lock não fica preso durante o I/O
	freeTier := s.freeTier(r.Context(), req.UserID)
	var ticket parlay.Ticket
	err := s.store.With(id, func(b *parlay.Builder) error {
		var err error
		ticket, err = b.Submit(req.Stake, freeTier)
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	// 2) Persiste, reserva e publica
	parlayID, stage, err := s.place(r.Context(), req.UserID, ticket)

	// 3) Fecha a máquina de estados: sucesso volta a Empty, falha fica em Failed
	if cerr := s.store.With(id, func(b *parlay.Builder) error {
		if err != nil {
			return b.Fail(stage)
		}
		if serr := b.Settle(); serr != nil {
			return serr
		}
		b.Reset()
		return nil
	}); cerr != nil {
		s.log.Error("slip state not closed after submit",
			zap.String("slipId", id), zap.String("parlayId", parlayID), zap.Error(cerr))
	}

	if err != nil {
		s.log.Error("parlay submit failed", zap.String("slipId", id), zap.String("stage", stage), zap.Error(err))
		s.hook(s.hooks.OnSubmitFailed, stage)
		status := http.StatusInternalServerError
		if stage == "wallet" {
			status = http.StatusConflict
		}
		writeJSON(w, status, dto.ErrorResponse{Error: stage + "_failed"})
		return
	}

	if s.hooks.OnSubmitted != nil {
		s.hooks.OnSubmitted(len(ticket.Legs))
	}
	s.log.Info("parlay placed",
		zap.String("parlayId", parlayID),
		zap.Int("legs", len(ticket.Legs)),
		zap.String("price", ticket.Price.String()),
	)
	writeJSON(w, http.StatusOK, dto.SubmitResponse{
		ParlayID:     parlayID,
		Status:       repo.StatusPending,
		Price:        *dto.NewPriceView(ticket.Price),
		Stake:        ticket.Stake,
		PotentialWin: ticket.Payout.Win,
		TotalReturn:  ticket.Payout.TotalReturn,
	})
}

// place executa a colocação externa e devolve o estágio que falhou
func (s *Server) place(ctx context.Context, userID string, t parlay.Ticket) (string, string, error) {
	stakeCents := t.Stake.Shift(2).IntPart()
	winCents := t.Payout.Win.Shift(2).IntPart()

	legs := make([]repo.Leg, 0, len(t.Legs))
	evLegs := make([]events.ParlayLeg, 0, len(t.Legs))
	for i, l := range t.Legs {
		legs = append(legs, repo.Leg{
			Position:     i,
			GameID:       l.GameID,
			BetType:      string(l.BetType),
			Selection:    l.Selection,
			Side:         string(l.Side),
			AmericanOdds: l.AmericanOdds,
		})
		evLegs = append(evLegs, events.ParlayLeg{
			GameID:       l.GameID,
			BetType:      string(l.BetType),
			Selection:    l.Selection,
			Side:         string(l.Side),
			AmericanOdds: l.AmericanOdds,
		})
	}

	parlayID, err := s.repo.CreatePending(ctx, &repo.Parlay{
		UserID:            userID,
		StakeCents:        stakeCents,
		DecimalMultiplier: t.Price.DecimalMultiplier,
		AmericanPrice:     t.Price.AmericanPrice,
		PotentialWinCents: winCents,
		Legs:              legs,
	})
	if err != nil {
		return "", "persist", err
	}

	reservationID, err := s.wallet.Reserve(ctx, userID, stakeCents, parlayID, len(t.Legs))
	if err != nil {
		// sem reserva o parlay não vale; não pode ficar pendente
		if merr := s.repo.MarkRejected(ctx, parlayID, "wallet: "+err.Error()); merr != nil {
			s.log.Error("mark parlay rejected failed", zap.String("parlayId", parlayID), zap.Error(merr))
		}
		return parlayID, "wallet", err
	}

	if err := s.publ.PublishParlayPlaced(ctx, events.ParlayPlaced{
		ParlayID:          parlayID,
		UserID:            userID,
		Legs:              evLegs,
		StakeCents:        stakeCents,
		DecimalMultiplier: t.Price.DecimalMultiplier,
		AmericanPrice:     t.Price.AmericanPrice,
		PotentialWinCents: winCents,
		ReservedRef:       reservationID,
	}); err != nil {
		// parlay já gravado e stake reservado; a confirmação reprocessa pelo banco
		s.log.Warn("publish parlay_placed failed", zap.String("parlayId", parlayID), zap.Error(err))
	}
	return parlayID, "", nil
}

func (s *Server) getParlayStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, err := s.repo.GetStatus(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, dto.ParlayStatusResponse{ParlayID: id, Status: st})
}

func slipView(id string, b *parlay.Builder) dto.SlipResponse {
	out := dto.SlipResponse{
		SlipID:        id,
		State:         string(b.State()),
		Legs:          b.Legs(),
		FailureReason: b.FailureReason(),
	}
	if p, err := b.Price(); err == nil {
		out.Price = dto.NewPriceView(p)
	}
	return out
}

// reject registra a métrica e responde com o código do core
func (s *Server) reject(w http.ResponseWriter, err error) {
	if !errors.Is(err, session.ErrNotFound) {
		s.hook(s.hooks.OnRejected, parlay.Code(err))
	}
	s.writeError(w, err)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "slip_not_found"})
		return
	}
	if errors.Is(err, session.ErrSubmitting) {
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "slip_submitting", Message: err.Error()})
		return
	}
	code := parlay.Code(err)
	if code == "internal" {
		s.log.Error("unexpected error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: code})
		return
	}
	writeJSON(w, statusFor(err), dto.ErrorResponse{Error: code, Message: err.Error()})
}

// statusFor: conflito com o slip → 409; entrada inválida → 422
func statusFor(err error) int {
	switch {
	case errors.Is(err, parlay.ErrCapacityExceeded),
		errors.Is(err, parlay.ErrDuplicateSelection),
		errors.Is(err, parlay.ErrMutuallyExclusiveMarket),
		errors.Is(err, parlay.ErrInferiorPrice),
		errors.Is(err, parlay.ErrPriceOutOfRange),
		errors.Is(err, parlay.ErrSlipLocked):
		return http.StatusConflict
	case errors.Is(err, parlay.ErrLegNotFound):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) freeTier(ctx context.Context, userID string) bool {
	if s.tiers == nil {
		return true
	}
	return s.tiers.FreeTier(ctx, userID)
}

func (s *Server) hook(fn func(string), v string) {
	if fn != nil {
		fn(v)
	}
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
