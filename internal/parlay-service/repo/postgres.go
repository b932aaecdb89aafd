package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const (
	// StatusPending é o status inicial até a confirmação externa
	StatusPending = "PENDING_CONFIRMATION"
	// StatusRejected: a reserva do stake falhou, o parlay nunca vale
	StatusRejected = "REJECTED"
)

// Postgres implementa operações de persistência de parlays em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de parlays
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// CreatePending grava o parlay e suas pernas numa transação, com status PENDING_CONFIRMATION
func (p *Postgres) CreatePending(ctx context.Context, pr *Parlay) (string, error) {
	id := uuid.NewString()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO parlays (id,user_id,stake_cents,decimal_multiplier,american_price,potential_win_cents,status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		id, pr.UserID, pr.StakeCents, pr.DecimalMultiplier, pr.AmericanPrice, pr.PotentialWinCents, StatusPending,
	)
	if err != nil {
		return "", fmt.Errorf("insert parlay: %w", err)
	}

	for _, l := range pr.Legs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO parlay_legs (parlay_id,position,game_id,bet_type,selection,side,american_odds)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			id, l.Position, l.GameID, l.BetType, l.Selection, l.Side, l.AmericanOdds,
		)
		if err != nil {
			return "", fmt.Errorf("insert parlay leg %d: %w", l.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit parlay: %w", err)
	}
	return id, nil
}

// MarkRejected fecha um parlay pendente cuja reserva falhou.
// Só sai de PENDING_CONFIRMATION; sql.ErrNoRows se não houver linha pendente.
func (p *Postgres) MarkRejected(ctx context.Context, parlayID, reason string) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE parlays SET status=$2, reject_reason=$3, updated_at=now()
		WHERE id=$1 AND status=$4`,
		parlayID, StatusRejected, reason, StatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark parlay rejected: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark parlay rejected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStatus retorna o status atual de um parlay pelo ID
func (p *Postgres) GetStatus(ctx context.Context, parlayID string) (string, error) {
	var s string
	err := p.db.QueryRowContext(ctx, `SELECT status FROM parlays WHERE id=$1`, parlayID).Scan(&s)
	return s, err
}
