package repo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func sampleParlay() *Parlay {
	return &Parlay{
		UserID:            "u1",
		StakeCents:        5000,
		DecimalMultiplier: 5.0214,
		AmericanPrice:     402,
		PotentialWinCents: 20100,
		Legs: []Leg{
			{Position: 0, GameID: "g1", BetType: "moneyline", Selection: "A", Side: "home", AmericanOdds: 270},
			{Position: 1, GameID: "g2", BetType: "moneyline", Selection: "B", Side: "away", AmericanOdds: -280},
		},
	}
}

func TestCreatePending(t *testing.T) {
	r, mock := newMockRepo(t)
	pr := sampleParlay()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parlays")).
		WithArgs(sqlmock.AnyArg(), "u1", int64(5000), 5.0214, 402, int64(20100), StatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parlay_legs")).
		WithArgs(sqlmock.AnyArg(), 0, "g1", "moneyline", "A", "home", 270).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parlay_legs")).
		WithArgs(sqlmock.AnyArg(), 1, "g2", "moneyline", "B", "away", -280).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := r.CreatePending(context.Background(), pr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreatePending_RollsBackOnLegFailure(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parlays")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parlay_legs")).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	if _, err := r.CreatePending(context.Background(), sampleParlay()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetStatus(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM parlays WHERE id=$1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(StatusPending))

	st, err := r.GetStatus(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != StatusPending {
		t.Errorf("status = %q, want %q", st, StatusPending)
	}
}

func TestGetStatus_NotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM parlays")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	if _, err := r.GetStatus(context.Background(), "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestMarkRejected(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parlays SET status=$2")).
		WithArgs("p1", StatusRejected, "wallet: insufficient funds", StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.MarkRejected(context.Background(), "p1", "wallet: insufficient funds"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkRejected_NotPending(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parlays")).
		WithArgs("p1", StatusRejected, "wallet", StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := r.MarkRejected(context.Background(), "p1", "wallet"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}
