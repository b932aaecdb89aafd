package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	walletdto "github.com/radieske/sports-bet-parlay/internal/parlay-service/wallet/dto"
)

func TestReserve(t *testing.T) {
	var got walletdto.ReserveRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wallet/reserve" || r.Method != http.MethodPost {
			http.Error(w, "unexpected", http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(walletdto.ReserveResponse{ReservationID: "res-1", Status: "RESERVED"})
	}))
	defer srv.Close()

	id, err := New(srv.URL).Reserve(context.Background(), "u1", 5000, "p1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "res-1" {
		t.Errorf("reservation id = %q, want res-1", id)
	}
	want := walletdto.ReserveRequest{UserID: "u1", AmountCents: 5000, ExternalRef: "p1", Kind: "PARLAY_STAKE", Legs: 3}
	if got != want {
		t.Errorf("request = %+v, want %+v", got, want)
	}
}

func TestReserve_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "payment required",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "rejected body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(walletdto.ReserveResponse{Status: "REJECTED", Reason: "insufficient_funds"})
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "other rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(walletdto.ReserveResponse{Status: "REJECTED", Reason: "account_frozen"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL).Reserve(context.Background(), "u1", 5000, "p1", 2)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && errors.Is(err, ErrInsufficientFunds) {
				t.Errorf("unexpected ErrInsufficientFunds")
			}
		})
	}
}
