package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	walletdto "github.com/radieske/sports-bet-parlay/internal/parlay-service/wallet/dto"
)

const kindParlayStake = "PARLAY_STAKE"

// ErrInsufficientFunds quando o wallet recusa a reserva por saldo
var ErrInsufficientFunds = errors.New("insufficient funds")

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// Reserve bloqueia o stake do parlay na carteira; externalRef é o parlayID
func (c *Client) Reserve(ctx context.Context, userID string, cents int64, externalRef string, legs int) (string, error) {
	body, err := json.Marshal(walletdto.ReserveRequest{
		UserID:      userID,
		AmountCents: cents,
		ExternalRef: externalRef,
		Kind:        kindParlayStake,
		Legs:        legs,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/wallet/reserve", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("wallet reserve: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusPaymentRequired {
		return "", ErrInsufficientFunds
	}
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("wallet reserve http %d", res.StatusCode)
	}
	var out walletdto.ReserveResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode wallet reserve: %w", err)
	}
	if out.Status == "REJECTED" {
		if out.Reason == "insufficient_funds" {
			return "", ErrInsufficientFunds
		}
		return "", fmt.Errorf("wallet reserve rejected: %s", out.Reason)
	}
	return out.ReservationID, nil
}
