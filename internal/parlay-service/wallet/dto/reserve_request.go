package dto

// ReserveRequest pede ao wallet-service o bloqueio do stake de uma múltipla.
// ExternalRef é o parlayID, usado pelo wallet como chave de idempotência.
type ReserveRequest struct {
	UserID      string `json:"userId"`
	AmountCents int64  `json:"amount_cents"`
	ExternalRef string `json:"external_ref"`
	Kind        string `json:"kind"` // "PARLAY_STAKE"
	Legs        int    `json:"legs"`
}
