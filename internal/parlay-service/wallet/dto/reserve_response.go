package dto

type ReserveResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`           // RESERVED | REJECTED
	Reason        string `json:"reason,omitempty"` // "insufficient_funds"
}
