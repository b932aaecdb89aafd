package tier

import "context"

// Static decide o plano por uma lista fixa de usuários premium.
// Quem não está na lista (ou vem sem userId) fica no plano gratuito.
type Static struct {
	premium map[string]struct{}
}

func NewStatic(premiumUsers []string) *Static {
	m := make(map[string]struct{}, len(premiumUsers))
	for _, id := range premiumUsers {
		m[id] = struct{}{}
	}
	return &Static{premium: m}
}

// FreeTier indica se o teto do plano gratuito vale para o usuário
func (s *Static) FreeTier(_ context.Context, userID string) bool {
	if userID == "" {
		return true
	}
	_, ok := s.premium[userID]
	return !ok
}
