package parlay

import (
	"strconv"
	"strings"
	"time"
)

// BetType é o mercado de uma perna. Conjunto fechado.
type BetType string

const (
	Moneyline BetType = "moneyline"
	Spread    BetType = "spread"
	Total     BetType = "total"
)

// Valid indica se o tipo pertence ao conjunto suportado
func (b BetType) Valid() bool {
	switch b {
	case Moneyline, Spread, Total:
		return true
	}
	return false
}

// teamMarket: mercados em que a seleção é um dos lados do confronto
func (b BetType) teamMarket() bool { return b == Moneyline || b == Spread }

// Side identifica o lado escolhido dentro do jogo.
// Moneyline/spread usam Home|Away; total usa Over|Under.
type Side string

const (
	Home  Side = "home"
	Away  Side = "away"
	Over  Side = "over"
	Under Side = "under"
)

// GameMetadata é só exibição/auditoria, nunca entra no cálculo
type GameMetadata struct {
	HomeTeam     string    `json:"homeTeam"`
	AwayTeam     string    `json:"awayTeam"`
	Sport        string    `json:"sport"`
	CommenceTime time.Time `json:"commenceTime"`
}

// Leg é uma aposta individual dentro do parlay
type Leg struct {
	GameID       string       `json:"gameId"`
	BetType      BetType      `json:"betType"`
	Selection    string       `json:"selection"`
	Side         Side         `json:"side"`
	AmericanOdds int          `json:"americanOdds"`
	Game         GameMetadata `json:"game"`
}

// Validate checa a perna antes de chegar ao resolver.
// Odds fora de 100..100000 em módulo retornam ErrInvalidOdds, lado ausente
// ErrSideRequired, o resto ErrInvalidLeg.
func (l Leg) Validate() error {
	if err := ValidAmerican(l.AmericanOdds); err != nil {
		return err
	}
	if strings.TrimSpace(l.GameID) == "" || strings.TrimSpace(l.Selection) == "" {
		return ErrInvalidLeg
	}
	if !l.BetType.Valid() {
		return ErrInvalidLeg
	}
	if l.Side == "" {
		return ErrSideRequired
	}
	switch l.BetType {
	case Moneyline, Spread:
		if l.Side != Home && l.Side != Away {
			return ErrInvalidLeg
		}
	case Total:
		if l.Side != Over && l.Side != Under {
			return ErrInvalidLeg
		}
	}
	return nil
}

func (l Leg) sameSelection(o Leg) bool {
	return strings.EqualFold(strings.TrimSpace(l.Selection), strings.TrimSpace(o.Selection))
}

// SideOf resolve a seleção de texto livre para um lado comparando o nome
// inteiro do time (sem "contains": "Kansas" não casa com "Kansas State").
// A linha do spread no fim ("Kansas -3.5") é ignorada na comparação.
// Seleções de total começam com Over/Under. Retorna false sem correspondência.
func SideOf(selection, homeTeam, awayTeam string) (Side, bool) {
	sel := normalizeName(selection)
	if sel == "" {
		return "", false
	}
	home, away := normalizeName(homeTeam), normalizeName(awayTeam)
	for _, cand := range []string{sel, stripLine(sel)} {
		switch cand {
		case "":
		case home:
			return Home, true
		case away:
			return Away, true
		}
	}
	// totais: "Over 220.5" / "Under 220.5"
	switch strings.Fields(sel)[0] {
	case "over":
		return Over, true
	case "under":
		return Under, true
	}
	return "", false
}

// stripLine remove o último token quando é uma linha numérica ("-3.5", "+7", "pk")
func stripLine(sel string) string {
	i := strings.LastIndexByte(sel, ' ')
	if i < 0 {
		return ""
	}
	last := sel[i+1:]
	if last == "pk" {
		return sel[:i]
	}
	if _, err := strconv.ParseFloat(last, 64); err != nil {
		return ""
	}
	return sel[:i]
}

// normalizeName compara por tokens: caixa e espaços extras não importam
func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
