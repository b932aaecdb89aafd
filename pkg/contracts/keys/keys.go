package keys

import (
	"fmt"
	"strings"
)

// LegPrice monta a chave Redis da odd corrente de uma perna:
// "odds:{gameId}:{betType}:{selection}" com seleção normalizada
func LegPrice(gameID, betType, selection string) string {
	sel := strings.ToLower(strings.Join(strings.Fields(selection), " "))
	return fmt.Sprintf("odds:%s:%s:%s", gameID, strings.ToLower(betType), sel)
}
