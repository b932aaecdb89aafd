package topics

const (
	// Odds por perna (gameId/betType/selection)
	LegPrices = "leg_prices"

	// Parlays
	ParlayPlaced = "parlay_placed"
)
