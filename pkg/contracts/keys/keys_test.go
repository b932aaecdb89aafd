package keys

import "testing"

func TestLegPrice(t *testing.T) {
	tests := []struct {
		gameID, betType, selection string
		want                       string
	}{
		{"g1", "moneyline", "Lakers", "odds:g1:moneyline:lakers"},
		{"g1", "Moneyline", "  Lakers ", "odds:g1:moneyline:lakers"},
		{"g2", "total", "Over   220.5", "odds:g2:total:over 220.5"},
		{"g3", "spread", "Kansas State -3.5", "odds:g3:spread:kansas state -3.5"},
	}
	for _, tt := range tests {
		if got := LegPrice(tt.gameID, tt.betType, tt.selection); got != tt.want {
			t.Errorf("LegPrice(%q, %q, %q) = %q, want %q", tt.gameID, tt.betType, tt.selection, got, tt.want)
		}
	}
}
