package parlay

import (
	"errors"
	"math"
	"testing"
)

func oddsLegs(odds ...int) []Leg {
	legs := make([]Leg, 0, len(odds))
	for i, o := range odds {
		legs = append(legs, Leg{
			GameID:       string(rune('a' + i)),
			BetType:      Moneyline,
			Selection:    "home",
			Side:         Home,
			AmericanOdds: o,
		})
	}
	return legs
}

func TestCompose_TwoLegs(t *testing.T) {
	got, err := Compose(oddsLegs(270, -280))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.DecimalMultiplier-5.0214285714) > 1e-9 {
		t.Errorf("multiplier = %.10f, want ~5.0214285714", got.DecimalMultiplier)
	}
	if got.AmericanPrice != 402 {
		t.Errorf("american = %d, want 402", got.AmericanPrice)
	}
	if got.String() != "+402" {
		t.Errorf("String() = %q, want +402", got.String())
	}
}

func TestCompose_Table(t *testing.T) {
	tests := []struct {
		name string
		odds []int
		want int
	}{
		{"three -110 legs", []int{-110, -110, -110}, 596},
		{"two heavy favorites", []int{-500, -500}, -227},
		{"two even money", []int{100, -100}, 300},
		{"mixed four legs", []int{150, -110, 200, -150}, 2286},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(oddsLegs(tt.odds...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AmericanPrice != tt.want {
				t.Errorf("Compose(%v) = %d, want %d", tt.odds, got.AmericanPrice, tt.want)
			}
		})
	}
}

func TestCompose_SingleLegPassThrough(t *testing.T) {
	for _, odds := range []int{-110, 100, -100, 270, -10000} {
		got, err := Compose(oddsLegs(odds))
		if err != nil {
			t.Fatal(err)
		}
		if got.AmericanPrice != odds {
			t.Errorf("single leg %d: got %d", odds, got.AmericanPrice)
		}
	}
}

func TestCompose_Errors(t *testing.T) {
	if _, err := Compose(nil); !errors.Is(err, ErrEmptySlip) {
		t.Errorf("empty: expected ErrEmptySlip, got %v", err)
	}
	if _, err := Compose(oddsLegs(150, 0)); !errors.Is(err, ErrInvalidOdds) {
		t.Errorf("zero odds: expected ErrInvalidOdds, got %v", err)
	}
}

func TestCompose_LongshotOutOfRange(t *testing.T) {
	odds := make([]int, MaxLegs)
	for i := range odds {
		odds[i] = 5000
	}
	if _, err := Compose(oddsLegs(odds...)); !errors.Is(err, ErrPriceOutOfRange) {
		t.Errorf("expected ErrPriceOutOfRange, got %v", err)
	}
	if _, err := Compose(oddsLegs(150, 50)); !errors.Is(err, ErrInvalidOdds) {
		t.Errorf("sub-100 odds: expected ErrInvalidOdds, got %v", err)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	legs := oddsLegs(150, -110, 300)
	first, err := Compose(legs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compose(legs)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("compose not idempotent: %+v vs %+v", first, second)
	}
}

func TestCompose_OrderInvariant(t *testing.T) {
	base := oddsLegs(150, -110, 300, -250, 120, -105)
	want, err := Compose(base)
	if err != nil {
		t.Fatal(err)
	}

	perms := [][]int{
		{5, 4, 3, 2, 1, 0},
		{1, 0, 3, 2, 5, 4},
		{2, 5, 0, 4, 1, 3},
		{3, 1, 4, 0, 5, 2},
	}
	for _, p := range perms {
		legs := make([]Leg, len(p))
		for i, idx := range p {
			legs[i] = base[idx]
		}
		got, err := Compose(legs)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("permutation %v: got %+v, want %+v", p, got, want)
		}
	}
}
