package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/radieske/sports-bet-parlay/pkg/contracts/events"
)

func TestSetCurrent(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	c := NewRedisCache(rdb, 30*time.Second)
	err := c.SetCurrent(context.Background(), events.LegPrice{
		GameID:       "g1",
		BetType:      "Spread",
		Selection:    "Lakers  -3.5",
		AmericanOdds: -115,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := mr.Get("odds:g1:spread:lakers -3.5")
	if err != nil {
		t.Fatalf("key not written: %v", err)
	}
	if got != "-115" {
		t.Errorf("value = %q, want -115", got)
	}

	mr.FastForward(31 * time.Second)
	if mr.Exists("odds:g1:spread:lakers -3.5") {
		t.Error("key should expire after TTL")
	}
}
