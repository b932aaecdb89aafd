package odds

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/sports-bet-parlay/pkg/contracts/keys"
)

type Validator struct {
	Rdb *redis.Client
}

func NewValidator(r *redis.Client) *Validator { return &Validator{Rdb: r} }

// CurrentPrice lê a odd americana corrente gravada pelo odds-feed-worker.
// found=false quando não há preço ao vivo para a perna.
func (v *Validator) CurrentPrice(ctx context.Context, gameID, betType, selection string) (int, bool, error) {
	val, err := v.Rdb.Get(ctx, keys.LegPrice(gameID, betType, selection)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	odds, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached odds %q: %w", val, err)
	}
	return odds, true, nil
}
